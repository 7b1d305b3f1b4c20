package domain

import (
	"encoding/json"
	"time"

	sharedDomain "github.com/felixgeelhaar/almanac/internal/shared/domain"
	"github.com/google/uuid"
)

// Event is the legacy render shape still consumed by hosts. Title,
// description and color are denormalized so the render layer never has to
// consult the type registry.
type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end,omitempty"`
	AllDay      bool       `json:"all_day"`
	Color       string     `json:"color"`
	Completed   bool       `json:"completed,omitempty"`
	Editable    bool       `json:"editable"`
	Deletable   bool       `json:"deletable"`
	Draggable   bool       `json:"draggable"`
}

// ChangeAction tags the kind of mutation a change event describes.
type ChangeAction string

const (
	ActionCreate ChangeAction = "create"
	ActionUpdate ChangeAction = "update"
	ActionDelete ChangeAction = "delete"
	ActionMove   ChangeAction = "move"
)

// Routing keys for item change events.
const (
	RoutingKeyItemCreated = "calendar.item.created"
	RoutingKeyItemUpdated = "calendar.item.updated"
	RoutingKeyItemDeleted = "calendar.item.deleted"
	RoutingKeyItemMoved   = "calendar.item.moved"
)

const aggregateTypeItem = "calendar_item"

// ItemChangePayload is the wire form of an item change, carried in the
// event envelope's payload field.
type ItemChangePayload struct {
	Action   ChangeAction `json:"action"`
	Item     *Item        `json:"item"`
	NewStart *time.Time   `json:"new_start,omitempty"`
	NewEnd   *time.Time   `json:"new_end,omitempty"`
}

// ItemChanged is emitted whenever the engine wants the host to apply a
// mutation to its item list. The engine never mutates the host's collection
// directly.
type ItemChanged struct {
	sharedDomain.BaseEvent
	Action   ChangeAction
	Item     *Item
	NewStart *time.Time
	NewEnd   *time.Time
}

// NewItemCreated signals that a new item was assembled by the editor.
func NewItemCreated(item *Item) ItemChanged {
	return ItemChanged{
		BaseEvent: sharedDomain.NewBaseEvent(item.ID, aggregateTypeItem, RoutingKeyItemCreated),
		Action:    ActionCreate,
		Item:      item,
	}
}

// NewItemUpdated signals that an existing item was edited.
func NewItemUpdated(item *Item) ItemChanged {
	return ItemChanged{
		BaseEvent: sharedDomain.NewBaseEvent(item.ID, aggregateTypeItem, RoutingKeyItemUpdated),
		Action:    ActionUpdate,
		Item:      item,
	}
}

// NewItemDeleted signals that an item should be removed.
func NewItemDeleted(item *Item) ItemChanged {
	return ItemChanged{
		BaseEvent: sharedDomain.NewBaseEvent(item.ID, aggregateTypeItem, RoutingKeyItemDeleted),
		Action:    ActionDelete,
		Item:      item,
	}
}

// NewItemMoved signals a drag reschedule with the resolved start and end.
func NewItemMoved(item *Item, newStart time.Time, newEnd *time.Time) ItemChanged {
	return ItemChanged{
		BaseEvent: sharedDomain.NewBaseEvent(item.ID, aggregateTypeItem, RoutingKeyItemMoved),
		Action:    ActionMove,
		Item:      item,
		NewStart:  &newStart,
		NewEnd:    newEnd,
	}
}

// MarshalJSON encodes the event in the bus envelope format so in-process
// consumers receive a fully populated ConsumedEvent.
func (e ItemChanged) MarshalJSON() ([]byte, error) {
	payload, err := json.Marshal(ItemChangePayload{
		Action:   e.Action,
		Item:     e.Item,
		NewStart: e.NewStart,
		NewEnd:   e.NewEnd,
	})
	if err != nil {
		return nil, err
	}

	return json.Marshal(struct {
		EventID       uuid.UUID       `json:"event_id"`
		AggregateID   string          `json:"aggregate_id"`
		AggregateType string          `json:"aggregate_type"`
		RoutingKey    string          `json:"routing_key"`
		OccurredAt    time.Time       `json:"occurred_at"`
		Payload       json.RawMessage `json:"payload"`
	}{
		EventID:       e.EventID(),
		AggregateID:   e.AggregateID(),
		AggregateType: e.AggregateType(),
		RoutingKey:    e.RoutingKey(),
		OccurredAt:    e.OccurredAt(),
		Payload:       payload,
	})
}

// DecodeItemChange parses an envelope payload back into a change.
func DecodeItemChange(payload []byte) (*ItemChangePayload, error) {
	var change ItemChangePayload
	if err := json.Unmarshal(payload, &change); err != nil {
		return nil, err
	}
	return &change, nil
}
