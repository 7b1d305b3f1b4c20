// Package compat bridges the item model and the legacy event shape the
// render layer still consumes. The two models are kept separate on purpose;
// unifying them is a future refactor, not a requirement.
package compat

import (
	"github.com/felixgeelhaar/almanac/internal/calendar/domain"
	"github.com/felixgeelhaar/almanac/internal/calendar/registry"
)

// DefaultFallbackColor is used when neither the item nor its type resolves
// a color, so an event never reaches rendering without one.
const DefaultFallbackColor = "#6b7280"

// Adapter converts between items and legacy events.
type Adapter struct {
	types         *registry.TypeRegistry
	fallbackColor string
}

// NewAdapter creates an adapter. The registry may be nil when no type
// lookup is available; color resolution then skips straight to the
// fallback. An empty fallbackColor selects DefaultFallbackColor.
func NewAdapter(types *registry.TypeRegistry, fallbackColor string) *Adapter {
	if fallbackColor == "" {
		fallbackColor = DefaultFallbackColor
	}
	return &Adapter{
		types:         types,
		fallbackColor: fallbackColor,
	}
}

// ToEvent derives the legacy event for an item. Color resolution is
// deterministic so repeated renders of the same item cannot flicker:
// explicit item color, then the type's color (per-item function first,
// then the static default), then the fixed fallback.
func (a *Adapter) ToEvent(item *domain.Item) *domain.Event {
	if item == nil {
		return nil
	}

	event := &domain.Event{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Start:       item.Start,
		AllDay:      item.AllDay,
		Color:       a.resolveColor(item),
		Completed:   item.Completed,
		Editable:    item.Editable,
		Deletable:   item.Deletable,
		Draggable:   item.Draggable,
	}
	if item.End != nil {
		end := *item.End
		event.End = &end
	}
	return event
}

// ToItem maps a legacy event back to an item. The event shape does not
// distinguish point from range patterns, so the pattern is inferred from
// the all-day flag alone.
func (a *Adapter) ToItem(event *domain.Event) *domain.Item {
	if event == nil {
		return nil
	}

	pattern := domain.PatternDateTime
	if event.AllDay {
		pattern = domain.PatternDate
	}

	item := &domain.Item{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Start:       event.Start,
		AllDay:      event.AllDay,
		TimePattern: pattern,
		Color:       event.Color,
		Completed:   event.Completed,
		Editable:    event.Editable,
		Deletable:   event.Deletable,
		Draggable:   event.Draggable,
	}
	if event.End != nil {
		end := *event.End
		item.End = &end
	}
	return item
}

func (a *Adapter) resolveColor(item *domain.Item) string {
	if item.Color != "" {
		return item.Color
	}
	if a.types != nil {
		if itemType, ok := a.types.Get(item.TypeKey); ok {
			if itemType.ItemColor != nil {
				if color := itemType.ItemColor(item); color != "" {
					return color
				}
			}
			if itemType.Color != "" {
				return itemType.Color
			}
		}
	}
	return a.fallbackColor
}
