package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingID      = errors.New("item must have an id")
	ErrMissingTitle   = errors.New("item must have a title")
	ErrMissingStart   = errors.New("item must have a start")
	ErrEndRequired    = errors.New("range patterns require an end")
	ErrEndBeforeStart = errors.New("end must not be before start")
	ErrUnknownPattern = errors.New("unknown time pattern")
)

// Item is a schedulable calendar item of some registered kind. The engine
// never owns the canonical item list; items are plain values supplied by the
// host on every evaluation cycle.
type Item struct {
	ID          string      `json:"id"`
	TypeKey     string      `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Start       time.Time   `json:"start"`
	End         *time.Time  `json:"end,omitempty"`
	AllDay      bool        `json:"all_day"`
	TimePattern TimePattern `json:"time_pattern"`
	Color       string      `json:"color,omitempty"`
	Editable    bool        `json:"editable"`
	Deletable   bool        `json:"deletable"`
	Draggable   bool        `json:"draggable"`
	Completed   bool        `json:"completed,omitempty"`
	Data        any         `json:"data,omitempty"`
}

// NewItem creates an item with a generated id and the permissive defaults
// (editable, deletable, draggable).
func NewItem(typeKey, title string, start time.Time, pattern TimePattern) *Item {
	return &Item{
		ID:          uuid.NewString(),
		TypeKey:     typeKey,
		Title:       title,
		Start:       start,
		TimePattern: pattern,
		AllDay:      !pattern.IsTimed(),
		Editable:    true,
		Deletable:   true,
		Draggable:   true,
	}
}

// Validate performs the minimal structural check: id, title and start must
// be present, and range patterns must carry a well-ordered end. Type-specific
// validators are applied separately by the registry's callers.
func (i *Item) Validate() error {
	if i.ID == "" {
		return ErrMissingID
	}
	if i.Title == "" {
		return ErrMissingTitle
	}
	if i.Start.IsZero() {
		return ErrMissingStart
	}
	if !i.TimePattern.IsValid() {
		return ErrUnknownPattern
	}
	if i.TimePattern.IsRange() {
		if i.End == nil {
			return ErrEndRequired
		}
		if i.End.Before(i.Start) {
			return ErrEndBeforeStart
		}
	}
	if i.End != nil && i.End.Before(i.Start) {
		return ErrEndBeforeStart
	}
	return nil
}

// Duration returns end minus start, or fallback when the item has no end.
func (i *Item) Duration(fallback time.Duration) time.Duration {
	if i.End == nil {
		return fallback
	}
	return i.End.Sub(i.Start)
}

// Clone returns a shallow copy with its own End pointer. Data is shared.
func (i *Item) Clone() *Item {
	clone := *i
	if i.End != nil {
		end := *i.End
		clone.End = &end
	}
	return &clone
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
