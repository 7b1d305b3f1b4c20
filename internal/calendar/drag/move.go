// Package drag recomputes an item's schedule from a drop target while
// preserving its duration.
package drag

import (
	"log/slog"
	"time"

	"github.com/felixgeelhaar/almanac/internal/calendar/domain"
)

// DropTarget describes where a dragged item was released. Time is nil for
// month-view day cells and all-day lanes; AllDay marks an explicit all-day
// lane drop.
type DropTarget struct {
	Date   time.Time
	Time   *time.Time
	AllDay bool
}

// Move is the resolved reschedule for a dropped item.
type Move struct {
	Start  time.Time
	End    time.Time
	AllDay bool
}

// Resolver computes drop results.
type Resolver struct {
	defaultDuration time.Duration
	logger          *slog.Logger
}

// NewResolver creates a resolver. defaultDuration applies when a timed drop
// target receives an item that had no end of its own.
func NewResolver(defaultDuration time.Duration, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultDuration <= 0 {
		defaultDuration = time.Hour
	}
	return &Resolver{
		defaultDuration: defaultDuration,
		logger:          logger,
	}
}

// Resolve computes the new start, end and all-day state for item dropped on
// target. A non-draggable item rejects the move before anything else runs;
// the nil result marks the no-op and a warning is logged.
//
// Dropping on an all-day lane or a bare day cell pins the item to exactly
// that calendar day and forces the all-day state. Dropping on a timed slot
// keeps the item's duration: the original end minus start when it was
// timed, the configured default otherwise.
func (r *Resolver) Resolve(item *domain.Item, target DropTarget) *Move {
	if item == nil {
		return nil
	}
	if !item.Draggable {
		r.logger.Warn("move rejected for non-draggable item",
			"item_id", item.ID,
		)
		return nil
	}

	if target.AllDay || target.Time == nil {
		return &Move{
			Start:  domain.StartOfDay(target.Date),
			End:    domain.EndOfDay(target.Date),
			AllDay: true,
		}
	}

	start := time.Date(
		target.Date.Year(), target.Date.Month(), target.Date.Day(),
		target.Time.Hour(), target.Time.Minute(), 0, 0,
		target.Date.Location(),
	)

	duration := r.defaultDuration
	if !item.AllDay && item.End != nil {
		duration = item.End.Sub(item.Start)
	}

	return &Move{
		Start:  start,
		End:    start.Add(duration),
		AllDay: false,
	}
}

// Apply writes a resolved move back onto a copy of the item, leaving the
// caller's value untouched.
func Apply(item *domain.Item, move *Move) *domain.Item {
	if item == nil || move == nil {
		return item
	}
	moved := item.Clone()
	moved.Start = move.Start
	end := move.End
	moved.End = &end
	moved.AllDay = move.AllDay
	return moved
}
