// Package projection derives the date and hour grids the host lays views
// out on. All functions are pure; the same reference date always yields the
// same grid.
package projection

import (
	"log/slog"
	"time"
)

// Hour bounds applied when a projector is constructed without explicit ones.
const (
	DefaultStartHour = 6
	DefaultEndHour   = 22
)

// Projector generates month, week and day grids from a reference date.
type Projector struct {
	startHour int
	endHour   int
	logger    *slog.Logger
}

// NewProjector creates a projector with the given hour bounds. Zero bounds
// fall back to the defaults (6 to 22).
func NewProjector(startHour, endHour int, logger *slog.Logger) *Projector {
	if logger == nil {
		logger = slog.Default()
	}
	if startHour == 0 && endHour == 0 {
		startHour = DefaultStartHour
		endHour = DefaultEndHour
	}
	return &Projector{
		startHour: startHour,
		endHour:   endHour,
		logger:    logger,
	}
}

// MonthGrid returns the dates of the month view containing ref: from the
// Sunday on or before the 1st through the Saturday on or after the last day
// of the month. The result is always a whole number of 7-day weeks, so the
// grid stays rectangular regardless of month length or start weekday.
func MonthGrid(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)

	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	days := make([]time.Time, 0, 42)
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// WeekDays returns the 7 consecutive dates of ref's week, starting from
// that week's Sunday (date minus weekday).
func WeekDays(ref time.Time) []time.Time {
	sunday := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	sunday = sunday.AddDate(0, 0, -int(sunday.Weekday()))

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = sunday.AddDate(0, 0, i)
	}
	return days
}

// HourSlots returns one timestamp per hour on ref's day, inclusive of both
// bounds. Week and day views consume the identical sequence. An inverted
// range yields an empty slice.
func HourSlots(ref time.Time, startHour, endHour int) []time.Time {
	if startHour > endHour {
		return []time.Time{}
	}

	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	slots := make([]time.Time, 0, endHour-startHour+1)
	for h := startHour; h <= endHour; h++ {
		slots = append(slots, day.Add(time.Duration(h)*time.Hour))
	}
	return slots
}

// MonthGrid projects the month view for ref.
func (p *Projector) MonthGrid(ref time.Time) []time.Time {
	return MonthGrid(ref)
}

// WeekDays projects the week view for ref.
func (p *Projector) WeekDays(ref time.Time) []time.Time {
	return WeekDays(ref)
}

// HourSlots projects the hour rows for ref's day using the configured
// bounds. An inverted configuration is reported as a warning and produces
// an empty grid rather than failing; the view simply renders no rows.
func (p *Projector) HourSlots(ref time.Time) []time.Time {
	if p.startHour > p.endHour {
		p.logger.Warn("inverted hour range yields empty grid",
			"start_hour", p.startHour,
			"end_hour", p.endHour,
		)
	}
	return HourSlots(ref, p.startHour, p.endHour)
}

// StartHour returns the configured first hour row.
func (p *Projector) StartHour() int { return p.startHour }

// EndHour returns the configured last hour row.
func (p *Projector) EndHour() int { return p.endHour }
