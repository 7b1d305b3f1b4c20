// Package layout converts item times into pixel geometry for time-grid
// columns and resolves editor popover placement. Everything here is pure
// arithmetic so week and day views derive identical results.
package layout

import (
	"time"

	"github.com/felixgeelhaar/almanac/internal/calendar/domain"
)

// Box is the computed vertical geometry of a timed item inside an hour
// column, in pixels.
type Box struct {
	Top    float64
	Height float64
}

// TimedItem computes the pixel box for a timed item in a column whose first
// row is startHour and whose rows are slotHeight pixels tall. Items without
// an end use defaultDuration. All-day items have no box in the time grid
// (they live in a separate fixed-height lane); for those ok is false.
func TimedItem(item *domain.Item, startHour int, slotHeight float64, defaultDuration time.Duration) (Box, bool) {
	if item == nil || item.AllDay {
		return Box{}, false
	}

	startMinutes := float64(item.Start.Hour()*60 + item.Start.Minute())
	durationMinutes := item.Duration(defaultDuration).Minutes()

	return Box{
		Top:    (startMinutes - float64(startHour*60)) / 60 * slotHeight,
		Height: durationMinutes / 60 * slotHeight,
	}, true
}
