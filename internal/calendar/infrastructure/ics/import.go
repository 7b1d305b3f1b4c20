// Package ics imports iCalendar payloads as calendar items so hosts can
// seed the engine from exported calendars.
package ics

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/felixgeelhaar/almanac/internal/calendar/domain"
)

// ErrEmptyPayload is returned for an empty ICS body.
var ErrEmptyPayload = errors.New("empty ics payload")

// ImportedTypeKey is the item kind assigned to imported VEVENTs.
const ImportedTypeKey = "event"

// Importer parses ICS payloads into items.
type Importer struct {
	logger *slog.Logger
}

// NewImporter creates an importer.
func NewImporter(logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{logger: logger}
}

// Import parses a single ICS payload. Malformed VEVENTs are skipped with a
// warning; the rest of the payload still imports.
func (im *Importer) Import(body []byte) ([]*domain.Item, error) {
	if len(body) == 0 {
		return nil, ErrEmptyPayload
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	items := make([]*domain.Item, 0)
	for _, ve := range cal.Events() {
		item, perr := im.itemFromVEvent(ve)
		if perr != nil {
			im.logger.Warn("skipping unparseable vevent",
				"error", perr,
			)
			continue
		}
		items = append(items, item)
	}

	im.logger.Debug("ics import completed",
		"item_count", len(items),
	)
	return items, nil
}

func (im *Importer) itemFromVEvent(ve *ical.VEvent) (*domain.Item, error) {
	uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return nil, errors.New("missing UID")
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return nil, err
	}

	allDay := isAllDayStart(ve)

	item := &domain.Item{
		ID:          uidProp.Value,
		TypeKey:     ImportedTypeKey,
		Start:       start,
		AllDay:      allDay,
		TimePattern: domain.PatternDateTime,
		Editable:    true,
		Deletable:   true,
		Draggable:   true,
	}
	if allDay {
		item.TimePattern = domain.PatternDate
		item.Start = domain.StartOfDay(start)
	}

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		item.Title = p.Value
	}
	if item.Title == "" {
		item.Title = "(untitled)"
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		item.Description = p.Value
	}

	if end, endErr := ve.GetEndAt(); endErr == nil && !end.IsZero() {
		if allDay {
			// DTEND of an all-day event is exclusive; pull it back onto
			// the last covered day.
			last := domain.EndOfDay(end.AddDate(0, 0, -1))
			if last.After(item.Start) {
				item.End = &last
				item.TimePattern = domain.PatternDateRange
			}
		} else if end.After(start) {
			e := end
			item.End = &e
			item.TimePattern = domain.PatternDateTimeRange
		}
	}

	return item, nil
}

// isAllDayStart detects VALUE=DATE starts, or bare YYYYMMDD values without
// a time component.
func isAllDayStart(ve *ical.VEvent) bool {
	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return false
	}
	if params := dtStart.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(dtStart.Value, "T")
}

// ParseTime is a convenience for host CLIs accepting either a date or a
// datetime argument.
func ParseTime(value string) (time.Time, bool, error) {
	if t, err := time.ParseInLocation("2006-01-02T15:04", value, time.Local); err == nil {
		return t, false, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
