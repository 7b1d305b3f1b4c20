// Package builtin ships the default item kinds. Hosts may register more
// kinds, replace these, or remove them entirely at runtime.
package builtin

import (
	"time"

	"github.com/felixgeelhaar/almanac/internal/calendar/domain"
	"github.com/felixgeelhaar/almanac/internal/calendar/registry"
)

func factory(key, title string) domain.ItemFactory {
	return func(date time.Time, pattern domain.TimePattern) *domain.Item {
		return domain.NewItem(key, title, date, pattern)
	}
}

func nonEmptyTitle(item *domain.Item) bool {
	return item != nil && item.Title != ""
}

// EventType is a generic timed or all-day event.
func EventType() domain.ItemType {
	return domain.ItemType{
		Key:         "event",
		DisplayName: "Event",
		Icon:        "calendar",
		Color:       "#3b82f6",
		TimePatterns: []domain.TimePattern{
			domain.PatternDate,
			domain.PatternDateRange,
			domain.PatternDateTime,
			domain.PatternDateTimeRange,
		},
		DefaultTimePattern: domain.PatternDateTime,
		NewItem:            factory("event", "New event"),
		ValidateItem:       nonEmptyTitle,
	}
}

// TaskType is a completable to-do pinned to a day or a time.
func TaskType() domain.ItemType {
	return domain.ItemType{
		Key:         "task",
		DisplayName: "Task",
		Icon:        "check-square",
		Color:       "#8b5cf6",
		TimePatterns: []domain.TimePattern{
			domain.PatternDate,
			domain.PatternDateTime,
		},
		DefaultTimePattern: domain.PatternDate,
		NewItem:            factory("task", "New task"),
		ValidateItem:       nonEmptyTitle,
		ItemColor: func(item *domain.Item) string {
			if item.Completed {
				return "#9ca3af"
			}
			return ""
		},
	}
}

// MealType is a timed single-point entry.
func MealType() domain.ItemType {
	return domain.ItemType{
		Key:                "meal",
		DisplayName:        "Meal",
		Icon:               "utensils",
		Color:              "#f59e0b",
		TimePatterns:       []domain.TimePattern{domain.PatternDateTime},
		DefaultTimePattern: domain.PatternDateTime,
		NewItem:            factory("meal", "New meal"),
		ValidateItem:       nonEmptyTitle,
	}
}

// VacationType spans whole days.
func VacationType() domain.ItemType {
	return domain.ItemType{
		Key:         "vacation",
		DisplayName: "Vacation",
		Icon:        "plane",
		Color:       "#10b981",
		TimePatterns: []domain.TimePattern{
			domain.PatternDate,
			domain.PatternDateRange,
		},
		DefaultTimePattern: domain.PatternDateRange,
		NewItem:            factory("vacation", "Vacation"),
		ValidateItem:       nonEmptyTitle,
	}
}

// AppointmentType is a timed range.
func AppointmentType() domain.ItemType {
	return domain.ItemType{
		Key:                "appointment",
		DisplayName:        "Appointment",
		Icon:               "clock",
		Color:              "#ef4444",
		TimePatterns:       []domain.TimePattern{domain.PatternDateTimeRange},
		DefaultTimePattern: domain.PatternDateTimeRange,
		NewItem:            factory("appointment", "New appointment"),
		ValidateItem: func(item *domain.Item) bool {
			return nonEmptyTitle(item) && item.End != nil
		},
	}
}

// MeetingType is a timed range like an appointment, colored separately.
func MeetingType() domain.ItemType {
	return domain.ItemType{
		Key:                "meeting",
		DisplayName:        "Meeting",
		Icon:               "users",
		Color:              "#0ea5e9",
		TimePatterns:       []domain.TimePattern{domain.PatternDateTimeRange},
		DefaultTimePattern: domain.PatternDateTimeRange,
		NewItem:            factory("meeting", "New meeting"),
		ValidateItem: func(item *domain.Item) bool {
			return nonEmptyTitle(item) && item.End != nil
		},
	}
}

// RegisterAll registers every built-in kind.
func RegisterAll(reg *registry.TypeRegistry) {
	reg.Register(EventType())
	reg.Register(TaskType())
	reg.Register(MealType())
	reg.Register(VacationType())
	reg.Register(AppointmentType())
	reg.Register(MeetingType())
}
