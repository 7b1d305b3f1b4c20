package domain

import "time"

// ItemFactory creates a new item of a registered kind for the given date
// and time pattern.
type ItemFactory func(date time.Time, pattern TimePattern) *Item

// ItemValidator is a type-specific predicate applied on top of the
// structural check before an item may be saved.
type ItemValidator func(item *Item) bool

// ColorFunc derives a display color for an item of this kind.
type ColorFunc func(item *Item) string

// ItemType describes a registered kind of schedulable item. It is a plain
// data and function bundle, not a subclass: new kinds are plugged in at
// runtime by registering another bundle under a fresh key.
type ItemType struct {
	// Key uniquely identifies the kind within a registry.
	Key string

	// DisplayName is the human-readable name shown by hosts.
	DisplayName string

	// Icon is a host-interpreted icon identifier.
	Icon string

	// Color is the kind's default display color.
	Color string

	// TimePatterns is the subset of patterns this kind supports.
	TimePatterns []TimePattern

	// DefaultTimePattern is used when a caller does not pick one.
	DefaultTimePattern TimePattern

	// NewItem constructs an item of this kind.
	NewItem ItemFactory

	// ValidateItem is the kind-specific validity predicate. Nil means
	// every structurally valid item is acceptable.
	ValidateItem ItemValidator

	// ItemColor optionally derives a per-item color, e.g. from the
	// opaque payload. Nil falls back to Color.
	ItemColor ColorFunc
}

// SupportsPattern reports whether the kind allows the given pattern.
func (t ItemType) SupportsPattern(pattern TimePattern) bool {
	for _, p := range t.TimePatterns {
		if p == pattern {
			return true
		}
	}
	return false
}
