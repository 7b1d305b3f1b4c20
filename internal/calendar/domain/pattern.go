package domain

// TimePattern describes the time shape an item may take: whether it is a
// point or a range, and whether it carries a time of day.
type TimePattern string

const (
	// PatternDate is an all-day item on a single day.
	PatternDate TimePattern = "date"

	// PatternDateRange is an all-day item spanning several days.
	PatternDateRange TimePattern = "date-range"

	// PatternDateTime is a timed item with a single start point.
	PatternDateTime TimePattern = "datetime"

	// PatternDateTimeRange is a timed item with an explicit start and end.
	PatternDateTimeRange TimePattern = "datetime-range"
)

// IsRange reports whether the pattern requires an end.
func (p TimePattern) IsRange() bool {
	return p == PatternDateRange || p == PatternDateTimeRange
}

// IsTimed reports whether the pattern carries a time of day.
func (p TimePattern) IsTimed() bool {
	return p == PatternDateTime || p == PatternDateTimeRange
}

// IsValid reports whether p is one of the four known patterns.
func (p TimePattern) IsValid() bool {
	switch p {
	case PatternDate, PatternDateRange, PatternDateTime, PatternDateTimeRange:
		return true
	}
	return false
}
