package domain_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/almanac/internal/calendar/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestNewItem(t *testing.T) {
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	item := domain.NewItem("task", "Write report", start, domain.PatternDateTime)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "task", item.TypeKey)
	assert.Equal(t, "Write report", item.Title)
	assert.Equal(t, start, item.Start)
	assert.False(t, item.AllDay)
	assert.True(t, item.Editable)
	assert.True(t, item.Deletable)
	assert.True(t, item.Draggable)
}

func TestNewItem_AllDayPatterns(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, domain.NewItem("vacation", "Trip", start, domain.PatternDate).AllDay)
	assert.True(t, domain.NewItem("vacation", "Trip", start, domain.PatternDateRange).AllDay)
	assert.False(t, domain.NewItem("meeting", "Sync", start, domain.PatternDateTimeRange).AllDay)
}

func TestItem_Validate(t *testing.T) {
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(*domain.Item)
		wantErr error
	}{
		{"valid", func(*domain.Item) {}, nil},
		{"missing id", func(i *domain.Item) { i.ID = "" }, domain.ErrMissingID},
		{"missing title", func(i *domain.Item) { i.Title = "" }, domain.ErrMissingTitle},
		{"missing start", func(i *domain.Item) { i.Start = time.Time{} }, domain.ErrMissingStart},
		{"bad pattern", func(i *domain.Item) { i.TimePattern = "hourly" }, domain.ErrUnknownPattern},
		{
			"range without end",
			func(i *domain.Item) { i.TimePattern = domain.PatternDateTimeRange },
			domain.ErrEndRequired,
		},
		{
			"end before start",
			func(i *domain.Item) {
				i.TimePattern = domain.PatternDateTimeRange
				i.End = timePtr(start.Add(-time.Hour))
			},
			domain.ErrEndBeforeStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := domain.NewItem("task", "Write report", start, domain.PatternDateTime)
			tt.mutate(item)

			err := item.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestItem_Duration(t *testing.T) {
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	item := domain.NewItem("meeting", "Sync", start, domain.PatternDateTimeRange)
	item.End = timePtr(start.Add(90 * time.Minute))

	assert.Equal(t, 90*time.Minute, item.Duration(time.Hour))

	item.End = nil
	assert.Equal(t, time.Hour, item.Duration(time.Hour))
}

func TestItem_Clone(t *testing.T) {
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	item := domain.NewItem("meeting", "Sync", start, domain.PatternDateTimeRange)
	item.End = timePtr(start.Add(time.Hour))

	clone := item.Clone()
	require.NotSame(t, item, clone)
	require.NotSame(t, item.End, clone.End)

	// Mutating the clone must not leak into the original.
	*clone.End = clone.End.Add(time.Hour)
	assert.Equal(t, start.Add(time.Hour), *item.End)
}

func TestStartEndOfDay(t *testing.T) {
	mid := time.Date(2024, 2, 29, 14, 30, 45, 123, time.UTC)

	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), domain.StartOfDay(mid))

	endOfDay := domain.EndOfDay(mid)
	assert.True(t, domain.SameDay(mid, endOfDay))
	assert.True(t, endOfDay.After(mid))
	assert.False(t, domain.SameDay(endOfDay.Add(time.Second), mid))
}

func TestItemType_SupportsPattern(t *testing.T) {
	taskType := domain.ItemType{
		Key:          "task",
		TimePatterns: []domain.TimePattern{domain.PatternDate, domain.PatternDateTime},
	}

	assert.True(t, taskType.SupportsPattern(domain.PatternDate))
	assert.True(t, taskType.SupportsPattern(domain.PatternDateTime))
	assert.False(t, taskType.SupportsPattern(domain.PatternDateRange))
}

func TestTimePattern_Helpers(t *testing.T) {
	assert.True(t, domain.PatternDateRange.IsRange())
	assert.True(t, domain.PatternDateTimeRange.IsRange())
	assert.False(t, domain.PatternDate.IsRange())

	assert.True(t, domain.PatternDateTime.IsTimed())
	assert.True(t, domain.PatternDateTimeRange.IsTimed())
	assert.False(t, domain.PatternDateRange.IsTimed())

	assert.True(t, domain.PatternDate.IsValid())
	assert.False(t, domain.TimePattern("fortnightly").IsValid())
}
