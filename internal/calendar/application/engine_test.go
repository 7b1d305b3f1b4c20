package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/almanac/internal/calendar/application"
	"github.com/felixgeelhaar/almanac/internal/calendar/builtin"
	"github.com/felixgeelhaar/almanac/internal/calendar/domain"
	"github.com/felixgeelhaar/almanac/internal/calendar/drag"
	"github.com/felixgeelhaar/almanac/internal/calendar/editor"
	"github.com/felixgeelhaar/almanac/internal/calendar/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(opts application.Options) *application.Engine {
	engine := application.NewEngine(opts)
	builtin.RegisterAll(engine.ItemTypes())
	return engine
}

func TestEngine_CreateItem(t *testing.T) {
	engine := newEngine(application.Options{})
	date := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	item := engine.CreateItem("task", date, domain.PatternDate)
	require.NotNil(t, item)
	assert.Equal(t, "task", item.TypeKey)

	assert.Nil(t, engine.CreateItem("unknown", date, domain.PatternDate))
}

func TestEngine_CreateItem_UnsupportedPattern(t *testing.T) {
	engine := newEngine(application.Options{})

	// A type supporting only datetime rejects a date-pattern request.
	engine.RegisterItemType(domain.ItemType{
		Key:                "standup",
		DisplayName:        "Standup",
		TimePatterns:       []domain.TimePattern{domain.PatternDateTime},
		DefaultTimePattern: domain.PatternDateTime,
	})

	item := engine.CreateItem("standup", time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), domain.PatternDate)
	assert.Nil(t, item)
}

func TestEngine_Projections(t *testing.T) {
	engine := newEngine(application.Options{})
	ref := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	month := engine.ProjectMonth(ref)
	assert.Len(t, month, 35)

	week := engine.ProjectWeek(ref)
	require.Len(t, week, 7)
	assert.Equal(t, time.Sunday, week[0].Weekday())

	hours := engine.ProjectHours(ref, 0, 0)
	assert.Len(t, hours, 17) // configured default 6..22 inclusive

	custom := engine.ProjectHours(ref, 9, 17)
	assert.Len(t, custom, 9)

	assert.Empty(t, engine.ProjectHours(ref, 17, 9))
}

func TestEngine_QueriesAndLayout(t *testing.T) {
	engine := newEngine(application.Options{})
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	item := engine.CreateItem("meeting", day.Add(10*time.Hour), domain.PatternDateTimeRange)
	require.NotNil(t, item)
	end := item.Start.Add(time.Hour)
	item.End = &end
	item.Title = "Sync"

	items := []*domain.Item{item}
	assert.Len(t, engine.ItemsForDate(items, day), 1)
	assert.Len(t, engine.ItemsForRange(items, day, day.AddDate(0, 0, 7)), 1)

	box, ok := engine.LayoutTimedItem(item, 6, 60)
	require.True(t, ok)
	assert.Equal(t, 240.0, box.Top)
	assert.Equal(t, 60.0, box.Height)
}

func TestEngine_ResolveMove_EmitsAndSpeculativelyApplies(t *testing.T) {
	engine := newEngine(application.Options{})
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	item := engine.CreateItem("meeting", start, domain.PatternDateTimeRange)
	require.NotNil(t, item)
	end := start.Add(time.Hour)
	item.End = &end
	item.Title = "Sync"
	engine.SetItems([]*domain.Item{item})

	var changes []*domain.ItemChangePayload
	engine.OnChange(func(change *domain.ItemChangePayload) {
		changes = append(changes, change)
	})

	slot := time.Date(2024, 1, 16, 14, 0, 0, 0, time.UTC)
	move := engine.ResolveMove(context.Background(), item, drag.DropTarget{Date: slot, Time: &slot})

	require.NotNil(t, move)
	assert.Equal(t, slot, move.Start)
	assert.Equal(t, slot.Add(time.Hour), move.End)

	// The host was notified.
	require.Len(t, changes, 1)
	assert.Equal(t, domain.ActionMove, changes[0].Action)

	// The advisory working copy reflects the move until the host's next
	// authoritative SetItems.
	working := engine.Items()
	require.Len(t, working, 1)
	assert.True(t, working[0].Start.Equal(slot))

	// The caller's item is untouched.
	assert.True(t, item.Start.Equal(start))
}

func TestEngine_ResolveMove_NonDraggable(t *testing.T) {
	engine := newEngine(application.Options{})
	item := engine.CreateItem("event", time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), domain.PatternDateTime)
	require.NotNil(t, item)
	item.Draggable = false

	var notified bool
	engine.OnChange(func(*domain.ItemChangePayload) { notified = true })

	move := engine.ResolveMove(context.Background(), item, drag.DropTarget{Date: item.Start})
	assert.Nil(t, move)
	assert.False(t, notified)
}

func TestEngine_SetItems_OverwritesSpeculativeState(t *testing.T) {
	engine := newEngine(application.Options{})
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	item := engine.CreateItem("event", start, domain.PatternDateTime)
	require.NotNil(t, item)
	item.Title = "Original"
	engine.SetItems([]*domain.Item{item})

	slot := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)
	require.NotNil(t, engine.ResolveMove(context.Background(), item, drag.DropTarget{Date: slot, Time: &slot}))

	// The next host cycle supplies the authoritative list again.
	engine.SetItems([]*domain.Item{item})

	working := engine.Items()
	require.Len(t, working, 1)
	assert.True(t, working[0].Start.Equal(start))
}

func TestEngine_EditorSaveFlow(t *testing.T) {
	engine := newEngine(application.Options{})

	var changes []*domain.ItemChangePayload
	engine.OnChange(func(change *domain.ItemChangePayload) {
		changes = append(changes, change)
	})

	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	session := engine.OpenEditor(editor.OpenRequest{
		Mode:     editor.ModeCreate,
		TypeKey:  "task",
		Pattern:  domain.PatternDate,
		Start:    start,
		Trigger:  &layout.Rect{Top: 40, Left: 500, Width: 100, Height: 30},
		Viewport: layout.Viewport{Width: 1280, Height: 800},
	})
	require.NotNil(t, session)
	assert.Equal(t, layout.SideBottom, session.Placement)

	item := engine.CreateItem("task", start, domain.PatternDate)
	require.NotNil(t, item)
	item.Title = "Buy groceries"

	require.True(t, engine.Save(context.Background(), item))
	assert.Nil(t, engine.EditorSession())

	require.Len(t, changes, 1)
	assert.Equal(t, domain.ActionCreate, changes[0].Action)

	// The speculative create landed in the working copy.
	assert.Len(t, engine.Items(), 1)
}

func TestEngine_EditorValidatorGatesSave(t *testing.T) {
	rejected := func(context.Context, *domain.Item) (bool, error) { return false, nil }
	engine := newEngine(application.Options{Validator: rejected})

	engine.OpenEditor(editor.OpenRequest{Mode: editor.ModeCreate, TypeKey: "task"})
	item := engine.CreateItem("task", time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), domain.PatternDate)
	require.NotNil(t, item)
	item.Title = "Buy groceries"

	assert.False(t, engine.Save(context.Background(), item))
	assert.NotNil(t, engine.EditorSession())
	assert.Empty(t, engine.Items())
}

func TestEngine_DeleteItem(t *testing.T) {
	engine := newEngine(application.Options{})
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	item := engine.CreateItem("task", start, domain.PatternDate)
	require.NotNil(t, item)
	item.Title = "Buy groceries"
	engine.SetItems([]*domain.Item{item})

	engine.OpenEditor(editor.OpenRequest{Mode: editor.ModeEdit, TypeKey: "task", Existing: item})
	require.True(t, engine.DeleteItem(context.Background(), item))

	assert.Empty(t, engine.Items())
}

func TestEngine_AdapterSurface(t *testing.T) {
	engine := newEngine(application.Options{})
	item := engine.CreateItem("task", time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), domain.PatternDate)
	require.NotNil(t, item)

	event := engine.ToEvent(item)
	require.NotNil(t, event)
	assert.Equal(t, "#8b5cf6", event.Color)

	back := engine.ToItem(event)
	require.NotNil(t, back)
	assert.Equal(t, item.ID, back.ID)
}

func TestEngine_ResolvePopoverSide(t *testing.T) {
	engine := newEngine(application.Options{})
	viewport := layout.Viewport{Width: 1000, Height: 1000}

	assert.Equal(t, layout.SideCenter, engine.ResolvePopoverSide(nil, viewport))

	trigger := layout.Rect{Top: 480, Left: 480, Width: 40, Height: 40}
	assert.Equal(t, layout.SideBottom, engine.ResolvePopoverSide(&trigger, viewport))
}
