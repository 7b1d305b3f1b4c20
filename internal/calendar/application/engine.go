// Package application exposes the scheduling engine's public surface to a
// host view. The engine holds no durable state: the host supplies the item
// list on every evaluation cycle and applies every mutation itself, driven
// by the change events the engine emits.
package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/felixgeelhaar/almanac/internal/calendar/compat"
	"github.com/felixgeelhaar/almanac/internal/calendar/domain"
	"github.com/felixgeelhaar/almanac/internal/calendar/drag"
	"github.com/felixgeelhaar/almanac/internal/calendar/editor"
	"github.com/felixgeelhaar/almanac/internal/calendar/layout"
	"github.com/felixgeelhaar/almanac/internal/calendar/projection"
	"github.com/felixgeelhaar/almanac/internal/calendar/registry"
	"github.com/felixgeelhaar/almanac/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/almanac/pkg/config"
)

// ChangeHandler receives item changes the host must apply to its canonical
// item list.
type ChangeHandler func(change *domain.ItemChangePayload)

// Options configures a new engine.
type Options struct {
	// Config provides view geometry and item defaults. Nil selects the
	// package defaults.
	Config *config.Config

	// Logger receives warnings for the non-fatal failure modes. Nil
	// falls back to slog.Default.
	Logger *slog.Logger

	// Validator is the optional asynchronous custom-field check awaited
	// during editor saves.
	Validator editor.Validator

	// Refresh is invoked when the engine wants the host to re-render.
	Refresh func()
}

// Engine is the calendar item scheduling engine. All operations except the
// editor save are synchronous pure functions over the supplied inputs;
// repeated calls with the same inputs produce identical outputs.
type Engine struct {
	mu    sync.RWMutex
	items []*domain.Item

	types     *registry.TypeRegistry
	projector *projection.Projector
	adapter   *compat.Adapter
	mover     *drag.Resolver
	sessions  *editor.Controller
	bus       *eventbus.InProcessEventBus

	cfg    *config.Config
	logger *slog.Logger
}

// NewEngine assembles an engine from its parts.
func NewEngine(opts Options) *Engine {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{
			DayStartHour:       config.DefaultDayStartHour,
			DayEndHour:         config.DefaultDayEndHour,
			SlotHeight:         config.DefaultSlotHeight,
			DefaultDurationMin: config.DefaultDurationMin,
			FallbackColor:      config.DefaultFallbackColor,
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	types := registry.NewTypeRegistry(logger)
	bus := eventbus.NewInProcessEventBus(logger)
	defaultDuration := time.Duration(cfg.DefaultDurationMin) * time.Minute

	e := &Engine{
		types:     types,
		projector: projection.NewProjector(cfg.DayStartHour, cfg.DayEndHour, logger),
		adapter:   compat.NewAdapter(types, cfg.FallbackColor),
		mover:     drag.NewResolver(defaultDuration, logger),
		bus:       bus,
		cfg:       cfg,
		logger:    logger,
	}
	e.sessions = editor.NewController(types, bus, opts.Validator, opts.Refresh, logger)

	// The engine listens to its own change events to keep the advisory
	// working copy current until the host's authoritative list arrives.
	bus.RegisterConsumer(&workingCopyConsumer{engine: e})

	return e
}

// --- item types ---

// RegisterItemType plugs a new item kind into the registry.
func (e *Engine) RegisterItemType(itemType domain.ItemType) {
	e.types.Register(itemType)
}

// UnregisterItemType removes an item kind.
func (e *Engine) UnregisterItemType(key string) {
	e.types.Unregister(key)
}

// ListItemTypes returns the registered kinds sorted by key.
func (e *Engine) ListItemTypes() []domain.ItemType {
	return e.types.All()
}

// ItemTypes exposes the registry for hosts managing kinds directly.
func (e *Engine) ItemTypes() *registry.TypeRegistry {
	return e.types
}

// CreateItem builds a new item of a registered kind, or nil when the kind
// is unknown or does not support the pattern.
func (e *Engine) CreateItem(key string, date time.Time, pattern domain.TimePattern) *domain.Item {
	return e.types.CreateItem(key, date, pattern)
}

// --- projection ---

// ProjectMonth returns the rectangular month grid containing date.
func (e *Engine) ProjectMonth(date time.Time) []time.Time {
	return e.projector.MonthGrid(date)
}

// ProjectWeek returns the Sunday-first week containing date.
func (e *Engine) ProjectWeek(date time.Time) []time.Time {
	return e.projector.WeekDays(date)
}

// ProjectHours returns the hour rows for date's day. Zero bounds select
// the configured day start and end hours.
func (e *Engine) ProjectHours(date time.Time, startHour, endHour int) []time.Time {
	if startHour == 0 && endHour == 0 {
		return e.projector.HourSlots(date)
	}
	if startHour > endHour {
		e.logger.Warn("inverted hour range yields empty grid",
			"start_hour", startHour,
			"end_hour", endHour,
		)
	}
	return projection.HourSlots(date, startHour, endHour)
}

// --- queries ---

// ItemsForDate filters items to those on date's calendar day.
func (e *Engine) ItemsForDate(items []*domain.Item, date time.Time) []*domain.Item {
	return domain.ItemsForDate(items, date)
}

// ItemsForRange filters items to those overlapping [start, end].
func (e *Engine) ItemsForRange(items []*domain.Item, start, end time.Time) []*domain.Item {
	return domain.ItemsForRange(items, start, end)
}

// --- layout ---

// LayoutTimedItem computes the pixel box for a timed item in an hour
// column. ok is false for all-day items, which live in their own lane.
func (e *Engine) LayoutTimedItem(item *domain.Item, startHour int, slotHeight float64) (layout.Box, bool) {
	defaultDuration := time.Duration(e.cfg.DefaultDurationMin) * time.Minute
	return layout.TimedItem(item, startHour, slotHeight, defaultDuration)
}

// ResolvePopoverSide picks the editor popover placement for a trigger.
func (e *Engine) ResolvePopoverSide(trigger *layout.Rect, viewport layout.Viewport) layout.Side {
	return layout.ResolvePopoverSide(trigger, viewport)
}

// --- drag and drop ---

// ResolveMove recomputes an item's schedule for a drop target, emits a
// move change event for the host and speculatively applies the move to the
// engine's working copy. A nil result is the no-op for non-draggable items.
func (e *Engine) ResolveMove(ctx context.Context, item *domain.Item, target drag.DropTarget) *drag.Move {
	move := e.mover.Resolve(item, target)
	if move == nil {
		return nil
	}

	moved := drag.Apply(item, move)
	event := domain.NewItemMoved(moved, move.Start, moved.End)
	if err := e.bus.PublishDomainEvent(ctx, event); err != nil {
		e.logger.Error("failed to publish move event",
			"item_id", item.ID,
			"error", err,
		)
	}
	return move
}

// --- legacy adapter ---

// ToEvent derives the legacy render shape, with color always resolved.
func (e *Engine) ToEvent(item *domain.Item) *domain.Event {
	return e.adapter.ToEvent(item)
}

// ToItem maps a legacy event back into an item.
func (e *Engine) ToItem(event *domain.Event) *domain.Item {
	return e.adapter.ToItem(event)
}

// --- editor lifecycle ---

// OpenEditor starts an editing session.
func (e *Engine) OpenEditor(req editor.OpenRequest) *editor.Session {
	return e.sessions.Open(req)
}

// EditorSession returns the open session, or nil.
func (e *Engine) EditorSession() *editor.Session {
	return e.sessions.Current()
}

// Save runs the validation-gated save of the open session.
func (e *Engine) Save(ctx context.Context, item *domain.Item) bool {
	return e.sessions.Save(ctx, item)
}

// CancelEditor closes the session without emitting a change.
func (e *Engine) CancelEditor() {
	e.sessions.Cancel()
}

// DeleteItem emits a delete change for an already saved item.
func (e *Engine) DeleteItem(ctx context.Context, item *domain.Item) bool {
	return e.sessions.Delete(ctx, item)
}

// --- host wiring ---

// SetItems replaces the engine's working copy with the host's
// authoritative list. The previous copy, including any speculative
// updates, is discarded wholesale rather than diffed.
func (e *Engine) SetItems(items []*domain.Item) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = make([]*domain.Item, len(items))
	copy(e.items, items)
}

// Items returns a snapshot of the advisory working copy. It reflects
// speculative applies and must not be treated as authoritative; the next
// SetItems overwrites it.
func (e *Engine) Items() []*domain.Item {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snapshot := make([]*domain.Item, len(e.items))
	copy(snapshot, e.items)
	return snapshot
}

// OnChange registers a handler for every item change event the engine
// emits. Handlers run synchronously during the emitting call.
func (e *Engine) OnChange(handler ChangeHandler) {
	e.bus.RegisterConsumer(&changeConsumer{handler: handler, logger: e.logger})
}

// Bus exposes the underlying event bus for hosts with custom consumers.
func (e *Engine) Bus() *eventbus.InProcessEventBus {
	return e.bus
}

// applyChange speculatively mutates the working copy so the very next
// render already shows the change. The host's following SetItems call is
// authoritative and overwrites whatever this did.
func (e *Engine) applyChange(change *domain.ItemChangePayload) {
	if change == nil || change.Item == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	switch change.Action {
	case domain.ActionCreate:
		e.items = append(e.items, change.Item)
	case domain.ActionUpdate, domain.ActionMove:
		for i, existing := range e.items {
			if existing.ID == change.Item.ID {
				e.items[i] = change.Item
				return
			}
		}
		e.items = append(e.items, change.Item)
	case domain.ActionDelete:
		for i, existing := range e.items {
			if existing.ID == change.Item.ID {
				e.items = append(e.items[:i], e.items[i+1:]...)
				return
			}
		}
	}
}

var allChangeKeys = []string{
	domain.RoutingKeyItemCreated,
	domain.RoutingKeyItemUpdated,
	domain.RoutingKeyItemDeleted,
	domain.RoutingKeyItemMoved,
}

// workingCopyConsumer feeds engine change events back into the advisory
// working copy.
type workingCopyConsumer struct {
	engine *Engine
}

func (c *workingCopyConsumer) EventTypes() []string { return allChangeKeys }

func (c *workingCopyConsumer) Handle(_ context.Context, event *eventbus.ConsumedEvent) error {
	change, err := domain.DecodeItemChange(event.Payload)
	if err != nil {
		return err
	}
	c.engine.applyChange(change)
	return nil
}

// changeConsumer adapts a host ChangeHandler to the bus consumer shape.
type changeConsumer struct {
	handler ChangeHandler
	logger  *slog.Logger
}

func (c *changeConsumer) EventTypes() []string { return allChangeKeys }

func (c *changeConsumer) Handle(_ context.Context, event *eventbus.ConsumedEvent) error {
	change, err := domain.DecodeItemChange(event.Payload)
	if err != nil {
		c.logger.Error("failed to decode change event",
			"routing_key", event.RoutingKey,
			"error", err,
		)
		return err
	}
	c.handler(change)
	return nil
}
