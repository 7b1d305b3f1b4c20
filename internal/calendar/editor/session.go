// Package editor orchestrates the create/edit/delete lifecycle of one item
// editing session: closed -> open -> saved|cancelled|deleted -> closed.
package editor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/felixgeelhaar/almanac/internal/calendar/domain"
	"github.com/felixgeelhaar/almanac/internal/calendar/layout"
	"github.com/felixgeelhaar/almanac/internal/calendar/registry"
	sharedDomain "github.com/felixgeelhaar/almanac/internal/shared/domain"
)

// Mode distinguishes creating a new item from editing an existing one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Validator is an optional host-supplied asynchronous check for custom
// fields, awaited during save. A false result or an error aborts the save.
type Validator func(ctx context.Context, item *domain.Item) (bool, error)

// Publisher is the slice of the event bus the controller needs.
type Publisher interface {
	PublishDomainEvent(ctx context.Context, event sharedDomain.DomainEvent) error
}

// Session is the ephemeral context of one open editing interaction. It is
// created on open and discarded when the session closes.
type Session struct {
	Mode      Mode
	ReadOnly  bool
	TypeKey   string
	Pattern   domain.TimePattern
	Start     time.Time
	End       *time.Time
	Existing  *domain.Item
	Trigger   *layout.Rect
	Placement layout.Side
}

// OpenRequest carries everything needed to start a session.
type OpenRequest struct {
	Mode     Mode
	ReadOnly bool
	TypeKey  string
	Pattern  domain.TimePattern
	Start    time.Time
	End      *time.Time
	Existing *domain.Item
	Trigger  *layout.Rect
	Viewport layout.Viewport
}

// Controller drives editor sessions. At most one session is open at a time
// and at most one save may be in flight per session.
type Controller struct {
	mu         sync.Mutex
	session    *Session
	generation uint64
	saving     bool

	types     *registry.TypeRegistry
	publisher Publisher
	validator Validator
	refresh   func()
	logger    *slog.Logger
}

// NewController creates a controller. The refresh callback is invoked after
// a successful save or delete so the host re-renders; it may be nil.
func NewController(
	types *registry.TypeRegistry,
	publisher Publisher,
	validator Validator,
	refresh func(),
	logger *slog.Logger,
) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		types:     types,
		publisher: publisher,
		validator: validator,
		refresh:   refresh,
		logger:    logger,
	}
}

// Open starts a session and resolves the popover placement from the trigger
// rectangle and viewport. An already open session is replaced; its pending
// validation, if any, becomes a no-op.
func (c *Controller) Open(req OpenRequest) *Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		c.logger.Debug("replacing open editor session")
	}
	c.closeLocked()

	session := &Session{
		Mode:      req.Mode,
		ReadOnly:  req.ReadOnly,
		TypeKey:   req.TypeKey,
		Pattern:   req.Pattern,
		Start:     req.Start,
		End:       req.End,
		Existing:  req.Existing,
		Trigger:   req.Trigger,
		Placement: layout.ResolvePopoverSide(req.Trigger, req.Viewport),
	}
	c.session = session
	return session
}

// Current returns the open session, or nil when the editor is closed.
func (c *Controller) Current() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// IsOpen reports whether a session is active.
func (c *Controller) IsOpen() bool {
	return c.Current() != nil
}

// Save validates the assembled item and, when everything passes, emits a
// create or update change event and closes the session. The returned bool
// reports whether the save went through; every failure mode leaves the
// session open and correctable, logged as a warning rather than surfaced
// as an error.
//
// While the asynchronous validator is pending the session stays open and
// further save attempts are ignored. If the session is closed before the
// validator resolves, the late result is discarded.
func (c *Controller) Save(ctx context.Context, item *domain.Item) bool {
	c.mu.Lock()
	session := c.session
	if session == nil {
		c.mu.Unlock()
		c.logger.Warn("save ignored: no open editor session")
		return false
	}
	if session.ReadOnly {
		c.mu.Unlock()
		c.logger.Warn("save ignored: session is read-only")
		return false
	}
	if c.saving {
		c.mu.Unlock()
		c.logger.Warn("save ignored: another save is in flight")
		return false
	}
	if item == nil {
		c.mu.Unlock()
		c.logger.Warn("save ignored: no item assembled")
		return false
	}

	if !c.validateLocked(session, item) {
		c.mu.Unlock()
		return false
	}

	generation := c.generation
	c.saving = true
	c.mu.Unlock()

	if c.validator != nil {
		ok, err := c.validator(ctx, item)
		if err != nil || !ok {
			c.mu.Lock()
			c.saving = false
			c.mu.Unlock()
			c.logger.Warn("custom field validation rejected save",
				"item_id", item.ID,
				"error", err,
			)
			return false
		}
	}

	c.mu.Lock()
	c.saving = false
	// The session may have been cancelled or replaced while the
	// validator was pending; applying the result now would resurrect a
	// closed editor.
	if c.session != session || c.generation != generation {
		c.mu.Unlock()
		c.logger.Debug("discarding validation result for closed session",
			"item_id", item.ID,
		)
		return false
	}
	mode := session.Mode
	c.closeLocked()
	c.mu.Unlock()

	var event domain.ItemChanged
	if mode == ModeEdit {
		event = domain.NewItemUpdated(item)
	} else {
		event = domain.NewItemCreated(item)
	}
	c.publish(ctx, event)
	c.requestRefresh()
	return true
}

// Delete emits a delete change event for the session's item and closes the
// session. An item that was never saved has no id yet and cannot be
// deleted; the attempt is a warned no-op.
func (c *Controller) Delete(ctx context.Context, item *domain.Item) bool {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		c.logger.Warn("delete ignored: no open editor session")
		return false
	}
	if item == nil || item.ID == "" {
		c.mu.Unlock()
		c.logger.Warn("delete ignored: item has no id")
		return false
	}
	if !item.Deletable {
		c.mu.Unlock()
		c.logger.Warn("delete ignored: item is not deletable",
			"item_id", item.ID,
		)
		return false
	}
	c.closeLocked()
	c.mu.Unlock()

	c.publish(ctx, domain.NewItemDeleted(item))
	c.requestRefresh()
	return true
}

// Cancel closes the session without emitting a change event.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
}

// closeLocked discards the session and invalidates in-flight validations.
// Callers must hold the mutex.
func (c *Controller) closeLocked() {
	c.session = nil
	c.generation++
}

func (c *Controller) validateLocked(session *Session, item *domain.Item) bool {
	if c.types != nil {
		if !c.types.ValidateStructure(item) {
			return false
		}
		if itemType, ok := c.types.Get(session.TypeKey); ok && itemType.ValidateItem != nil {
			if !itemType.ValidateItem(item) {
				c.logger.Warn("item failed type-specific validation",
					"item_id", item.ID,
					"type", session.TypeKey,
				)
				return false
			}
		}
		return true
	}
	if err := item.Validate(); err != nil {
		c.logger.Warn("item failed structural validation",
			"item_id", item.ID,
			"error", err,
		)
		return false
	}
	return true
}

func (c *Controller) publish(ctx context.Context, event domain.ItemChanged) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.PublishDomainEvent(ctx, event); err != nil {
		c.logger.Error("failed to publish change event",
			"routing_key", event.RoutingKey(),
			"error", err,
		)
	}
}

func (c *Controller) requestRefresh() {
	if c.refresh != nil {
		c.refresh()
	}
}
