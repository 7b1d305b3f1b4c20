// Package registry manages the open set of schedulable item kinds. Kinds
// are plugged in at runtime as plain data/function bundles keyed by string.
package registry

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/felixgeelhaar/almanac/internal/calendar/domain"
)

// TypeRegistry manages item type registration and lookup.
type TypeRegistry struct {
	mu     sync.RWMutex
	types  map[string]domain.ItemType
	logger *slog.Logger
}

// NewTypeRegistry creates a new item type registry.
func NewTypeRegistry(logger *slog.Logger) *TypeRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &TypeRegistry{
		types:  make(map[string]domain.ItemType),
		logger: logger,
	}
}

// Register stores an item type under its key. Registering an existing key
// overwrites the previous bundle (last write wins); the collision is logged
// because it is usually a configuration mistake rather than an intent.
func (r *TypeRegistry) Register(itemType domain.ItemType) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[itemType.Key]; exists {
		r.logger.Warn("item type already registered, overwriting",
			"type", itemType.Key,
		)
	}
	r.types[itemType.Key] = itemType

	r.logger.Debug("registered item type",
		"type", itemType.Key,
		"patterns", len(itemType.TimePatterns),
	)
}

// Unregister removes an item type by key. Unknown keys are a no-op.
func (r *TypeRegistry) Unregister(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.types, key)
}

// Get returns the item type registered under key.
func (r *TypeRegistry) Get(key string) (domain.ItemType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemType, ok := r.types[key]
	return itemType, ok
}

// IsRegistered reports whether a type exists for the key.
func (r *TypeRegistry) IsRegistered(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.types[key]
	return ok
}

// All returns the registered types sorted by key for deterministic output.
func (r *TypeRegistry) All() []domain.ItemType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]domain.ItemType, 0, len(r.types))
	for _, t := range r.types {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Key < types[j].Key })
	return types
}

// CreateItem builds a new item of the given kind for the date and pattern.
// An unknown key or a pattern the kind does not support is a configuration
// error, not a fault: the result is nil and a warning is logged, and the
// caller must check for the nil sentinel.
func (r *TypeRegistry) CreateItem(key string, date time.Time, pattern domain.TimePattern) *domain.Item {
	r.mu.RLock()
	itemType, ok := r.types[key]
	r.mu.RUnlock()

	if !ok {
		r.logger.Warn("cannot create item for unregistered type",
			"type", key,
		)
		return nil
	}

	if pattern == "" {
		pattern = itemType.DefaultTimePattern
	}
	if !itemType.SupportsPattern(pattern) {
		r.logger.Warn("time pattern not supported by item type",
			"type", key,
			"pattern", string(pattern),
		)
		return nil
	}

	if itemType.NewItem != nil {
		return itemType.NewItem(date, pattern)
	}
	return domain.NewItem(key, itemType.DisplayName, date, pattern)
}

// ValidateStructure runs the minimal structural check on an item. The
// kind-specific ValidateItem predicate is deliberately not applied here;
// callers invoke it separately before a save.
func (r *TypeRegistry) ValidateStructure(item *domain.Item) bool {
	if item == nil {
		return false
	}
	if err := item.Validate(); err != nil {
		r.logger.Warn("item failed structural validation",
			"item_id", item.ID,
			"error", err,
		)
		return false
	}
	return true
}
