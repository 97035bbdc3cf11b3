// Package favorites maintains the per-user watch-set: the product and
// provider IDs a user has favorited. The index is the single source the
// change watcher consults when deciding which entities to diff.
package favorites

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/manoslocales/marketwatch/internal/metrics"
	"github.com/manoslocales/marketwatch/internal/store"
	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// Index is a per-user in-memory watch-set backed by the store, with an
// optional Redis cache in front. All methods are safe for concurrent use.
type Index struct {
	userID string
	store  store.Store
	cache  *Cache
	log    *slog.Logger

	mu        sync.RWMutex
	products  map[string]struct{}
	providers map[string]struct{}
	loaded    bool
}

// IndexOption configures an Index.
type IndexOption func(*Index)

// WithCache puts a Redis cache in front of store hydration.
func WithCache(c *Cache) IndexOption {
	return func(i *Index) {
		i.cache = c
	}
}

// NewIndex creates an unloaded index for a user. Call Load before reading.
func NewIndex(userID string, s store.Store, log *slog.Logger, opts ...IndexOption) *Index {
	idx := &Index{
		userID:    userID,
		store:     s,
		log:       log,
		products:  make(map[string]struct{}),
		providers: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Load hydrates the watch-set from the cache or, on a miss, the store.
// It is idempotent: reloading replaces the in-memory sets wholesale.
func (i *Index) Load(ctx context.Context) error {
	productIDs, err := i.loadKind(ctx, domain.KindProduct)
	if err != nil {
		return fmt.Errorf("loading favorite products: %w", err)
	}
	providerIDs, err := i.loadKind(ctx, domain.KindProvider)
	if err != nil {
		return fmt.Errorf("loading favorite providers: %w", err)
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	before := len(i.products) + len(i.providers)
	i.products = make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		i.products[id] = struct{}{}
	}
	i.providers = make(map[string]struct{}, len(providerIDs))
	for _, id := range providerIDs {
		i.providers[id] = struct{}{}
	}
	i.loaded = true

	// The gauge tracks watched entities across all live sessions.
	metrics.WatchedEntities.Add(float64(len(i.products) + len(i.providers) - before))
	return nil
}

func (i *Index) loadKind(ctx context.Context, kind domain.EntityKind) ([]string, error) {
	if i.cache != nil {
		if ids, ok := i.cache.GetIDs(ctx, i.userID, kind); ok {
			return ids, nil
		}
	}

	entries, err := i.store.ListFavorites(ctx, i.userID, kind)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.EntityID)
	}

	if i.cache != nil {
		i.cache.SetIDs(ctx, i.userID, kind, ids)
	}
	return ids, nil
}

// Loaded reports whether Load has completed at least once.
func (i *Index) Loaded() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.loaded
}

// Toggle flips the favorite state of an entity. It writes through to the
// store, updates the in-memory set, and invalidates the cache. Returns
// whether the entity is now favorited.
func (i *Index) Toggle(ctx context.Context, kind domain.EntityKind, entityID string) (bool, error) {
	if !kind.Valid() {
		return false, fmt.Errorf("invalid entity kind %q", kind)
	}

	added, err := i.store.ToggleFavorite(ctx, i.userID, kind, entityID)
	if err != nil {
		return false, fmt.Errorf("toggling favorite: %w", err)
	}

	i.mu.Lock()
	set := i.setFor(kind)
	if added {
		set[entityID] = struct{}{}
		metrics.WatchedEntities.Inc()
	} else {
		delete(set, entityID)
		metrics.WatchedEntities.Dec()
	}
	i.mu.Unlock()

	if i.cache != nil {
		i.cache.Invalidate(ctx, i.userID)
	}
	i.log.Debug("favorite toggled",
		"user_id", i.userID,
		"kind", kind,
		"entity_id", entityID,
		"added", added,
	)
	return added, nil
}

// setFor must be called with i.mu held.
func (i *Index) setFor(kind domain.EntityKind) map[string]struct{} {
	if kind == domain.KindProvider {
		return i.providers
	}
	return i.products
}

// ContainsProduct reports whether the product is in the watch-set.
func (i *Index) ContainsProduct(id string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	_, ok := i.products[id]
	return ok
}

// ContainsProvider reports whether the provider is in the watch-set.
func (i *Index) ContainsProvider(id string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	_, ok := i.providers[id]
	return ok
}

// ProductIDs returns a copy of the favorited product IDs.
func (i *Index) ProductIDs() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	ids := make([]string, 0, len(i.products))
	for id := range i.products {
		ids = append(ids, id)
	}
	return ids
}

// ProviderIDs returns a copy of the favorited provider IDs.
func (i *Index) ProviderIDs() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	ids := make([]string, 0, len(i.providers))
	for id := range i.providers {
		ids = append(ids, id)
	}
	return ids
}

// Release drops the in-memory sets and gives back the gauge contribution.
// Called on session teardown.
func (i *Index) Release() {
	i.mu.Lock()
	defer i.mu.Unlock()
	metrics.WatchedEntities.Add(-float64(len(i.products) + len(i.providers)))
	i.products = make(map[string]struct{})
	i.providers = make(map[string]struct{})
	i.loaded = false
}

// Empty reports whether the watch-set has no entries.
func (i *Index) Empty() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.products) == 0 && len(i.providers) == 0
}
