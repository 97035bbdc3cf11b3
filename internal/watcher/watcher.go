package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/manoslocales/marketwatch/internal/favorites"
	"github.com/manoslocales/marketwatch/internal/metrics"
	"github.com/manoslocales/marketwatch/internal/store"
	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// Prices are compared at cent precision; smaller drift is noise from
// float round-tripping, not a change.
const priceEpsilon = 0.005

const defaultEventBuffer = 64

// Watcher diffs product observations against a user's durable baselines
// and emits change events for watched entities. One Watcher serves one
// user session.
type Watcher struct {
	userID string
	store  store.Store
	index  *favorites.Index
	log    *slog.Logger

	events  chan domain.ChangeEvent
	nowFunc func() time.Time

	// mu guards baselines and hydratedAt; toggles mutate them from the
	// API goroutine while Run evaluates batches.
	mu         sync.Mutex
	baselines  map[string]domain.Snapshot
	hydratedAt time.Time
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatcherNowFunc overrides the time function for testing.
func WithWatcherNowFunc(f func() time.Time) WatcherOption {
	return func(w *Watcher) {
		w.nowFunc = f
	}
}

// New creates a Watcher for a user. Call Hydrate before Run.
func New(
	userID string,
	s store.Store,
	idx *favorites.Index,
	log *slog.Logger,
	opts ...WatcherOption,
) *Watcher {
	w := &Watcher{
		userID:    userID,
		store:     s,
		index:     idx,
		log:       log,
		events:    make(chan domain.ChangeEvent, defaultEventBuffer),
		baselines: make(map[string]domain.Snapshot),
		nowFunc:   time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Events returns the channel change events are emitted on. It is closed
// when Run returns.
func (w *Watcher) Events() <-chan domain.ChangeEvent {
	return w.events
}

// Hydrate loads the user's durable baselines into memory. Observations
// before hydration completes never produce events; the first sighting of
// any entity only records a baseline.
func (w *Watcher) Hydrate(ctx context.Context) error {
	snaps, err := w.store.ListSnapshots(ctx, w.userID)
	if err != nil {
		return fmt.Errorf("hydrating baselines: %w", err)
	}

	w.mu.Lock()
	w.baselines = make(map[string]domain.Snapshot, len(snaps))
	for _, s := range snaps {
		w.baselines[s.EntityID] = s
	}
	w.hydratedAt = w.nowFunc()
	w.mu.Unlock()

	w.log.Debug("baselines hydrated", "user_id", w.userID, "count", len(snaps))
	return nil
}

// Run consumes feed batches until the context is canceled or the feed
// closes, then closes the events channel.
func (w *Watcher) Run(ctx context.Context, feed Feed) error {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case batch, ok := <-feed.Updates():
			if !ok {
				return nil
			}
			w.evaluate(ctx, batch)
		}
	}
}

// evaluate diffs one feed batch against the baselines. Only watched
// entities are considered; everything else passes through untouched.
func (w *Watcher) evaluate(ctx context.Context, batch []domain.Product) {
	for i := range batch {
		p := &batch[i]

		productWatched := w.index.ContainsProduct(p.ID)
		providerWatched := w.index.ContainsProvider(p.ProviderID)
		if !productWatched && !providerWatched {
			continue
		}

		w.mu.Lock()
		baseline, seen := w.baselines[p.ID]
		hydratedAt := w.hydratedAt
		w.mu.Unlock()
		if !seen {
			// First observation: record the baseline. A price event here
			// would be a false alarm, there is nothing to compare against.
			// A product from a favorited provider that appeared after
			// hydration is genuinely new, so that one does get announced.
			if providerWatched && p.CreatedAt.After(hydratedAt) {
				w.emit(ctx, domain.ChangeEvent{
					Kind:       domain.ChangeNewProduct,
					EntityID:   p.ID,
					EntityName: p.Name,
					ProviderID: p.ProviderID,
					DetectedAt: w.nowFunc(),
				})
			}
			w.recordBaseline(ctx, p)
			continue
		}

		if math.Abs(p.Price-baseline.Price) < priceEpsilon {
			continue
		}

		kind := domain.ChangePriceIncreased
		if p.Price < baseline.Price {
			kind = domain.ChangePriceDecreased
		}

		oldPrice, newPrice := baseline.Price, p.Price
		w.emit(ctx, domain.ChangeEvent{
			Kind:       kind,
			EntityID:   p.ID,
			EntityName: p.Name,
			ProviderID: p.ProviderID,
			OldPrice:   &oldPrice,
			NewPrice:   &newPrice,
			DetectedAt: w.nowFunc(),
		})

		// Advancing the baseline immediately is what makes emission
		// exactly-once: re-observing the same price diffs to zero.
		w.recordBaseline(ctx, p)
	}
}

// SeedProduct records a baseline for a single product without emitting
// an event. Used when a product is favorited mid-session.
func (w *Watcher) SeedProduct(ctx context.Context, p *domain.Product) {
	w.mu.Lock()
	_, seen := w.baselines[p.ID]
	w.mu.Unlock()
	if seen {
		return
	}
	w.recordBaseline(ctx, p)
}

// SeedProvider records baselines for all of a provider's current catalog
// without emitting events. Used when a provider is favorited: its existing
// products must not replay as "new".
func (w *Watcher) SeedProvider(ctx context.Context, providerID string) error {
	products, err := w.store.ListProductsByProvider(ctx, providerID)
	if err != nil {
		return fmt.Errorf("seeding provider baselines: %w", err)
	}
	for i := range products {
		w.SeedProduct(ctx, &products[i])
	}
	return nil
}

// Forget drops the in-memory baseline for an entity. Durable cleanup is
// the session's job via snapshot pruning.
func (w *Watcher) Forget(entityID string) {
	w.mu.Lock()
	delete(w.baselines, entityID)
	w.mu.Unlock()
}

// BaselineCount returns the number of in-memory baselines.
func (w *Watcher) BaselineCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.baselines)
}

// BaselineIDs returns the entity IDs with in-memory baselines. Used as
// the keep-list when pruning durable snapshots.
func (w *Watcher) BaselineIDs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	ids := make([]string, 0, len(w.baselines))
	for id := range w.baselines {
		ids = append(ids, id)
	}
	return ids
}

func (w *Watcher) recordBaseline(ctx context.Context, p *domain.Product) {
	snap := domain.Snapshot{
		UserID:     w.userID,
		EntityID:   p.ID,
		ProviderID: p.ProviderID,
		Price:      p.Price,
		ObservedAt: w.nowFunc(),
	}
	w.mu.Lock()
	w.baselines[p.ID] = snap
	w.mu.Unlock()

	// Memory already advanced; a persistence failure costs a possible
	// duplicate event after restart, never a missed one.
	if err := w.store.UpsertSnapshot(ctx, &snap); err != nil {
		metrics.PersistenceFailuresTotal.Inc()
		w.log.Warn("baseline persistence failed",
			"user_id", w.userID,
			"entity_id", p.ID,
			"error", err,
		)
	}
}

func (w *Watcher) emit(ctx context.Context, ev domain.ChangeEvent) {
	select {
	case <-ctx.Done():
	case w.events <- ev:
		metrics.ChangeEventsTotal.WithLabelValues(string(ev.Kind)).Inc()
	}
}
