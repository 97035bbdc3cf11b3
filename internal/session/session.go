// Package session ties a user's favorites index, change watcher, and
// notification dispatcher into one listening unit, and manages the set
// of live units.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/manoslocales/marketwatch/internal/dispatch"
	"github.com/manoslocales/marketwatch/internal/favorites"
	"github.com/manoslocales/marketwatch/internal/store"
	"github.com/manoslocales/marketwatch/internal/watcher"
	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// Session is one user's live listening unit. Change events flow from the
// shared feed through the watcher into the dispatcher for as long as the
// session is open.
type Session struct {
	userID     string
	store      store.Store
	log        *slog.Logger
	index      *favorites.Index
	watcher    *watcher.Watcher
	dispatcher *dispatch.Dispatcher

	feedCh chan []domain.Product

	// Overflow queue between the manager's broadcaster and feedCh. A
	// backlogged session accumulates batches here, in order, instead
	// of losing them; a lost batch would leave its price changes
	// undetected until the product moved again.
	queueMu  sync.Mutex
	queue    [][]domain.Product
	queueSig chan struct{}

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// sessionFeed adapts the per-session delivery channel to the watcher's
// Feed interface. The manager's broadcaster writes into it.
type sessionFeed struct {
	ch chan []domain.Product
}

func (f *sessionFeed) Run(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (f *sessionFeed) Updates() <-chan []domain.Product {
	return f.ch
}

// UserID returns the session owner.
func (s *Session) UserID() string {
	return s.userID
}

// Favorites returns the session's watch-set index.
func (s *Session) Favorites() *favorites.Index {
	return s.index
}

// Notifications returns the session's dispatcher.
func (s *Session) Notifications() *dispatch.Dispatcher {
	return s.dispatcher
}

// start hydrates state and launches the event pipeline.
func (s *Session) start(ctx context.Context) error {
	if err := s.index.Load(ctx); err != nil {
		return fmt.Errorf("loading favorites: %w", err)
	}
	if err := s.watcher.Hydrate(ctx); err != nil {
		return fmt.Errorf("hydrating watcher: %w", err)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	feed := &sessionFeed{ch: s.feedCh}

	s.wg.Add(3)
	go func() {
		defer s.wg.Done()
		_ = s.watcher.Run(runCtx, feed)
	}()
	go func() {
		defer s.wg.Done()
		s.pump(runCtx)
	}()
	go func() {
		defer s.wg.Done()
		s.forward(runCtx)
	}()

	s.log.Info("session started", "user_id", s.userID)
	return nil
}

// backlogWarnDepth is the queue depth at which a session is reported as
// falling behind the feed.
const backlogWarnDepth = 16

// enqueue hands a feed batch to the session. It never blocks; the
// forwarder drains the queue into feedCh in arrival order.
func (s *Session) enqueue(batch []domain.Product) {
	s.queueMu.Lock()
	s.queue = append(s.queue, batch)
	depth := len(s.queue)
	s.queueMu.Unlock()

	select {
	case s.queueSig <- struct{}{}:
	default:
	}

	if depth >= backlogWarnDepth {
		s.log.Warn("session feed backlogged",
			"user_id", s.userID,
			"queue_depth", depth,
		)
	}
}

// forward drains queued batches into feedCh, preserving order.
func (s *Session) forward(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.queueSig:
		}

		for {
			s.queueMu.Lock()
			if len(s.queue) == 0 {
				s.queueMu.Unlock()
				break
			}
			batch := s.queue[0]
			s.queue = s.queue[1:]
			s.queueMu.Unlock()

			select {
			case <-ctx.Done():
				return
			case s.feedCh <- batch:
			}
		}
	}
}

// pump forwards change events into the dispatcher. A dispatch failure
// drops that one notification and keeps the session alive.
func (s *Session) pump(ctx context.Context) {
	for ev := range s.watcher.Events() {
		if err := s.dispatcher.Handle(ctx, &ev); err != nil {
			s.log.Error("dispatch failed",
				"user_id", s.userID,
				"entity_id", ev.EntityID,
				"kind", ev.Kind,
				"error", err,
			)
		}
	}
}

// ToggleFavorite flips an entity's favorite state and keeps the baselines
// aligned with the new watch-set. The toggle itself is the source of
// truth; baseline maintenance failures are logged and absorbed.
func (s *Session) ToggleFavorite(ctx context.Context, kind domain.EntityKind, entityID string) (bool, error) {
	added, err := s.index.Toggle(ctx, kind, entityID)
	if err != nil {
		return false, err
	}

	if added {
		s.seedAfterAdd(ctx, kind, entityID)
	} else {
		s.pruneAfterRemove(ctx, kind, entityID)
	}
	return added, nil
}

// seedAfterAdd records baselines for newly watched entities so their
// current prices never replay as changes.
func (s *Session) seedAfterAdd(ctx context.Context, kind domain.EntityKind, entityID string) {
	switch kind {
	case domain.KindProduct:
		p, err := s.store.GetProduct(ctx, entityID)
		if err != nil {
			s.log.Warn("baseline seed skipped, product not found",
				"user_id", s.userID,
				"product_id", entityID,
				"error", err,
			)
			return
		}
		s.watcher.SeedProduct(ctx, p)
	case domain.KindProvider:
		if err := s.watcher.SeedProvider(ctx, entityID); err != nil {
			s.log.Warn("provider baseline seed failed",
				"user_id", s.userID,
				"provider_id", entityID,
				"error", err,
			)
		}
	}
}

// pruneAfterRemove drops baselines no longer covered by the watch-set,
// in memory first and then durably.
func (s *Session) pruneAfterRemove(ctx context.Context, kind domain.EntityKind, entityID string) {
	switch kind {
	case domain.KindProduct:
		p, err := s.store.GetProduct(ctx, entityID)
		if err != nil || !s.index.ContainsProvider(p.ProviderID) {
			s.watcher.Forget(entityID)
		}
	case domain.KindProvider:
		products, err := s.store.ListProductsByProvider(ctx, entityID)
		if err != nil {
			s.log.Warn("baseline prune skipped",
				"user_id", s.userID,
				"provider_id", entityID,
				"error", err,
			)
			return
		}
		for i := range products {
			if !s.index.ContainsProduct(products[i].ID) {
				s.watcher.Forget(products[i].ID)
			}
		}
	}

	if err := s.store.PruneSnapshots(ctx, s.userID, s.watcher.BaselineIDs()); err != nil {
		s.log.Warn("snapshot prune failed", "user_id", s.userID, "error", err)
	}
}

// close tears the pipeline down and waits for in-flight work.
func (s *Session) close() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	s.dispatcher.Close()
	s.index.Release()
	s.log.Info("session closed", "user_id", s.userID)
}
