package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/manoslocales/marketwatch/internal/dispatch"
	"github.com/manoslocales/marketwatch/internal/favorites"
	"github.com/manoslocales/marketwatch/internal/notify"
	"github.com/manoslocales/marketwatch/internal/store"
	"github.com/manoslocales/marketwatch/internal/watcher"
	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// ErrAnonymous is returned when a session is requested without a user
// identity. Anonymous clients browse; they never listen.
var ErrAnonymous = errors.New("anonymous session")

const sessionFeedBuffer = 8

// Manager owns the shared product feed and the set of live sessions.
// One feed poll serves every session; batches are fanned out to each
// session's watcher.
type Manager struct {
	store    store.Store
	cache    *favorites.Cache
	notifier notify.Notifier
	log      *slog.Logger
	feed     watcher.Feed

	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithFavoritesCache puts a Redis cache in front of favorites hydration.
func WithFavoritesCache(c *favorites.Cache) ManagerOption {
	return func(m *Manager) {
		m.cache = c
	}
}

// WithManagerNotifier sets the push backend handed to new dispatchers.
func WithManagerNotifier(n notify.Notifier) ManagerOption {
	return func(m *Manager) {
		m.notifier = n
	}
}

// NewManager creates a Manager over the given feed. Call Run to start
// polling and fan-out.
func NewManager(s store.Store, feed watcher.Feed, log *slog.Logger, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:    s,
		notifier: notify.NewNoOpNotifier(log),
		log:      log,
		feed:     feed,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run starts the shared feed and the fan-out loop. It returns when the
// context is canceled.
func (m *Manager) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		_ = m.feed.Run(runCtx)
	}()

	for {
		select {
		case <-runCtx.Done():
			return runCtx.Err()
		case batch, ok := <-m.feed.Updates():
			if !ok {
				return nil
			}
			m.broadcast(batch)
		}
	}
}

// broadcast fans one batch out to every live session. Enqueueing never
// blocks; a session that has fallen behind queues the batch and catches
// up in order rather than stalling the rest or losing changes.
func (m *Manager) broadcast(batch []domain.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sess := range m.sessions {
		sess.enqueue(batch)
	}
}

// StartListening opens (or returns) the session for a user and begins
// routing change events to their notification feed.
func (m *Manager) StartListening(ctx context.Context, userID string) (*Session, error) {
	if userID == "" {
		return nil, ErrAnonymous
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, errors.New("session manager is shut down")
	}
	if sess, ok := m.sessions[userID]; ok {
		m.mu.Unlock()
		return sess, nil
	}
	m.mu.Unlock()

	sess := m.newSession(userID)
	if err := sess.start(ctx); err != nil {
		return nil, fmt.Errorf("starting session for %s: %w", userID, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Lost the race: keep the winner, fold ours back down.
	if existing, ok := m.sessions[userID]; ok {
		go sess.close()
		return existing, nil
	}
	m.sessions[userID] = sess
	return sess, nil
}

func (m *Manager) newSession(userID string) *Session {
	var idxOpts []favorites.IndexOption
	if m.cache != nil {
		idxOpts = append(idxOpts, favorites.WithCache(m.cache))
	}
	idx := favorites.NewIndex(userID, m.store, m.log, idxOpts...)

	return &Session{
		userID:     userID,
		store:      m.store,
		log:        m.log,
		index:      idx,
		watcher:    watcher.New(userID, m.store, idx, m.log),
		dispatcher: dispatch.New(userID, m.store, m.log, dispatch.WithNotifier(m.notifier)),
		feedCh:     make(chan []domain.Product, sessionFeedBuffer),
		queueSig:   make(chan struct{}, 1),
	}
}

// Get returns the live session for a user, if any.
func (m *Manager) Get(userID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[userID]
	return sess, ok
}

// StopListening closes a user's session. Unknown users are a no-op.
func (m *Manager) StopListening(userID string) {
	m.mu.Lock()
	sess, ok := m.sessions[userID]
	delete(m.sessions, userID)
	m.mu.Unlock()

	if ok {
		sess.close()
	}
}

// SessionCount returns the number of live sessions.
func (m *Manager) SessionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Shutdown stops the feed and closes every session.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	m.closed = true
	sessions := make([]*Session, 0, len(m.sessions))
	for userID, sess := range m.sessions {
		sessions = append(sessions, sess)
		delete(m.sessions, userID)
	}
	m.mu.Unlock()

	for _, sess := range sessions {
		sess.close()
	}

	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
	m.log.Info("session manager shut down")
}
