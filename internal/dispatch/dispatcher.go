// Package dispatch persists change events as user-visible notifications
// and fans out unread-count updates to subscribed clients.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/manoslocales/marketwatch/internal/metrics"
	"github.com/manoslocales/marketwatch/internal/notify"
	"github.com/manoslocales/marketwatch/internal/store"
	domain "github.com/manoslocales/marketwatch/pkg/types"
)

const defaultListLimit = 100

// Dispatcher owns the notification inbox for one user. Incoming change
// events are de-duplicated at the persistence layer, pushed best effort,
// and reflected in the reactive unread count.
type Dispatcher struct {
	userID   string
	store    store.Store
	notifier notify.Notifier
	log      *slog.Logger

	mu   sync.Mutex
	subs map[int]chan int
	next int
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithNotifier sets the push delivery backend.
func WithNotifier(n notify.Notifier) DispatcherOption {
	return func(d *Dispatcher) {
		d.notifier = n
	}
}

// New creates a Dispatcher for a user.
func New(userID string, s store.Store, log *slog.Logger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		userID:   userID,
		store:    s,
		notifier: notify.NewNoOpNotifier(log),
		log:      log,
		subs:     make(map[int]chan int),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle turns a change event into a persisted notification. A dedup hit
// is not an error: the event was already notified and is dropped. Push
// failures degrade to "no push", never to a lost notification.
func (d *Dispatcher) Handle(ctx context.Context, ev *domain.ChangeEvent) error {
	item := buildNotification(d.userID, ev)
	if item.Title == "" {
		return fmt.Errorf("unknown change kind %q", ev.Kind)
	}

	inserted, err := d.store.CreateNotification(ctx, item)
	if err != nil {
		metrics.PersistenceFailuresTotal.Inc()
		return fmt.Errorf("persisting notification: %w", err)
	}
	if !inserted {
		metrics.NotificationsDedupedTotal.Inc()
		d.log.Debug("notification deduplicated",
			"user_id", d.userID,
			"dedup_key", item.DedupKey,
		)
		return nil
	}

	metrics.NotificationsCreatedTotal.Inc()
	d.log.Info("notification created",
		"user_id", d.userID,
		"kind", ev.Kind,
		"entity_id", ev.EntityID,
	)

	if err := d.notifier.PostNotification(ctx, item); err != nil {
		metrics.PushFailuresTotal.Inc()
		d.log.Warn("push delivery failed",
			"user_id", d.userID,
			"notification_id", item.ID,
			"error", err,
		)
	}

	d.publishUnread(ctx)
	return nil
}

// Items returns the user's notification feed, newest first.
func (d *Dispatcher) Items(ctx context.Context, limit int) ([]domain.NotificationItem, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	items, err := d.store.ListNotifications(ctx, d.userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	return items, nil
}

// MarkAllRead marks every notification read and publishes the new count.
func (d *Dispatcher) MarkAllRead(ctx context.Context) error {
	if err := d.store.MarkAllNotificationsRead(ctx, d.userID); err != nil {
		return fmt.Errorf("marking notifications read: %w", err)
	}
	d.publishUnread(ctx)
	return nil
}

// ClearAll deletes every notification and publishes the new count.
func (d *Dispatcher) ClearAll(ctx context.Context) error {
	if err := d.store.DeleteAllNotifications(ctx, d.userID); err != nil {
		return fmt.Errorf("clearing notifications: %w", err)
	}
	d.publishUnread(ctx)
	return nil
}

// UnreadCount returns the number of unread notifications.
func (d *Dispatcher) UnreadCount(ctx context.Context) (int, error) {
	count, err := d.store.CountUnreadNotifications(ctx, d.userID)
	if err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}
	return count, nil
}

// SubscribeUnread returns a channel that receives the unread count after
// every mutation, and a function that cancels the subscription. Slow
// consumers miss intermediate values, never the stream itself.
func (d *Dispatcher) SubscribeUnread() (<-chan int, func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.next
	d.next++
	ch := make(chan int, 1)
	d.subs[id] = ch

	cancel := func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if c, ok := d.subs[id]; ok {
			delete(d.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// Close cancels every live subscription.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for id, ch := range d.subs {
		delete(d.subs, id)
		close(ch)
	}
}

func (d *Dispatcher) publishUnread(ctx context.Context) {
	count, err := d.store.CountUnreadNotifications(ctx, d.userID)
	if err != nil {
		d.log.Warn("unread count refresh failed", "user_id", d.userID, "error", err)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, ch := range d.subs {
		// Replace a stale pending value instead of blocking.
		select {
		case ch <- count:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- count:
			default:
			}
		}
	}
}
