// Package watcher turns the product update feed into per-user change
// events by diffing observations against durable price baselines.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/manoslocales/marketwatch/internal/metrics"
	"github.com/manoslocales/marketwatch/internal/store"
	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// Feed delivers batches of recently changed products. Implementations must
// close Updates() when Run returns.
type Feed interface {
	// Run blocks, producing batches until the context is canceled.
	Run(ctx context.Context) error
	// Updates returns the channel batches are delivered on.
	Updates() <-chan []domain.Product
}

const (
	defaultPollInterval = 30 * time.Second
	defaultBatchLimit   = 500
	defaultBackoff      = 5 * time.Second
	maxBackoff          = 5 * time.Minute
)

// PollingFeed implements Feed by polling the store for products whose
// updated_at moved past a watermark. Poll failures back off exponentially
// and the feed resubscribes on its own; consumers never see the outage.
type PollingFeed struct {
	store    store.Store
	log      *slog.Logger
	interval time.Duration
	backoff  time.Duration
	limit    int
	updates  chan []domain.Product
	nowFunc  func() time.Time
}

// PollingFeedOption configures a PollingFeed.
type PollingFeedOption func(*PollingFeed)

// WithPollInterval sets the polling cadence.
func WithPollInterval(d time.Duration) PollingFeedOption {
	return func(f *PollingFeed) {
		f.interval = d
	}
}

// WithResubscribeBackoff sets the initial backoff after a poll failure.
func WithResubscribeBackoff(d time.Duration) PollingFeedOption {
	return func(f *PollingFeed) {
		f.backoff = d
	}
}

// WithBatchLimit caps the number of products fetched per poll.
func WithBatchLimit(n int) PollingFeedOption {
	return func(f *PollingFeed) {
		f.limit = n
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) PollingFeedOption {
	return func(pf *PollingFeed) {
		pf.nowFunc = f
	}
}

// NewPollingFeed creates a feed over the store's change log.
func NewPollingFeed(s store.Store, log *slog.Logger, opts ...PollingFeedOption) *PollingFeed {
	f := &PollingFeed{
		store:    s,
		log:      log,
		interval: defaultPollInterval,
		backoff:  defaultBackoff,
		limit:    defaultBatchLimit,
		updates:  make(chan []domain.Product, 1),
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Updates returns the batch delivery channel.
func (f *PollingFeed) Updates() <-chan []domain.Product {
	return f.updates
}

// feedCursor is the keyset position of the last delivered row. Comparing
// on (updated_at, id) keeps rows that share one updated_at reachable when
// a batch is truncated at the limit.
type feedCursor struct {
	updatedAt time.Time
	id        string
}

// Run polls until the context is canceled, then closes the updates channel.
func (f *PollingFeed) Run(ctx context.Context) error {
	defer close(f.updates)

	cursor := feedCursor{updatedAt: f.nowFunc()}
	backoff := f.backoff

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		batch, next, err := f.poll(ctx, cursor)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			metrics.FeedPollErrorsTotal.Inc()
			f.log.Warn("feed poll failed, backing off",
				"backoff", backoff,
				"error", err,
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}
		backoff = f.backoff
		cursor = next

		if len(batch) == 0 {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case f.updates <- batch:
			metrics.FeedSnapshotsTotal.Inc()
		}
	}
}

func (f *PollingFeed) poll(ctx context.Context, cursor feedCursor) ([]domain.Product, feedCursor, error) {
	start := f.nowFunc()
	defer func() {
		metrics.FeedPollDuration.Observe(time.Since(start).Seconds())
	}()

	batch, err := f.store.ListProductsChangedSince(ctx, cursor.updatedAt, cursor.id, f.limit)
	if err != nil {
		return nil, cursor, fmt.Errorf("listing changed products: %w", err)
	}

	// Rows arrive ordered by (updated_at, id); the last one is the next
	// cursor position even when the batch was truncated at the limit.
	if n := len(batch); n > 0 {
		cursor = feedCursor{updatedAt: batch[n-1].UpdatedAt, id: batch[n-1].ID}
	}
	return batch, cursor, nil
}
