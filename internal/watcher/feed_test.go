package watcher_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/manoslocales/marketwatch/internal/store/mocks"
	"github.com/manoslocales/marketwatch/internal/watcher"
	domain "github.com/manoslocales/marketwatch/pkg/types"
)

func TestPollingFeed_DeliversBatches(t *testing.T) {
	t.Parallel()

	batch := []domain.Product{
		product("prod-1", "prov-1", 35.50, time.Now()),
	}

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		ListProductsChangedSince(mock.Anything, mock.Anything, mock.Anything, 500).
		Return(batch, nil)

	feed := watcher.NewPollingFeed(ms, testLogger(),
		watcher.WithPollInterval(10*time.Millisecond),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = feed.Run(ctx)
	}()

	select {
	case got := <-feed.Updates():
		require.Len(t, got, 1)
		assert.Equal(t, "prod-1", got[0].ID)
	case <-time.After(5 * time.Second):
		t.Fatal("no batch delivered")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("feed did not stop on cancel")
	}

	_, open := <-feed.Updates()
	assert.False(t, open, "updates channel should be closed after Run returns")
}

func TestPollingFeed_SkipsEmptyBatches(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		ListProductsChangedSince(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)

	feed := watcher.NewPollingFeed(ms, testLogger(),
		watcher.WithPollInterval(5*time.Millisecond),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = feed.Run(ctx)
	}()

	select {
	case batch, open := <-feed.Updates():
		if open {
			t.Fatalf("unexpected batch delivered: %v", batch)
		}
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("feed did not stop")
	}
}

func TestPollingFeed_WatermarkAdvances(t *testing.T) {
	t.Parallel()

	first := product("prod-1", "prov-1", 35.50, time.Now())
	first.UpdatedAt = time.Now()

	type cursor struct {
		since   time.Time
		afterID string
	}
	var (
		mu   sync.Mutex
		seen []cursor
	)

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		ListProductsChangedSince(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, since time.Time, afterID string, _ int) ([]domain.Product, error) {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, cursor{since: since, afterID: afterID})
			if len(seen) == 1 {
				return []domain.Product{first}, nil
			}
			return nil, nil
		})

	feed := watcher.NewPollingFeed(ms, testLogger(),
		watcher.WithPollInterval(10*time.Millisecond),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = feed.Run(ctx)
	}()

	<-feed.Updates()

	// Wait for at least one follow-up poll, then stop.
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) >= 2
	}, 5*time.Second, 10*time.Millisecond)
	cancel()
	<-done

	// The second poll starts at the last delivered row's keyset position.
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, first.UpdatedAt, seen[1].since)
	assert.Equal(t, first.ID, seen[1].afterID)
}

func TestPollingFeed_SharedTimestampBeyondLimit(t *testing.T) {
	t.Parallel()

	// Two products updated in the same instant, with a batch limit of one.
	// Keyset pagination must deliver the second row on the next poll
	// instead of skipping past its timestamp.
	ts := time.Now()
	rows := []domain.Product{
		product("prod-1", "prov-1", 35.50, ts),
		product("prod-2", "prov-1", 48.00, ts),
	}
	rows[0].UpdatedAt = ts
	rows[1].UpdatedAt = ts

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		ListProductsChangedSince(mock.Anything, mock.Anything, mock.Anything, 1).
		RunAndReturn(func(_ context.Context, since time.Time, afterID string, limit int) ([]domain.Product, error) {
			var out []domain.Product
			for _, p := range rows {
				if p.UpdatedAt.After(since) || (p.UpdatedAt.Equal(since) && p.ID > afterID) {
					out = append(out, p)
				}
				if len(out) == limit {
					break
				}
			}
			return out, nil
		})

	feed := watcher.NewPollingFeed(ms, testLogger(),
		watcher.WithPollInterval(5*time.Millisecond),
		watcher.WithBatchLimit(1),
		watcher.WithNowFunc(func() time.Time { return ts.Add(-time.Second) }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = feed.Run(ctx)
	}()

	var got []string
	for len(got) < 2 {
		select {
		case batch := <-feed.Updates():
			for _, p := range batch {
				got = append(got, p.ID)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("delivered %v, second row sharing the timestamp never arrived", got)
		}
	}

	cancel()
	<-done
	assert.Equal(t, []string{"prod-1", "prod-2"}, got)
}

func TestPollingFeed_RecoversAfterError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	batch := []domain.Product{product("prod-1", "prov-1", 35.50, time.Now())}

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		ListProductsChangedSince(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Time, string, int) ([]domain.Product, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New("feed outage")
			}
			return batch, nil
		})

	feed := watcher.NewPollingFeed(ms, testLogger(),
		watcher.WithPollInterval(5*time.Millisecond),
		watcher.WithResubscribeBackoff(5*time.Millisecond),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = feed.Run(ctx)
	}()

	// The feed resubscribes on its own and delivery resumes.
	select {
	case got := <-feed.Updates():
		require.NotEmpty(t, got)
	case <-time.After(5 * time.Second):
		t.Fatal("feed did not recover after poll error")
	}
	assert.GreaterOrEqual(t, calls.Load(), int64(2))

	cancel()
	<-done
}
