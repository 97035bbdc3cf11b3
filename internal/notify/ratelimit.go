package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/manoslocales/marketwatch/internal/metrics"
)

// ErrDailyLimitReached is returned when the daily push quota has been exhausted.
var ErrDailyLimitReached = errors.New("daily push limit reached")

const dailyWindow = 24 * time.Hour

// RateLimiter paces webhook pushes. A token bucket bounds the short-term
// rate; a rolling 24-hour window bounds total volume so a runaway price
// feed cannot flood the push gateway. Quota accounting is reserve-based:
// a push takes its quota slot before waiting on the bucket and gives it
// back if the wait is abandoned, so concurrent pushes cannot overshoot
// the daily limit.
type RateLimiter struct {
	limiter *rate.Limiter

	mu       sync.Mutex
	used     int64
	maxDaily int64
	resetAt  time.Time

	nowFunc func() time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a rate limiter with the given per-second rate,
// burst size, and daily limit. The 24-hour window opens at construction
// and rolls forward each time it expires.
func NewRateLimiter(
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(dailyWindow)
	metrics.PushDailyRemaining.Set(float64(maxDaily))
	return r
}

// Wait blocks until the limiter admits the push, or the context is
// canceled. Returns ErrDailyLimitReached when the daily quota is spent.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.reserve(); err != nil {
		metrics.PushThrottledTotal.Inc()
		return err
	}

	if err := r.limiter.Wait(ctx); err != nil {
		r.refund()
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

// reserve takes one quota slot out of the current window.
func (r *RateLimiter) reserve() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.used = 0
		r.resetAt = now.Add(dailyWindow)
	}

	if r.used >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, r.used, r.maxDaily)
	}
	r.used++
	metrics.PushDailyRemaining.Set(float64(r.maxDaily - r.used))
	return nil
}

// refund returns a slot reserved for a push that never went out.
func (r *RateLimiter) refund() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.used > 0 {
		r.used--
	}
	metrics.PushDailyRemaining.Set(float64(r.maxDaily - r.used))
}

// DailyCount returns the number of pushes admitted in the current window.
func (r *RateLimiter) DailyCount() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.used
}

// Remaining returns the number of pushes left in the current window.
func (r *RateLimiter) Remaining() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.maxDaily - r.used
}

// ResetAt returns the time the current window expires.
func (r *RateLimiter) ResetAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetAt
}
