package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/manoslocales/marketwatch/internal/metrics"
	"github.com/manoslocales/marketwatch/internal/store"
)

// Maintenance runs the periodic housekeeping tasks: sweeping expired
// notifications and syncing system-state gauges from the store.
type Maintenance struct {
	cron   *cron.Cron
	store  store.Store
	maxAge time.Duration
	log    *slog.Logger
}

// NewMaintenance creates a Maintenance scheduler. sweepInterval controls
// both the retention sweep and the metrics sync cadence.
func NewMaintenance(
	s store.Store,
	maxAge time.Duration,
	sweepInterval time.Duration,
	log *slog.Logger,
) (*Maintenance, error) {
	c := cron.New()

	m := &Maintenance{
		cron:   c,
		store:  s,
		maxAge: maxAge,
		log:    log,
	}

	if _, err := c.AddFunc(
		"@every "+sweepInterval.String(),
		m.runSweep,
	); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc(
		"@every "+sweepInterval.String(),
		m.runStateSync,
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Start begins running scheduled tasks.
func (m *Maintenance) Start() {
	m.log.Info("maintenance scheduler started", "max_age", m.maxAge)
	m.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (m *Maintenance) Stop() context.Context {
	m.log.Info("maintenance scheduler stopping")
	return m.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (m *Maintenance) Entries() []cron.Entry {
	return m.cron.Entries()
}

func (m *Maintenance) runSweep() {
	ctx := context.Background()
	deleted, err := m.store.DeleteNotificationsOlderThan(ctx, m.maxAge)
	if err != nil {
		m.log.Error("notification sweep failed", "error", err)
		return
	}
	if deleted > 0 {
		m.log.Info("notification sweep complete", "deleted", deleted)
	}
}

func (m *Maintenance) runStateSync() {
	ctx := context.Background()
	state, err := m.store.GetSystemState(ctx)
	if err != nil {
		m.log.Error("system state sync failed", "error", err)
		return
	}
	metrics.FavoritesTotal.Set(float64(state.FavoritesTotal))
	metrics.NotificationsUnread.Set(float64(state.NotificationsUnread))
}
