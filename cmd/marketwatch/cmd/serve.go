package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/manoslocales/marketwatch/internal/api/handlers"
	mw "github.com/manoslocales/marketwatch/internal/api/middleware"
	"github.com/manoslocales/marketwatch/internal/config"
	"github.com/manoslocales/marketwatch/internal/favorites"
	"github.com/manoslocales/marketwatch/internal/notify"
	"github.com/manoslocales/marketwatch/internal/session"
	"github.com/manoslocales/marketwatch/internal/store"
	"github.com/manoslocales/marketwatch/internal/watcher"
	"github.com/manoslocales/marketwatch/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and change watcher",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	managerOpts := []session.ManagerOption{
		session.WithManagerNotifier(buildNotifier(cfg, log)),
	}
	readyChecks := []handlers.ReadyCheck{
		{Name: "database", Probe: st.Ping},
	}

	if cfg.Redis.Enabled {
		rdb, err := favorites.NewRedisClient(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			// The cache is an optimization; sessions fall back to the store.
			log.Warn("redis unavailable, watch-set cache disabled", "error", err)
		} else {
			defer rdb.Close()
			managerOpts = append(managerOpts,
				session.WithFavoritesCache(favorites.NewCache(rdb, cfg.Redis.TTL, log)))
			readyChecks = append(readyChecks, handlers.ReadyCheck{
				Name: "redis",
				Probe: func(ctx context.Context) error {
					return rdb.Ping(ctx).Err()
				},
			})
		}
	}

	feed := watcher.NewPollingFeed(st, log,
		watcher.WithPollInterval(cfg.Feed.PollInterval),
		watcher.WithResubscribeBackoff(cfg.Feed.ResubscribeBackoff),
		watcher.WithBatchLimit(cfg.Feed.BatchLimit),
	)

	manager := session.NewManager(st, feed, log, managerOpts...)
	go func() {
		if err := manager.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("session manager stopped", "error", err)
		}
	}()

	maintenance, err := session.NewMaintenance(
		st,
		cfg.Retention.NotificationMaxAge,
		cfg.Retention.SweepInterval,
		log,
	)
	if err != nil {
		return fmt.Errorf("creating maintenance scheduler: %w", err)
	}
	maintenance.Start()

	e := newRouter(cfg, log, st, manager, readyChecks)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	cancel()
	manager.Shutdown()
	<-maintenance.Stop().Done()

	log.Info("server stopped")
	return nil
}

func buildNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	if !cfg.Push.Enabled {
		return notify.NewNoOpNotifier(log)
	}

	rl := notify.NewRateLimiter(
		cfg.Push.RateLimit.PerSecond,
		cfg.Push.RateLimit.Burst,
		cfg.Push.RateLimit.DailyLimit,
	)
	return notify.NewWebhookNotifier(cfg.Push.WebhookURL, notify.WithRateLimiter(rl))
}

func newRouter(
	cfg *config.Config,
	log *slog.Logger,
	st store.Store,
	manager *session.Manager,
	readyChecks []handlers.ReadyCheck,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(mw.Recovery(log))
	e.Use(mw.Identity())
	e.Use(mw.RequestLog(log))
	e.Use(mw.Metrics())

	health := handlers.NewHealthHandler(readyChecks...)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")

	favs := handlers.NewFavoritesHandler(manager)
	v1.PUT("/favorites", favs.Toggle)
	v1.GET("/favorites", favs.List)

	notifs := handlers.NewNotificationsHandler(manager)
	v1.GET("/notifications", notifs.List)
	v1.POST("/notifications/read", notifs.MarkAllRead)
	v1.DELETE("/notifications", notifs.ClearAll)
	v1.GET("/notifications/unread", notifs.UnreadCount)
	v1.GET("/notifications/stream", notifs.StreamUnread)

	sessions := handlers.NewSessionHandler(manager)
	v1.DELETE("/session", sessions.Stop)

	catalog := handlers.NewCatalogHandler(st)
	v1.GET("/products/:id", catalog.GetProduct)
	v1.PUT("/products", catalog.UpsertProduct)
	v1.GET("/providers/:id", catalog.GetProvider)
	v1.PUT("/providers", catalog.UpsertProvider)
	v1.GET("/providers/:id/products", catalog.ListProviderProducts)

	state := handlers.NewSystemStateHandler(st)
	v1.GET("/system/state", state.GetSystemState)

	return e
}
