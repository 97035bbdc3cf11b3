// Package store defines the datastore abstraction for the market watch
// backend. All business logic depends on the Store interface, never on
// concrete implementations. This enables mock-based testing without a
// running database.
package store

import (
	"context"
	"time"

	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// Store defines all data access operations for the market watch backend.
type Store interface {
	// Products
	UpsertProduct(ctx context.Context, p *domain.Product) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProductsByProvider(ctx context.Context, providerID string) ([]domain.Product, error)
	ListProductsChangedSince(ctx context.Context, since time.Time, afterID string, limit int) ([]domain.Product, error)

	// Providers
	UpsertProvider(ctx context.Context, p *domain.Provider) error
	GetProvider(ctx context.Context, id string) (*domain.Provider, error)

	// Favorites
	ToggleFavorite(ctx context.Context, userID string, kind domain.EntityKind, entityID string) (added bool, err error)
	ListFavorites(ctx context.Context, userID string, kind domain.EntityKind) ([]domain.FavoriteEntry, error)

	// Snapshots (durable change-detection baselines, per user)
	ListSnapshots(ctx context.Context, userID string) ([]domain.Snapshot, error)
	UpsertSnapshot(ctx context.Context, s *domain.Snapshot) error
	PruneSnapshots(ctx context.Context, userID string, keep []string) error

	// Notifications
	CreateNotification(ctx context.Context, n *domain.NotificationItem) (inserted bool, err error)
	ListNotifications(ctx context.Context, userID string, limit int) ([]domain.NotificationItem, error)
	MarkAllNotificationsRead(ctx context.Context, userID string) error
	DeleteAllNotifications(ctx context.Context, userID string) error
	DeleteNotificationsOlderThan(ctx context.Context, age time.Duration) (int64, error)
	CountUnreadNotifications(ctx context.Context, userID string) (int, error)

	// System
	GetSystemState(ctx context.Context) (*domain.SystemState, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
