package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/manoslocales/marketwatch/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertProduct inserts or updates a product by its ID.
func (s *PostgresStore) UpsertProduct(ctx context.Context, p *domain.Product) error {
	args := pgx.NamedArgs{
		"id":          p.ID,
		"provider_id": p.ProviderID,
		"name":        p.Name,
		"category":    p.Category,
		"price":       p.Price,
		"currency":    p.Currency,
		"image_url":   p.ImageURL,
		"available":   p.Available,
	}

	err := s.pool.QueryRow(ctx, queryUpsertProduct, args).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting product: %w", err)
	}
	return nil
}

// GetProduct retrieves a product by its ID.
func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	err := scanProduct(s.pool.QueryRow(ctx, queryGetProduct, id), p)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListProductsByProvider returns all products published by a provider,
// newest first.
func (s *PostgresStore) ListProductsByProvider(
	ctx context.Context,
	providerID string,
) ([]domain.Product, error) {
	return s.queryProducts(ctx, queryListProductsByProvider, providerID)
}

// ListProductsChangedSince returns products updated past the (since, afterID)
// cursor, oldest first. Keyset pagination on (updated_at, id) keeps rows that
// share one updated_at reachable across truncated pages.
func (s *PostgresStore) ListProductsChangedSince(
	ctx context.Context,
	since time.Time,
	afterID string,
	limit int,
) ([]domain.Product, error) {
	return s.queryProducts(ctx, queryListProductsChangedSince, since, afterID, limit)
}

func (s *PostgresStore) queryProducts(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Product, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, p *domain.Product) error {
	return row.Scan(
		&p.ID, &p.ProviderID, &p.Name, &p.Category, &p.Price, &p.Currency,
		&p.ImageURL, &p.Available, &p.CreatedAt, &p.UpdatedAt,
	)
}

// UpsertProvider inserts or updates a provider by its ID.
func (s *PostgresStore) UpsertProvider(ctx context.Context, p *domain.Provider) error {
	args := pgx.NamedArgs{
		"id":    p.ID,
		"name":  p.Name,
		"city":  p.City,
		"email": p.Email,
	}

	err := s.pool.QueryRow(ctx, queryUpsertProvider, args).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting provider: %w", err)
	}
	return nil
}

// GetProvider retrieves a provider by its ID.
func (s *PostgresStore) GetProvider(ctx context.Context, id string) (*domain.Provider, error) {
	p := &domain.Provider{}
	err := s.pool.QueryRow(ctx, queryGetProvider, id).Scan(
		&p.ID, &p.Name, &p.City, &p.Email, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ToggleFavorite removes the favorite entry if it exists, otherwise creates
// it. Returns true when the entity ended up favorited. The delete-then-insert
// sequence makes the toggle idempotent under retry: toggling twice always
// restores the original state.
func (s *PostgresStore) ToggleFavorite(
	ctx context.Context,
	userID string,
	kind domain.EntityKind,
	entityID string,
) (bool, error) {
	tag, err := s.pool.Exec(ctx, queryDeleteFavorite, userID, string(kind), entityID)
	if err != nil {
		return false, fmt.Errorf("removing favorite: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	if _, err := s.pool.Exec(ctx, queryInsertFavorite, userID, string(kind), entityID); err != nil {
		return false, fmt.Errorf("adding favorite: %w", err)
	}
	return true, nil
}

// ListFavorites returns all favorite entries of one kind for a user,
// oldest first.
func (s *PostgresStore) ListFavorites(
	ctx context.Context,
	userID string,
	kind domain.EntityKind,
) ([]domain.FavoriteEntry, error) {
	rows, err := s.pool.Query(ctx, queryListFavorites, userID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("querying favorites: %w", err)
	}
	defer rows.Close()

	var entries []domain.FavoriteEntry
	for rows.Next() {
		var e domain.FavoriteEntry
		if err := rows.Scan(&e.UserID, &e.EntityID, &e.Kind, &e.AddedAt); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// ListSnapshots returns all durable baselines owned by a user.
func (s *PostgresStore) ListSnapshots(
	ctx context.Context,
	userID string,
) ([]domain.Snapshot, error) {
	rows, err := s.pool.Query(ctx, queryListSnapshots, userID)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []domain.Snapshot
	for rows.Next() {
		var snap domain.Snapshot
		if err := rows.Scan(
			&snap.UserID, &snap.EntityID, &snap.ProviderID, &snap.Price, &snap.ObservedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		snaps = append(snaps, snap)
	}

	return snaps, rows.Err()
}

// UpsertSnapshot stores or refreshes a user's baseline for one entity.
func (s *PostgresStore) UpsertSnapshot(ctx context.Context, snap *domain.Snapshot) error {
	args := pgx.NamedArgs{
		"user_id":     snap.UserID,
		"entity_id":   snap.EntityID,
		"provider_id": snap.ProviderID,
		"price":       snap.Price,
		"observed_at": snap.ObservedAt,
	}

	if _, err := s.pool.Exec(ctx, queryUpsertSnapshot, args); err != nil {
		return fmt.Errorf("upserting snapshot: %w", err)
	}
	return nil
}

// PruneSnapshots deletes the user's baselines for entities no longer in the
// watch-set. An empty keep list removes all of them.
func (s *PostgresStore) PruneSnapshots(ctx context.Context, userID string, keep []string) error {
	var err error
	if len(keep) == 0 {
		_, err = s.pool.Exec(ctx, queryPruneAllSnapshots, userID)
	} else {
		_, err = s.pool.Exec(ctx, queryPruneSnapshots, userID, keep)
	}
	if err != nil {
		return fmt.Errorf("pruning snapshots: %w", err)
	}
	return nil
}

// CreateNotification inserts a notification item, relying on the
// (user_id, dedup_key) unique constraint for idempotence. Returns false
// when an item for the same change already exists.
func (s *PostgresStore) CreateNotification(
	ctx context.Context,
	n *domain.NotificationItem,
) (bool, error) {
	err := s.pool.QueryRow(ctx, queryCreateNotification,
		n.UserID, n.Title, n.Message, n.RelatedEntityID, n.DedupKey,
	).Scan(&n.ID, &n.CreatedAt)

	// ON CONFLICT DO NOTHING returns no rows: the change was already notified.
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating notification: %w", err)
	}
	return true, nil
}

// ListNotifications returns a user's notifications, newest first.
func (s *PostgresStore) ListNotifications(
	ctx context.Context,
	userID string,
	limit int,
) ([]domain.NotificationItem, error) {
	rows, err := s.pool.Query(ctx, queryListNotifications, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	defer rows.Close()

	var items []domain.NotificationItem
	for rows.Next() {
		var n domain.NotificationItem
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Message,
			&n.RelatedEntityID, &n.DedupKey, &n.Read, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		items = append(items, n)
	}

	return items, rows.Err()
}

// MarkAllNotificationsRead flips the read flag on every unread item owned by
// the user. A single UPDATE gives the all-or-nothing visible effect callers
// expect.
func (s *PostgresStore) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	if _, err := s.pool.Exec(ctx, queryMarkAllNotificationsRead, userID); err != nil {
		return fmt.Errorf("marking notifications read: %w", err)
	}
	return nil
}

// DeleteAllNotifications removes every notification owned by the user.
func (s *PostgresStore) DeleteAllNotifications(ctx context.Context, userID string) error {
	if _, err := s.pool.Exec(ctx, queryDeleteAllNotifications, userID); err != nil {
		return fmt.Errorf("deleting notifications: %w", err)
	}
	return nil
}

// DeleteNotificationsOlderThan removes notifications past the retention age,
// across all users. Returns the number of rows deleted.
func (s *PostgresStore) DeleteNotificationsOlderThan(
	ctx context.Context,
	age time.Duration,
) (int64, error) {
	cutoff := time.Now().Add(-age)
	tag, err := s.pool.Exec(ctx, queryDeleteOldNotifications, cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting old notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountUnreadNotifications returns the number of unread items for a user.
func (s *PostgresStore) CountUnreadNotifications(
	ctx context.Context,
	userID string,
) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, queryCountUnreadNotifications, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}
	return count, nil
}

// GetSystemState returns aggregate counts in a single round trip.
func (s *PostgresStore) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	st := &domain.SystemState{}
	err := s.pool.QueryRow(ctx, queryGetSystemState).Scan(
		&st.ProductsTotal, &st.ProvidersTotal, &st.FavoritesTotal,
		&st.SnapshotsTotal, &st.NotificationsTotal, &st.NotificationsUnread,
	)
	if err != nil {
		return nil, fmt.Errorf("querying system state: %w", err)
	}
	return st, nil
}
