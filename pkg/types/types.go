// Package domain defines the core business types for the Manos Locales
// market watch backend.
package domain

import (
	"fmt"
	"time"
)

// EntityKind identifies what kind of marketplace entity a favorite points at.
type EntityKind string

// Entity kind constants.
const (
	KindProduct  EntityKind = "product"
	KindProvider EntityKind = "provider"
)

// Valid reports whether k is a known entity kind.
func (k EntityKind) Valid() bool {
	return k == KindProduct || k == KindProvider
}

// ChangeKind classifies a detected semantic change on a watched entity.
type ChangeKind string

// Change kind constants.
const (
	ChangePriceIncreased ChangeKind = "price_increased"
	ChangePriceDecreased ChangeKind = "price_decreased"
	ChangeNewProduct     ChangeKind = "new_product"
)

// Product is a marketplace product published by a local provider.
type Product struct {
	ID         string    `json:"id"                  db:"id"`
	ProviderID string    `json:"provider_id"         db:"provider_id"`
	Name       string    `json:"name"                db:"name"`
	Category   string    `json:"category,omitempty"  db:"category"`
	Price      float64   `json:"price"               db:"price"`
	Currency   string    `json:"currency"            db:"currency"`
	ImageURL   string    `json:"image_url,omitempty" db:"image_url"`
	Available  bool      `json:"available"           db:"available"`
	CreatedAt  time.Time `json:"created_at"          db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"          db:"updated_at"`
}

// DisplayPrice renders the product price for user-facing messages.
func (p *Product) DisplayPrice() string {
	return fmt.Sprintf("$%.2f", p.Price)
}

// Provider is a local product provider with a public profile.
type Provider struct {
	ID        string    `json:"id"              db:"id"`
	Name      string    `json:"name"            db:"name"`
	City      string    `json:"city,omitempty"  db:"city"`
	Email     string    `json:"email,omitempty" db:"email"`
	CreatedAt time.Time `json:"created_at"      db:"created_at"`
	UpdatedAt time.Time `json:"updated_at"      db:"updated_at"`
}

// FavoriteEntry marks one entity as favorited by one user.
// At most one entry exists per (user, entity, kind); toggling an existing
// entry removes it.
type FavoriteEntry struct {
	UserID   string     `json:"user_id"   db:"user_id"`
	EntityID string     `json:"entity_id" db:"entity_id"`
	Kind     EntityKind `json:"kind"      db:"kind"`
	AddedAt  time.Time  `json:"added_at"  db:"added_at"`
}

// Snapshot is the last-observed state of a watched product, kept per user so
// comparison baselines never leak across accounts. It is the durable baseline
// the change watcher diffs fresh feed data against.
type Snapshot struct {
	UserID     string    `json:"user_id"     db:"user_id"`
	EntityID   string    `json:"entity_id"   db:"entity_id"`
	ProviderID string    `json:"provider_id" db:"provider_id"`
	Price      float64   `json:"price"       db:"price"`
	ObservedAt time.Time `json:"observed_at" db:"observed_at"`
}

// ChangeEvent is a detected semantic change, immutable once created.
type ChangeEvent struct {
	Kind       ChangeKind `json:"kind"`
	EntityID   string     `json:"entity_id"`
	EntityName string     `json:"entity_name"`
	ProviderID string     `json:"provider_id,omitempty"`
	OldPrice   *float64   `json:"old_price,omitempty"`
	NewPrice   *float64   `json:"new_price,omitempty"`
	DetectedAt time.Time  `json:"detected_at"`
}

// DedupKey returns the idempotency key for this event. Re-detection of the
// same (entity, kind, new value) must never notify twice; the notification
// store enforces uniqueness on this key per user.
func (e *ChangeEvent) DedupKey() string {
	if e.NewPrice != nil {
		return fmt.Sprintf("%s|%s|%.2f", e.EntityID, e.Kind, *e.NewPrice)
	}
	return fmt.Sprintf("%s|%s", e.EntityID, e.Kind)
}

// NotificationItem is a persisted, user-visible alert.
type NotificationItem struct {
	ID              string    `json:"id"                db:"id"`
	UserID          string    `json:"user_id"           db:"user_id"`
	Title           string    `json:"title"             db:"title"`
	Message         string    `json:"message"           db:"message"`
	RelatedEntityID string    `json:"related_entity_id" db:"related_entity_id"`
	DedupKey        string    `json:"-"                 db:"dedup_key"`
	Read            bool      `json:"read"              db:"read"`
	CreatedAt       time.Time `json:"created_at"        db:"created_at"`
}

// SystemState holds a precomputed snapshot of aggregate system counts.
type SystemState struct {
	ProductsTotal       int `json:"products_total"       db:"products_total"`
	ProvidersTotal      int `json:"providers_total"      db:"providers_total"`
	FavoritesTotal      int `json:"favorites_total"      db:"favorites_total"`
	SnapshotsTotal      int `json:"snapshots_total"      db:"snapshots_total"`
	NotificationsTotal  int `json:"notifications_total"  db:"notifications_total"`
	NotificationsUnread int `json:"notifications_unread" db:"notifications_unread"`
}
