// Package notify defines the push delivery interface and implementations
// for notification fan-out. Push delivery is best effort: the dispatcher
// persists notifications regardless of whether the push succeeds.
package notify

import (
	"context"

	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// Notifier defines the interface for pushing a persisted notification to
// an external delivery channel.
type Notifier interface {
	PostNotification(ctx context.Context, item *domain.NotificationItem) error
}
