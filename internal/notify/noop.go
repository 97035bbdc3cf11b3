package notify

import (
	"context"
	"log/slog"

	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded pushes. It is used
// when no webhook (or other push backend) is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards pushes with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// PostNotification logs and discards a notification push.
func (n *NoOpNotifier) PostNotification(_ context.Context, item *domain.NotificationItem) error {
	n.log.Debug("push discarded (no backend configured)",
		"user_id", item.UserID,
		"title", item.Title,
		"entity_id", item.RelatedEntityID,
	)
	return nil
}
