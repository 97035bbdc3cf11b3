package client

import (
	"context"
	"fmt"

	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// ListNotifications returns the user's notifications, newest first. A limit
// of zero uses the server default.
func (c *Client) ListNotifications(ctx context.Context, limit int) ([]domain.NotificationItem, error) {
	path := "/api/v1/notifications"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}

	var items []domain.NotificationItem
	if err := c.get(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkAllNotificationsRead marks every notification of the user as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.post(ctx, "/api/v1/notifications/read", nil, nil)
}

// ClearNotifications deletes every notification of the user.
func (c *Client) ClearNotifications(ctx context.Context) error {
	return c.del(ctx, "/api/v1/notifications", nil)
}

// UnreadCount returns how many of the user's notifications are unread.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var resp struct {
		Unread int `json:"unread"`
	}
	if err := c.get(ctx, "/api/v1/notifications/unread", &resp); err != nil {
		return 0, err
	}
	return resp.Unread, nil
}

// StopListening tears down the user's listening session on the server.
func (c *Client) StopListening(ctx context.Context) error {
	return c.del(ctx, "/api/v1/session", nil)
}
