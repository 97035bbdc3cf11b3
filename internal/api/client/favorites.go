package client

import (
	"context"

	domain "github.com/manoslocales/marketwatch/pkg/types"
)

type toggleFavoriteRequest struct {
	Kind     string `json:"kind"`
	EntityID string `json:"entity_id"`
}

// Favorites holds a user's favorited entity IDs by kind.
type Favorites struct {
	Products  []string `json:"products"`
	Providers []string `json:"providers"`
}

// ToggleFavorite toggles an entity in the user's favorites and reports the
// resulting state ("added", "removed" or "ignored" for anonymous callers).
func (c *Client) ToggleFavorite(ctx context.Context, kind domain.EntityKind, entityID string) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	req := toggleFavoriteRequest{Kind: string(kind), EntityID: entityID}
	if err := c.put(ctx, "/api/v1/favorites", req, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// ListFavorites returns the user's favorited product and provider IDs.
func (c *Client) ListFavorites(ctx context.Context) (*Favorites, error) {
	var favs Favorites
	if err := c.get(ctx, "/api/v1/favorites", &favs); err != nil {
		return nil, err
	}
	return &favs, nil
}
