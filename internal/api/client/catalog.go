package client

import (
	"context"

	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// GetProduct returns a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := c.get(ctx, "/api/v1/products/"+id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProvider returns a single provider by ID.
func (c *Client) GetProvider(ctx context.Context, id string) (*domain.Provider, error) {
	var p domain.Provider
	if err := c.get(ctx, "/api/v1/providers/"+id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProviderProducts returns a provider's products.
func (c *Client) ListProviderProducts(ctx context.Context, providerID string) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.get(ctx, "/api/v1/providers/"+providerID+"/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// UpsertProduct creates or updates a product in the catalog.
func (c *Client) UpsertProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var saved domain.Product
	if err := c.put(ctx, "/api/v1/products", p, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpsertProvider creates or updates a provider in the catalog.
func (c *Client) UpsertProvider(ctx context.Context, p *domain.Provider) (*domain.Provider, error) {
	var saved domain.Provider
	if err := c.put(ctx, "/api/v1/providers", p, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}
