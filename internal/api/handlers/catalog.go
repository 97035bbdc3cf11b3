package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/manoslocales/marketwatch/internal/store"
	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// CatalogHandler handles product and provider catalog operations. Upserts
// are the ingest path for the marketplace catalog sync; the snapshot feed
// picks up whatever lands here.
type CatalogHandler struct {
	store store.Store
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(s store.Store) *CatalogHandler {
	return &CatalogHandler{store: s}
}

// GetProduct handles GET /api/v1/products/:id.
//
// @Summary Get a product by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/products/{id} [get]
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	p, err := h.store.GetProduct(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "product not found",
		})
	}

	return c.JSON(http.StatusOK, p)
}

// UpsertProduct handles PUT /api/v1/products.
//
// @Summary Create or update a product
// @Description Ingests a product snapshot from the catalog sync.
// @Tags catalog
// @Accept json
// @Produce json
// @Param product body domain.Product true "Product snapshot"
// @Success 200 {object} domain.Product
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/products [put]
func (h *CatalogHandler) UpsertProduct(c echo.Context) error {
	var p domain.Product
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if p.ID == "" || p.Name == "" || p.ProviderID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "id, name and provider_id are required",
		})
	}

	if err := h.store.UpsertProduct(c.Request().Context(), &p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "upserting product: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, p)
}

// GetProvider handles GET /api/v1/providers/:id.
//
// @Summary Get a provider by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} domain.Provider
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/providers/{id} [get]
func (h *CatalogHandler) GetProvider(c echo.Context) error {
	id := c.Param("id")

	p, err := h.store.GetProvider(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "provider not found",
		})
	}

	return c.JSON(http.StatusOK, p)
}

// UpsertProvider handles PUT /api/v1/providers.
//
// @Summary Create or update a provider
// @Tags catalog
// @Accept json
// @Produce json
// @Param provider body domain.Provider true "Provider"
// @Success 200 {object} domain.Provider
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/providers [put]
func (h *CatalogHandler) UpsertProvider(c echo.Context) error {
	var p domain.Provider
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if p.ID == "" || p.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "id and name are required",
		})
	}

	if err := h.store.UpsertProvider(c.Request().Context(), &p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "upserting provider: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, p)
}

// ListProviderProducts handles GET /api/v1/providers/:id/products.
//
// @Summary List a provider's products
// @Tags catalog
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {array} domain.Product
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/providers/{id}/products [get]
func (h *CatalogHandler) ListProviderProducts(c echo.Context) error {
	id := c.Param("id")

	products, err := h.store.ListProductsByProvider(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing products: " + err.Error(),
		})
	}

	if products == nil {
		products = []domain.Product{}
	}

	return c.JSON(http.StatusOK, products)
}
