package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/manoslocales/marketwatch/internal/api/middleware"
	"github.com/manoslocales/marketwatch/internal/session"
	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// FavoritesHandler handles per-user favorite operations.
type FavoritesHandler struct {
	manager *session.Manager
}

// NewFavoritesHandler creates a new FavoritesHandler.
func NewFavoritesHandler(m *session.Manager) *FavoritesHandler {
	return &FavoritesHandler{manager: m}
}

type toggleFavoriteRequest struct {
	Kind     string `json:"kind"      example:"product"`
	EntityID string `json:"entity_id" example:"prod-42"`
}

// favoritesResponse lists a user's favorited entity IDs by kind.
type favoritesResponse struct {
	Products  []string `json:"products"`
	Providers []string `json:"providers"`
}

// Toggle handles PUT /api/v1/favorites.
//
// @Summary Toggle a favorite
// @Description Adds the entity to the caller's favorites, or removes it if
// @Description already favorited. Anonymous callers are ignored.
// @Tags favorites
// @Accept json
// @Produce json
// @Param body body toggleFavoriteRequest true "Entity to toggle"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/favorites [put]
func (h *FavoritesHandler) Toggle(c echo.Context) error {
	var req toggleFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	kind := domain.EntityKind(req.Kind)
	if !kind.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "kind must be product or provider",
		})
	}

	if req.EntityID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "entity_id is required",
		})
	}

	userID := middleware.UserID(c)
	if userID == "" {
		// Anonymous sessions cannot hold favorites; drop the request
		// without an error.
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}

	sess, err := h.manager.StartListening(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "starting session: " + err.Error(),
		})
	}

	favorite, err := sess.ToggleFavorite(c.Request().Context(), kind, req.EntityID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "toggling favorite: " + err.Error(),
		})
	}

	status := "removed"
	if favorite {
		status = "added"
	}

	return c.JSON(http.StatusOK, map[string]string{"status": status})
}

// List handles GET /api/v1/favorites.
//
// @Summary List favorites
// @Description Returns the caller's favorited product and provider IDs.
// @Description Anonymous callers get empty lists.
// @Tags favorites
// @Produce json
// @Success 200 {object} favoritesResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/favorites [get]
func (h *FavoritesHandler) List(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(http.StatusOK, favoritesResponse{
			Products:  []string{},
			Providers: []string{},
		})
	}

	sess, err := h.manager.StartListening(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "starting session: " + err.Error(),
		})
	}

	idx := sess.Favorites()

	products := idx.ProductIDs()
	if products == nil {
		products = []string{}
	}
	providers := idx.ProviderIDs()
	if providers == nil {
		providers = []string{}
	}

	return c.JSON(http.StatusOK, favoritesResponse{
		Products:  products,
		Providers: providers,
	})
}
