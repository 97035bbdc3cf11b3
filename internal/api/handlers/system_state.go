package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// SystemStateProvider queries aggregate system counts.
type SystemStateProvider interface {
	GetSystemState(ctx context.Context) (*domain.SystemState, error)
}

// SystemStateHandler handles GET /api/v1/system/state.
type SystemStateHandler struct {
	store SystemStateProvider
}

// NewSystemStateHandler creates a SystemStateHandler.
func NewSystemStateHandler(s SystemStateProvider) *SystemStateHandler {
	return &SystemStateHandler{store: s}
}

// GetSystemState handles GET /api/v1/system/state.
//
// @Summary Get system state
// @Description Returns aggregate system counts.
// @Tags system
// @Produce json
// @Success 200 {object} domain.SystemState
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/system/state [get]
func (h *SystemStateHandler) GetSystemState(c echo.Context) error {
	state, err := h.store.GetSystemState(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "getting system state: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, state)
}
