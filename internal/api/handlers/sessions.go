package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/manoslocales/marketwatch/internal/api/middleware"
	"github.com/manoslocales/marketwatch/internal/session"
)

// SessionHandler controls explicit listening-session lifecycle. Sessions are
// created lazily by the favorites and notification handlers; this only
// exists so clients can tear one down on logout.
type SessionHandler struct {
	manager *session.Manager
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(m *session.Manager) *SessionHandler {
	return &SessionHandler{manager: m}
}

// Stop handles DELETE /api/v1/session.
//
// @Summary Stop listening
// @Description Tears down the caller's listening session. No further change
// @Description notifications are produced until the next request recreates it.
// @Tags session
// @Success 204
// @Router /api/v1/session [delete]
func (h *SessionHandler) Stop(c echo.Context) error {
	if userID := middleware.UserID(c); userID != "" {
		h.manager.StopListening(userID)
	}
	return c.NoContent(http.StatusNoContent)
}
