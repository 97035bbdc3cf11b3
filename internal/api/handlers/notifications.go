package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/manoslocales/marketwatch/internal/api/middleware"
	"github.com/manoslocales/marketwatch/internal/session"
	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// NotificationsHandler handles per-user notification feed operations.
type NotificationsHandler struct {
	manager *session.Manager
}

// NewNotificationsHandler creates a new NotificationsHandler.
func NewNotificationsHandler(m *session.Manager) *NotificationsHandler {
	return &NotificationsHandler{manager: m}
}

type unreadCountResponse struct {
	Unread int `json:"unread" example:"3"`
}

// List handles GET /api/v1/notifications.
//
// @Summary List notifications
// @Description Returns the caller's notifications, newest first. Anonymous
// @Description callers get an empty list.
// @Tags notifications
// @Produce json
// @Param limit query int false "Maximum items to return"
// @Success 200 {array} domain.NotificationItem
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/notifications [get]
func (h *NotificationsHandler) List(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(http.StatusOK, []domain.NotificationItem{})
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	sess, err := h.manager.StartListening(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "starting session: " + err.Error(),
		})
	}

	items, err := sess.Notifications().Items(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing notifications: " + err.Error(),
		})
	}

	if items == nil {
		items = []domain.NotificationItem{}
	}

	return c.JSON(http.StatusOK, items)
}

// MarkAllRead handles POST /api/v1/notifications/read.
//
// @Summary Mark all notifications read
// @Description Marks every notification of the caller as read. Anonymous
// @Description callers are ignored.
// @Tags notifications
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/notifications/read [post]
func (h *NotificationsHandler) MarkAllRead(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}

	sess, err := h.manager.StartListening(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "starting session: " + err.Error(),
		})
	}

	if err := sess.Notifications().MarkAllRead(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "marking notifications read: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

// ClearAll handles DELETE /api/v1/notifications.
//
// @Summary Clear all notifications
// @Description Deletes every notification of the caller. Anonymous callers
// @Description are ignored.
// @Tags notifications
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/notifications [delete]
func (h *NotificationsHandler) ClearAll(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.NoContent(http.StatusNoContent)
	}

	sess, err := h.manager.StartListening(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "starting session: " + err.Error(),
		})
	}

	if err := sess.Notifications().ClearAll(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "clearing notifications: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}

// StreamUnread handles GET /api/v1/notifications/stream.
//
// @Summary Stream unread-count updates
// @Description Server-sent events stream pushing the unread count whenever
// @Description it changes, so clients can badge without polling. Anonymous
// @Description callers get an empty 204.
// @Tags notifications
// @Produce text/event-stream
// @Success 200
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/notifications/stream [get]
func (h *NotificationsHandler) StreamUnread(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.NoContent(http.StatusNoContent)
	}

	ctx := c.Request().Context()

	sess, err := h.manager.StartListening(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "starting session: " + err.Error(),
		})
	}

	updates, cancel := sess.Notifications().SubscribeUnread()
	defer cancel()

	resp := c.Response()

	// The server's write timeout would sever this long-lived stream;
	// lift the deadline for this response only. Writers that cannot
	// carry deadlines (tests, some proxies) are left as they are.
	_ = http.NewResponseController(resp).SetWriteDeadline(time.Time{})

	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.WriteHeader(http.StatusOK)

	// Initial count so clients render a badge before the first change.
	if count, err := sess.Notifications().UnreadCount(ctx); err == nil {
		fmt.Fprintf(resp, "data: {\"unread\":%d}\n\n", count)
		resp.Flush()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case n, ok := <-updates:
			if !ok {
				return nil
			}
			fmt.Fprintf(resp, "data: {\"unread\":%d}\n\n", n)
			resp.Flush()
		}
	}
}

// UnreadCount handles GET /api/v1/notifications/unread.
//
// @Summary Count unread notifications
// @Description Returns how many of the caller's notifications are unread.
// @Description Anonymous callers get zero.
// @Tags notifications
// @Produce json
// @Success 200 {object} unreadCountResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/notifications/unread [get]
func (h *NotificationsHandler) UnreadCount(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(http.StatusOK, unreadCountResponse{Unread: 0})
	}

	sess, err := h.manager.StartListening(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "starting session: " + err.Error(),
		})
	}

	count, err := sess.Notifications().UnreadCount(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "counting unread notifications: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, unreadCountResponse{Unread: count})
}
