// Package middleware provides Echo middleware for the marketwatch API.
package middleware

import (
	"github.com/labstack/echo/v4"
)

const userIDHeader = "X-User-ID"

const userIDKey = "user_id"

// Identity extracts the caller's user ID from the X-User-ID header and
// stores it on the echo context. An absent header is an anonymous caller;
// handlers treat those as read-only no-ops rather than errors.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(userIDKey, c.Request().Header.Get(userIDHeader))
			return next(c)
		}
	}
}

// UserID returns the caller identity set by Identity, or "" for anonymous.
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}
