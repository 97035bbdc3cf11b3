// Package handlers implements HTTP handlers for the marketwatch API.
package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ReadyCheck probes one backing dependency by name.
type ReadyCheck struct {
	Name  string
	Probe func(ctx context.Context) error
}

// HealthHandler provides health and readiness endpoints. Readiness runs
// every registered check; liveness only says the process is up.
type HealthHandler struct {
	checks []ReadyCheck
}

// NewHealthHandler creates a HealthHandler over the given checks.
func NewHealthHandler(checks ...ReadyCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Healthz returns 200 if the process is running.
//
// @Summary Liveness check
// @Description Returns 200 if the process is running.
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /healthz [get]
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz returns 200 if every backing dependency is reachable, 503 with
// the failing checks named otherwise.
//
// @Summary Readiness check
// @Description Returns 200 if every backing dependency is reachable,
// @Description 503 otherwise. The body names each check's result.
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /readyz [get]
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx := c.Request().Context()

	results := make(map[string]string, len(h.checks))
	ready := true
	for _, check := range h.checks {
		if err := check.Probe(ctx); err != nil {
			results[check.Name] = err.Error()
			ready = false
			continue
		}
		results[check.Name] = "ok"
	}

	status := "ready"
	code := http.StatusOK
	if !ready {
		status = "unavailable"
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, ReadyResponse{Status: status, Checks: results})
}
