package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger is satisfied by the store handle.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the public health routes.
type HealthHandler struct {
	store  Pinger
	driver string
	now    func() time.Time
}

func NewHealthHandler(store Pinger, driver string) *HealthHandler {
	return &HealthHandler{store: store, driver: driver, now: time.Now}
}

// Healthcheck handles GET /healthcheck.
//
// @Summary      Service status and server time
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthcheckResponse
// @Router       /healthcheck [get]
func (h *HealthHandler) Healthcheck(c echo.Context) error {
	return c.JSON(http.StatusOK, healthcheckResponse{
		Status:    "ok",
		Timestamp: h.now().UTC(),
	})
}

// Liveness handles GET /health and confirms the process is alive.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Readiness handles GET /health/ready and checks the store before declaring
// the service ready.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	status, httpStatus := "ok", http.StatusOK

	if err := h.store.Ping(ctx); err != nil {
		deps[h.driver] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		status, httpStatus = "degraded", http.StatusServiceUnavailable
	} else {
		deps[h.driver] = dependencyStatus{Status: "ok"}
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
