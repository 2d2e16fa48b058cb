package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/localspot/directory-gateway/internal/core/domain"
	"github.com/localspot/directory-gateway/internal/core/ports"
)

// HealthHandler handles GET /healthz, the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /healthz/ready. Ready means hydration has
// settled and, when Redis backs the credential store, Redis answers a ping.
type ReadinessHandler struct {
	sessions ports.SessionService
	redis    *redis.Client // nil when the file store is in use
}

func NewReadinessHandler(sessions ports.SessionService, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{sessions: sessions, redis: rdb}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	if h.sessions.Snapshot().State == domain.SessionHydrating {
		deps["session"] = dependencyStatus{Status: "hydrating"}
		healthy = false
	} else {
		deps["session"] = dependencyStatus{Status: "ok"}
	}

	if h.redis != nil {
		if _, err := h.redis.Ping(ctx).Result(); err != nil {
			deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		} else {
			deps["redis"] = dependencyStatus{Status: "ok"}
		}
	}

	status := http.StatusOK
	resp := readinessResponse{Status: "ready", Dependencies: deps}
	if !healthy {
		status = http.StatusServiceUnavailable
		resp.Status = "not ready"
	}
	return c.JSON(status, resp)
}
