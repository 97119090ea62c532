package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/hongminglow/jobtracker-be/internal/http/respond"
	"github.com/hongminglow/jobtracker-be/internal/logging"
)

// Checker reports whether a dependency can serve traffic.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// HealthHandler serves liveness and readiness.
type HealthHandler struct {
	startedAt time.Time
	checkers  []Checker
	log       logging.Logger
}

func NewHealthHandler(startedAt time.Time, log logging.Logger, checkers ...Checker) *HealthHandler {
	return &HealthHandler{startedAt: startedAt, checkers: checkers, log: log}
}

func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /ready", h.handleReady)
}

func (h *HealthHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}

func (h *HealthHandler) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	for _, c := range h.checkers {
		if err := c.Check(ctx); err != nil {
			h.log.Warn(ctx, "readiness check failed", "checker", c.Name(), "err", err)
			respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "checker": c.Name()})
			return
		}
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
