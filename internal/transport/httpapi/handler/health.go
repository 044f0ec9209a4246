package handler

import (
	"context"
	"net/http"
	"time"
)

// DatabaseHealther defines the interface for checking database connectivity
type DatabaseHealther interface {
	Health(ctx context.Context) error
}

// HealthHandler handles health check requests
type HealthHandler struct {
	db DatabaseHealther
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db DatabaseHealther) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
	Uptime string            `json:"uptime,omitempty"`
}

var startTime = time.Now()

// GetHealth handles GET /health.
// Basic liveness check, no dependency probing.
func GetHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, HealthResponse{
		Status: "ok",
		Uptime: time.Since(startTime).String(),
	}, http.StatusOK)
}

// GetReadiness handles GET /health/ready.
// Readiness probe, checks that the database accepts connections.
func (h *HealthHandler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Health(ctx); err != nil {
		respondJSON(w, HealthResponse{
			Status: "degraded",
			Checks: map[string]string{"database": "unhealthy: " + err.Error()},
		}, http.StatusServiceUnavailable)
		return
	}

	respondJSON(w, HealthResponse{
		Status: "ready",
		Checks: map[string]string{"database": "healthy"},
	}, http.StatusOK)
}
