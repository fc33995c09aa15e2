package handlers

import (
	"net/http"
	"time"

	"mortgage-advisory-engine/internal/services/database"
)

// HealthHandler reports service and database status.
type HealthHandler struct {
	db    *database.DB
	stage string
}

// NewHealthHandler creates a health handler. db may be nil in demo mode.
func NewHealthHandler(db *database.DB, stage string) *HealthHandler {
	return &HealthHandler{db: db, stage: stage}
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Stage     string `json:"stage"`
	Database  string `json:"database"`
}

// Handle processes GET /health.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "mortgage-advisory-engine",
		Stage:     h.stage,
		Database:  "not configured",
	}

	if h.db != nil {
		if err := h.db.HealthCheck(r.Context()); err != nil {
			response.Database = "disconnected"
			response.Status = "degraded"
		} else {
			response.Database = "connected"
		}
	}

	status := http.StatusOK
	if response.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, Response{Success: response.Status == "healthy", Data: response})
}
