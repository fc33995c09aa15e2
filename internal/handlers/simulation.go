package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"mortgage-advisory-engine/internal/models"
	"mortgage-advisory-engine/internal/services/simulation"
	"mortgage-advisory-engine/internal/utils"
)

// SimulationHandler serves the simulation endpoints.
type SimulationHandler struct {
	svc *simulation.Service
	log *zap.Logger
}

// NewSimulationHandler creates a simulation handler.
func NewSimulationHandler(svc *simulation.Service) *SimulationHandler {
	return &SimulationHandler{svc: svc, log: utils.GetLogger()}
}

// Simulate handles POST /api/simulation.
func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req models.SimulationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// Accept loose status spellings at the boundary.
	req.Profile.EmploymentStatus = models.NormalizeEmploymentStatus(string(req.Profile.EmploymentStatus))

	result, err := h.svc.Run(r.Context(), req)
	if err != nil {
		h.log.Warn("simulation rejected", zap.Error(err))
		writeError(w, http.StatusUnprocessableEntity, "simulation failed", err)
		return
	}

	writeSuccess(w, http.StatusOK, "simulation completed", result)
}

// Get handles GET /api/simulation/{id}.
func (h *SimulationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	result, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrSimulationNotFound) {
			writeError(w, http.StatusNotFound, "simulation not found", err)
			return
		}
		h.log.Error("failed to load simulation", zap.String("simulation_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load simulation", err)
		return
	}

	writeSuccess(w, http.StatusOK, "simulation found", result)
}

// ListRecent handles GET /api/simulation.
func (h *SimulationHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 100", nil)
			return
		}
		limit = parsed
	}

	results, err := h.svc.ListRecent(r.Context(), limit)
	if err != nil {
		h.log.Error("failed to list simulations", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list simulations", err)
		return
	}

	writeSuccess(w, http.StatusOK, "simulations listed", results)
}
