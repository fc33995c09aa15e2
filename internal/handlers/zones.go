package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
	"mortgage-advisory-engine/internal/services/zones"
	"mortgage-advisory-engine/internal/utils"
)

// ZonesHandler serves the geographic affordability endpoint.
type ZonesHandler struct {
	source zones.Source
	reg    *config.RegulatoryConfig
	log    *zap.Logger
}

// NewZonesHandler creates a zones handler.
func NewZonesHandler(source zones.Source, reg *config.RegulatoryConfig) *ZonesHandler {
	return &ZonesHandler{source: source, reg: reg, log: utils.GetLogger()}
}

type zonesRequest struct {
	Capacity    float64             `json:"capacity"`
	Kind        models.PropertyKind `json:"kind"`
	Statuses    []models.ZoneStatus `json:"statuses,omitempty"`
	Departments []string            `json:"departments,omitempty"`
	// Sort is "surface" (descending) or "price" (ascending).
	Sort string `json:"sort,omitempty"`
}

type zonesResponse struct {
	Zones      []models.ComputedZone `json:"zones"`
	Statistics models.ZoneStatistics `json:"statistics"`
}

// Compute handles POST /api/zones.
func (h *ZonesHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req zonesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Capacity <= 0 {
		writeError(w, http.StatusBadRequest, "capacity must be positive", nil)
		return
	}
	if req.Kind == "" {
		req.Kind = models.PropertyApartment
	}
	thresholds, ok := h.reg.SurfaceThresholds[req.Kind]
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown property kind", nil)
		return
	}

	dataset, err := h.source.Zones(r.Context())
	if err != nil {
		h.log.Error("failed to load zone dataset", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load zone dataset", err)
		return
	}

	computed := zones.ComputeAll(dataset, req.Capacity, req.Kind, thresholds)
	if len(req.Statuses) > 0 {
		computed = zones.FilterByStatus(computed, req.Statuses...)
	}
	if len(req.Departments) > 0 {
		computed = zones.FilterByDepartment(computed, req.Departments...)
	}

	switch req.Sort {
	case "", "surface":
		computed = zones.SortBySurface(computed)
	case "price":
		computed = zones.SortByPriceSqm(computed)
	default:
		writeError(w, http.StatusBadRequest, "sort must be surface or price", nil)
		return
	}

	writeSuccess(w, http.StatusOK, "zones computed", zonesResponse{
		Zones:      computed,
		Statistics: zones.Statistics(computed),
	})
}
