package handlers

import (
	"net/http"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
	"mortgage-advisory-engine/internal/services/eligibility"
)

// EligibilityHandler serves the housing-aid eligibility endpoints.
type EligibilityHandler struct {
	aids config.AidsConfig
}

// NewEligibilityHandler creates an eligibility handler.
func NewEligibilityHandler(reg *config.RegulatoryConfig) *EligibilityHandler {
	return &EligibilityHandler{aids: reg.Aids}
}

// PTZ handles POST /api/eligibility/ptz.
func (h *EligibilityHandler) PTZ(w http.ResponseWriter, r *http.Request) {
	var params models.PTZParams
	if !decodeBody(w, r, &params) {
		return
	}

	result := eligibility.CheckPTZ(params, h.aids.PTZ)
	writeSuccess(w, http.StatusOK, "PTZ eligibility evaluated", result)
}

// PAS handles POST /api/eligibility/pas. An empty zone is derived from
// the ptz_zone field when provided.
func (h *EligibilityHandler) PAS(w http.ResponseWriter, r *http.Request) {
	var req struct {
		models.PASParams
		PTZZone models.PTZZone `json:"ptz_zone,omitempty"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	params := req.PASParams
	if params.Zone == "" && req.PTZZone != "" {
		params.Zone = eligibility.PASZoneFromPTZ(req.PTZZone)
	}

	result := eligibility.CheckPAS(params, h.aids.PAS)
	writeSuccess(w, http.StatusOK, "PAS eligibility evaluated", result)
}

// ActionLogement handles POST /api/eligibility/action-logement.
func (h *EligibilityHandler) ActionLogement(w http.ResponseWriter, r *http.Request) {
	var params models.ActionLogementParams
	if !decodeBody(w, r, &params) {
		return
	}

	result := eligibility.CheckActionLogement(params, h.aids.ActionLogement)
	writeSuccess(w, http.StatusOK, "Action Logement eligibility evaluated", result)
}

// All handles POST /api/eligibility: the three schemes in one call.
func (h *EligibilityHandler) All(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PTZ            models.PTZParams            `json:"ptz"`
		PAS            *models.PASParams           `json:"pas,omitempty"`
		ActionLogement *models.ActionLogementParams `json:"action_logement,omitempty"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	response := map[string]models.EligibilityResult{
		"ptz": eligibility.CheckPTZ(req.PTZ, h.aids.PTZ),
	}

	if req.PAS != nil {
		pas := *req.PAS
		if pas.Zone == "" {
			pas.Zone = eligibility.PASZoneFromPTZ(req.PTZ.Zone)
		}
		response["pas"] = eligibility.CheckPAS(pas, h.aids.PAS)
	}

	if req.ActionLogement != nil {
		response["action_logement"] = eligibility.CheckActionLogement(*req.ActionLogement, h.aids.ActionLogement)
	}

	writeSuccess(w, http.StatusOK, "eligibility evaluated", response)
}
