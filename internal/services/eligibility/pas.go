package eligibility

import (
	"fmt"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
)

// PASZoneFromPTZ maps a PTZ zone onto the simplified PAS zone scale:
// Abis/A to A, B1 to B, everything else to C.
func PASZoneFromPTZ(zone models.PTZZone) models.PASZone {
	switch zone {
	case models.PTZZoneAbis, models.PTZZoneA:
		return models.PASZoneA
	case models.PTZZoneB1:
		return models.PASZoneB
	default:
		return models.PASZoneC
	}
}

// CheckPAS evaluates PAS eligibility (articles L.312-1 et R.312-3 du
// CCH). The PAS is a capped conventional loan for modest households; it
// can finance the whole operation, so MaxAmount is the operation amount.
func CheckPAS(params models.PASParams, cfg config.PASConfig) models.EligibilityResult {
	var conditions []models.Condition
	var reasons []string

	householdCapped := params.HouseholdSize
	if householdCapped > cfg.MaxHouseholdSize {
		householdCapped = cfg.MaxHouseholdSize
	}
	incomeCeiling := cfg.IncomeCeilings[params.Zone][householdCapped]
	incomeOK := params.ReferenceIncome <= incomeCeiling

	conditions = append(conditions, models.Condition{
		Criterion: "Plafond de revenus",
		Met:       incomeOK,
		Actual:    params.ReferenceIncome,
		Required:  incomeCeiling,
		Description: fmt.Sprintf(
			"Vos revenus fiscaux (%s) doivent être ≤ %s pour %d personne(s) en zone %s.",
			euros(params.ReferenceIncome), euros(incomeCeiling), params.HouseholdSize, params.Zone,
		),
	})
	if !incomeOK {
		reasons = append(reasons, fmt.Sprintf(
			"Revenus (%s) supérieurs au plafond PAS (%s).",
			euros(params.ReferenceIncome), euros(incomeCeiling),
		))
	}

	// Primary residence only. The simulator always targets one, so the
	// condition is reported but always met.
	conditions = append(conditions, models.Condition{
		Criterion:   "Résidence principale",
		Met:         true,
		Actual:      true,
		Required:    true,
		Description: "Le PAS finance uniquement l'acquisition de votre résidence principale.",
	})

	amountOK := params.OperationAmount > 0
	conditions = append(conditions, models.Condition{
		Criterion:   "Montant d'opération",
		Met:         amountOK,
		Actual:      params.OperationAmount,
		Required:    "> 0 €",
		Description: "Le montant de l'opération immobilière doit être positif.",
	})
	if !amountOK {
		reasons = append(reasons, "Montant d'opération invalide.")
	}

	eligible := incomeOK && amountOK

	result := models.EligibilityResult{
		Eligible:   eligible,
		Conditions: conditions,
		Reasons:    reasons,
	}

	if eligible {
		result.MaxAmount = params.OperationAmount
		result.MaxYears = cfg.MaxYears
		result.Rate = cfg.MaxRate
	}

	return result
}
