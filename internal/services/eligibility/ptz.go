package eligibility

import (
	"fmt"
	"math"
	"strings"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
)

// CheckPTZ evaluates PTZ eligibility (décret n° 2023-1230) and computes
// the potential amount: the financeable quota applied to the price capped
// by the zone ceiling. Unknown zones resolve to a 0 ceiling and fail the
// income condition.
func CheckPTZ(params models.PTZParams, cfg config.PTZConfig) models.EligibilityResult {
	var conditions []models.Condition
	var reasons []string

	conditions = append(conditions, models.Condition{
		Criterion:   "Primo-accédant",
		Met:         params.FirstTimeBuyer,
		Actual:      params.FirstTimeBuyer,
		Required:    true,
		Description: "Vous ne devez pas avoir été propriétaire de votre résidence principale au cours des 2 dernières années.",
	})
	if !params.FirstTimeBuyer {
		reasons = append(reasons, "Le PTZ est réservé aux primo-accédants.")
	}

	// New builds only in tension zones since 2024; renovated existing
	// property is eligible everywhere.
	zoneEligible := true
	if params.Condition == models.PropertyNew {
		zoneEligible = false
		for _, z := range cfg.NewBuildZones {
			if z == params.Zone {
				zoneEligible = true
				break
			}
		}
	}

	zoneNames := make([]string, 0, len(cfg.NewBuildZones))
	for _, z := range cfg.NewBuildZones {
		zoneNames = append(zoneNames, string(z))
	}
	zoneList := strings.Join(zoneNames, ", ")

	requiredZones := "Toutes zones"
	zoneDescription := "Le PTZ ancien avec travaux est disponible dans toutes les zones."
	if params.Condition == models.PropertyNew {
		requiredZones = zoneList
		zoneDescription = fmt.Sprintf("Le PTZ neuf est disponible en zones %s.", zoneList)
	}

	conditions = append(conditions, models.Condition{
		Criterion:   "Zone éligible",
		Met:         zoneEligible,
		Actual:      string(params.Zone),
		Required:    requiredZones,
		Description: zoneDescription,
	})
	if !zoneEligible {
		reasons = append(reasons, fmt.Sprintf("Le PTZ neuf n'est pas disponible en zone %s.", params.Zone))
	}

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
			"Revenus (%s) supérieurs au plafond (%s).",
			euros(params.ReferenceIncome), euros(incomeCeiling),
		))
	}

	eligible := true
	for _, c := range conditions {
		if !c.Met {
			eligible = false
			break
		}
	}

	result := models.EligibilityResult{
		Eligible:   eligible,
		Rate:       0,
		Conditions: conditions,
		Reasons:    reasons,
	}

	if eligible {
		quota := cfg.QuotaRenovated
		if params.Condition == models.PropertyNew {
			quota = cfg.QuotaNew
		}
		basis := math.Min(params.Price, cfg.PriceCeilings[params.Zone])
		result.MaxAmount = math.Round(basis * quota)
		result.MaxYears = cfg.MaxYears
	}

	return result
}
