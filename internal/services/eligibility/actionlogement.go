package eligibility

import (
	"fmt"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
)

// CheckActionLogement evaluates the Action Logement employer loan
// (ex-1% Logement): private-sector employee, company of at least 10
// people, 6 months of tenure, CDI or CDD. The ceiling depends on whether
// the property sits in a tension zone.
func CheckActionLogement(params models.ActionLogementParams, cfg config.ActionLogementConfig) models.EligibilityResult {
	var conditions []models.Condition
	var reasons []string

	isPrivate := params.Sector == models.SectorPrivate
	conditions = append(conditions, models.Condition{
		Criterion:   "Secteur privé",
		Met:         isPrivate,
		Actual:      string(params.Sector),
		Required:    string(models.SectorPrivate),
		Description: "L'Action Logement est réservée aux salariés du secteur privé (hors agricole).",
	})
	if !isPrivate {
		reasons = append(reasons, "Le prêt Action Logement est réservé au secteur privé.")
	}

	sizeOK := params.CompanySize >= cfg.MinCompanySize
	conditions = append(conditions, models.Condition{
		Criterion:   "Taille entreprise",
		Met:         sizeOK,
		Actual:      params.CompanySize,
		Required:    cfg.MinCompanySize,
		Description: fmt.Sprintf("Votre entreprise doit compter au moins %d salariés.", cfg.MinCompanySize),
	})
	if !sizeOK {
		reasons = append(reasons, fmt.Sprintf(
			"Entreprise trop petite (%d salariés, minimum %d).",
			params.CompanySize, cfg.MinCompanySize,
		))
	}

	tenureOK := params.TenureMonths >= cfg.MinTenureMonths
	conditions = append(conditions, models.Condition{
		Criterion:   "Ancienneté",
		Met:         tenureOK,
		Actual:      params.TenureMonths,
		Required:    cfg.MinTenureMonths,
		Description: fmt.Sprintf("Vous devez justifier d'au moins %d mois d'ancienneté.", cfg.MinTenureMonths),
	})
	if !tenureOK {
		reasons = append(reasons, fmt.Sprintf(
			"Ancienneté insuffisante (%d mois, minimum %d).",
			params.TenureMonths, cfg.MinTenureMonths,
		))
	}

	contractOK := params.Contract == models.ContractCDI || params.Contract == models.ContractCDD
	conditions = append(conditions, models.Condition{
		Criterion:   "Type de contrat",
		Met:         contractOK,
		Actual:      string(params.Contract),
		Required:    "CDI ou CDD",
		Description: "Le prêt est accessible aux salariés en CDI ou CDD (pas d'intérim).",
	})
	if !contractOK {
		reasons = append(reasons, fmt.Sprintf("Contrat %s non éligible (CDI ou CDD requis).", params.Contract))
	}

	eligible := isPrivate && sizeOK && tenureOK && contractOK

	result := models.EligibilityResult{
		Eligible:   eligible,
		Conditions: conditions,
		Reasons:    reasons,
	}

	if eligible {
		result.MaxAmount = cfg.MaxAmountOtherZone
		if params.TenseZone {
			result.MaxAmount = cfg.MaxAmountTenseZone
		}
		result.MaxYears = cfg.MaxYears
		result.Rate = cfg.Rate
	}

	return result
}
