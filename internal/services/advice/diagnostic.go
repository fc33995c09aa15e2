package advice

import (
	"fmt"
	"math"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
)

// Diagnose builds the bank diagnostic: strengths, watch points,
// suggested banks and an acceptance estimate, all driven by the
// feasibility score and the profile.
func Diagnose(in models.AdviceInput) models.BankDiagnostic {
	var strengths, watchPoints, banks []string

	downPaymentPct := in.DownPaymentPercent()
	ageAtEnd := in.Age + in.Years

	if in.EmploymentStatus == models.EmploymentStatusCivilServant {
		strengths = append(strengths, "Statut fonctionnaire très apprécié des banques")
		banks = append(banks, "Banque Postale", "Crédit Mutuel")
	}
	if in.EmploymentStatus == models.EmploymentStatusCDI {
		strengths = append(strengths, "CDI = stabilité professionnelle")
	}
	if downPaymentPct >= 20 {
		strengths = append(strengths, fmt.Sprintf("Apport solide de %d%%", int(math.Round(downPaymentPct))))
	}
	if in.DebtRatio <= 30 {
		strengths = append(strengths, "Taux d'endettement confortable")
	}
	if in.AllowanceLevel == "ok" {
		strengths = append(strengths, "Reste à vivre suffisant")
	}
	if in.Household == models.HouseholdCouple && in.Income > 5000 {
		strengths = append(strengths, "Revenus du foyer stables")
	}
	if in.Age >= 25 && in.Age <= 45 {
		strengths = append(strengths, "Tranche d'âge optimale pour l'emprunt")
	}

	if downPaymentPct < 10 {
		watchPoints = append(watchPoints, "Apport inférieur à 10% (frais de notaire)")
	}
	if in.DebtRatio > 33 {
		watchPoints = append(watchPoints, fmt.Sprintf("Endettement à %.1f%% (proche limite HCSF)", in.DebtRatio))
	}
	if in.EmploymentStatus == models.EmploymentStatusCDD {
		watchPoints = append(watchPoints, "Contrat CDD = conditions plus strictes")
		banks = append(banks, "Crédit Agricole", "BNP (si revenus élevés)")
	}
	if in.EmploymentStatus == models.EmploymentStatusSelfEmployed {
		watchPoints = append(watchPoints, "Indépendant : 3 ans d'ancienneté minimum requis")
		banks = append(banks, "Banque Populaire", "CIC")
	}
	if ageAtEnd > 70 {
		watchPoints = append(watchPoints, fmt.Sprintf("Fin de prêt à %d ans (assurance majorée)", ageAtEnd))
	}
	if in.AllowanceLevel == "limite" {
		watchPoints = append(watchPoints, "Reste à vivre juste suffisant")
	}
	if in.Charges > 0 {
		watchPoints = append(watchPoints, "Crédits en cours à prendre en compte")
	}

	if len(banks) == 0 {
		if downPaymentPct >= 20 {
			banks = append(banks, "Boursorama", "Fortuneo", "Crédit Agricole")
		} else {
			banks = append(banks, "Crédit Mutuel", "Caisse d'Épargne", "LCL")
		}
	}

	var likelihood string
	switch {
	case in.FeasibilityScore >= 85:
		likelihood = "très élevée"
	case in.FeasibilityScore >= 70:
		likelihood = "élevée"
	case in.FeasibilityScore >= 55:
		likelihood = "moyenne"
	case in.FeasibilityScore >= 40:
		likelihood = "faible"
	default:
		likelihood = "très faible"
	}

	var timeline string
	switch {
	case in.FeasibilityScore >= 80 && downPaymentPct >= 15:
		timeline = "2-3 semaines"
	case in.FeasibilityScore >= 60:
		timeline = "3-4 semaines"
	default:
		timeline = "4-6 semaines (étude approfondie)"
	}

	return models.BankDiagnostic{
		Score:                in.FeasibilityScore,
		AcceptanceLikelihood: likelihood,
		Strengths:            truncate(strengths, 4),
		WatchPoints:          truncate(watchPoints, 4),
		SuggestedBanks:       truncate(banks, 3),
		EstimatedTimeline:    timeline,
	}
}

func truncate(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// ExecutiveSummary is the one-paragraph wrap-up shown above the report.
func ExecutiveSummary(in models.AdviceInput, diag models.BankDiagnostic) string {
	downPaymentPct := int(math.Round(in.DownPaymentPercent()))

	switch {
	case in.FeasibilityScore >= 80:
		return fmt.Sprintf(
			"Excellent profil (%d/100). Budget de %s € avec %d%% d'apport. Probabilité d'acceptation %s. Délai estimé : %s.",
			in.FeasibilityScore, formatEuro(in.PurchasePrice), downPaymentPct,
			diag.AcceptanceLikelihood, diag.EstimatedTimeline,
		)
	case in.FeasibilityScore >= 60:
		return fmt.Sprintf(
			"Bon profil (%d/100). Projet finançable avec quelques optimisations possibles. Budget : %s €. Délai estimé : %s.",
			in.FeasibilityScore, formatEuro(in.PurchasePrice), diag.EstimatedTimeline,
		)
	default:
		return fmt.Sprintf(
			"Profil à renforcer (%d/100). Le projet nécessite des ajustements pour maximiser les chances d'acceptation. Consultez nos recommandations.",
			in.FeasibilityScore,
		)
	}
}

// Report runs the whole advisory pipeline: diagnostic, ranked advice,
// alternative scenarios and the executive summary.
func Report(in models.AdviceInput, reg *config.RegulatoryConfig) models.AdvisoryReport {
	diag := Diagnose(in)
	items := EvaluateAdvice(DefaultRules(reg), in, diag, DefaultBudget())
	scenarios := EvaluateScenarios(DefaultScenarioRules(reg), in, 3)

	return models.AdvisoryReport{
		Diagnostic: diag,
		Advice:     items,
		Scenarios:  scenarios,
		Summary:    ExecutiveSummary(in, diag),
	}
}
