// Package score implements the multi-criteria feasibility score used to
// approximate how French banks grade a mortgage application.
//
// Seven independently capped criteria sum to 0-100:
//
//	debt ratio /30, living allowance /20, down payment /15,
//	employment status /15, age at loan end /10, duration /5,
//	existing charges /5
package score

import (
	"fmt"
	"math"

	"mortgage-advisory-engine/internal/models"
)

// Compute grades an application on the seven criteria and returns the
// summed score with its per-criterion breakdown.
func Compute(in models.ScoreInput) models.FeasibilityScore {
	downPaymentPct := 0.0
	if in.PurchasePrice > 0 {
		downPaymentPct = in.DownPayment / in.PurchasePrice * 100
	}

	chargesRatio := 0.0
	if in.MonthlyIncome > 0 {
		chargesRatio = in.MonthlyCharges / in.MonthlyIncome * 100
	}

	ageAtEnd := in.Age + in.Years

	details := []models.CriterionScore{
		{
			Criterion: "Taux d'endettement",
			Points:    debtRatioPoints(in.DebtRatio),
			Max:       30,
			Comment:   debtRatioComment(in.DebtRatio),
		},
		{
			Criterion: "Reste à vivre",
			Points:    allowancePoints(in.Allowance, in.AllowanceMin),
			Max:       20,
			Comment:   allowanceComment(in.Allowance, in.AllowanceMin),
		},
		{
			Criterion: "Apport personnel",
			Points:    downPaymentPoints(downPaymentPct),
			Max:       15,
			Comment:   downPaymentComment(downPaymentPct),
		},
		{
			Criterion: "Statut professionnel",
			Points:    statusPoints(in.EmploymentStatus),
			Max:       15,
			Comment:   statusComment(in.EmploymentStatus),
		},
		{
			Criterion: "Âge en fin de prêt",
			Points:    agePoints(ageAtEnd, in.Age),
			Max:       10,
			Comment:   ageComment(ageAtEnd),
		},
		{
			Criterion: "Durée du prêt",
			Points:    durationPoints(in.Years),
			Max:       5,
			Comment:   durationComment(in.Years),
		},
		{
			Criterion: "Charges existantes",
			Points:    chargesPoints(chargesRatio),
			Max:       5,
			Comment:   chargesComment(chargesRatio),
		},
	}

	total := 0
	for _, d := range details {
		total += d.Points
	}
	total = int(math.Max(0, math.Min(100, float64(total))))

	return models.FeasibilityScore{
		Score:   total,
		Details: details,
		Label:   Label(total),
		Color:   Color(total),
	}
}

// Debt ratio, 30 points. HCSF cap is 35%; banks prefer under 30%.
func debtRatioPoints(ratio float64) int {
	switch {
	case ratio <= 25:
		return 30
	case ratio <= 28:
		return 27
	case ratio <= 30:
		return 24
	case ratio <= 33:
		return 18
	case ratio <= 35:
		return 10
	case ratio <= 37:
		return 4
	default:
		return 0
	}
}

// Living allowance, 20 points, graded on the ratio to the household
// minimum. A non-positive minimum means not enough data: neutral score.
func allowancePoints(allowance, minimum float64) int {
	if minimum <= 0 {
		return 10
	}

	ratio := allowance / minimum
	switch {
	case ratio >= 2.0:
		return 20
	case ratio >= 1.5:
		return 16
	case ratio >= 1.2:
		return 12
	case ratio >= 1.0:
		return 7
	case ratio >= 0.8:
		return 3
	default:
		return 0
	}
}

// Down payment, 15 points. 10% covers notary fees; 20%+ marks a solid file.
func downPaymentPoints(pct float64) int {
	switch {
	case pct >= 30:
		return 15
	case pct >= 20:
		return 13
	case pct >= 15:
		return 11
	case pct >= 10:
		return 8
	case pct >= 5:
		return 5
	case pct > 0:
		return 2
	default:
		return 0
	}
}

// Employment status, 15 points.
func statusPoints(status models.EmploymentStatus) int {
	switch status {
	case models.EmploymentStatusCivilServant:
		return 15
	case models.EmploymentStatusCDI:
		return 14
	case models.EmploymentStatusLiberal:
		return 10
	case models.EmploymentStatusSelfEmployed:
		return 8
	case models.EmploymentStatusCDD:
		return 5
	case models.EmploymentStatusTempWork:
		return 3
	case models.EmploymentStatusRetired:
		return 10
	case models.EmploymentStatusStudent:
		return 1
	default:
		return 7
	}
}

// Age at loan end, 10 points. Insurance becomes hard past 75. Borrowers
// under 22 lose one point on the upper bands (thin banking history).
func agePoints(ageAtEnd, currentAge int) int {
	youngPenalty := 0
	if currentAge < 22 {
		youngPenalty = -1
	}

	switch {
	case ageAtEnd <= 60:
		return 10 + youngPenalty
	case ageAtEnd <= 65:
		return 9 + youngPenalty
	case ageAtEnd <= 70:
		return 7 + youngPenalty
	case ageAtEnd <= 75:
		return 4
	case ageAtEnd <= 80:
		return 2
	default:
		return 0
	}
}

// Loan duration, 5 points. Shorter means less bank risk.
func durationPoints(years int) int {
	switch {
	case years <= 15:
		return 5
	case years <= 20:
		return 4
	case years <= 22:
		return 3
	case years <= 25:
		return 2
	default:
		return 0
	}
}

// Existing charges relative to income, 5 points.
func chargesPoints(ratio float64) int {
	switch {
	case ratio <= 0:
		return 5
	case ratio <= 5:
		return 4
	case ratio <= 10:
		return 3
	case ratio <= 15:
		return 2
	case ratio <= 20:
		return 1
	default:
		return 0
	}
}

func debtRatioComment(ratio float64) string {
	switch {
	case ratio <= 25:
		return "Excellent — large marge sous la norme HCSF"
	case ratio <= 30:
		return "Confortable — bien sous les 35%"
	case ratio <= 33:
		return "Acceptable — conforme norme bancaire courante"
	case ratio <= 35:
		return "Limite HCSF — dossier accepté sous conditions"
	default:
		return "Hors norme HCSF — risque de refus élevé"
	}
}

func allowanceComment(allowance, minimum float64) string {
	ratio := 1.0
	if minimum > 0 {
		ratio = allowance / minimum
	}

	switch {
	case ratio >= 2.0:
		return "Reste à vivre très confortable"
	case ratio >= 1.2:
		return "Reste à vivre suffisant"
	case ratio >= 1.0:
		return "Reste à vivre juste au minimum"
	default:
		return "Reste à vivre insuffisant"
	}
}

func downPaymentComment(pct float64) string {
	switch {
	case pct >= 20:
		return fmt.Sprintf("Apport solide (%d%%)", int(math.Round(pct)))
	case pct >= 10:
		return fmt.Sprintf("Apport correct couvrant les frais (%d%%)", int(math.Round(pct)))
	case pct > 0:
		return fmt.Sprintf("Apport faible (%d%%) — frais non couverts", int(math.Round(pct)))
	default:
		return "Aucun apport — financement à 110%"
	}
}

func statusComment(status models.EmploymentStatus) string {
	switch status {
	case models.EmploymentStatusCivilServant:
		return "Fonctionnaire — profil très apprécié des banques"
	case models.EmploymentStatusCDI:
		return "CDI — statut standard pour l'emprunt"
	case models.EmploymentStatusLiberal:
		return "Profession libérale — accepté avec 3+ ans d'ancienneté"
	case models.EmploymentStatusSelfEmployed:
		return "Indépendant — revenus variables, bilans exigés"
	case models.EmploymentStatusCDD:
		return "CDD — conditions d'acceptation restrictives"
	case models.EmploymentStatusTempWork:
		return "Intérimaire — très peu de banques acceptent"
	case models.EmploymentStatusRetired:
		return "Retraité — revenus stables mais assurance majorée"
	default:
		return "Statut à évaluer au cas par cas"
	}
}

func ageComment(ageAtEnd int) string {
	switch {
	case ageAtEnd <= 65:
		return fmt.Sprintf("Fin de prêt à %d ans — optimal", ageAtEnd)
	case ageAtEnd <= 70:
		return fmt.Sprintf("Fin de prêt à %d ans — assurance standard", ageAtEnd)
	case ageAtEnd <= 75:
		return fmt.Sprintf("Fin de prêt à %d ans — surprime assurance", ageAtEnd)
	default:
		return fmt.Sprintf("Fin de prêt à %d ans — assurance difficile à obtenir", ageAtEnd)
	}
}

func durationComment(years int) string {
	switch {
	case years <= 15:
		return fmt.Sprintf("%d ans — durée courte, risque faible", years)
	case years <= 20:
		return fmt.Sprintf("%d ans — durée standard", years)
	case years <= 25:
		return fmt.Sprintf("%d ans — durée longue (limite HCSF)", years)
	default:
		return fmt.Sprintf("%d ans — hors norme HCSF", years)
	}
}

func chargesComment(ratio float64) string {
	switch {
	case ratio <= 0:
		return "Aucun crédit en cours — atout majeur"
	case ratio <= 10:
		return "Charges légères — impact faible"
	case ratio <= 20:
		return "Charges significatives à intégrer"
	default:
		return "Endettement préexistant lourd"
	}
}

// Label maps a score to its qualitative band.
func Label(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 65:
		return "Bon"
	case score >= 50:
		return "Moyen"
	case score >= 35:
		return "Fragile"
	default:
		return "Critique"
	}
}

// Color is the UI color associated with a score band.
func Color(score int) string {
	switch {
	case score >= 80:
		return "green"
	case score >= 65:
		return "amber"
	case score >= 50:
		return "orange"
	default:
		return "red"
	}
}
