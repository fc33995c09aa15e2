package finance

import (
	"fmt"
	"math"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
)

// DebtRatio computes the debt ratio in percent: (charges + project
// payment) / net income × 100, rounded to 2 decimals. Returns 0 when
// income is non-positive.
func DebtRatio(netIncome, monthlyCharges, projectPayment float64) float64 {
	if netIncome <= 0 {
		return 0
	}

	totalCharges := monthlyCharges + projectPayment
	return roundTo2(totalCharges / netIncome * 100)
}

// CheckDebtRatio qualifies a debt ratio (percent) against the alert
// threshold and the HCSF cap.
func CheckDebtRatio(ratio float64, sim config.SimulatorConfig) models.DebtRatioCheck {
	maxRatio := sim.MaxDebtRatio * 100
	alertRatio := sim.AlertDebtRatio * 100
	excess := roundTo2(ratio - maxRatio)

	switch {
	case ratio <= alertRatio:
		return models.DebtRatioCheck{
			Valid:   true,
			Level:   models.DebtLevelOK,
			Excess:  excess,
			Message: "Taux d'endettement confortable",
		}
	case ratio <= maxRatio:
		return models.DebtRatioCheck{
			Valid:   true,
			Level:   models.DebtLevelLimit,
			Excess:  excess,
			Message: "Taux d'endettement à la limite du seuil réglementaire",
		}
	default:
		return models.DebtRatioCheck{
			Valid:  false,
			Level:  models.DebtLevelExceeded,
			Excess: excess,
			Message: fmt.Sprintf(
				"Taux d'endettement dépassé de %.1f%% (max %.0f%%)",
				excess, maxRatio,
			),
		}
	}
}

// MaxMonthlyPayment is the highest payment that keeps the household under
// the debt-ratio cap: income × cap − charges, floored at 0 and rounded to
// the euro.
func MaxMonthlyPayment(netIncome, monthlyCharges, debtRatioCap float64) float64 {
	if netIncome <= 0 {
		return 0
	}

	payment := netIncome*debtRatioCap - monthlyCharges
	return math.Max(0, math.Round(payment))
}
