package finance

import (
	"math"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
)

// DisposableIncome is the monthly income left after existing charges and
// the project payment (reste à vivre). May be negative.
func DisposableIncome(netIncome, monthlyCharges, projectPayment float64) float64 {
	return math.Round(netIncome - monthlyCharges - projectPayment)
}

// MinimumAllowance is the recommended minimum living allowance for a
// household. Negative child counts are clamped to 0, not rejected.
func MinimumAllowance(household models.HouseholdType, children int, ac config.AllowanceConfig) float64 {
	base := ac.Single
	if household == models.HouseholdCouple {
		base = ac.Couple
	}

	return base + math.Max(0, float64(children))*ac.PerChild
}

// CheckMinimumAllowance validates a disposable income against the
// household minimum. A margin of exactly 0 is sufficient.
func CheckMinimumAllowance(disposableIncome float64, household models.HouseholdType, children int, ac config.AllowanceConfig) models.AllowanceCheck {
	minimum := MinimumAllowance(household, children, ac)
	margin := math.Round(disposableIncome - minimum)

	return models.AllowanceCheck{
		Sufficient: disposableIncome >= minimum,
		Amount:     disposableIncome,
		Minimum:    minimum,
		Margin:     margin,
	}
}

// MaxPaymentForAllowance is the highest project payment that preserves
// the minimum living allowance, floored at 0.
func MaxPaymentForAllowance(netIncome, monthlyCharges float64, household models.HouseholdType, children int, ac config.AllowanceConfig) float64 {
	minimum := MinimumAllowance(household, children, ac)
	payment := netIncome - monthlyCharges - minimum

	return math.Max(0, math.Round(payment))
}
