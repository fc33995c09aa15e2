package advice

import (
	"math"
	"strconv"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
)

// formatEuro renders an amount with French thousands separators
// (1234567 -> "1 234 567").
func formatEuro(amount float64) string {
	s := strconv.FormatInt(int64(math.Round(amount)), 10)

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// Annuity helpers local to the advisory layer, which works with rates in
// percent (3.45 = 3.45%).

func monthlyPayment(capital, annualRatePct float64, years int) float64 {
	monthlyRate := annualRatePct / 100 / 12
	months := float64(years * 12)
	if monthlyRate == 0 {
		return capital / months
	}
	return capital * monthlyRate / (1 - math.Pow(1+monthlyRate, -months))
}

func borrowableCapital(payment, annualRatePct float64, years int) float64 {
	monthlyRate := annualRatePct / 100 / 12
	months := float64(years * 12)
	if monthlyRate == 0 {
		return payment * months
	}
	return payment * (1 - math.Pow(1+monthlyRate, -months)) / monthlyRate
}

// budgetToPrice inverts notary fees out of a total budget.
func budgetToPrice(budget float64, condition models.PropertyCondition, sim config.SimulatorConfig) float64 {
	return budget / (1 + sim.NotaryRate(condition))
}

// ptzEligible is the simplified PTZ pre-check of the advisory layer,
// based on monthly income ceilings. The full zone-based check lives in
// the eligibility package; this one only decides whether to surface the
// PTZ lever.
func ptzEligible(in models.AdviceInput, market config.MarketContext) bool {
	if !market.PTZAvailable {
		return false
	}

	persons := 1
	if in.Household == models.HouseholdCouple {
		persons = 2
	}
	if in.Children > 0 {
		persons += in.Children
	}
	if persons > 4 {
		persons = 4
	}

	ceiling, ok := market.PTZMonthlyCeilings[persons]
	if !ok {
		return false
	}

	return in.Income <= ceiling
}

// ptzAmount is the simplified PTZ ceiling by household composition.
func ptzAmount(household models.HouseholdType, children int, amounts config.PTZAmounts) float64 {
	if household == models.HouseholdCouple {
		if children >= 2 {
			return amounts.CoupleChildren
		}
		return amounts.CoupleNoChild
	}
	if children >= 1 {
		return amounts.SingleWithChild
	}
	return amounts.SingleNoChild
}
