package finance

import (
	"math"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
)

// NotaryFees estimates acquisition fees for a price and property
// condition, with an indicative breakdown (transfer duty, emoluments,
// disbursements, sundry). Non-positive prices return zero fees and rate.
func NotaryFees(price float64, condition models.PropertyCondition, sim config.SimulatorConfig) models.NotaryFees {
	if price <= 0 {
		return models.NotaryFees{}
	}

	rate := sim.NotaryRate(condition)
	fees := math.Round(price * rate)

	// Indicative split for display; the sundry component absorbs rounding
	// so the parts always sum to the total.
	var breakdown models.NotaryBreakdown
	if condition == models.PropertyNew {
		breakdown = models.NotaryBreakdown{
			TransferDuty:  math.Round(price * 0.007), // reduced VAT regime
			Emoluments:    math.Round(price * 0.010),
			Disbursements: math.Round(price * 0.005),
		}
	} else {
		breakdown = models.NotaryBreakdown{
			TransferDuty:  math.Round(price * 0.058), // registration duties
			Emoluments:    math.Round(price * 0.010),
			Disbursements: math.Round(price * 0.007),
		}
	}
	breakdown.Sundry = fees - breakdown.TransferDuty - breakdown.Emoluments - breakdown.Disbursements

	return models.NotaryFees{
		Fees:        fees,
		AppliedRate: rate,
		Breakdown:   breakdown,
	}
}

// TotalAcquisitionCost is the price plus estimated notary fees.
func TotalAcquisitionCost(price float64, condition models.PropertyCondition, sim config.SimulatorConfig) float64 {
	return price + NotaryFees(price, condition, sim).Fees
}

// MaxPriceForBudget inverts the fee calculation: the highest property
// price an all-in budget covers, budget = price × (1 + rate).
//
// Inputs are not validated: a negative budget yields a negative price.
// Kept for compatibility with the historical behavior; callers screen
// their budgets.
func MaxPriceForBudget(budget float64, condition models.PropertyCondition, sim config.SimulatorConfig) float64 {
	rate := sim.NotaryRate(condition)
	return math.Round(budget / (1 + rate))
}
