package finance

import (
	"math"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
)

// TotalPurchaseCapacity combines down payment and borrowable capital into
// the maximum purchase price. The budget covers price plus notary fees,
// so the price is the fee-inverted budget; for equal budgets a new-build
// price is always >= the existing-property price (lower fee rate).
func TotalPurchaseCapacity(downPayment, borrowableCapital float64, condition models.PropertyCondition, sim config.SimulatorConfig) models.PurchaseCapacity {
	totalBudget := downPayment + borrowableCapital
	maxPrice := MaxPriceForBudget(totalBudget, condition, sim)
	fees := NotaryFees(maxPrice, condition, sim).Fees

	return models.PurchaseCapacity{
		MaxPurchasePrice:    maxPrice,
		TotalBudget:         totalBudget,
		EstimatedNotaryFees: fees,
	}
}

// CheckPropertyAffordable reports whether a target property fits the
// available budget once notary fees are added to its price.
func CheckPropertyAffordable(price, downPayment, borrowableCapital float64, condition models.PropertyCondition, sim config.SimulatorConfig) models.AffordabilityCheck {
	fees := NotaryFees(price, condition, sim).Fees
	required := price + fees
	available := downPayment + borrowableCapital

	return models.AffordabilityCheck{
		Affordable:      available >= required,
		RequiredBudget:  required,
		AvailableBudget: available,
		Shortfall:       math.Max(0, required-available),
	}
}

// RequiredDownPayment is the minimum down payment needed to buy at a
// given price with a given borrowing capacity, floored at 0.
func RequiredDownPayment(price, borrowableCapital float64, condition models.PropertyCondition, sim config.SimulatorConfig) float64 {
	totalCost := TotalAcquisitionCost(price, condition, sim)
	return math.Max(0, math.Round(totalCost-borrowableCapital))
}
