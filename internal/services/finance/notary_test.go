package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
)

var sim = config.DefaultRegulatory().Simulator

func TestNotaryFees_Existing(t *testing.T) {
	fees := NotaryFees(200000, models.PropertyExisting, sim)

	assert.Equal(t, float64(16000), fees.Fees)
	assert.Equal(t, 0.08, fees.AppliedRate)
}

func TestNotaryFees_New(t *testing.T) {
	fees := NotaryFees(200000, models.PropertyNew, sim)

	assert.Equal(t, float64(5000), fees.Fees)
	assert.Equal(t, 0.025, fees.AppliedRate)
}

func TestNotaryFees_BreakdownSumsToTotal(t *testing.T) {
	for _, condition := range []models.PropertyCondition{models.PropertyNew, models.PropertyExisting} {
		fees := NotaryFees(187500, condition, sim)
		b := fees.Breakdown

		assert.Equal(t, fees.Fees, b.TransferDuty+b.Emoluments+b.Disbursements+b.Sundry,
			"breakdown must sum to total for %s", condition)
	}
}

func TestNotaryFees_NonPositivePrice(t *testing.T) {
	fees := NotaryFees(0, models.PropertyExisting, sim)

	assert.Equal(t, float64(0), fees.Fees)
	assert.Equal(t, float64(0), fees.AppliedRate)
}

func TestTotalAcquisitionCost(t *testing.T) {
	assert.Equal(t, float64(216000), TotalAcquisitionCost(200000, models.PropertyExisting, sim))
	assert.Equal(t, float64(205000), TotalAcquisitionCost(200000, models.PropertyNew, sim))
}

func TestMaxPriceForBudget_InvertsFees(t *testing.T) {
	assert.Equal(t, float64(200000), MaxPriceForBudget(216000, models.PropertyExisting, sim))
	assert.Equal(t, float64(200000), MaxPriceForBudget(205000, models.PropertyNew, sim))
}

func TestMaxPriceForBudget_NewBuysMore(t *testing.T) {
	budget := 250000.0

	newPrice := MaxPriceForBudget(budget, models.PropertyNew, sim)
	existingPrice := MaxPriceForBudget(budget, models.PropertyExisting, sim)

	assert.Greater(t, newPrice, existingPrice, "lower fees should buy a higher price")
}

func TestMaxPriceForBudget_NegativeBudgetPassesThrough(t *testing.T) {
	price := MaxPriceForBudget(-108, models.PropertyExisting, sim)

	assert.Equal(t, float64(-100), price, "negative budgets are not screened here")
}
