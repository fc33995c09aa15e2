package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mortgage-advisory-engine/internal/models"
)

var allowanceCfg = sim.Allowance

func TestDisposableIncome(t *testing.T) {
	assert.Equal(t, float64(2600), DisposableIncome(4000, 200, 1200))
	assert.Equal(t, float64(-100), DisposableIncome(1500, 400, 1200), "may go negative")
}

func TestMinimumAllowance(t *testing.T) {
	assert.Equal(t, float64(800), MinimumAllowance(models.HouseholdSingle, 0, allowanceCfg))
	assert.Equal(t, float64(1200), MinimumAllowance(models.HouseholdCouple, 0, allowanceCfg))
	assert.Equal(t, float64(1800), MinimumAllowance(models.HouseholdCouple, 2, allowanceCfg))
}

func TestMinimumAllowance_NegativeChildrenClamped(t *testing.T) {
	assert.Equal(t, float64(800), MinimumAllowance(models.HouseholdSingle, -3, allowanceCfg))
}

func TestCheckMinimumAllowance_ZeroMarginIsSufficient(t *testing.T) {
	check := CheckMinimumAllowance(1800, models.HouseholdCouple, 2, allowanceCfg)

	assert.True(t, check.Sufficient)
	assert.Equal(t, float64(0), check.Margin)
	assert.Equal(t, float64(1800), check.Minimum)
}

func TestCheckMinimumAllowance_Insufficient(t *testing.T) {
	check := CheckMinimumAllowance(1000, models.HouseholdCouple, 2, allowanceCfg)

	assert.False(t, check.Sufficient)
	assert.Equal(t, float64(-800), check.Margin)
}

func TestMaxPaymentForAllowance(t *testing.T) {
	payment := MaxPaymentForAllowance(4000, 200, models.HouseholdCouple, 2, allowanceCfg)

	assert.Equal(t, float64(2000), payment)
}

func TestMaxPaymentForAllowance_FlooredAtZero(t *testing.T) {
	payment := MaxPaymentForAllowance(1000, 500, models.HouseholdCouple, 2, allowanceCfg)

	assert.Equal(t, float64(0), payment)
}
