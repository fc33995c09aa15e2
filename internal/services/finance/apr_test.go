package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowerInsurance(t *testing.T) {
	cost := BorrowerInsurance(200000, 20, 0.0034)

	assert.InDelta(t, 56.67, cost.MonthlyPremium, 0.01)
	assert.Equal(t, float64(13600), cost.TotalCost)
	assert.Equal(t, 0.0034, cost.AnnualRate)
}

func TestBorrowerInsurance_DegenerateInputs(t *testing.T) {
	cost := BorrowerInsurance(0, 20, 0.0034)

	assert.Equal(t, float64(0), cost.TotalCost)
	assert.Equal(t, 0.0034, cost.AnnualRate, "rate is echoed back")
}

func TestTAEA(t *testing.T) {
	assert.Equal(t, 0.34, TAEA(200000, 13600, 20))
	assert.Equal(t, float64(0), TAEA(0, 13600, 20))
}

func TestCompareInsuranceRates_PreservesOrder(t *testing.T) {
	rates := []float64{0.0015, 0.0034, 0.006}
	results := CompareInsuranceRates(200000, 20, rates)

	require.Len(t, results, 3)
	for i, result := range results {
		assert.Equal(t, rates[i], result.AnnualRate)
	}
	assert.Less(t, results[0].TotalCost, results[2].TotalCost)
}

func TestAPR_StandardLoan(t *testing.T) {
	result := APR(APRInput{
		Principal:     200000,
		NominalRate:   0.035,
		Years:         20,
		FileFees:      1000,
		GuaranteeFees: EstimateGuaranteeFees(200000, GuaranteeSurety),
		InsuranceRate: 0.0034,
	})

	// Fixed costs add 17 000 / (200 000 × 20) × 100 ≈ 0.43 points
	assert.InDelta(t, 3.93, result.APR, 0.02)
	assert.Greater(t, result.APR, 3.5, "APR always exceeds the nominal rate")
	assert.InDelta(t, 95380, result.TotalCost, 100)
	assert.Equal(t, float64(13600), result.Detail.Insurance)
	assert.Equal(t, float64(1000), result.Detail.FileFees)
	assert.Equal(t, float64(2400), result.Detail.GuaranteeFees)
}

func TestAPR_DegenerateInputs(t *testing.T) {
	assert.Zero(t, APR(APRInput{Principal: 0, Years: 20}))
	assert.Zero(t, APR(APRInput{Principal: 200000, Years: 0}))
}

func TestEstimateGuaranteeFees(t *testing.T) {
	assert.Equal(t, float64(3000), EstimateGuaranteeFees(200000, GuaranteeMortgage))
	assert.Equal(t, float64(2400), EstimateGuaranteeFees(200000, GuaranteeSurety))
	assert.Equal(t, float64(0), EstimateGuaranteeFees(0, GuaranteeSurety))
}

func TestCheckUsuryRate(t *testing.T) {
	assert.True(t, CheckUsuryRate(3.93, 5.48))
	assert.True(t, CheckUsuryRate(5.48, 5.48), "exactly at the cap is legal")
	assert.False(t, CheckUsuryRate(5.49, 5.48))
}
