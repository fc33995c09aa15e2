package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-advisory-engine/internal/models"
)

func idealProfile() models.ScoreInput {
	return models.ScoreInput{
		DebtRatio:        25,
		Allowance:        1600,
		AllowanceMin:     800,
		DownPayment:      60000,
		PurchasePrice:    200000,
		EmploymentStatus: models.EmploymentStatusCivilServant,
		Age:              30,
		Years:            15,
		MonthlyCharges:   0,
		MonthlyIncome:    4000,
	}
}

func TestCompute_IdealProfileScoresFull(t *testing.T) {
	result := Compute(idealProfile())

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, "Excellent", result.Label)
	assert.Equal(t, "green", result.Color)
}

func TestCompute_SevenCriteriaSumToScore(t *testing.T) {
	result := Compute(models.ScoreInput{
		DebtRatio:        32,
		Allowance:        1300,
		AllowanceMin:     1200,
		DownPayment:      20000,
		PurchasePrice:    250000,
		EmploymentStatus: models.EmploymentStatusCDI,
		Age:              35,
		Years:            22,
		MonthlyCharges:   300,
		MonthlyIncome:    3500,
	})

	require.Len(t, result.Details, 7)

	maxTotal := 0
	pointTotal := 0
	for _, d := range result.Details {
		assert.GreaterOrEqual(t, d.Points, 0)
		assert.LessOrEqual(t, d.Points, d.Max)
		maxTotal += d.Max
		pointTotal += d.Points
	}
	assert.Equal(t, 100, maxTotal)
	assert.Equal(t, pointTotal, result.Score)
}

func TestCompute_WeakProfileStaysInBounds(t *testing.T) {
	result := Compute(models.ScoreInput{
		DebtRatio:        42,
		Allowance:        200,
		AllowanceMin:     1200,
		DownPayment:      0,
		PurchasePrice:    200000,
		EmploymentStatus: models.EmploymentStatusStudent,
		Age:              62,
		Years:            25,
		MonthlyCharges:   900,
		MonthlyIncome:    2500,
	})

	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 10)
	assert.Equal(t, "Critique", result.Label)
	assert.Equal(t, "red", result.Color)
}

func TestCompute_DebtRatioBands(t *testing.T) {
	cases := []struct {
		ratio  float64
		points int
	}{
		{25, 30}, {28, 27}, {30, 24}, {33, 18}, {35, 10}, {37, 4}, {38, 0},
	}

	for _, tc := range cases {
		in := idealProfile()
		in.DebtRatio = tc.ratio
		result := Compute(in)

		assert.Equal(t, tc.points, result.Details[0].Points, "debt ratio %.0f", tc.ratio)
	}
}

func TestCompute_AllowanceWithoutMinimumIsNeutral(t *testing.T) {
	in := idealProfile()
	in.AllowanceMin = 0
	result := Compute(in)

	assert.Equal(t, 10, result.Details[1].Points)
}

func TestCompute_YoungBorrowerPenalty(t *testing.T) {
	in := idealProfile()
	in.Age = 20
	in.Years = 20
	young := Compute(in)

	in.Age = 30
	mature := Compute(in)

	assert.Equal(t, mature.Details[4].Points-1, young.Details[4].Points,
		"borrowers under 22 lose one point on the age criterion")
}

func TestCompute_ZeroPriceSkipsDownPaymentRatio(t *testing.T) {
	in := idealProfile()
	in.PurchasePrice = 0
	result := Compute(in)

	assert.Equal(t, 0, result.Details[2].Points, "no price means the ratio cannot be computed")
}

func TestLabelBands(t *testing.T) {
	assert.Equal(t, "Excellent", Label(80))
	assert.Equal(t, "Bon", Label(79))
	assert.Equal(t, "Bon", Label(65))
	assert.Equal(t, "Moyen", Label(64))
	assert.Equal(t, "Moyen", Label(50))
	assert.Equal(t, "Fragile", Label(49))
	assert.Equal(t, "Fragile", Label(35))
	assert.Equal(t, "Critique", Label(34))
}

func TestColorBands(t *testing.T) {
	assert.Equal(t, "green", Color(85))
	assert.Equal(t, "amber", Color(70))
	assert.Equal(t, "orange", Color(55))
	assert.Equal(t, "red", Color(40))
}
