package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment_StandardLoan(t *testing.T) {
	// 200 000 € over 20 years at 3.5%
	payment := MonthlyPayment(200000, 0.035, 20)

	assert.InDelta(t, 1160, payment, 10, "payment should be close to 1160 €/month")
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	// PTZ case: linear repayment
	payment := MonthlyPayment(120000, 0, 20)

	assert.Equal(t, float64(500), payment)
}

func TestMonthlyPayment_DegenerateInputs(t *testing.T) {
	assert.Equal(t, float64(0), MonthlyPayment(0, 0.035, 20))
	assert.Equal(t, float64(0), MonthlyPayment(-1000, 0.035, 20))
	assert.Equal(t, float64(0), MonthlyPayment(200000, 0.035, 0))
}

func TestPrincipalFromPayment_InvertsMonthlyPayment(t *testing.T) {
	payment := MonthlyPayment(200000, 0.035, 20)
	principal := PrincipalFromPayment(payment, 0.035, 20)

	assert.InDelta(t, 200000, principal, 5, "round trip should recover the principal")
}

func TestPrincipalFromPayment_ZeroRate(t *testing.T) {
	principal := PrincipalFromPayment(500, 0, 20)

	assert.Equal(t, float64(120000), principal)
}

func TestPrincipalFromPayment_DegenerateInputs(t *testing.T) {
	assert.Equal(t, float64(0), PrincipalFromPayment(0, 0.035, 20))
	assert.Equal(t, float64(0), PrincipalFromPayment(-500, 0.035, 20))
	assert.Equal(t, float64(0), PrincipalFromPayment(1200, 0.035, 0))
}

func TestInterestCost(t *testing.T) {
	cost := InterestCost(200000, 1160, 20)

	assert.Equal(t, float64(78400), cost)
}

func TestSchedule_FullAmortization(t *testing.T) {
	schedule := Schedule(100000, 0.03, 10)

	require.Len(t, schedule, 120, "10 years should give 120 monthly entries")

	// First month interest = 100 000 × 0.03 / 12
	assert.InDelta(t, 250, schedule[0].Interest, 0.01)

	// The last entry amortizes the loan completely.
	assert.InDelta(t, 0, schedule[119].Remaining, 1)

	// The principal components sum back to the borrowed capital.
	var repaid float64
	for _, entry := range schedule {
		repaid += entry.Principal
	}
	assert.InDelta(t, 100000, repaid, 5)
}

func TestSchedule_DecreasingInterest(t *testing.T) {
	schedule := Schedule(150000, 0.04, 15)

	require.NotEmpty(t, schedule)
	assert.Greater(t, schedule[0].Interest, schedule[len(schedule)-1].Interest,
		"interest share should decrease over time")
}

func TestSchedule_DegenerateInputs(t *testing.T) {
	assert.Nil(t, Schedule(0, 0.03, 10))
	assert.Nil(t, Schedule(100000, 0.03, 0))
}
