package finance

import (
	"math"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
)

// BorrowingCapacityInput are the parameters of a borrowing-capacity
// computation. AnnualRate is a fraction. A zero DebtRatioCap falls back
// to the regulatory cap from the simulator config.
type BorrowingCapacityInput struct {
	NetIncome      float64
	MonthlyCharges float64
	Years          int
	AnnualRate     float64
	DebtRatioCap   float64
}

// BorrowingCapacity computes the maximum sustainable monthly payment
// under the debt-ratio cap and the principal that payment can service.
// Capacity is non-decreasing in years and non-increasing in rate.
func BorrowingCapacity(in BorrowingCapacityInput, sim config.SimulatorConfig) models.BorrowingCapacity {
	cap := in.DebtRatioCap
	if cap == 0 {
		cap = sim.MaxDebtRatio
	}

	payment := MaxMonthlyPayment(in.NetIncome, in.MonthlyCharges, cap)
	capacity := PrincipalFromPayment(payment, in.AnnualRate, in.Years)

	annuityFactor := 0
	if payment > 0 {
		annuityFactor = int(math.Round(capacity / payment))
	}

	return models.BorrowingCapacity{
		MaxMonthlyPayment: payment,
		Capacity:          capacity,
		AnnuityFactor:     annuityFactor,
	}
}

// CapacityByDuration tabulates the borrowing capacity over the configured
// candidate durations. The payment column is constant (same debt-ratio
// cap throughout); capacity grows with duration.
func CapacityByDuration(netIncome, monthlyCharges, annualRate float64, sim config.SimulatorConfig) []models.DurationCapacity {
	table := make([]models.DurationCapacity, 0, len(sim.CapacityDurations))

	for _, years := range sim.CapacityDurations {
		result := BorrowingCapacity(BorrowingCapacityInput{
			NetIncome:      netIncome,
			MonthlyCharges: monthlyCharges,
			Years:          years,
			AnnualRate:     annualRate,
		}, sim)

		table = append(table, models.DurationCapacity{
			Years:    years,
			Capacity: result.Capacity,
			Payment:  result.MaxMonthlyPayment,
		})
	}

	return table
}

// OptimalDuration finds the shortest duration within the regulatory
// bounds whose capacity reaches the target amount. ok is false when even
// the longest duration falls short.
func OptimalDuration(target, netIncome, monthlyCharges, annualRate float64, sim config.SimulatorConfig) (years int, payment float64, ok bool) {
	for duration := sim.MinYears; duration <= sim.MaxYears; duration++ {
		result := BorrowingCapacity(BorrowingCapacityInput{
			NetIncome:      netIncome,
			MonthlyCharges: monthlyCharges,
			Years:          duration,
			AnnualRate:     annualRate,
		}, sim)

		if result.Capacity >= target {
			return duration, result.MaxMonthlyPayment, true
		}
	}

	return 0, 0, false
}
