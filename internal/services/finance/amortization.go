// Package finance implements the pure mortgage calculation primitives:
// amortization math, notary fees, borrowing and purchase capacity, living
// allowance, debt ratio, borrower insurance and APR. Every function is a
// stateless transform; degenerate inputs yield documented sentinel values
// rather than errors.
package finance

import (
	"math"

	"mortgage-advisory-engine/internal/models"
)

// roundTo2 rounds a float64 to 2 decimals.
func roundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}

// MonthlyPayment computes the constant-annuity payment of a loan,
// excluding insurance, rounded to the cent.
//
// Formula: M = C × (t / (1 − (1 + t)^−n)) with t the monthly rate and n
// the number of months. A zero annual rate degrades to linear division
// (PTZ case). Returns 0 when principal or years is non-positive.
func MonthlyPayment(principal, annualRate float64, years int) float64 {
	if principal <= 0 || years <= 0 {
		return 0
	}

	months := float64(years * 12)

	if annualRate == 0 {
		return math.Round(principal / months)
	}

	monthlyRate := annualRate / 12
	payment := principal * (monthlyRate / (1 - math.Pow(1+monthlyRate, -months)))

	return roundTo2(payment)
}

// PrincipalFromPayment is the algebraic inverse of MonthlyPayment: the
// capital a given payment can service, rounded to the euro. Returns 0 for
// a non-positive payment or duration.
func PrincipalFromPayment(payment, annualRate float64, years int) float64 {
	if payment <= 0 || years <= 0 {
		return 0
	}

	months := float64(years * 12)

	if annualRate == 0 {
		return math.Round(payment * months)
	}

	monthlyRate := annualRate / 12
	principal := payment * ((1 - math.Pow(1+monthlyRate, -months)) / monthlyRate)

	return math.Round(principal)
}

// InterestCost is the total interest paid over the life of the loan:
// payment × months − principal, rounded to the euro.
func InterestCost(principal, payment float64, years int) float64 {
	totalRepaid := payment * float64(years) * 12
	return math.Round(totalRepaid - principal)
}

// Schedule generates the full amortization table, one entry per month.
// The last entry's remaining principal is within rounding tolerance of 0
// and the principal components sum back to the original capital. Returns
// nil when principal or years is non-positive.
func Schedule(principal, annualRate float64, years int) []models.ScheduleEntry {
	if principal <= 0 || years <= 0 {
		return nil
	}

	payment := MonthlyPayment(principal, annualRate, years)
	monthlyRate := annualRate / 12
	months := years * 12

	schedule := make([]models.ScheduleEntry, 0, months)
	remaining := principal

	for month := 1; month <= months; month++ {
		interest := remaining * monthlyRate
		repaid := payment - interest
		remaining -= repaid

		schedule = append(schedule, models.ScheduleEntry{
			Month:     month,
			Payment:   payment,
			Interest:  roundTo2(interest),
			Principal: roundTo2(repaid),
			Remaining: math.Max(0, roundTo2(remaining)),
		})
	}

	return schedule
}
