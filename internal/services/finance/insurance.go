package finance

import (
	"math"

	"mortgage-advisory-engine/internal/models"
)

// BorrowerInsurance estimates borrower insurance on the initial principal
// (the most common pricing mode). annualRate is a fraction of the
// principal per year, e.g. 0.0034.
func BorrowerInsurance(principal float64, years int, annualRate float64) models.InsuranceCost {
	if principal <= 0 || years <= 0 {
		return models.InsuranceCost{AnnualRate: annualRate}
	}

	annualCost := principal * annualRate

	return models.InsuranceCost{
		MonthlyPremium: roundTo2(annualCost / 12),
		TotalCost:      math.Round(annualCost * float64(years)),
		AnnualRate:     annualRate,
	}
}

// TAEA is the simplified effective annual insurance rate in percent:
// (total cost / principal) / years × 100.
func TAEA(principal, totalInsuranceCost float64, years int) float64 {
	if principal <= 0 || years <= 0 {
		return 0
	}

	return roundTo2(totalInsuranceCost / principal / float64(years) * 100)
}

// CompareInsuranceRates prices the same loan under several insurance
// rates, in the order given.
func CompareInsuranceRates(principal float64, years int, rates []float64) []models.InsuranceCost {
	results := make([]models.InsuranceCost, 0, len(rates))
	for _, rate := range rates {
		results = append(results, BorrowerInsurance(principal, years, rate))
	}
	return results
}
