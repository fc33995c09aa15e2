package finance

import (
	"math"

	"mortgage-advisory-engine/internal/models"
)

// GuaranteeKind selects the estimation basis for guarantee fees.
type GuaranteeKind string

const (
	GuaranteeMortgage GuaranteeKind = "hypotheque"
	GuaranteeSurety   GuaranteeKind = "caution"
)

// APRInput are the parameters of an all-in APR computation. NominalRate
// and InsuranceRate are fractions; the result APR is in percent.
type APRInput struct {
	Principal     float64
	NominalRate   float64
	Years         int
	FileFees      float64
	GuaranteeFees float64
	InsuranceRate float64
}

// APR approximates the TAEG: nominal rate plus the spread contributed by
// insurance and fixed fees. The exact TAEG requires an iterative IRR
// solve; this closed-form approximation tracks it closely for standard
// mortgage profiles.
func APR(in APRInput) models.APRResult {
	if in.Principal <= 0 || in.Years <= 0 {
		return models.APRResult{}
	}

	payment := MonthlyPayment(in.Principal, in.NominalRate, in.Years)
	interest := InterestCost(in.Principal, payment, in.Years)

	insurance := BorrowerInsurance(in.Principal, in.Years, in.InsuranceRate).TotalCost

	totalCost := interest + insurance + in.FileFees + in.GuaranteeFees

	years := float64(in.Years)
	allInSpread := totalCost / in.Principal / years * 100
	interestSpread := interest / in.Principal / years * 100
	apr := in.NominalRate*100 + (allInSpread - interestSpread)

	return models.APRResult{
		APR:       roundTo2(apr),
		TotalCost: math.Round(totalCost),
		Detail: models.APRDetail{
			Interest:      math.Round(interest),
			Insurance:     math.Round(insurance),
			FileFees:      in.FileFees,
			GuaranteeFees: in.GuaranteeFees,
		},
	}
}

// EstimateGuaranteeFees estimates guarantee costs from the principal:
// ~1.5% for a mortgage lien, ~1.2% for a surety company.
func EstimateGuaranteeFees(principal float64, kind GuaranteeKind) float64 {
	if principal <= 0 {
		return 0
	}

	rate := 0.012
	if kind == GuaranteeMortgage {
		rate = 0.015
	}

	return math.Round(principal * rate)
}

// CheckUsuryRate reports whether an APR (percent) respects the legal
// usury cap.
func CheckUsuryRate(apr, usuryRate float64) bool {
	return apr <= usuryRate
}
