// Package models defines the data structures for the mortgage advisory engine.
package models

import "time"

// SimulationRequest is the full input of one simulation run. AnnualRate
// is a fraction (0.035); a zero rate means "use the market reference
// rate for the duration". Zero Years selects the default duration.
type SimulationRequest struct {
	Profile           FinancialProfile  `json:"profile"`
	Years             int               `json:"years"`
	AnnualRate        float64           `json:"annual_rate"`
	DownPayment       float64           `json:"down_payment"`
	PropertyCondition PropertyCondition `json:"property_condition"`
}

// SimulationResult is the complete computed snapshot of one run: the
// financing capacity, regulatory checks, feasibility score and advisory
// report, plus the capacity-by-duration comparison table.
type SimulationResult struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Request SimulationRequest `json:"request"`

	// Effective loan terms after defaulting.
	Years      int     `json:"years"`
	AnnualRate float64 `json:"annual_rate"`

	Capacity      BorrowingCapacity  `json:"capacity"`
	Purchase      PurchaseCapacity   `json:"purchase"`
	DebtRatio     DebtRatioCheck     `json:"debt_ratio"`
	DebtRatioPct  float64            `json:"debt_ratio_pct"`
	Allowance     AllowanceCheck     `json:"allowance"`
	Score         FeasibilityScore   `json:"score"`
	Insurance     InsuranceCost      `json:"insurance"`
	APR           APRResult          `json:"apr"`
	CapacityTable []DurationCapacity `json:"capacity_table"`
	Surfaces      AreaSurfaces       `json:"surfaces"`

	Report AdvisoryReport `json:"report"`
}

// AreaSurfaces previews the affordable surface in m² per Île-de-France
// ring for the computed purchase budget.
type AreaSurfaces struct {
	Paris        int `json:"paris"`
	InnerSuburbs int `json:"inner_suburbs"`
	OuterSuburbs int `json:"outer_suburbs"`
}
