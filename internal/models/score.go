// Package models defines the data structures for the mortgage advisory engine.
package models

// ScoreInput carries everything the feasibility-score engine needs. Debt
// ratios are percentages (33.3 = 33.3%); monetary fields are euros.
type ScoreInput struct {
	// DebtRatio is the project debt ratio in percent.
	DebtRatio float64 `json:"debt_ratio"`
	// Allowance and AllowanceMin are the computed and minimum reste à vivre.
	Allowance    float64 `json:"allowance"`
	AllowanceMin float64 `json:"allowance_min"`
	// DownPayment and PurchasePrice determine the down-payment percentage.
	DownPayment   float64 `json:"down_payment"`
	PurchasePrice float64 `json:"purchase_price"`

	EmploymentStatus EmploymentStatus `json:"employment_status"`
	Age              int              `json:"age"`
	Years            int              `json:"years"`

	MonthlyCharges float64 `json:"monthly_charges"`
	MonthlyIncome  float64 `json:"monthly_income"`
}

// CriterionScore is one criterion of the feasibility score with its own
// point cap and a short commentary.
type CriterionScore struct {
	Criterion string `json:"criterion"`
	Points    int    `json:"points"`
	Max       int    `json:"max"`
	Comment   string `json:"comment"`
}

// FeasibilityScore is the composite bank-style score: seven independently
// capped criteria summed to 0-100, plus a qualitative label.
type FeasibilityScore struct {
	Score   int              `json:"score"`
	Details []CriterionScore `json:"details"`
	Label   string           `json:"label"`
	Color   string           `json:"color"`
}
