// Package models defines the data structures for the mortgage advisory engine.
package models

// LoanTerms are the parameters of a single amortizing loan. AnnualRate is
// a fraction (0.035 = 3.5%); a zero rate is valid and degrades to linear
// repayment. A non-positive principal or duration yields zero-valued
// results rather than an error.
type LoanTerms struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	Years      int     `json:"years"`
}

// ScheduleEntry is one month of an amortization schedule.
type ScheduleEntry struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Remaining float64 `json:"remaining"`
}

// NotaryBreakdown itemizes the conceptual sub-components of acquisition
// fees. The components sum to the total fees.
type NotaryBreakdown struct {
	TransferDuty  float64 `json:"transfer_duty"`
	Emoluments    float64 `json:"emoluments"`
	Disbursements float64 `json:"disbursements"`
	Sundry        float64 `json:"sundry"`
}

// NotaryFees is the acquisition-fee estimate for a given price and
// property condition.
type NotaryFees struct {
	Fees        float64         `json:"fees"`
	AppliedRate float64         `json:"applied_rate"`
	Breakdown   NotaryBreakdown `json:"breakdown"`
}

// BorrowingCapacity is the maximum loan a household can service under the
// debt-ratio cap.
type BorrowingCapacity struct {
	// MaxMonthlyPayment = max(0, income × debtRatioCap − existing charges).
	MaxMonthlyPayment float64 `json:"max_monthly_payment"`
	// Capacity is the principal obtained by annuity inversion of the payment.
	Capacity float64 `json:"capacity"`
	// AnnuityFactor = round(capacity / payment), 0 when the payment is 0.
	AnnuityFactor int `json:"annuity_factor"`
}

// DurationCapacity is one row of the capacity-by-duration table.
type DurationCapacity struct {
	Years    int     `json:"years"`
	Capacity float64 `json:"capacity"`
	Payment  float64 `json:"payment"`
}

// PurchaseCapacity combines down payment and borrowable capital into a
// maximum purchase price net of estimated notary fees.
type PurchaseCapacity struct {
	MaxPurchasePrice    float64 `json:"max_purchase_price"`
	TotalBudget         float64 `json:"total_budget"`
	EstimatedNotaryFees float64 `json:"estimated_notary_fees"`
}

// AffordabilityCheck reports whether a target property fits the available
// budget, fees included.
type AffordabilityCheck struct {
	Affordable      bool    `json:"affordable"`
	RequiredBudget  float64 `json:"required_budget"`
	AvailableBudget float64 `json:"available_budget"`
	Shortfall       float64 `json:"shortfall"`
}

// AllowanceCheck is the result of the minimum living-allowance check
// (reste à vivre). A margin of exactly 0 is sufficient.
type AllowanceCheck struct {
	Sufficient bool    `json:"sufficient"`
	Amount     float64 `json:"amount"`
	Minimum    float64 `json:"minimum"`
	Margin     float64 `json:"margin"`
}

// DebtLevel qualifies a debt ratio against the regulatory thresholds.
type DebtLevel string

const (
	DebtLevelOK       DebtLevel = "ok"
	DebtLevelLimit    DebtLevel = "limite"
	DebtLevelExceeded DebtLevel = "depassement"
)

// DebtRatioCheck is the result of checking a debt ratio (in percent)
// against the alert threshold and the HCSF cap.
type DebtRatioCheck struct {
	Valid   bool      `json:"valid"`
	Level   DebtLevel `json:"level"`
	Excess  float64   `json:"excess"`
	Message string    `json:"message"`
}

// InsuranceCost is the borrower-insurance estimate, computed on the
// initial principal.
type InsuranceCost struct {
	MonthlyPremium float64 `json:"monthly_premium"`
	TotalCost      float64 `json:"total_cost"`
	AnnualRate     float64 `json:"annual_rate"`
}

// APRDetail itemizes the mandatory costs entering the APR.
type APRDetail struct {
	Interest      float64 `json:"interest"`
	Insurance     float64 `json:"insurance"`
	FileFees      float64 `json:"file_fees"`
	GuaranteeFees float64 `json:"guarantee_fees"`
}

// APRResult is the all-in annual percentage rate (TAEG) of a loan, in
// percent, with the total cost of credit.
type APRResult struct {
	APR       float64   `json:"apr"`
	TotalCost float64   `json:"total_cost"`
	Detail    APRDetail `json:"detail"`
}
