// Package models defines the data structures for the mortgage advisory engine.
package models

// PTZZone is a PTZ geographic zone code (housing-market tension scale).
type PTZZone string

const (
	PTZZoneAbis PTZZone = "Abis"
	PTZZoneA    PTZZone = "A"
	PTZZoneB1   PTZZone = "B1"
	PTZZoneB2   PTZZone = "B2"
	PTZZoneC    PTZZone = "C"
)

// PASZone is the simplified zone scale used by the PAS income brackets.
type PASZone string

const (
	PASZoneA PASZone = "A"
	PASZoneB PASZone = "B"
	PASZoneC PASZone = "C"
)

// Condition is one named eligibility criterion with the value compared
// and the threshold it was compared against.
type Condition struct {
	Criterion   string      `json:"criterion"`
	Met         bool        `json:"met"`
	Actual      interface{} `json:"actual"`
	Required    interface{} `json:"required"`
	Description string      `json:"description"`
}

// EligibilityResult is the shared result shape of the PTZ, PAS and Action
// Logement calculators. Eligible is the AND of all conditions; MaxAmount,
// MaxYears and Rate are only meaningful when Eligible is true.
type EligibilityResult struct {
	Eligible   bool        `json:"eligible"`
	MaxAmount  float64     `json:"max_amount,omitempty"`
	MaxYears   int         `json:"max_years,omitempty"`
	Rate       float64     `json:"rate"`
	Conditions []Condition `json:"conditions"`
	Reasons    []string    `json:"reasons,omitempty"`
}

// PTZParams is the buyer/property profile evaluated by the PTZ calculator.
type PTZParams struct {
	Zone           PTZZone           `json:"zone"`
	Condition      PropertyCondition `json:"condition"`
	Price          float64           `json:"price"`
	// ReferenceIncome is the N-2 taxable income of the household.
	ReferenceIncome float64 `json:"reference_income"`
	HouseholdSize   int     `json:"household_size"`
	FirstTimeBuyer  bool    `json:"first_time_buyer"`
}

// PASParams is the profile evaluated by the PAS calculator.
type PASParams struct {
	Zone            PASZone `json:"zone"`
	ReferenceIncome float64 `json:"reference_income"`
	HouseholdSize   int     `json:"household_size"`
	OperationAmount float64 `json:"operation_amount"`
}

// ActionLogementParams is the employee profile evaluated by the Action
// Logement calculator.
type ActionLogementParams struct {
	Sector       Sector       `json:"sector"`
	CompanySize  int          `json:"company_size"`
	TenureMonths int          `json:"tenure_months"`
	Contract     ContractType `json:"contract"`
	TenseZone    bool         `json:"tense_zone"`
}
