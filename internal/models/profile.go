// Package models defines the data structures for the mortgage advisory engine.
package models

// EmploymentStatus represents the professional status of a borrower.
type EmploymentStatus string

const (
	EmploymentStatusCDI          EmploymentStatus = "cdi"
	EmploymentStatusCDD          EmploymentStatus = "cdd"
	EmploymentStatusCivilServant EmploymentStatus = "fonctionnaire"
	EmploymentStatusSelfEmployed EmploymentStatus = "independant"
	EmploymentStatusLiberal      EmploymentStatus = "profession_liberale"
	EmploymentStatusTempWork     EmploymentStatus = "interim"
	EmploymentStatusRetired      EmploymentStatus = "retraite"
	EmploymentStatusStudent      EmploymentStatus = "etudiant"
	EmploymentStatusOther        EmploymentStatus = "autre"
)

// ValidEmploymentStatuses returns all valid employment status values.
func ValidEmploymentStatuses() []EmploymentStatus {
	return []EmploymentStatus{
		EmploymentStatusCDI,
		EmploymentStatusCDD,
		EmploymentStatusCivilServant,
		EmploymentStatusSelfEmployed,
		EmploymentStatusLiberal,
		EmploymentStatusTempWork,
		EmploymentStatusRetired,
		EmploymentStatusStudent,
		EmploymentStatusOther,
	}
}

// IsValid checks if the employment status is valid.
func (e EmploymentStatus) IsValid() bool {
	for _, valid := range ValidEmploymentStatuses() {
		if e == valid {
			return true
		}
	}
	return false
}

// HouseholdType represents the composition of the borrowing household.
type HouseholdType string

const (
	HouseholdSingle HouseholdType = "celibataire"
	HouseholdCouple HouseholdType = "couple"
)

// IsValid checks if the household type is valid.
func (h HouseholdType) IsValid() bool {
	return h == HouseholdSingle || h == HouseholdCouple
}

// PropertyCondition distinguishes new-build from existing properties.
// The notary-fee rate and several aid schemes depend on it.
type PropertyCondition string

const (
	PropertyNew      PropertyCondition = "neuf"
	PropertyExisting PropertyCondition = "ancien"
)

// IsValid checks if the property condition is valid.
func (c PropertyCondition) IsValid() bool {
	return c == PropertyNew || c == PropertyExisting
}

// PropertyKind is the property category used by the map-zone classifier.
type PropertyKind string

const (
	PropertyApartment PropertyKind = "appartement"
	PropertyHouse     PropertyKind = "maison"
)

// ContractType is the work contract type checked by Action Logement.
type ContractType string

const (
	ContractCDI     ContractType = "CDI"
	ContractCDD     ContractType = "CDD"
	ContractInterim ContractType = "interim"
)

// Sector is the employment sector checked by Action Logement.
type Sector string

const (
	SectorPrivate Sector = "prive"
	SectorPublic  Sector = "public"
)

// FinancialProfile describes the household finances a simulation starts
// from. All monetary fields are monthly amounts in euros and must be >= 0;
// validation happens at the boundary (ValidateProfile), the calculators
// themselves are permissive.
type FinancialProfile struct {
	Age              int              `json:"age"`
	EmploymentStatus EmploymentStatus `json:"employment_status"`
	Household        HouseholdType    `json:"household"`
	Children         int              `json:"children"`
	PrimarySalary    float64          `json:"primary_salary"`
	SecondarySalary  float64          `json:"secondary_salary"`
	OtherIncome      float64          `json:"other_income"`
	LoanPayments     float64          `json:"loan_payments"`
	OtherCharges     float64          `json:"other_charges"`
}

// NetMonthlyIncome sums all income sources of the household.
func (p FinancialProfile) NetMonthlyIncome() float64 {
	return p.PrimarySalary + p.SecondarySalary + p.OtherIncome
}

// MonthlyCharges sums existing debt service and other recurring charges.
func (p FinancialProfile) MonthlyCharges() float64 {
	return p.LoanPayments + p.OtherCharges
}

// HouseholdSize counts the persons in the household (adults + children).
func (p FinancialProfile) HouseholdSize() int {
	adults := 1
	if p.Household == HouseholdCouple {
		adults = 2
	}
	if p.Children < 0 {
		return adults
	}
	return adults + p.Children
}
