// Package models defines the data structures for the mortgage advisory engine.
package models

import (
	"errors"
	"strings"
)

// Common errors
var (
	ErrInvalidEmploymentStatus  = errors.New("invalid employment status")
	ErrInvalidHousehold         = errors.New("invalid household type")
	ErrInvalidPropertyCondition = errors.New("invalid property condition")
	ErrInvalidAge               = errors.New("age must be between 18 and 120")
	ErrNegativeIncome           = errors.New("income cannot be negative")
	ErrNegativeCharges          = errors.New("charges cannot be negative")
	ErrNegativeChildren         = errors.New("number of children cannot be negative")
	ErrSimulationNotFound       = errors.New("simulation not found")
)

// NormalizeEmploymentStatus converts common status spellings to the
// standard values (accents stripped, separators unified).
func NormalizeEmploymentStatus(status string) EmploymentStatus {
	normalized := strings.ToLower(strings.TrimSpace(status))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	statusMap := map[string]EmploymentStatus{
		"cdi":                 EmploymentStatusCDI,
		"cdd":                 EmploymentStatusCDD,
		"fonctionnaire":       EmploymentStatusCivilServant,
		"civil_servant":       EmploymentStatusCivilServant,
		"independant":         EmploymentStatusSelfEmployed,
		"indépendant":         EmploymentStatusSelfEmployed,
		"auto_entrepreneur":   EmploymentStatusSelfEmployed,
		"autoentrepreneur":    EmploymentStatusSelfEmployed,
		"freelance":           EmploymentStatusSelfEmployed,
		"profession_liberale": EmploymentStatusLiberal,
		"professionliberale":  EmploymentStatusLiberal,
		"liberal":             EmploymentStatusLiberal,
		"interim":             EmploymentStatusTempWork,
		"intérim":             EmploymentStatusTempWork,
		"interimaire":         EmploymentStatusTempWork,
		"intérimaire":         EmploymentStatusTempWork,
		"retraite":            EmploymentStatusRetired,
		"retraité":            EmploymentStatusRetired,
		"retired":             EmploymentStatusRetired,
		"etudiant":            EmploymentStatusStudent,
		"étudiant":            EmploymentStatusStudent,
		"student":             EmploymentStatusStudent,
		"autre":               EmploymentStatusOther,
		"other":               EmploymentStatusOther,
	}

	if mapped, ok := statusMap[normalized]; ok {
		return mapped
	}

	// Return as-is if no mapping found (will fail validation)
	return EmploymentStatus(normalized)
}

// ValidateProfile validates a financial profile at the API boundary.
// The calculators themselves accept degenerate inputs and degrade to
// documented sentinel values; this is the one place inputs are rejected.
func ValidateProfile(p *FinancialProfile) error {
	if p.Age < 18 || p.Age > 120 {
		return ErrInvalidAge
	}

	if !p.EmploymentStatus.IsValid() {
		return ErrInvalidEmploymentStatus
	}

	if !p.Household.IsValid() {
		return ErrInvalidHousehold
	}

	if p.Children < 0 {
		return ErrNegativeChildren
	}

	if p.PrimarySalary < 0 || p.SecondarySalary < 0 || p.OtherIncome < 0 {
		return ErrNegativeIncome
	}

	if p.LoanPayments < 0 || p.OtherCharges < 0 {
		return ErrNegativeCharges
	}

	return nil
}
