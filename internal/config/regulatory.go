// Package config provides configuration management for the application.
package config

import (
	"mortgage-advisory-engine/internal/models"
)

// AllowanceConfig holds the minimum living-allowance amounts in euros per
// month (reste à vivre).
type AllowanceConfig struct {
	Single   float64
	Couple   float64
	PerChild float64
}

// ReferenceRates are average market rates per duration band, as fractions.
type ReferenceRates struct {
	Short  float64 // 10-15 years
	Medium float64 // 15-20 years
	Long   float64 // 20-25 years
}

// SimulatorConfig bundles the regulatory parameters of the core
// calculators (HCSF 2024-2026).
type SimulatorConfig struct {
	// MaxDebtRatio is the HCSF cap, AlertDebtRatio the internal alert
	// threshold (90% of the cap). Both are fractions.
	MaxDebtRatio   float64
	AlertDebtRatio float64

	// Loan duration bounds in years (HCSF: 25 max).
	MinYears     int
	MaxYears     int
	DefaultYears int

	// Notary-fee rates by property condition, as fractions of the price.
	NotaryRateNew      float64
	NotaryRateExisting float64

	// Average borrower-insurance rate, fraction of principal per year.
	AvgInsuranceRate float64

	Allowance AllowanceConfig
	Rates     ReferenceRates

	// Candidate durations of the capacity-by-duration table.
	CapacityDurations []int
}

// PTZConfig holds the PTZ regulatory tables. Income ceilings are keyed by
// zone then household size; households above MaxHouseholdSize reuse the
// largest bracket. Unknown zones look up to 0 and fail the condition.
type PTZConfig struct {
	IncomeCeilings map[models.PTZZone]map[int]float64
	PriceCeilings  map[models.PTZZone]float64

	// Financeable share of the capped price.
	QuotaNew       float64
	QuotaRenovated float64

	// Zones where new-build PTZ remains available (tension zones).
	NewBuildZones []models.PTZZone

	MaxYears         int
	MaxDeferralYears int
	MaxHouseholdSize int
}

// PASConfig holds the PAS regulatory tables.
type PASConfig struct {
	IncomeCeilings   map[models.PASZone]map[int]float64
	MaxRate          float64
	MinYears         int
	MaxYears         int
	MaxHouseholdSize int
}

// ActionLogementConfig holds the Action Logement loan conditions.
type ActionLogementConfig struct {
	MaxAmountTenseZone float64
	MaxAmountOtherZone float64
	Rate               float64
	MaxYears           int
	MinCompanySize     int
	MinTenureMonths    int
}

// AidsConfig groups the three aid calculators' tables.
type AidsConfig struct {
	PTZ            PTZConfig
	PAS            PASConfig
	ActionLogement ActionLogementConfig
}

// PTZAmounts are the simplified PTZ amounts by household composition used
// by the advice rules (full zone-based tables live in PTZConfig).
type PTZAmounts struct {
	SingleNoChild   float64
	SingleWithChild float64
	CoupleNoChild   float64
	CoupleChildren  float64
}

// AreaPrices are €/m² figures per Île-de-France ring, used as fallbacks
// when the zone dataset carries no rows for an area.
type AreaPrices struct {
	Paris        float64
	InnerSuburbs float64
	OuterSuburbs float64
}

// MarketContext is the injected market snapshot the advice engine reads.
// Rates are percentages here (3.45 = 3.45%), the advisory-layer convention.
type MarketContext struct {
	Avg15Years float64
	Avg20Years float64
	Avg25Years float64

	// Trend is one of "hausse", "baisse", "stable".
	Trend string
	// BankPolicy is one of "souple", "normale", "selective".
	BankPolicy string

	PTZAvailable bool
	// PTZMonthlyCeilings caps net monthly income by household size.
	PTZMonthlyCeilings map[int]float64
	PTZAmounts         PTZAmounts

	FallbackAreaPrices AreaPrices
}

// RegulatoryConfig is the immutable bundle of every rate and threshold
// table the engine consumes. Built once (DefaultRegulatory) and passed
// into the calculators; calculation code never inlines these values.
type RegulatoryConfig struct {
	Simulator SimulatorConfig
	Aids      AidsConfig
	Market    MarketContext

	// Surface thresholds of the zone classifier, per property kind.
	SurfaceThresholds map[models.PropertyKind]models.SurfaceThresholds

	// UsuryRate is the all-in APR legal cap in percent (loans >= 20 years).
	UsuryRate float64
}

// DefaultRegulatory returns the 2026 French regulatory dataset.
func DefaultRegulatory() *RegulatoryConfig {
	return &RegulatoryConfig{
		Simulator: SimulatorConfig{
			MaxDebtRatio:   0.35,
			AlertDebtRatio: 0.315,

			MinYears:     10,
			MaxYears:     25,
			DefaultYears: 20,

			NotaryRateNew:      0.025,
			NotaryRateExisting: 0.08,

			AvgInsuranceRate: 0.0034,

			Allowance: AllowanceConfig{
				Single:   800,
				Couple:   1200,
				PerChild: 300,
			},

			Rates: ReferenceRates{
				Short:  0.032,
				Medium: 0.035,
				Long:   0.038,
			},

			CapacityDurations: []int{10, 15, 20, 25},
		},

		Aids: AidsConfig{
			PTZ: PTZConfig{
				IncomeCeilings: map[models.PTZZone]map[int]float64{
					models.PTZZoneAbis: {1: 49000, 2: 73500, 3: 88200, 4: 102900, 5: 117600},
					models.PTZZoneA:    {1: 49000, 2: 73500, 3: 88200, 4: 102900, 5: 117600},
					models.PTZZoneB1:   {1: 34500, 2: 51750, 3: 62100, 4: 72450, 5: 82800},
					models.PTZZoneB2:   {1: 31500, 2: 47250, 3: 56700, 4: 66150, 5: 75600},
					models.PTZZoneC:    {1: 28500, 2: 42750, 3: 51300, 4: 59850, 5: 68400},
				},
				PriceCeilings: map[models.PTZZone]float64{
					models.PTZZoneAbis: 150000,
					models.PTZZoneA:    150000,
					models.PTZZoneB1:   135000,
					models.PTZZoneB2:   110000,
					models.PTZZoneC:    100000,
				},
				QuotaNew:         0.40,
				QuotaRenovated:   0.20,
				NewBuildZones:    []models.PTZZone{models.PTZZoneAbis, models.PTZZoneA, models.PTZZoneB1},
				MaxYears:         25,
				MaxDeferralYears: 15,
				MaxHouseholdSize: 5,
			},

			PAS: PASConfig{
				IncomeCeilings: map[models.PASZone]map[int]float64{
					models.PASZoneA: {1: 37000, 2: 51800, 3: 62900, 4: 74000, 5: 85100},
					models.PASZoneB: {1: 30000, 2: 42000, 3: 51000, 4: 60000, 5: 69000},
					models.PASZoneC: {1: 30000, 2: 42000, 3: 51000, 4: 60000, 5: 69000},
				},
				MaxRate:          0.0345,
				MinYears:         5,
				MaxYears:         30,
				MaxHouseholdSize: 5,
			},

			ActionLogement: ActionLogementConfig{
				MaxAmountTenseZone: 40000,
				MaxAmountOtherZone: 30000,
				Rate:               0.01,
				MaxYears:           25,
				MinCompanySize:     10,
				MinTenureMonths:    6,
			},
		},

		Market: MarketContext{
			Avg15Years: 3.25,
			Avg20Years: 3.45,
			Avg25Years: 3.55,

			Trend:      "stable",
			BankPolicy: "selective",

			PTZAvailable:       true,
			PTZMonthlyCeilings: map[int]float64{1: 4083, 2: 6125, 3: 7350, 4: 8575},
			PTZAmounts: PTZAmounts{
				SingleNoChild:   100000,
				SingleWithChild: 120000,
				CoupleNoChild:   120000,
				CoupleChildren:  150000,
			},

			FallbackAreaPrices: AreaPrices{
				Paris:        10500,
				InnerSuburbs: 6200,
				OuterSuburbs: 3800,
			},
		},

		SurfaceThresholds: map[models.PropertyKind]models.SurfaceThresholds{
			models.PropertyApartment: {Green: 40, Orange: 25},
			models.PropertyHouse:     {Green: 70, Orange: 50},
		},

		UsuryRate: 5.48,
	}
}

// NotaryRate returns the fee rate for a property condition.
func (s SimulatorConfig) NotaryRate(condition models.PropertyCondition) float64 {
	if condition == models.PropertyNew {
		return s.NotaryRateNew
	}
	return s.NotaryRateExisting
}
