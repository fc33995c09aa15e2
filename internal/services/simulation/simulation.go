// Package simulation orchestrates a full affordability run: borrowing
// capacity, purchase budget, regulatory checks, feasibility score and the
// advisory report, composed from the calculation packages.
package simulation

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
	"mortgage-advisory-engine/internal/services/advice"
	"mortgage-advisory-engine/internal/services/finance"
	"mortgage-advisory-engine/internal/services/score"
	"mortgage-advisory-engine/internal/services/zones"
	"mortgage-advisory-engine/internal/utils"
)

// Île-de-France department rings for the affordable-surface preview.
var (
	parisDepts       = []string{"75"}
	innerSuburbDepts = []string{"92", "93", "94"}
	outerSuburbDepts = []string{"77", "78", "91", "95"}
)

// Repository persists simulation snapshots. A nil repository disables
// persistence (demo mode).
type Repository interface {
	Create(ctx context.Context, result *models.SimulationResult) error
	GetByID(ctx context.Context, id string) (*models.SimulationResult, error)
	ListRecent(ctx context.Context, limit int) ([]models.SimulationResult, error)
}

// Service runs simulations against one regulatory snapshot.
type Service struct {
	reg   *config.RegulatoryConfig
	repo  Repository
	zones zones.Source
	log   *zap.Logger
}

// New creates a simulation service. repo may be nil; a nil zone source
// falls back to the market reference prices for the surface preview.
func New(reg *config.RegulatoryConfig, repo Repository, src zones.Source) *Service {
	return &Service{
		reg:   reg,
		repo:  repo,
		zones: src,
		log:   utils.GetLogger(),
	}
}

// Run executes the full pipeline for one request and persists the
// snapshot when a repository is configured. Validation failures return
// the models sentinel errors unwrapped.
func (s *Service) Run(ctx context.Context, req models.SimulationRequest) (*models.SimulationResult, error) {
	if err := models.ValidateProfile(&req.Profile); err != nil {
		return nil, err
	}

	sim := s.reg.Simulator

	years := req.Years
	if years == 0 {
		years = sim.DefaultYears
	}
	if years < sim.MinYears || years > sim.MaxYears {
		return nil, fmt.Errorf("loan duration %d outside %d-%d years", years, sim.MinYears, sim.MaxYears)
	}

	rate := req.AnnualRate
	if rate == 0 {
		rate = s.referenceRate(years)
	}

	income := req.Profile.NetMonthlyIncome()
	charges := req.Profile.MonthlyCharges()

	capacity := finance.BorrowingCapacity(finance.BorrowingCapacityInput{
		NetIncome:      income,
		MonthlyCharges: charges,
		Years:          years,
		AnnualRate:     rate,
	}, sim)

	purchase := finance.TotalPurchaseCapacity(req.DownPayment, capacity.Capacity, req.PropertyCondition, sim)

	debtRatio := finance.DebtRatio(income, charges, capacity.MaxMonthlyPayment)
	debtCheck := finance.CheckDebtRatio(debtRatio, sim)

	disposable := finance.DisposableIncome(income, charges, capacity.MaxMonthlyPayment)
	allowance := finance.CheckMinimumAllowance(disposable, req.Profile.Household, req.Profile.Children, sim.Allowance)

	feasibility := score.Compute(models.ScoreInput{
		DebtRatio:        debtRatio,
		Allowance:        allowance.Amount,
		AllowanceMin:     allowance.Minimum,
		DownPayment:      req.DownPayment,
		PurchasePrice:    purchase.MaxPurchasePrice,
		EmploymentStatus: req.Profile.EmploymentStatus,
		Age:              req.Profile.Age,
		Years:            years,
		MonthlyCharges:   charges,
		MonthlyIncome:    income,
	})

	insurance := finance.BorrowerInsurance(capacity.Capacity, years, sim.AvgInsuranceRate)

	apr := finance.APR(finance.APRInput{
		Principal:     capacity.Capacity,
		NominalRate:   rate,
		Years:         years,
		GuaranteeFees: finance.EstimateGuaranteeFees(capacity.Capacity, finance.GuaranteeSurety),
		InsuranceRate: sim.AvgInsuranceRate,
	})

	surfaces := s.areaSurfaces(ctx, purchase.MaxPurchasePrice)

	report := advice.Report(models.AdviceInput{
		Age:               req.Profile.Age,
		EmploymentStatus:  req.Profile.EmploymentStatus,
		Household:         req.Profile.Household,
		Children:          req.Profile.Children,
		Income:            income,
		Charges:           charges,
		DownPayment:       req.DownPayment,
		MaxPayment:        capacity.MaxMonthlyPayment,
		Years:             years,
		Rate:              rate * 100,
		PropertyCondition: req.PropertyCondition,
		PurchasePrice:     purchase.MaxPurchasePrice,
		BorrowableCapital: capacity.Capacity,
		DebtRatio:         debtRatio,
		Allowance:         allowance.Amount,
		AllowanceMin:      allowance.Minimum,
		AllowanceLevel:    allowanceLevel(allowance),
		FeasibilityScore:  feasibility.Score,

		SurfaceParis:        surfaces.Paris,
		SurfaceInnerSuburbs: surfaces.InnerSuburbs,
		SurfaceOuterSuburbs: surfaces.OuterSuburbs,
	}, s.reg)

	result := &models.SimulationResult{
		ID:            uuid.New().String(),
		CreatedAt:     time.Now().UTC(),
		Request:       req,
		Years:         years,
		AnnualRate:    rate,
		Capacity:      capacity,
		Purchase:      purchase,
		DebtRatio:     debtCheck,
		DebtRatioPct:  debtRatio,
		Allowance:     allowance,
		Score:         feasibility,
		Insurance:     insurance,
		APR:           apr,
		CapacityTable: finance.CapacityByDuration(income, charges, rate, sim),
		Surfaces:      surfaces,
		Report:        report,
	}

	s.log.Info("simulation completed",
		zap.String("simulation_id", result.ID),
		zap.Float64("capacity", capacity.Capacity),
		zap.Float64("max_price", purchase.MaxPurchasePrice),
		zap.Int("score", feasibility.Score),
	)

	if s.repo != nil {
		if err := s.repo.Create(ctx, result); err != nil {
			// Persistence is best-effort, the computed result still stands.
			s.log.Warn("failed to persist simulation",
				zap.String("simulation_id", result.ID),
				zap.Error(err),
			)
		}
	}

	return result, nil
}

// Get loads a persisted simulation.
func (s *Service) Get(ctx context.Context, id string) (*models.SimulationResult, error) {
	if s.repo == nil {
		return nil, models.ErrSimulationNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ListRecent returns the latest persisted simulations.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]models.SimulationResult, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.ListRecent(ctx, limit)
}

// referenceRate picks the market average for a duration band.
func (s *Service) referenceRate(years int) float64 {
	rates := s.reg.Simulator.Rates
	switch {
	case years <= 15:
		return rates.Short
	case years <= 20:
		return rates.Medium
	default:
		return rates.Long
	}
}

// areaSurfaces estimates the affordable surface per Île-de-France ring
// for a purchase budget. Ring prices average the zone dataset when it
// carries rows for the ring; the market fallbacks cover the rest.
func (s *Service) areaSurfaces(ctx context.Context, budget float64) models.AreaSurfaces {
	if budget <= 0 {
		return models.AreaSurfaces{}
	}

	prices := s.reg.Market.FallbackAreaPrices
	paris, inner, outer := prices.Paris, prices.InnerSuburbs, prices.OuterSuburbs

	if s.zones != nil {
		dataset, err := s.zones.Zones(ctx)
		if err != nil {
			s.log.Warn("zone dataset unavailable for surface preview", zap.Error(err))
		} else {
			if p := averagePriceSqm(dataset, parisDepts); p > 0 {
				paris = p
			}
			if p := averagePriceSqm(dataset, innerSuburbDepts); p > 0 {
				inner = p
			}
			if p := averagePriceSqm(dataset, outerSuburbDepts); p > 0 {
				outer = p
			}
		}
	}

	return models.AreaSurfaces{
		Paris:        int(math.Round(budget / paris)),
		InnerSuburbs: int(math.Round(budget / inner)),
		OuterSuburbs: int(math.Round(budget / outer)),
	}
}

// averagePriceSqm averages the apartment €/m² of the zones in the given
// departments, 0 when none match.
func averagePriceSqm(dataset []models.GeoZone, depts []string) float64 {
	var sum float64
	var n int
	for _, zone := range dataset {
		if zone.PriceSqmApartment <= 0 {
			continue
		}
		for _, dept := range depts {
			if zone.Department == dept {
				sum += zone.PriceSqmApartment
				n++
				break
			}
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func allowanceLevel(check models.AllowanceCheck) string {
	switch {
	case check.Margin >= 300:
		return "ok"
	case check.Sufficient:
		return "limite"
	default:
		return "risque"
	}
}
