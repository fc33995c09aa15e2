package simulation

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
	"mortgage-advisory-engine/internal/services/zones"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	stored  map[string]*models.SimulationResult
	failing bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{stored: make(map[string]*models.SimulationResult)}
}

func (r *fakeRepo) Create(_ context.Context, result *models.SimulationResult) error {
	if r.failing {
		return errors.New("connection refused")
	}
	r.stored[result.ID] = result
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*models.SimulationResult, error) {
	result, ok := r.stored[id]
	if !ok {
		return nil, models.ErrSimulationNotFound
	}
	return result, nil
}

func (r *fakeRepo) ListRecent(_ context.Context, limit int) ([]models.SimulationResult, error) {
	var results []models.SimulationResult
	for _, result := range r.stored {
		if len(results) >= limit {
			break
		}
		results = append(results, *result)
	}
	return results, nil
}

func validRequest() models.SimulationRequest {
	return models.SimulationRequest{
		Profile: models.FinancialProfile{
			Age:              35,
			EmploymentStatus: models.EmploymentStatusCDI,
			Household:        models.HouseholdCouple,
			Children:         1,
			PrimarySalary:    2800,
			SecondarySalary:  2200,
			LoanPayments:     200,
		},
		Years:             20,
		AnnualRate:        0.035,
		DownPayment:       40000,
		PropertyCondition: models.PropertyExisting,
	}
}

func TestRun_FullPipeline(t *testing.T) {
	svc := New(config.DefaultRegulatory(), nil, nil)

	result, err := svc.Run(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.False(t, result.CreatedAt.IsZero())
	assert.Equal(t, 20, result.Years)
	assert.Equal(t, 0.035, result.AnnualRate)

	// 5 000 € income, 200 € charges: max payment = 5000 × 0.35 − 200
	assert.Equal(t, float64(1550), result.Capacity.MaxMonthlyPayment)
	assert.Greater(t, result.Capacity.Capacity, float64(0))
	assert.Greater(t, result.Purchase.MaxPurchasePrice, result.Capacity.Capacity,
		"down payment extends the budget beyond the loan")

	assert.Equal(t, float64(35), result.DebtRatioPct)
	assert.True(t, result.DebtRatio.Valid)

	assert.True(t, result.Allowance.Sufficient)
	assert.GreaterOrEqual(t, result.Score.Score, 0)
	assert.LessOrEqual(t, result.Score.Score, 100)
	assert.NotEmpty(t, result.Score.Details)

	assert.Greater(t, result.APR.APR, 3.5, "APR exceeds the nominal rate")
	assert.Len(t, result.CapacityTable, 4)

	assert.NotEmpty(t, result.Report.Summary)
	assert.NotEmpty(t, result.Report.Diagnostic.SuggestedBanks)
}

func TestRun_AreaSurfacesFromZoneDataset(t *testing.T) {
	src := zones.NewStaticSource([]models.GeoZone{
		{ID: "75001", Name: "Paris 1er", Department: "75", PriceSqmApartment: 10000},
		{ID: "93100", Name: "Montreuil", Department: "93", PriceSqmApartment: 5000},
		{ID: "77100", Name: "Meaux", Department: "77", PriceSqmApartment: 3000},
		{ID: "77130", Name: "Montereau", Department: "77", PriceSqmApartment: 2000},
	})
	svc := New(config.DefaultRegulatory(), nil, src)

	result, err := svc.Run(context.Background(), validRequest())
	require.NoError(t, err)

	budget := result.Purchase.MaxPurchasePrice
	assert.Equal(t, int(math.Round(budget/10000)), result.Surfaces.Paris)
	assert.Equal(t, int(math.Round(budget/5000)), result.Surfaces.InnerSuburbs)
	assert.Equal(t, int(math.Round(budget/2500)), result.Surfaces.OuterSuburbs,
		"ring price averages the department rows")
	assert.Greater(t, result.Surfaces.OuterSuburbs, result.Surfaces.Paris)
}

func TestRun_AreaSurfacesFallBackToMarketPrices(t *testing.T) {
	svc := New(config.DefaultRegulatory(), nil, nil)

	result, err := svc.Run(context.Background(), validRequest())
	require.NoError(t, err)

	budget := result.Purchase.MaxPurchasePrice
	assert.Equal(t, int(math.Round(budget/10500)), result.Surfaces.Paris)
	assert.Equal(t, int(math.Round(budget/6200)), result.Surfaces.InnerSuburbs)
	assert.Equal(t, int(math.Round(budget/3800)), result.Surfaces.OuterSuburbs)
}

func TestRun_DefaultsYearsAndRate(t *testing.T) {
	svc := New(config.DefaultRegulatory(), nil, nil)

	req := validRequest()
	req.Years = 0
	req.AnnualRate = 0

	result, err := svc.Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 20, result.Years, "default duration applies")
	assert.Equal(t, 0.035, result.AnnualRate, "20-year market reference rate applies")
}

func TestRun_ReferenceRateBands(t *testing.T) {
	svc := New(config.DefaultRegulatory(), nil, nil)

	for _, tc := range []struct {
		years int
		rate  float64
	}{
		{15, 0.032}, {20, 0.035}, {25, 0.038},
	} {
		req := validRequest()
		req.Years = tc.years
		req.AnnualRate = 0

		result, err := svc.Run(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, tc.rate, result.AnnualRate, "%d years", tc.years)
	}
}

func TestRun_DurationOutOfBounds(t *testing.T) {
	svc := New(config.DefaultRegulatory(), nil, nil)

	for _, years := range []int{5, 30} {
		req := validRequest()
		req.Years = years

		_, err := svc.Run(context.Background(), req)
		assert.ErrorContains(t, err, "outside", "%d years should be rejected", years)
	}
}

func TestRun_InvalidProfile(t *testing.T) {
	svc := New(config.DefaultRegulatory(), nil, nil)

	req := validRequest()
	req.Profile.Age = 15

	_, err := svc.Run(context.Background(), req)
	assert.ErrorIs(t, err, models.ErrInvalidAge)

	req = validRequest()
	req.Profile.EmploymentStatus = "astronaute"

	_, err = svc.Run(context.Background(), req)
	assert.ErrorIs(t, err, models.ErrInvalidEmploymentStatus)
}

func TestRun_PersistsWhenRepoConfigured(t *testing.T) {
	repo := newFakeRepo()
	svc := New(config.DefaultRegulatory(), repo, nil)

	result, err := svc.Run(context.Background(), validRequest())
	require.NoError(t, err)

	stored, err := svc.Get(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.ID, stored.ID)
}

func TestRun_PersistenceFailureIsNotFatal(t *testing.T) {
	repo := newFakeRepo()
	repo.failing = true
	svc := New(config.DefaultRegulatory(), repo, nil)

	result, err := svc.Run(context.Background(), validRequest())

	require.NoError(t, err, "the computed result stands even when persistence fails")
	assert.NotEmpty(t, result.ID)
}

func TestGet_DemoModeReturnsNotFound(t *testing.T) {
	svc := New(config.DefaultRegulatory(), nil, nil)

	_, err := svc.Get(context.Background(), "any-id")
	assert.ErrorIs(t, err, models.ErrSimulationNotFound)
}

func TestListRecent_DemoModeReturnsEmpty(t *testing.T) {
	svc := New(config.DefaultRegulatory(), nil, nil)

	results, err := svc.ListRecent(context.Background(), 20)
	require.NoError(t, err)
	assert.Empty(t, results)
}
