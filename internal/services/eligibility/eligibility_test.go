package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
)

var aids = config.DefaultRegulatory().Aids

func eligiblePTZParams() models.PTZParams {
	return models.PTZParams{
		Zone:            models.PTZZoneB1,
		Condition:       models.PropertyNew,
		Price:           200000,
		ReferenceIncome: 30000,
		HouseholdSize:   2,
		FirstTimeBuyer:  true,
	}
}

func TestCheckPTZ_EligibleNewBuild(t *testing.T) {
	result := CheckPTZ(eligiblePTZParams(), aids.PTZ)

	require.True(t, result.Eligible)
	assert.Empty(t, result.Reasons)

	// Price capped at the B1 ceiling (135 000), new-build quota 40%
	assert.Equal(t, float64(54000), result.MaxAmount)
	assert.Equal(t, aids.PTZ.MaxYears, result.MaxYears)
	assert.Equal(t, float64(0), result.Rate, "the PTZ is interest free")
}

func TestCheckPTZ_PriceBelowCeiling(t *testing.T) {
	params := eligiblePTZParams()
	params.Price = 100000

	result := CheckPTZ(params, aids.PTZ)

	require.True(t, result.Eligible)
	assert.Equal(t, float64(40000), result.MaxAmount, "quota applies to the price when under the ceiling")
}

func TestCheckPTZ_RenovatedQuota(t *testing.T) {
	params := eligiblePTZParams()
	params.Condition = models.PropertyExisting
	params.Zone = models.PTZZoneC
	params.ReferenceIncome = 40000

	result := CheckPTZ(params, aids.PTZ)

	require.True(t, result.Eligible, "renovated existing property is eligible in every zone")
	// min(200 000, 100 000) × 20%
	assert.Equal(t, float64(20000), result.MaxAmount)
}

func TestCheckPTZ_NotFirstTimeBuyer(t *testing.T) {
	params := eligiblePTZParams()
	params.FirstTimeBuyer = false

	result := CheckPTZ(params, aids.PTZ)

	assert.False(t, result.Eligible)
	assert.NotEmpty(t, result.Reasons)
	assert.Equal(t, float64(0), result.MaxAmount)
}

func TestCheckPTZ_NewBuildOutsideTensionZones(t *testing.T) {
	params := eligiblePTZParams()
	params.Zone = models.PTZZoneC
	params.ReferenceIncome = 20000

	result := CheckPTZ(params, aids.PTZ)

	assert.False(t, result.Eligible, "new-build PTZ is limited to tension zones")
}

func TestCheckPTZ_IncomeOverCeiling(t *testing.T) {
	params := eligiblePTZParams()
	params.ReferenceIncome = 60000 // B1 ceiling for 2 persons is 51 750

	result := CheckPTZ(params, aids.PTZ)

	assert.False(t, result.Eligible)
}

func TestCheckPTZ_LargeHouseholdReusesTopBracket(t *testing.T) {
	params := eligiblePTZParams()
	params.HouseholdSize = 8
	params.ReferenceIncome = 80000 // under the 5-person B1 ceiling (82 800)

	result := CheckPTZ(params, aids.PTZ)

	assert.True(t, result.Eligible)
}

func TestCheckPTZ_UnknownZoneFailsClosed(t *testing.T) {
	params := eligiblePTZParams()
	params.Zone = models.PTZZone("Z")
	params.Condition = models.PropertyExisting

	result := CheckPTZ(params, aids.PTZ)

	assert.False(t, result.Eligible, "unknown zones resolve to a 0 ceiling")
}

func TestCheckPTZ_EvaluatesAllConditions(t *testing.T) {
	params := eligiblePTZParams()
	params.FirstTimeBuyer = false
	params.ReferenceIncome = 100000

	result := CheckPTZ(params, aids.PTZ)

	require.Len(t, result.Conditions, 3, "every condition is reported, not just the first failure")
	assert.Len(t, result.Reasons, 2)
}

func TestPASZoneFromPTZ(t *testing.T) {
	assert.Equal(t, models.PASZoneA, PASZoneFromPTZ(models.PTZZoneAbis))
	assert.Equal(t, models.PASZoneA, PASZoneFromPTZ(models.PTZZoneA))
	assert.Equal(t, models.PASZoneB, PASZoneFromPTZ(models.PTZZoneB1))
	assert.Equal(t, models.PASZoneC, PASZoneFromPTZ(models.PTZZoneB2))
	assert.Equal(t, models.PASZoneC, PASZoneFromPTZ(models.PTZZoneC))
}

func TestCheckPAS_Eligible(t *testing.T) {
	result := CheckPAS(models.PASParams{
		Zone:            models.PASZoneB,
		ReferenceIncome: 40000,
		HouseholdSize:   2,
		OperationAmount: 180000,
	}, aids.PAS)

	require.True(t, result.Eligible)
	assert.Equal(t, float64(180000), result.MaxAmount, "the PAS can finance the whole operation")
	assert.Equal(t, aids.PAS.MaxRate, result.Rate)
	assert.Equal(t, aids.PAS.MaxYears, result.MaxYears)
}

func TestCheckPAS_IncomeOverCeiling(t *testing.T) {
	result := CheckPAS(models.PASParams{
		Zone:            models.PASZoneB,
		ReferenceIncome: 50000, // zone B ceiling for 2 persons is 42 000
		HouseholdSize:   2,
		OperationAmount: 180000,
	}, aids.PAS)

	assert.False(t, result.Eligible)
	assert.NotEmpty(t, result.Reasons)
}

func TestCheckPAS_InvalidOperationAmount(t *testing.T) {
	result := CheckPAS(models.PASParams{
		Zone:            models.PASZoneC,
		ReferenceIncome: 25000,
		HouseholdSize:   1,
		OperationAmount: -5000,
	}, aids.PAS)

	assert.False(t, result.Eligible)
}

func eligibleALParams() models.ActionLogementParams {
	return models.ActionLogementParams{
		Sector:       models.SectorPrivate,
		CompanySize:  50,
		TenureMonths: 24,
		Contract:     models.ContractCDI,
		TenseZone:    true,
	}
}

func TestCheckActionLogement_Eligible(t *testing.T) {
	result := CheckActionLogement(eligibleALParams(), aids.ActionLogement)

	require.True(t, result.Eligible)
	assert.Equal(t, aids.ActionLogement.MaxAmountTenseZone, result.MaxAmount)
	assert.Equal(t, aids.ActionLogement.Rate, result.Rate)
}

func TestCheckActionLogement_OtherZoneCeiling(t *testing.T) {
	params := eligibleALParams()
	params.TenseZone = false

	result := CheckActionLogement(params, aids.ActionLogement)

	require.True(t, result.Eligible)
	assert.Equal(t, aids.ActionLogement.MaxAmountOtherZone, result.MaxAmount)
}

func TestCheckActionLogement_PublicSector(t *testing.T) {
	params := eligibleALParams()
	params.Sector = models.SectorPublic

	result := CheckActionLogement(params, aids.ActionLogement)

	assert.False(t, result.Eligible)
}

func TestCheckActionLogement_CompanyTooSmall(t *testing.T) {
	params := eligibleALParams()
	params.CompanySize = 5

	result := CheckActionLogement(params, aids.ActionLogement)

	assert.False(t, result.Eligible)
}

func TestCheckActionLogement_TenureTooShort(t *testing.T) {
	params := eligibleALParams()
	params.TenureMonths = 3

	result := CheckActionLogement(params, aids.ActionLogement)

	assert.False(t, result.Eligible)
}

func TestCheckActionLogement_InterimContract(t *testing.T) {
	params := eligibleALParams()
	params.Contract = models.ContractInterim

	result := CheckActionLogement(params, aids.ActionLogement)

	assert.False(t, result.Eligible)
	require.Len(t, result.Conditions, 4, "all conditions are reported")
}

func TestFormatEuro(t *testing.T) {
	assert.Equal(t, "1 500 €", euros(1500))
	assert.Equal(t, "51 750 €", euros(51750))
	assert.Equal(t, "800 €", euros(800))
	assert.Equal(t, "-12 000 €", euros(-12000))
}
