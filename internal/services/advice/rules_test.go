package advice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
)

var reg = config.DefaultRegulatory()

func solidProfile() models.AdviceInput {
	return models.AdviceInput{
		Age:              35,
		EmploymentStatus: models.EmploymentStatusCDI,
		Household:        models.HouseholdCouple,
		Children:         1,

		Income:  5500,
		Charges: 0,

		DownPayment:       60000,
		MaxPayment:        1900,
		Years:             20,
		Rate:              3.45,
		PropertyCondition: models.PropertyExisting,

		PurchasePrice:     280000,
		BorrowableCapital: 240000,
		DebtRatio:         29,
		Allowance:         2400,
		AllowanceMin:      1500,
		AllowanceLevel:    "ok",
		FeasibilityScore:  82,
	}
}

func fragileProfile() models.AdviceInput {
	return models.AdviceInput{
		Age:              29,
		EmploymentStatus: models.EmploymentStatusCDD,
		Household:        models.HouseholdSingle,
		Children:         0,

		Income:  2200,
		Charges: 350,

		DownPayment:       0,
		MaxPayment:        550,
		Years:             25,
		Rate:              3.55,
		PropertyCondition: models.PropertyExisting,

		PurchasePrice:     110000,
		BorrowableCapital: 95000,
		DebtRatio:         36.5,
		Allowance:         1100,
		AllowanceMin:      800,
		AllowanceLevel:    "risque",
		FeasibilityScore:  42,
	}
}

func TestDefaultRules_AtMostOnePerGroup(t *testing.T) {
	for name, in := range map[string]models.AdviceInput{
		"solid":   solidProfile(),
		"fragile": fragileProfile(),
	} {
		diag := Diagnose(in)
		items := EvaluateAdvice(DefaultRules(reg), in, diag, DefaultBudget())

		seen := map[string]bool{}
		for _, item := range items {
			assert.False(t, seen[item.Group], "%s: group %s fired twice", name, item.Group)
			seen[item.Group] = true
		}
	}
}

func TestDefaultRules_FragileProfileSurfacesCriticalAdvice(t *testing.T) {
	in := fragileProfile()
	items := EvaluateAdvice(DefaultRules(reg), in, Diagnose(in), DefaultBudget())

	require.NotEmpty(t, items)
	assert.Equal(t, 1, items[0].Priority, "critical advice comes first")

	groups := map[string]string{}
	for _, item := range items {
		groups[item.Group] = item.ID
	}
	assert.Equal(t, "endettement-depasse", groups[GroupDebt], "a 36.5 debt ratio is over the HCSF cap")
	assert.Equal(t, "apport-zero", groups[GroupDownPay])
}

func TestDefaultRules_SolidProfileGetsPositiveTone(t *testing.T) {
	in := solidProfile()
	items := EvaluateAdvice(DefaultRules(reg), in, Diagnose(in), DefaultBudget())

	require.NotEmpty(t, items)
	for _, item := range items {
		assert.NotEqual(t, "endettement-depasse", item.ID)
		assert.NotEqual(t, "apport-zero", item.ID)
	}
}

func TestDefaultRules_GeoOpportunityFiresOnSurfaceGap(t *testing.T) {
	in := solidProfile()
	in.SurfaceParis = 18
	in.SurfaceOuterSuburbs = 70

	items := EvaluateAdvice(DefaultRules(reg), in, Diagnose(in), DefaultBudget())

	ids := map[string]bool{}
	for _, item := range items {
		ids[item.ID] = true
	}
	assert.True(t, ids["geo-opportunite"], "70 m² in the outer suburbs against 18 m² in Paris")
}

func TestDefaultRules_RespectsBudget(t *testing.T) {
	for _, in := range []models.AdviceInput{solidProfile(), fragileProfile()} {
		items := EvaluateAdvice(DefaultRules(reg), in, Diagnose(in), DefaultBudget())

		assert.LessOrEqual(t, len(items), 6)
		counts := map[int]int{}
		for _, item := range items {
			counts[item.Priority]++
		}
		assert.LessOrEqual(t, counts[1], 2)
		assert.LessOrEqual(t, counts[2], 2)
		assert.LessOrEqual(t, counts[3], 2)
	}
}

func TestDefaultScenarioRules_CapAndRecommended(t *testing.T) {
	scenarios := EvaluateScenarios(DefaultScenarioRules(reg), fragileProfile(), 3)

	assert.LessOrEqual(t, len(scenarios), 3)
	require.NotEmpty(t, scenarios)
	for _, s := range scenarios {
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Advantages)
	}
}

func TestDefaultScenarioRules_NewBuildNotProposedToNewBuyers(t *testing.T) {
	in := solidProfile()
	in.PropertyCondition = models.PropertyNew

	scenarios := EvaluateScenarios(DefaultScenarioRules(reg), in, 3)

	for _, s := range scenarios {
		assert.NotEqual(t, "passer-au-neuf", s.ID)
	}
}

func TestDiagnose_SolidProfile(t *testing.T) {
	diag := Diagnose(solidProfile())

	assert.Equal(t, 82, diag.Score)
	assert.Equal(t, "élevée", diag.AcceptanceLikelihood)
	assert.Equal(t, "2-3 semaines", diag.EstimatedTimeline)
	assert.Contains(t, diag.Strengths, "CDI = stabilité professionnelle")
	assert.LessOrEqual(t, len(diag.Strengths), 4)
	assert.LessOrEqual(t, len(diag.SuggestedBanks), 3)
}

func TestDiagnose_FragileProfile(t *testing.T) {
	diag := Diagnose(fragileProfile())

	assert.Equal(t, "faible", diag.AcceptanceLikelihood)
	assert.Equal(t, "4-6 semaines (étude approfondie)", diag.EstimatedTimeline)
	assert.NotEmpty(t, diag.WatchPoints)
	assert.LessOrEqual(t, len(diag.WatchPoints), 4)
}

func TestDiagnose_CivilServantBanks(t *testing.T) {
	in := solidProfile()
	in.EmploymentStatus = models.EmploymentStatusCivilServant

	diag := Diagnose(in)

	assert.Contains(t, diag.SuggestedBanks, "Banque Postale")
}

func TestExecutiveSummary_Bands(t *testing.T) {
	solid := solidProfile()
	assert.Contains(t, ExecutiveSummary(solid, Diagnose(solid)), "Excellent profil (82/100)")

	fragile := fragileProfile()
	assert.Contains(t, ExecutiveSummary(fragile, Diagnose(fragile)), "Profil à renforcer (42/100)")
}

func TestReport_ComposesAllSections(t *testing.T) {
	report := Report(solidProfile(), reg)

	assert.Equal(t, 82, report.Diagnostic.Score)
	assert.NotEmpty(t, report.Advice)
	assert.NotEmpty(t, report.Summary)
}
