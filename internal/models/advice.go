// Package models defines the data structures for the mortgage advisory engine.
package models

// AdviceCategory classifies what an advice item talks about.
type AdviceCategory string

const (
	AdviceCategoryDiagnostic AdviceCategory = "diagnostic"
	AdviceCategoryAction     AdviceCategory = "action"
	AdviceCategoryScenario   AdviceCategory = "scenario"
	AdviceCategoryStrategy   AdviceCategory = "strategie"
)

// AdviceKind is the tone of an advice item, used downstream for styling.
type AdviceKind string

const (
	AdviceKindSuccess      AdviceKind = "succes"
	AdviceKindImprovement  AdviceKind = "amelioration"
	AdviceKindOptimization AdviceKind = "optimisation"
	AdviceKindAlert        AdviceKind = "alerte"
	AdviceKindInfo         AdviceKind = "info"
)

// AdviceAction is a concrete next step attached to an advice item.
type AdviceAction struct {
	Label    string `json:"label"`
	Timeline string `json:"timeline,omitempty"`
	Gain     string `json:"gain,omitempty"`
}

// Advice is one recommendation produced by the rules engine. Priority 1
// is critical, 2 important, 3 optimization. Group identifies the
// mutual-exclusion bucket the generating rule belonged to; the engine
// guarantees at most one advice per group.
type Advice struct {
	ID       string         `json:"id"`
	Group    string         `json:"group"`
	Priority int            `json:"priority"`
	Category AdviceCategory `json:"category"`
	Title    string         `json:"title"`
	Text     string         `json:"text"`
	Impact   string         `json:"impact,omitempty"`
	Action   *AdviceAction  `json:"action,omitempty"`
	Kind     AdviceKind     `json:"kind"`
}

// ScenarioChanges lists the input modifications a scenario applies.
// Zero values mean "unchanged".
type ScenarioChanges struct {
	DownPayment float64 `json:"down_payment,omitempty"`
	Years       int     `json:"years,omitempty"`
	Payment     float64 `json:"payment,omitempty"`
}

// ScenarioOutcome is the recomputed financial outcome of a scenario.
type ScenarioOutcome struct {
	NewBudget  float64 `json:"new_budget"`
	NewRate    float64 `json:"new_rate"`
	NewPayment float64 `json:"new_payment"`
	// CostOrSaving is positive for a budget gain, negative for a cost.
	CostOrSaving float64 `json:"cost_or_saving"`
}

// Scenario is one alternative financing scenario proposed by the engine.
type Scenario struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Changes     ScenarioChanges `json:"changes"`
	Outcome     ScenarioOutcome `json:"outcome"`
	Advantages  []string        `json:"advantages"`
	Drawbacks   []string        `json:"drawbacks"`
	Recommended bool            `json:"recommended"`
}

// BankDiagnostic summarizes how banks are likely to receive the file.
type BankDiagnostic struct {
	Score                int      `json:"score"`
	AcceptanceLikelihood string   `json:"acceptance_likelihood"`
	Strengths            []string `json:"strengths"`
	WatchPoints          []string `json:"watch_points"`
	SuggestedBanks       []string `json:"suggested_banks"`
	EstimatedTimeline    string   `json:"estimated_timeline"`
}

// AdviceInput is the full profile + computed-results snapshot the advice
// engine evaluates rules against. Rate and DebtRatio are percentages
// (3.45 = 3.45%), the convention of the advisory layer.
type AdviceInput struct {
	Age              int              `json:"age"`
	EmploymentStatus EmploymentStatus `json:"employment_status"`
	Household        HouseholdType    `json:"household"`
	Children         int              `json:"children"`

	Income  float64 `json:"income"`
	Charges float64 `json:"charges"`

	DownPayment       float64           `json:"down_payment"`
	MaxPayment        float64           `json:"max_payment"`
	Years             int               `json:"years"`
	Rate              float64           `json:"rate"`
	PropertyCondition PropertyCondition `json:"property_condition"`

	PurchasePrice     float64 `json:"purchase_price"`
	BorrowableCapital float64 `json:"borrowable_capital"`
	DebtRatio         float64 `json:"debt_ratio"`
	Allowance         float64 `json:"allowance"`
	AllowanceMin      float64 `json:"allowance_min"`
	AllowanceLevel    string  `json:"allowance_level"`
	FeasibilityScore  int     `json:"feasibility_score"`

	// Affordable surfaces per Île-de-France ring, from the zone dataset.
	SurfaceParis        int `json:"surface_paris"`
	SurfaceInnerSuburbs int `json:"surface_inner_suburbs"`
	SurfaceOuterSuburbs int `json:"surface_outer_suburbs"`
}

// DownPaymentPercent is the down payment as a percentage of the purchase
// price, 0 when the price is unknown.
func (in AdviceInput) DownPaymentPercent() float64 {
	if in.PurchasePrice <= 0 {
		return 0
	}
	return in.DownPayment / in.PurchasePrice * 100
}

// AdvisoryReport bundles the diagnostic, the ranked advice and the
// alternative scenarios for one simulation.
type AdvisoryReport struct {
	Diagnostic BankDiagnostic `json:"diagnostic"`
	Advice     []Advice       `json:"advice"`
	Scenarios  []Scenario     `json:"scenarios"`
	Summary    string         `json:"summary"`
}
