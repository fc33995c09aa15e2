// Package advice generates broker-style recommendations, alternative
// financing scenarios and a bank diagnostic from a simulation snapshot.
//
// The advice side is a declarative rules engine: every rule belongs to a
// mutual-exclusion group, at most one rule per group fires (highest
// weight wins), and a display budget caps how many items reach the user.
// Duplicates are impossible by construction. Adding a recommendation
// means adding a rule object, not threading a new branch through
// nested conditionals.
package advice

import (
	"sort"

	"mortgage-advisory-engine/internal/models"
)

// Advice groups. One rule per group fires per evaluation.
const (
	GroupScore     = "score"
	GroupDebt      = "endettement"
	GroupDownPay   = "apport"
	GroupStatus    = "statut"
	GroupAge       = "age"
	GroupDuration  = "duree"
	GroupPTZ       = "ptz"
	GroupGeography = "geographie"
	GroupMarket    = "marche"
)

// Rule is one declarative advice rule. Priority 1 is critical, 2
// important, 3 optimization; Weight breaks ties inside a group.
// Generate is only called when Condition holds.
type Rule struct {
	ID       string
	Group    string
	Priority int
	Weight   int
	Condition func(in models.AdviceInput) bool
	Generate  func(in models.AdviceInput, diag models.BankDiagnostic) models.Advice
}

// ScenarioRule proposes one alternative scenario. Generate may return
// nil when the scenario turns out not viable after computation.
type ScenarioRule struct {
	ID        string
	Weight    int
	Condition func(in models.AdviceInput) bool
	Generate  func(in models.AdviceInput) *models.Scenario
}

// DisplayBudget limits how many advice items are surfaced, per priority
// tier and in total.
type DisplayBudget struct {
	MaxPriority1 int
	MaxPriority2 int
	MaxPriority3 int
	MaxTotal     int
}

// DefaultBudget keeps the output scannable: a balanced mix of at most
// six items.
func DefaultBudget() DisplayBudget {
	return DisplayBudget{MaxPriority1: 2, MaxPriority2: 2, MaxPriority3: 2, MaxTotal: 6}
}

// EvaluateAdvice runs the rule set against a snapshot:
//
//  1. filter by condition
//  2. dedup by group, highest weight wins
//  3. rank by priority tier, heaviest first within a tier
//  4. generate within the display budget
func EvaluateAdvice(rules []Rule, in models.AdviceInput, diag models.BankDiagnostic, budget DisplayBudget) []models.Advice {
	winners := make(map[string]Rule)
	for _, rule := range rules {
		if !rule.Condition(in) {
			continue
		}
		current, ok := winners[rule.Group]
		if !ok || rule.Weight > current.Weight {
			winners[rule.Group] = rule
		}
	}

	ranked := make([]Rule, 0, len(winners))
	for _, rule := range winners {
		ranked = append(ranked, rule)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Priority != ranked[j].Priority {
			return ranked[i].Priority < ranked[j].Priority
		}
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		return ranked[i].ID < ranked[j].ID
	})

	var result []models.Advice
	counts := map[int]int{}
	limits := map[int]int{1: budget.MaxPriority1, 2: budget.MaxPriority2, 3: budget.MaxPriority3}

	for _, rule := range ranked {
		if len(result) >= budget.MaxTotal {
			break
		}
		if counts[rule.Priority] >= limits[rule.Priority] {
			continue
		}
		item := rule.Generate(in, diag)
		item.ID = rule.ID
		item.Group = rule.Group
		item.Priority = rule.Priority
		result = append(result, item)
		counts[rule.Priority]++
	}

	return result
}

// EvaluateScenarios runs the scenario rules, most relevant first, skips
// the ones that come back nil, and stops at maxScenarios.
func EvaluateScenarios(rules []ScenarioRule, in models.AdviceInput, maxScenarios int) []models.Scenario {
	active := make([]ScenarioRule, 0, len(rules))
	for _, rule := range rules {
		if rule.Condition(in) {
			active = append(active, rule)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Weight > active[j].Weight
	})

	var scenarios []models.Scenario
	for _, rule := range active {
		if len(scenarios) >= maxScenarios {
			break
		}
		if s := rule.Generate(in); s != nil {
			scenarios = append(scenarios, *s)
		}
	}

	return scenarios
}
