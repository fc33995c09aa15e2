package advice

import (
	"fmt"
	"math"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
)

// DefaultScenarioRules builds the alternative-scenario rule set. Every
// generator recomputes the financing with the modified inputs; a rule
// returns nil when the gain is too small to be worth showing.
func DefaultScenarioRules(reg *config.RegulatoryConfig) []ScenarioRule {
	market := reg.Market
	sim := reg.Simulator

	return []ScenarioRule{
		{
			ID: "ptz-eligible", Weight: 95,
			Condition: func(in models.AdviceInput) bool { return ptzEligible(in, market) },
			Generate: func(in models.AdviceInput) *models.Scenario {
				amount := ptzAmount(in.Household, in.Children, market.PTZAmounts)
				newBudget := in.DownPayment + in.BorrowableCapital + amount
				newPrice := budgetToPrice(newBudget, in.PropertyCondition, sim)

				zoneNote := "Uniquement en neuf ou VEFA"
				if in.PropertyCondition == models.PropertyExisting {
					zoneNote = "Limité aux zones B2/C en ancien"
				}

				return &models.Scenario{
					ID:          "ptz-eligible",
					Title:       fmt.Sprintf("Activer le PTZ (%s €)", formatEuro(amount)),
					Description: "Prêt à Taux Zéro : emprunt complémentaire sans intérêts",
					Changes:     models.ScenarioChanges{},
					Outcome: models.ScenarioOutcome{
						NewBudget:    newPrice,
						NewRate:      0,
						NewPayment:   in.MaxPayment,
						CostOrSaving: newPrice - in.PurchasePrice,
					},
					Advantages: []string{
						fmt.Sprintf("Budget achat : +%s €", formatEuro(newPrice-in.PurchasePrice)),
						fmt.Sprintf("%s € à 0%% d'intérêts", formatEuro(amount)),
						"Différé de remboursement possible (5-15 ans)",
					},
					Drawbacks: []string{
						"Soumis à conditions de ressources",
						zoneNote,
					},
					Recommended: true,
				}
			},
		},
		{
			ID: "mensualite-securisee", Weight: 90,
			Condition: func(in models.AdviceInput) bool { return in.DebtRatio > 32 },
			Generate: func(in models.AdviceInput) *models.Scenario {
				securedPayment := math.Round(in.Income*0.30 - in.Charges)
				securedCapital := borrowableCapital(securedPayment, in.Rate, in.Years)
				newPrice := budgetToPrice(in.DownPayment+securedCapital, in.PropertyCondition, sim)
				reduction := in.MaxPayment - securedPayment

				if reduction <= 50 {
					return nil
				}

				return &models.Scenario{
					ID:          "mensualite-securisee",
					Title:       "Mensualité sécurisée à 30%",
					Description: "Réduisez votre mensualité pour un dossier béton",
					Changes:     models.ScenarioChanges{Payment: securedPayment},
					Outcome: models.ScenarioOutcome{
						NewBudget:    newPrice,
						NewRate:      in.Rate,
						NewPayment:   securedPayment,
						CostOrSaving: -(in.PurchasePrice - newPrice),
					},
					Advantages: []string{
						"Endettement à 30% (marge de sécurité)",
						fmt.Sprintf("Économie mensuelle : %s €", formatEuro(reduction)),
						"Acceptation quasi-garantie",
					},
					Drawbacks: []string{
						fmt.Sprintf("Budget réduit de %s €", formatEuro(in.PurchasePrice-newPrice)),
						"Surface accessible réduite",
					},
					Recommended: in.FeasibilityScore < 70,
				}
			},
		},
		{
			ID: "solder-credit", Weight: 85,
			Condition: func(in models.AdviceInput) bool { return in.Charges >= 200 },
			Generate: func(in models.AdviceInput) *models.Scenario {
				newPayment := in.MaxPayment + math.Round(in.Charges*0.5)
				newCapital := borrowableCapital(in.MaxPayment+in.Charges*0.5, in.Rate, in.Years)
				newPrice := budgetToPrice(in.DownPayment+newCapital, in.PropertyCondition, sim)
				gain := newPrice - in.PurchasePrice

				if gain <= 5000 {
					return nil
				}

				return &models.Scenario{
					ID:          "solder-credit",
					Title:       "Réduire les charges existantes",
					Description: "Soldez ou regroupez vos crédits en cours avant d'emprunter",
					Changes:     models.ScenarioChanges{Payment: newPayment},
					Outcome: models.ScenarioOutcome{
						NewBudget:    newPrice,
						NewRate:      in.Rate,
						NewPayment:   newPayment,
						CostOrSaving: gain,
					},
					Advantages: []string{
						fmt.Sprintf("Budget achat : +%s €", formatEuro(gain)),
						"Endettement réduit, meilleur dossier",
						"Taux potentiellement plus bas",
					},
					Drawbacks: []string{
						"Nécessite de l'épargne pour solder",
						"Indemnités de remboursement anticipé éventuelles",
					},
					Recommended: in.DebtRatio > 33,
				}
			},
		},
		{
			ID: "apport-plus-10k", Weight: 80,
			Condition: func(in models.AdviceInput) bool { return in.DownPaymentPercent() < 25 },
			Generate: func(in models.AdviceInput) *models.Scenario {
				newDownPayment := in.DownPayment + 10000
				newPrice := budgetToPrice(newDownPayment+in.BorrowableCapital, in.PropertyCondition, sim)
				newPct := newDownPayment / newPrice * 100

				rateGain := 0.05
				if newPct >= 20 {
					rateGain = 0.15
				}
				newRate := math.Max(in.Rate-rateGain, 2.5)

				rateAdvantage := "Dossier renforcé"
				if rateGain > 0.1 {
					rateAdvantage = fmt.Sprintf("Taux négociable à %.2f%%", newRate)
				}

				return &models.Scenario{
					ID:          "apport-plus-10k",
					Title:       "Augmenter l'apport de 10 000 €",
					Description: "Économisez pendant quelques mois pour renforcer votre dossier",
					Changes:     models.ScenarioChanges{DownPayment: newDownPayment},
					Outcome: models.ScenarioOutcome{
						NewBudget:    newPrice,
						NewRate:      newRate,
						NewPayment:   in.MaxPayment,
						CostOrSaving: newPrice - in.PurchasePrice,
					},
					Advantages: []string{
						fmt.Sprintf("Apport passe à %d%%", int(math.Round(newPct))),
						fmt.Sprintf("Budget achat : +%s €", formatEuro(newPrice-in.PurchasePrice)),
						rateAdvantage,
					},
					Drawbacks: []string{
						fmt.Sprintf("Nécessite %s € d'épargne supplémentaire", formatEuro(10000)),
						"Report du projet de quelques mois",
					},
					Recommended: in.DownPaymentPercent() < 15,
				}
			},
		},
		{
			ID: "duree-plus-5", Weight: 70,
			Condition: func(in models.AdviceInput) bool {
				return in.Years <= 20 && in.Age+in.Years+5 <= 75
			},
			Generate: func(in models.AdviceInput) *models.Scenario {
				newYears := in.Years + 5
				newCapital := borrowableCapital(in.MaxPayment, in.Rate+0.1, newYears)
				newPrice := budgetToPrice(in.DownPayment+newCapital, in.PropertyCondition, sim)
				extraCost := in.MaxPayment*float64(newYears)*12 - in.MaxPayment*float64(in.Years)*12

				surfaceGain := "Surface accessible augmentée"
				if in.SurfaceOuterSuburbs > 0 && in.PurchasePrice > 0 {
					extra := math.Round((newPrice - in.PurchasePrice) / (in.PurchasePrice / float64(in.SurfaceOuterSuburbs)))
					surfaceGain = fmt.Sprintf("+%d m² potentiels", int(extra))
				}

				return &models.Scenario{
					ID:          "duree-plus-5",
					Title:       fmt.Sprintf("Passer à %d ans", newYears),
					Description: "Augmentez votre capacité d'achat en allongeant la durée",
					Changes:     models.ScenarioChanges{Years: newYears},
					Outcome: models.ScenarioOutcome{
						NewBudget:    newPrice,
						NewRate:      in.Rate + 0.1,
						NewPayment:   in.MaxPayment,
						CostOrSaving: newPrice - in.PurchasePrice,
					},
					Advantages: []string{
						fmt.Sprintf("Budget achat : +%s €", formatEuro(newPrice-in.PurchasePrice)),
						"Même mensualité conservée",
						surfaceGain,
					},
					Drawbacks: []string{
						fmt.Sprintf("Coût total du crédit : +%s €", formatEuro(extraCost)),
						"Taux légèrement plus élevé (+0.10%)",
					},
					Recommended: in.SurfaceParis < 30,
				}
			},
		},
		{
			ID: "co-emprunteur", Weight: 65,
			Condition: func(in models.AdviceInput) bool {
				return in.Household == models.HouseholdSingle && in.FeasibilityScore < 80
			},
			Generate: func(in models.AdviceInput) *models.Scenario {
				jointIncome := in.Income * 1.6
				newPayment := math.Round(jointIncome*0.33 - in.Charges)
				newCapital := borrowableCapital(newPayment, in.Rate, in.Years)
				newPrice := budgetToPrice(in.DownPayment+newCapital, in.PropertyCondition, sim)

				return &models.Scenario{
					ID:          "co-emprunteur",
					Title:       "Ajouter un co-emprunteur",
					Description: "Doublez votre capacité en empruntant à deux",
					Changes:     models.ScenarioChanges{},
					Outcome: models.ScenarioOutcome{
						NewBudget:    newPrice,
						NewRate:      in.Rate,
						NewPayment:   newPayment,
						CostOrSaving: newPrice - in.PurchasePrice,
					},
					Advantages: []string{
						fmt.Sprintf("Budget potentiel : %s € (estimation)", formatEuro(newPrice)),
						"Endettement partagé, dossier renforcé",
						"Assurance répartie sur 2 têtes",
					},
					Drawbacks: []string{
						"Engagement solidaire sur la dette",
						"Nécessite un co-emprunteur solvable",
						"Indivision à gérer en cas de séparation",
					},
					Recommended: in.FeasibilityScore < 60,
				}
			},
		},
		{
			ID: "passer-au-neuf", Weight: 60,
			Condition: func(in models.AdviceInput) bool {
				return in.PropertyCondition == models.PropertyExisting
			},
			Generate: func(in models.AdviceInput) *models.Scenario {
				newBudget := budgetToPrice(in.DownPayment+in.BorrowableCapital, models.PropertyNew, sim)
				gain := newBudget - in.PurchasePrice

				if gain <= 5000 {
					return nil
				}

				return &models.Scenario{
					ID:          "passer-au-neuf",
					Title:       "Opter pour le neuf",
					Description: "Profitez des frais de notaire réduits et du PTZ",
					Changes:     models.ScenarioChanges{},
					Outcome: models.ScenarioOutcome{
						NewBudget:    newBudget,
						NewRate:      in.Rate,
						NewPayment:   in.MaxPayment,
						CostOrSaving: gain,
					},
					Advantages: []string{
						fmt.Sprintf("Budget achat : +%s €", formatEuro(gain)),
						"Frais de notaire : 2-3% au lieu de 7-8%",
						"Éligibilité PTZ possible",
						"Pas de travaux à prévoir",
					},
					Drawbacks: []string{
						"Choix géographique plus limité",
						"Délai de livraison (VEFA)",
					},
					Recommended: true,
				}
			},
		},
	}
}
