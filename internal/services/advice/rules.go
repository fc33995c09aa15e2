package advice

import (
	"fmt"
	"math"

	"mortgage-advisory-engine/internal/config"
	"mortgage-advisory-engine/internal/models"
)

// DefaultRules builds the full advice rule set against a regulatory
// snapshot. The market context and PTZ tables come from reg, never from
// package globals, so tests can pin their own.
func DefaultRules(reg *config.RegulatoryConfig) []Rule {
	market := reg.Market

	return []Rule{
		// score

		{
			ID: "score-excellent", Group: GroupScore, Priority: 1, Weight: 100,
			Condition: func(in models.AdviceInput) bool { return in.FeasibilityScore >= 85 },
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				return models.Advice{
					Category: models.AdviceCategoryDiagnostic,
					Title:    "Profil bancaire excellent",
					Text:     "Votre dossier fait partie des 15% les plus solides. Vous avez un pouvoir de négociation : demandez une réduction de 0.10% à 0.20% sur le taux proposé.",
					Impact:   fmt.Sprintf("Économie potentielle : %s € sur la durée du prêt", formatEuro(in.BorrowableCapital*0.0015*float64(in.Years))),
					Action: &models.AdviceAction{
						Label:    "Négocier le taux",
						Timeline: "Lors du premier RDV banque",
						Gain:     "-0.15% sur le taux",
					},
					Kind: models.AdviceKindSuccess,
				}
			},
		},
		{
			ID: "score-bon", Group: GroupScore, Priority: 1, Weight: 75,
			Condition: func(in models.AdviceInput) bool { return in.FeasibilityScore >= 70 },
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				return models.Advice{
					Category: models.AdviceCategoryDiagnostic,
					Title:    "Bon profil, négociable",
					Text:     fmt.Sprintf("Votre dossier est solide (%d/100). Les banques accepteront votre financement mais vous n'aurez pas automatiquement les meilleurs taux. Faites jouer la concurrence entre au moins 3 établissements, ou passez par un courtier pour gagner 0.10%% à 0.15%%.", in.FeasibilityScore),
					Impact:   fmt.Sprintf("Économie potentielle : %s € en négociant le taux", formatEuro(in.BorrowableCapital*0.001*float64(in.Years))),
					Action: &models.AdviceAction{
						Label:    "Comparer 3 banques minimum",
						Timeline: "Dès le début des démarches",
						Gain:     "Meilleur taux garanti",
					},
					Kind: models.AdviceKindImprovement,
				}
			},
		},
		{
			ID: "score-moyen", Group: GroupScore, Priority: 1, Weight: 50,
			Condition: func(in models.AdviceInput) bool { return in.FeasibilityScore >= 50 },
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				return models.Advice{
					Category: models.AdviceCategoryDiagnostic,
					Title:    "Dossier à consolider",
					Text:     fmt.Sprintf("Score de %d/100 : certaines banques seront sélectives. Un courtier peut identifier les établissements les plus adaptés à votre profil et maximiser vos chances.", in.FeasibilityScore),
					Action: &models.AdviceAction{
						Label:    "Consulter un courtier",
						Timeline: "Avant les démarches bancaires",
					},
					Kind: models.AdviceKindImprovement,
				}
			},
		},
		{
			ID: "score-fragile", Group: GroupScore, Priority: 1, Weight: 25,
			Condition: func(in models.AdviceInput) bool { return in.FeasibilityScore < 50 },
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				return models.Advice{
					Category: models.AdviceCategoryDiagnostic,
					Title:    "Profil à retravailler",
					Text:     fmt.Sprintf("Score de %d/100 : en l'état, la plupart des banques refuseront le dossier. Avant toute démarche, stabilisez votre situation pendant 6 à 12 mois. Un courtier spécialisé dans les dossiers complexes pourra ensuite cibler les établissements adaptés.", in.FeasibilityScore),
					Action: &models.AdviceAction{
						Label:    "Consulter un courtier spécialisé",
						Timeline: "Après stabilisation du profil",
						Gain:     "Maximiser vos chances",
					},
					Kind: models.AdviceKindAlert,
				}
			},
		},

		// apport

		{
			ID: "apport-zero", Group: GroupDownPay, Priority: 1, Weight: 100,
			Condition: func(in models.AdviceInput) bool { return in.DownPayment == 0 },
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				feeRange := "7-8%"
				if in.PropertyCondition == models.PropertyNew {
					feeRange = "2-3%"
				}
				target := formatEuro(math.Round(in.PurchasePrice * 0.10))
				return models.Advice{
					Category: models.AdviceCategoryAction,
					Title:    "Aucun apport : frein majeur",
					Text:     fmt.Sprintf("Sans apport, vous ne couvrez pas les frais de notaire (%s du prix). Très peu de banques acceptent un financement à 110%%. Visez au minimum %s € (10%%) pour débloquer la situation.", feeRange, target),
					Impact:   `Passage de "refus quasi-certain" à "étude possible"`,
					Action: &models.AdviceAction{
						Label:    "Épargner ou mobiliser un don familial",
						Timeline: fmt.Sprintf("Objectif : %s €", target),
						Gain:     "Dossier finançable",
					},
					Kind: models.AdviceKindAlert,
				}
			},
		},
		{
			ID: "apport-insuffisant", Group: GroupDownPay, Priority: 1, Weight: 75,
			Condition: func(in models.AdviceInput) bool {
				return in.DownPayment > 0 && in.DownPaymentPercent() < 10
			},
			Generate: func(in models.AdviceInput, diag models.BankDiagnostic) models.Advice {
				missing := math.Round(in.PurchasePrice*0.10 - in.DownPayment)
				monthlySavings := math.Round(in.Income * 0.15)
				months := int(math.Ceil(missing / (in.Income * 0.15)))
				return models.Advice{
					Category: models.AdviceCategoryAction,
					Title:    "Renforcer l'apport à 10%",
					Text:     fmt.Sprintf("Il manque %s € pour atteindre le seuil des 10%% qui rassure les banques. En épargnant %s €/mois, vous y serez dans %d mois.", formatEuro(missing), formatEuro(monthlySavings), months),
					Impact:   fmt.Sprintf("Déblocage de %d banques supplémentaires", len(diag.SuggestedBanks)+2),
					Action: &models.AdviceAction{
						Label:    "Épargner 15% des revenus",
						Timeline: fmt.Sprintf("%d mois", months),
						Gain:     "Accès aux meilleures offres",
					},
					Kind: models.AdviceKindAlert,
				}
			},
		},
		{
			ID: "apport-optimisable", Group: GroupDownPay, Priority: 2, Weight: 50,
			Condition: func(in models.AdviceInput) bool {
				pct := in.DownPaymentPercent()
				return pct >= 10 && pct < 20
			},
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				missing := math.Round(in.PurchasePrice*0.20 - in.DownPayment)
				return models.Advice{
					Category: models.AdviceCategoryAction,
					Title:    "Viser 20% d'apport",
					Text:     fmt.Sprintf(`Avec %s € de plus, vous atteignez 20%% d'apport et accédez aux taux "premium" des banques (-0.10%% à -0.20%%).`, formatEuro(missing)),
					Impact:   fmt.Sprintf("Économie sur le crédit : ~%s €", formatEuro(in.BorrowableCapital*0.0015*float64(in.Years))),
					Action: &models.AdviceAction{
						Label: "Compléter l'apport",
						Gain:  "Meilleur taux négociable",
					},
					Kind: models.AdviceKindOptimization,
				}
			},
		},
		{
			ID: "apport-excellent", Group: GroupDownPay, Priority: 2, Weight: 25,
			Condition: func(in models.AdviceInput) bool { return in.DownPaymentPercent() >= 20 },
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				return models.Advice{
					Category: models.AdviceCategoryDiagnostic,
					Title:    "Apport solide",
					Text:     fmt.Sprintf("%d%% d'apport : vous êtes au-dessus du seuil de confort des banques. C'est un atout majeur pour négocier.", int(math.Round(in.DownPaymentPercent()))),
					Kind:     models.AdviceKindSuccess,
				}
			},
		},

		// endettement

		{
			ID: "endettement-depasse", Group: GroupDebt, Priority: 1, Weight: 100,
			Condition: func(in models.AdviceInput) bool { return in.DebtRatio > 35 },
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				reduction := formatEuro(math.Round((in.DebtRatio - 33) * in.Income / 100))
				return models.Advice{
					Category: models.AdviceCategoryAction,
					Title:    "Endettement hors norme HCSF",
					Text:     fmt.Sprintf("À %.1f%%, vous dépassez la limite légale de 35%% imposée par le HCSF. Aucune banque ne peut financer ce dossier en l'état. Il faut réduire la mensualité de %s €/mois ou augmenter vos revenus.", in.DebtRatio, reduction),
					Impact:   "Obligatoire pour obtenir un financement",
					Action: &models.AdviceAction{
						Label:    fmt.Sprintf("Réduire la mensualité de %s €", reduction),
						Timeline: "Immédiat",
						Gain:     "Passage sous le seuil HCSF",
					},
					Kind: models.AdviceKindAlert,
				}
			},
		},
		{
			ID: "endettement-limite", Group: GroupDebt, Priority: 1, Weight: 75,
			Condition: func(in models.AdviceInput) bool { return in.DebtRatio > 33 && in.DebtRatio <= 35 },
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				reduction := formatEuro(math.Round((in.DebtRatio - 33) * in.Income / 100))
				return models.Advice{
					Category: models.AdviceCategoryAction,
					Title:    "Endettement à optimiser",
					Text:     fmt.Sprintf("À %.1f%%, vous êtes dans la zone limite HCSF (33-35%%). Le dossier reste finançable mais les banques sont plus exigeantes. Réduire de %s €/mois vous donnerait une marge de confort.", in.DebtRatio, reduction),
					Impact:   `Passage de "acceptation probable" à "acceptation quasi-certaine"`,
					Action: &models.AdviceAction{
						Label: fmt.Sprintf("Réduire de %s €/mois", reduction),
						Gain:  "Dossier renforcé",
					},
					Kind: models.AdviceKindImprovement,
				}
			},
		},
		{
			ID: "endettement-correct", Group: GroupDebt, Priority: 3, Weight: 50,
			Condition: func(in models.AdviceInput) bool { return in.DebtRatio > 30 && in.DebtRatio <= 33 },
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				return models.Advice{
					Category: models.AdviceCategoryDiagnostic,
					Title:    "Endettement dans la norme",
					Text:     fmt.Sprintf("%.1f%% d'endettement : vous restez sous le seuil HCSF avec une marge raisonnable. Certaines banques premium préfèrent ≤ 30%%.", in.DebtRatio),
					Kind:     models.AdviceKindInfo,
				}
			},
		},
		{
			ID: "endettement-ok", Group: GroupDebt, Priority: 3, Weight: 25,
			Condition: func(in models.AdviceInput) bool { return in.DebtRatio <= 30 },
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				return models.Advice{
					Category: models.AdviceCategoryDiagnostic,
					Title:    "Endettement maîtrisé",
					Text:     fmt.Sprintf("%.1f%% d'endettement vous laisse %s € de marge mensuelle au-delà du minimum requis. Excellent signal pour les banques.", in.DebtRatio, formatEuro(in.Allowance-in.AllowanceMin)),
					Kind:     models.AdviceKindSuccess,
				}
			},
		},

		// statut

		{
			ID: "statut-interim", Group: GroupStatus, Priority: 1, Weight: 100,
			Condition: func(in models.AdviceInput) bool {
				return in.EmploymentStatus == models.EmploymentStatusTempWork
			},
			Generate: func(_ models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				return models.Advice{
					Category: models.AdviceCategoryAction,
					Title:    "Intérimaire : dossier spécifique",
					Text:     "En intérim, les banques demandent 2 à 3 ans d'ancienneté dans le secteur, des relevés de missions régulières, et un apport d'au minimum 15-20%. Préparez vos contrats de mission et bulletins de paie des 3 dernières années.",
					Action: &models.AdviceAction{
						Label:    "Constituer un historique de missions",
						Timeline: "Minimum 24 mois de relevés",
						Gain:     "Prouver la régularité des revenus",
					},
					Kind: models.AdviceKindAlert,
				}
			},
		},
		{
			ID: "statut-retraite-critique", Group: GroupStatus, Priority: 1, Weight: 100,
			Condition: func(in models.AdviceInput) bool {
				return in.EmploymentStatus == models.EmploymentStatusRetired && in.Age+in.Years > 80
			},
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				ageAtEnd := in.Age + in.Years
				maxYears := 80 - in.Age
				if maxYears < 10 {
					maxYears = 10
				}
				return models.Advice{
					Category: models.AdviceCategoryAction,
					Title:    "Âge en fin de prêt : risque majeur",
					Text:     fmt.Sprintf("Fin de prêt à %d ans : au-delà de 80 ans, la plupart des assureurs refusent ou appliquent des surprimes prohibitives. Réduisez la durée à %d ans maximum et compensez par un apport plus important. Sans assurance, pas de prêt.", ageAtEnd, maxYears),
					Impact:   "Bloqueur potentiel — à traiter en priorité",
					Action: &models.AdviceAction{
						Label:    fmt.Sprintf("Passer à %d ans + assurance déléguée", maxYears),
						Timeline: "Immédiat — avant toute démarche",
						Gain:     "Rendre le dossier assurable",
					},
					Kind: models.AdviceKindAlert,
				}
			},
		},
		{
			ID: "statut-cdd", Group: GroupStatus, Priority: 2, Weight: 80,
			Condition: func(in models.AdviceInput) bool {
				return in.EmploymentStatus == models.EmploymentStatusCDD
			},
			Generate: func(_ models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				return models.Advice{
					Category: models.AdviceCategoryAction,
					Title:    "Renforcer votre dossier CDD",
					Text:     "En CDD, préparez : contrats des 3 dernières années, preuve de renouvellements, attestation employeur. Un co-emprunteur en CDI ou 25% d'apport compensera.",
					Action: &models.AdviceAction{
						Label:    "Constituer le dossier renforcé",
						Timeline: "Avant les démarches",
					},
					Kind: models.AdviceKindImprovement,
				}
			},
		},
		{
			ID: "statut-independant", Group: GroupStatus, Priority: 2, Weight: 75,
			Condition: func(in models.AdviceInput) bool {
				return in.EmploymentStatus == models.EmploymentStatusSelfEmployed
			},
			Generate: func(_ models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				return models.Advice{
					Category: models.AdviceCategoryAction,
					Title:    "Documents TNS à préparer",
					Text:     "Indépendant : les banques regardent la moyenne des 3 derniers bilans. Préparez : liasses fiscales, bilans comptables, extrait Kbis, derniers avis d'imposition.",
					Action: &models.AdviceAction{
						Label:    "Rassembler les pièces",
						Timeline: "1-2 semaines avant le RDV",
					},
					Kind: models.AdviceKindImprovement,
				}
			},
		},
		{
			ID: "statut-retraite", Group: GroupStatus, Priority: 2, Weight: 60,
			Condition: func(in models.AdviceInput) bool {
				return in.EmploymentStatus == models.EmploymentStatusRetired && in.Age+in.Years <= 80
			},
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				return models.Advice{
					Category: models.AdviceCategoryAction,
					Title:    "Retraité : adapter la stratégie",
					Text:     fmt.Sprintf("Revenus stables et prévisibles : c'est un atout. Avec une durée de %d ans (fin à %d ans), le dossier est cohérent. Comparez les assurances : la délégation est souvent 40-60%% moins chère.", in.Years, in.Age+in.Years),
					Action: &models.AdviceAction{
						Label:    "Comparer les assurances en délégation",
						Timeline: "Avant toute signature",
						Gain:     "Jusqu'à 60% d'économie sur l'assurance",
					},
					Kind: models.AdviceKindSuccess,
				}
			},
		},
		{
			ID: "statut-fonctionnaire", Group: GroupStatus, Priority: 3, Weight: 50,
			Condition: func(in models.AdviceInput) bool {
				return in.EmploymentStatus == models.EmploymentStatusCivilServant
			},
			Generate: func(_ models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				return models.Advice{
					Category: models.AdviceCategoryDiagnostic,
					Title:    "Profil très apprécié",
					Text:     "En tant que fonctionnaire, vous bénéficiez de conditions privilégiées. Certaines banques (Banque Postale, Crédit Mutuel Enseignant) proposent des offres dédiées avec taux préférentiels.",
					Kind:     models.AdviceKindSuccess,
				}
			},
		},
		{
			ID: "statut-cdi", Group: GroupStatus, Priority: 3, Weight: 40,
			Condition: func(in models.AdviceInput) bool {
				return in.EmploymentStatus == models.EmploymentStatusCDI
			},
			Generate: func(_ models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				return models.Advice{
					Category: models.AdviceCategoryDiagnostic,
					Title:    "CDI validé",
					Text:     "Le CDI reste le critère n°1 des banques. Si vous avez passé votre période d'essai, votre dossier coche la case la plus importante. Pensez à demander une attestation employeur récente.",
					Action: &models.AdviceAction{
						Label:    "Préparer l'attestation employeur",
						Timeline: "Avant le RDV banque",
					},
					Kind: models.AdviceKindSuccess,
				}
			},
		},

		// age / assurance

		{
			ID: "age-assurance", Group: GroupAge, Priority: 2, Weight: 75,
			Condition: func(in models.AdviceInput) bool {
				ageAtEnd := in.Age + in.Years
				// statut-retraite already talks about insurance for retirees
				return ageAtEnd > 70 && ageAtEnd <= 75 && in.EmploymentStatus != models.EmploymentStatusRetired
			},
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				return models.Advice{
					Category: models.AdviceCategoryAction,
					Title:    "Anticiper l'assurance",
					Text:     fmt.Sprintf("Fin de prêt à %d ans : les assurances groupe seront plus chères. Demandez des devis en délégation d'assurance (Magnolia, April) pour économiser jusqu'à 50%%.", in.Age+in.Years),
					Impact:   fmt.Sprintf("Économie potentielle : %s €", formatEuro(in.BorrowableCapital*0.003*float64(in.Years))),
					Action: &models.AdviceAction{
						Label:    "Comparer les assurances",
						Timeline: "Avant la signature de l'offre",
						Gain:     "Jusqu'à 50% d'économie",
					},
					Kind: models.AdviceKindImprovement,
				}
			},
		},

		// duree

		{
			ID: "duree-20ans", Group: GroupDuration, Priority: 3, Weight: 50,
			Condition: func(in models.AdviceInput) bool {
				if in.Years != 25 || in.Age >= 45 {
					return false
				}
				return savingsAt20Years(in) > 5000
			},
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				saving := formatEuro(savingsAt20Years(in))
				return models.Advice{
					Category: models.AdviceCategoryScenario,
					Title:    "Envisager 20 ans",
					Text:     fmt.Sprintf("Passer à 20 ans augmenterait votre mensualité mais économiserait ~%s € sur le coût total du crédit.", saving),
					Impact:   fmt.Sprintf("Économie totale : %s €", saving),
					Kind:     models.AdviceKindOptimization,
				}
			},
		},

		// ptz

		{
			ID: "ptz-eligible", Group: GroupPTZ, Priority: 1, Weight: 100,
			Condition: func(in models.AdviceInput) bool { return ptzEligible(in, market) },
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				amount := ptzAmount(in.Household, in.Children, market.PTZAmounts)
				saving := math.Round(amount * (in.Rate / 100) * float64(in.Years) * 0.5)
				text := fmt.Sprintf("Le PTZ est désormais accessible dans l'ancien en zones B2 et C (sous conditions de travaux). Jusqu'à %s € à 0%% d'intérêts avec un différé de remboursement.", formatEuro(amount))
				if in.PropertyCondition == models.PropertyNew {
					text = fmt.Sprintf("Votre profil est compatible avec le Prêt à Taux Zéro. Jusqu'à %s € à 0%% d'intérêts en zone A bis/A. C'est le premier levier à exploiter pour augmenter votre budget.", formatEuro(amount))
				}
				return models.Advice{
					Category: models.AdviceCategoryStrategy,
					Title:    "PTZ : levier majeur à activer",
					Text:     text,
					Impact:   fmt.Sprintf("Économie d'intérêts estimée : %s €", formatEuro(saving)),
					Action: &models.AdviceAction{
						Label:    "Vérifier l'éligibilité complète sur ANIL.org",
						Timeline: "Avant le montage du dossier",
						Gain:     fmt.Sprintf("%s € à 0%%", formatEuro(amount)),
					},
					Kind: models.AdviceKindSuccess,
				}
			},
		},

		// geographie

		{
			ID: "geo-opportunite", Group: GroupGeography, Priority: 3, Weight: 50,
			Condition: func(in models.AdviceInput) bool {
				return in.SurfaceParis < 30 && in.SurfaceOuterSuburbs >= 60
			},
			Generate: func(in models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				return models.Advice{
					Category: models.AdviceCategoryStrategy,
					Title:    "Opportunité Grande Couronne",
					Text:     fmt.Sprintf("Votre budget permet %d m² en Seine-et-Marne/Essonne contre %d m² à Paris. Le télétravail rend ces zones attractives.", in.SurfaceOuterSuburbs, in.SurfaceParis),
					Kind:     models.AdviceKindOptimization,
				}
			},
		},

		// marche

		{
			ID: "marche-timing", Group: GroupMarket, Priority: 2, Weight: 50,
			Condition: func(_ models.AdviceInput) bool { return market.Trend == "stable" },
			Generate: func(_ models.AdviceInput, _ models.BankDiagnostic) models.Advice {
				return models.Advice{
					Category: models.AdviceCategoryStrategy,
					Title:    "Marché favorable",
					Text:     fmt.Sprintf("Les taux sont stables autour de %.2f%% sur 20 ans. C'est le bon moment pour concrétiser votre projet sans précipitation.", market.Avg20Years),
					Kind:     models.AdviceKindInfo,
				}
			},
		},
	}
}

// savingsAt20Years is the total-cost saving from switching a 25-year
// loan to 20 years at a slightly better rate.
func savingsAt20Years(in models.AdviceInput) float64 {
	cost25 := in.MaxPayment * 25 * 12
	cost20 := monthlyPayment(in.BorrowableCapital, in.Rate-0.1, 20) * 20 * 12
	return cost25 - cost20
}
