package usecase

import (
	"github.com/avergara/d4d-dashboard-go/internal/domain/entity"
)

// Simulate projects revenue and margin under the supplied pricing and
// adherence assumptions. Pure function: no I/O, identical inputs yield
// identical results. Rounding for display is the caller's concern.
func Simulate(cohort entity.CohortCounts, inputs entity.SimulationInputs) entity.SimulationResult {
	price := inputs.UnitPrice
	cost := inputs.UnitCost

	marginPerUnit := price - price*entity.TaxRate - cost
	discountAmount := cost * inputs.CostDiscountPct
	postDiscountMargin := marginPerUnit + discountAmount

	prices := entity.PriceBreakdown{
		Price: entity.BreakdownLine{Amount: price, Share: price / price},
		Tax:   entity.BreakdownLine{Amount: price * entity.TaxRate, Share: entity.TaxRate},
		Cost:  entity.BreakdownLine{Amount: cost, Share: cost / price},
	}

	margins := entity.MarginBreakdown{
		Margin:             entity.BreakdownLine{Amount: marginPerUnit, Share: marginPerUnit / price},
		Discount:           entity.BreakdownLine{Amount: discountAmount, Share: inputs.CostDiscountPct},
		PostDiscountMargin: entity.BreakdownLine{Amount: postDiscountMargin, Share: postDiscountMargin / price},
	}

	doseScenario := func(adherence, doses float64) entity.DoseScenario {
		return entity.DoseScenario{
			Adherence:    adherence,
			SalesDoses:   doses,
			SalesAmount:  doses * price,
			MarginAmount: postDiscountMargin * doses,
		}
	}

	current := entity.ScenarioTable{
		Dose1: doseScenario(cohort.Dose1Share, cohort.Dose1Total),
		Dose2: doseScenario(cohort.Dose2Share, cohort.Dose2Total),
		Dose3: doseScenario(cohort.Dose3Share, cohort.Dose3Total),
	}

	potential := entity.ScenarioTable{
		Dose1: doseScenario(1, cohort.Dose1Total),
		Dose2: doseScenario(inputs.Adherence2Target, cohort.Dose1Total*inputs.Adherence2Target),
		Dose3: doseScenario(inputs.Adherence3Target, cohort.Dose1Total*inputs.Adherence3Target),
	}

	opportunityLine := func(metric func(entity.DoseScenario) float64) entity.OpportunityLine {
		cur := current.Total(metric)
		pot := potential.Total(metric)
		return entity.OpportunityLine{Current: cur, Potential: pot, Opportunity: pot - cur}
	}

	return entity.SimulationResult{
		Prices:    prices,
		Margins:   margins,
		Current:   current,
		Potential: potential,
		Opportunity: entity.OpportunityTable{
			SalesDoses:   opportunityLine(func(d entity.DoseScenario) float64 { return d.SalesDoses }),
			SalesAmount:  opportunityLine(func(d entity.DoseScenario) float64 { return d.SalesAmount }),
			MarginAmount: opportunityLine(func(d entity.DoseScenario) float64 { return d.MarginAmount }),
		},
	}
}
