package usecase

import (
	"testing"

	"github.com/avergara/d4d-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

func referenceCohort() entity.CohortCounts {
	return entity.CohortCounts{
		Dose1Total: 100, Dose2Total: 80, Dose3Total: 70,
		Dose1Share: 1, Dose2Share: 0.8, Dose3Share: 0.7,
	}
}

func referenceInputs() entity.SimulationInputs {
	return entity.SimulationInputs{
		UnitPrice:        130000,
		UnitCost:         89500,
		CostDiscountPct:  0.03,
		Adherence2Target: 1.0,
		Adherence3Target: 1.0,
	}
}

func TestSimulate_UnitBreakdowns(t *testing.T) {
	result := Simulate(referenceCohort(), referenceInputs())

	// margin_per_unit = 130000 - 24700 - 89500 = 15800
	require.InDelta(t, 15800, result.Margins.Margin.Amount, 1e-9)
	// post_discount_margin_per_unit = 15800 + 89500*0.03 = 18485
	require.InDelta(t, 18485, result.Margins.PostDiscountMargin.Amount, 1e-9)
	require.InDelta(t, 2685, result.Margins.Discount.Amount, 1e-9)

	require.InDelta(t, 130000, result.Prices.Price.Amount, 1e-9)
	require.InDelta(t, 1.0, result.Prices.Price.Share, 1e-12)
	require.InDelta(t, 24700, result.Prices.Tax.Amount, 1e-9)
	require.InDelta(t, entity.TaxRate, result.Prices.Tax.Share, 1e-12)
	require.InDelta(t, 89500, result.Prices.Cost.Amount, 1e-9)
}

func TestSimulate_CurrentScenario(t *testing.T) {
	result := Simulate(referenceCohort(), referenceInputs())

	require.InDelta(t, 0.8, result.Current.Dose2.Adherence, 1e-12)
	require.InDelta(t, 80, result.Current.Dose2.SalesDoses, 1e-9)
	require.InDelta(t, 80*130000, result.Current.Dose2.SalesAmount, 1e-9)
	require.InDelta(t, 18485*80, result.Current.Dose2.MarginAmount, 1e-9)
}

func TestSimulate_PotentialScenario(t *testing.T) {
	result := Simulate(referenceCohort(), referenceInputs())

	// Potential adherence for dose 1 is the constant 1.
	require.InDelta(t, 1.0, result.Potential.Dose1.Adherence, 1e-12)
	// Potential dose-1 margin = 18485 * 100 = 1,848,500
	require.InDelta(t, 1848500, result.Potential.Dose1.MarginAmount, 1e-9)
	// Potential doses are projected from the first-dose cohort.
	require.InDelta(t, 100, result.Potential.Dose2.SalesDoses, 1e-9)
	require.InDelta(t, 100, result.Potential.Dose3.SalesDoses, 1e-9)
}

func TestSimulate_PartialAdherenceTargets(t *testing.T) {
	inputs := referenceInputs()
	inputs.Adherence2Target = 0.9
	inputs.Adherence3Target = 0.85

	result := Simulate(referenceCohort(), inputs)
	require.InDelta(t, 90, result.Potential.Dose2.SalesDoses, 1e-9)
	require.InDelta(t, 85, result.Potential.Dose3.SalesDoses, 1e-9)
	require.InDelta(t, 90*130000, result.Potential.Dose2.SalesAmount, 1e-9)
}

func TestSimulate_OpportunityIsPotentialMinusCurrent(t *testing.T) {
	result := Simulate(referenceCohort(), referenceInputs())

	for _, line := range []entity.OpportunityLine{
		result.Opportunity.SalesDoses,
		result.Opportunity.SalesAmount,
		result.Opportunity.MarginAmount,
	} {
		require.InDelta(t, line.Potential-line.Current, line.Opportunity, 1e-9)
	}

	// current doses = 100+80+70 = 250; potential = 300; opportunity = 50
	require.InDelta(t, 250, result.Opportunity.SalesDoses.Current, 1e-9)
	require.InDelta(t, 300, result.Opportunity.SalesDoses.Potential, 1e-9)
	require.InDelta(t, 50, result.Opportunity.SalesDoses.Opportunity, 1e-9)
}

func TestSimulate_IsPure(t *testing.T) {
	first := Simulate(referenceCohort(), referenceInputs())
	second := Simulate(referenceCohort(), referenceInputs())
	require.Equal(t, first, second)
}
