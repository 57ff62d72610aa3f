package entity

// TaxRate is the VAT-equivalent applied to the gross sales price. Fixed by
// the D4D program, not a simulation input.
const TaxRate = 0.19

// SimulationInputs are the caller-supplied scalars of the revenue simulator.
// Percentages are fractions (0.03 for 3%); values are not clamped.
type SimulationInputs struct {
	UnitPrice        float64 `json:"unit_price"`
	UnitCost         float64 `json:"unit_cost"`
	CostDiscountPct  float64 `json:"cost_discount_pct"`
	Adherence2Target float64 `json:"adherence2_target"`
	Adherence3Target float64 `json:"adherence3_target"`
}

// BreakdownLine is one row of a price or margin breakdown: an amount in the
// sales currency and its share of the unit price.
type BreakdownLine struct {
	Amount float64 `json:"amount"`
	Share  float64 `json:"share"`
}

// PriceBreakdown decomposes the unit price into price, tax and cost.
type PriceBreakdown struct {
	Price BreakdownLine `json:"price"`
	Tax   BreakdownLine `json:"tax"`
	Cost  BreakdownLine `json:"cost"`
}

// MarginBreakdown decomposes the unit margin before and after the cost
// discount of the D4D program.
type MarginBreakdown struct {
	Margin             BreakdownLine `json:"margin"`
	Discount           BreakdownLine `json:"discount"`
	PostDiscountMargin BreakdownLine `json:"post_discount_margin"`
}

// DoseScenario holds the projected figures for a single dose order.
type DoseScenario struct {
	Adherence    float64 `json:"adherence"`
	SalesDoses   float64 `json:"sales_doses"`
	SalesAmount  float64 `json:"sales_amount"`
	MarginAmount float64 `json:"margin_amount"`
}

// ScenarioTable holds one scenario (current or potential) across the series.
type ScenarioTable struct {
	Dose1 DoseScenario `json:"dose1"`
	Dose2 DoseScenario `json:"dose2"`
	Dose3 DoseScenario `json:"dose3"`
}

// Total sums a scenario metric across the three doses.
func (s ScenarioTable) Total(metric func(DoseScenario) float64) float64 {
	return metric(s.Dose1) + metric(s.Dose2) + metric(s.Dose3)
}

// OpportunityLine compares the current and potential totals of one metric.
type OpportunityLine struct {
	Current     float64 `json:"current"`
	Potential   float64 `json:"potential"`
	Opportunity float64 `json:"opportunity"`
}

// OpportunityTable is the current vs potential comparison per metric.
type OpportunityTable struct {
	SalesDoses   OpportunityLine `json:"sales_doses"`
	SalesAmount  OpportunityLine `json:"sales_amount"`
	MarginAmount OpportunityLine `json:"margin_amount"`
}

// SimulationResult bundles every table the simulator produces. It is a pure
// value: recomputed per call, no identity, no mutation.
type SimulationResult struct {
	Prices      PriceBreakdown   `json:"prices"`
	Margins     MarginBreakdown  `json:"margins"`
	Current     ScenarioTable    `json:"current"`
	Potential   ScenarioTable    `json:"potential"`
	Opportunity OpportunityTable `json:"opportunity"`
}
