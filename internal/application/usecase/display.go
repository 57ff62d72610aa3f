package usecase

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/avergara/d4d-dashboard-go/internal/domain/entity"
	"github.com/avergara/d4d-dashboard-go/internal/shared/types"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a currency amount the way the dashboard displays it:
// truncated to an integer, with thousands separators. This is a documented
// lossy step; the underlying values stay unrounded.
func FormatAmount(v float64) string {
	return amountPrinter.Sprintf("%d", int64(v))
}

// FormatPercent renders a fraction as a percentage with one decimal.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

func (uc *DashboardUseCase) renderAnalytics(set entity.AggregationSet) {
	uc.console.Println()
	uc.console.LogInfo("Analytics & Recommendations")

	table := uc.console.CreateTable()
	table.AddColumn("Sex")
	table.AddColumn("Age bracket")
	table.AddColumn("Doses")
	for _, row := range set.BySexAge {
		table.AddRow(row.Sex, row.AgeBracket, FormatAmount(row.Quantity))
	}
	uc.console.Print(table.Render())

	localityBars := make([]types.BarEntry, 0, len(set.ByLocality))
	for _, row := range set.ByLocality {
		localityBars = append(localityBars, types.BarEntry{Label: row.Locality, Quantity: row.Quantity})
	}
	uc.console.DisplayBars("Vaccination by locality", localityBars)

	specialtyBars := make([]types.BarEntry, 0, len(set.BySpecialty))
	for _, row := range set.BySpecialty {
		specialtyBars = append(specialtyBars, types.BarEntry{Label: row.Specialty, Quantity: row.Quantity})
	}
	uc.console.DisplayBars("Prescriber specialty", specialtyBars)

	doseBars := make([]types.BarEntry, 0, len(set.ByDose))
	for _, row := range set.ByDose {
		doseBars = append(doseBars, types.BarEntry{Label: string(row.Dose), Quantity: row.Quantity})
	}
	uc.console.DisplayBars("Vaccinated per dose", doseBars)
}

func (uc *DashboardUseCase) renderAdherence(cohort entity.CohortCounts) {
	uc.console.Println()
	uc.console.LogInfo("Estimated adherence")
	uc.console.DisplayMetric("1st dose", FormatPercent(cohort.Dose1Share), FormatAmount(cohort.Dose1Total)+" vaccinated")
	uc.console.DisplayMetric("2nd dose", FormatPercent(cohort.Dose2Share), FormatAmount(cohort.Dose2Total)+" vaccinated")
	uc.console.DisplayMetric("3rd dose", FormatPercent(cohort.Dose3Share), FormatAmount(cohort.Dose3Total)+" vaccinated")
}

func (uc *DashboardUseCase) renderSimulation(result entity.SimulationResult) {
	uc.console.Println()
	uc.console.LogInfo("Revenue simulator")

	prices := uc.console.CreateTable()
	prices.AddColumn("")
	prices.AddColumn("CLP")
	prices.AddColumn("%")
	prices.AddRow("Price", FormatAmount(result.Prices.Price.Amount), FormatPercent(result.Prices.Price.Share))
	prices.AddRow("Tax", FormatAmount(result.Prices.Tax.Amount), FormatPercent(result.Prices.Tax.Share))
	prices.AddRow("Cost", FormatAmount(result.Prices.Cost.Amount), FormatPercent(result.Prices.Cost.Share))
	uc.console.Print(prices.Render())

	margins := uc.console.CreateTable()
	margins.AddColumn("")
	margins.AddColumn("CLP")
	margins.AddColumn("%")
	margins.AddRow("Margin", FormatAmount(result.Margins.Margin.Amount), FormatPercent(result.Margins.Margin.Share))
	margins.AddRow("Discount", FormatAmount(result.Margins.Discount.Amount), FormatPercent(result.Margins.Discount.Share))
	margins.AddRow("Post discount margin", FormatAmount(result.Margins.PostDiscountMargin.Amount), FormatPercent(result.Margins.PostDiscountMargin.Share))
	uc.console.Print(margins.Render())

	uc.renderScenario("Current scenario", result.Current)
	uc.renderScenario("Potential scenario", result.Potential)

	uc.console.LogInfo("Income opportunity")
	opp := uc.console.CreateTable()
	opp.AddColumn("")
	opp.AddColumn("Current")
	opp.AddColumn("Potential")
	opp.AddColumn("Opportunity")
	opp.AddRow("Sales [doses]", FormatAmount(result.Opportunity.SalesDoses.Current), FormatAmount(result.Opportunity.SalesDoses.Potential), FormatAmount(result.Opportunity.SalesDoses.Opportunity))
	opp.AddRow("Sales [CLP]", FormatAmount(result.Opportunity.SalesAmount.Current), FormatAmount(result.Opportunity.SalesAmount.Potential), FormatAmount(result.Opportunity.SalesAmount.Opportunity))
	opp.AddRow("Margin [CLP]", FormatAmount(result.Opportunity.MarginAmount.Current), FormatAmount(result.Opportunity.MarginAmount.Potential), FormatAmount(result.Opportunity.MarginAmount.Opportunity))
	uc.console.Print(opp.Render())
}

func (uc *DashboardUseCase) renderScenario(title string, scenario entity.ScenarioTable) {
	uc.console.LogInfo(title)
	table := uc.console.CreateTable()
	table.AddColumn("")
	table.AddColumn("1st dose")
	table.AddColumn("2nd dose")
	table.AddColumn("3rd dose")
	table.AddRow("Adherence [%]", FormatPercent(scenario.Dose1.Adherence), FormatPercent(scenario.Dose2.Adherence), FormatPercent(scenario.Dose3.Adherence))
	table.AddRow("Sales [doses]", FormatAmount(scenario.Dose1.SalesDoses), FormatAmount(scenario.Dose2.SalesDoses), FormatAmount(scenario.Dose3.SalesDoses))
	table.AddRow("Sales [CLP]", FormatAmount(scenario.Dose1.SalesAmount), FormatAmount(scenario.Dose2.SalesAmount), FormatAmount(scenario.Dose3.SalesAmount))
	table.AddRow("Margin [CLP]", FormatAmount(scenario.Dose1.MarginAmount), FormatAmount(scenario.Dose2.MarginAmount), FormatAmount(scenario.Dose3.MarginAmount))
	uc.console.Print(table.Render())
}

func (uc *DashboardUseCase) renderTracking(report entity.TrackingReport) {
	uc.console.Println()
	uc.console.LogInfo("Tracking - detail of next doses for period %s", report.Period)
	uc.console.DisplayMetric("2nd dose", fmt.Sprintf("%d", len(report.DueSecondDose)), "patients due")
	uc.renderDueTable(report.DueSecondDose)
	uc.console.DisplayMetric("3rd dose", fmt.Sprintf("%d", len(report.DueThirdDose)), "patients due")
	uc.renderDueTable(report.DueThirdDose)
}

func (uc *DashboardUseCase) renderDueTable(due []entity.DoseRecord) {
	if len(due) == 0 {
		uc.console.Println("  (no patients due)")
		return
	}
	table := uc.console.CreateTable()
	table.AddColumn("Date")
	table.AddColumn("Specialty")
	table.AddColumn("Locality")
	table.AddColumn("Sex")
	table.AddColumn("Age bracket")
	table.AddColumn("Dose")
	table.AddColumn("Qty")
	for _, rec := range due {
		table.AddRow(
			rec.Date.Format(entity.DateLayout),
			rec.Specialty,
			rec.Locality,
			rec.Sex,
			rec.AgeBracket,
			string(rec.Dose),
			FormatAmount(rec.Quantity),
		)
	}
	uc.console.Print(table.Render())
}
