package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/avergara/d4d-dashboard-go/internal/domain/entity"
	"github.com/avergara/d4d-dashboard-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa el ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository crea una nueva implementación del ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- Reporte de Analytics ---

func (r *ExportRepositoryImpl) ExportAnalyticsToCSV(set entity.AggregationSet, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating analytics CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"Table", "Key", "Subkey", "Doses"})
	for _, row := range set.BySexAge {
		writer.Write([]string{"sex_age", row.Sex, row.AgeBracket, formatQuantity(row.Quantity)})
	}
	for _, row := range set.ByLocality {
		writer.Write([]string{"locality", row.Locality, "", formatQuantity(row.Quantity)})
	}
	for _, row := range set.BySpecialty {
		writer.Write([]string{"specialty", row.Specialty, "", formatQuantity(row.Quantity)})
	}
	for _, row := range set.ByDose {
		if err := writer.Write([]string{"dose", string(row.Dose), "", formatQuantity(row.Quantity)}); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportAnalyticsToJSON(set entity.AggregationSet, filename, outputDir string) (string, error) {
	return writeJSON(set, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportAnalyticsToPDF(set entity.AggregationSet, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf, tr, drawSection := newReportPDF("Analytics & Recommendations")

	sexAge := ""
	for _, row := range set.BySexAge {
		sexAge += fmt.Sprintf("%s / %s: %s doses\n", row.Sex, row.AgeBracket, formatQuantity(row.Quantity))
	}
	drawSection("Vaccination by sex and age bracket", sexAge)

	localities := ""
	for _, row := range set.ByLocality {
		localities += fmt.Sprintf("%s: %s doses\n", row.Locality, formatQuantity(row.Quantity))
	}
	drawSection("Vaccination by locality", localities)

	specialties := ""
	for _, row := range set.BySpecialty {
		specialties += fmt.Sprintf("%s: %s doses\n", row.Specialty, formatQuantity(row.Quantity))
	}
	drawSection("Prescriber specialty", specialties)

	doses := ""
	for _, row := range set.ByDose {
		doses += fmt.Sprintf("%s: %s doses\n", row.Dose, formatQuantity(row.Quantity))
	}
	drawSection("Vaccinated per dose", doses)

	writeFooter(pdf, tr)
	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Reporte del Simulador ---

// simulationReport is the flat export shape of a simulation run.
type simulationReport struct {
	Cohort entity.CohortCounts     `json:"cohort"`
	Result entity.SimulationResult `json:"result"`
}

func (r *ExportRepositoryImpl) ExportSimulationToCSV(cohort entity.CohortCounts, result entity.SimulationResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating simulation CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"Section", "Row", "1st dose / Current", "2nd dose / Potential", "3rd dose / Opportunity"})

	writer.Write([]string{"adherence", "Share", formatQuantity(cohort.Dose1Share), formatQuantity(cohort.Dose2Share), formatQuantity(cohort.Dose3Share)})
	writer.Write([]string{"adherence", "Vaccinated", formatQuantity(cohort.Dose1Total), formatQuantity(cohort.Dose2Total), formatQuantity(cohort.Dose3Total)})

	writeScenario := func(section string, s entity.ScenarioTable) {
		writer.Write([]string{section, "Adherence", formatQuantity(s.Dose1.Adherence), formatQuantity(s.Dose2.Adherence), formatQuantity(s.Dose3.Adherence)})
		writer.Write([]string{section, "Sales doses", formatQuantity(s.Dose1.SalesDoses), formatQuantity(s.Dose2.SalesDoses), formatQuantity(s.Dose3.SalesDoses)})
		writer.Write([]string{section, "Sales CLP", formatQuantity(s.Dose1.SalesAmount), formatQuantity(s.Dose2.SalesAmount), formatQuantity(s.Dose3.SalesAmount)})
		writer.Write([]string{section, "Margin CLP", formatQuantity(s.Dose1.MarginAmount), formatQuantity(s.Dose2.MarginAmount), formatQuantity(s.Dose3.MarginAmount)})
	}
	writeScenario("current", result.Current)
	writeScenario("potential", result.Potential)

	writer.Write([]string{"opportunity", "Sales doses", formatQuantity(result.Opportunity.SalesDoses.Current), formatQuantity(result.Opportunity.SalesDoses.Potential), formatQuantity(result.Opportunity.SalesDoses.Opportunity)})
	writer.Write([]string{"opportunity", "Sales CLP", formatQuantity(result.Opportunity.SalesAmount.Current), formatQuantity(result.Opportunity.SalesAmount.Potential), formatQuantity(result.Opportunity.SalesAmount.Opportunity)})
	if err := writer.Write([]string{"opportunity", "Margin CLP", formatQuantity(result.Opportunity.MarginAmount.Current), formatQuantity(result.Opportunity.MarginAmount.Potential), formatQuantity(result.Opportunity.MarginAmount.Opportunity)}); err != nil {
		return "", fmt.Errorf("error writing CSV record: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSimulationToJSON(cohort entity.CohortCounts, result entity.SimulationResult, filename, outputDir string) (string, error) {
	return writeJSON(simulationReport{Cohort: cohort, Result: result}, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportSimulationToPDF(cohort entity.CohortCounts, result entity.SimulationResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf, tr, drawSection := newReportPDF("Financial Simulator & Adherence")

	adherence := fmt.Sprintf("1st dose: %.1f%% (%s vaccinated)\n2nd dose: %.1f%% (%s vaccinated)\n3rd dose: %.1f%% (%s vaccinated)",
		cohort.Dose1Share*100, formatQuantity(cohort.Dose1Total),
		cohort.Dose2Share*100, formatQuantity(cohort.Dose2Total),
		cohort.Dose3Share*100, formatQuantity(cohort.Dose3Total))
	drawSection("Estimated adherence", adherence)

	breakdown := fmt.Sprintf("Price: %s CLP\nTax: %s CLP\nCost: %s CLP\nMargin: %s CLP\nDiscount: %s CLP\nPost discount margin: %s CLP",
		formatQuantity(result.Prices.Price.Amount),
		formatQuantity(result.Prices.Tax.Amount),
		formatQuantity(result.Prices.Cost.Amount),
		formatQuantity(result.Margins.Margin.Amount),
		formatQuantity(result.Margins.Discount.Amount),
		formatQuantity(result.Margins.PostDiscountMargin.Amount))
	drawSection("Unit breakdown", breakdown)

	scenarioText := func(s entity.ScenarioTable) string {
		return fmt.Sprintf("Adherence: %.1f%% / %.1f%% / %.1f%%\nSales [doses]: %s / %s / %s\nSales [CLP]: %s / %s / %s\nMargin [CLP]: %s / %s / %s",
			s.Dose1.Adherence*100, s.Dose2.Adherence*100, s.Dose3.Adherence*100,
			formatQuantity(s.Dose1.SalesDoses), formatQuantity(s.Dose2.SalesDoses), formatQuantity(s.Dose3.SalesDoses),
			formatQuantity(s.Dose1.SalesAmount), formatQuantity(s.Dose2.SalesAmount), formatQuantity(s.Dose3.SalesAmount),
			formatQuantity(s.Dose1.MarginAmount), formatQuantity(s.Dose2.MarginAmount), formatQuantity(s.Dose3.MarginAmount))
	}
	drawSection("Current scenario", scenarioText(result.Current))
	drawSection("Potential scenario", scenarioText(result.Potential))

	opportunity := fmt.Sprintf("Sales [doses]: %s current, %s potential, %s opportunity\nSales [CLP]: %s current, %s potential, %s opportunity\nMargin [CLP]: %s current, %s potential, %s opportunity",
		formatQuantity(result.Opportunity.SalesDoses.Current), formatQuantity(result.Opportunity.SalesDoses.Potential), formatQuantity(result.Opportunity.SalesDoses.Opportunity),
		formatQuantity(result.Opportunity.SalesAmount.Current), formatQuantity(result.Opportunity.SalesAmount.Potential), formatQuantity(result.Opportunity.SalesAmount.Opportunity),
		formatQuantity(result.Opportunity.MarginAmount.Current), formatQuantity(result.Opportunity.MarginAmount.Potential), formatQuantity(result.Opportunity.MarginAmount.Opportunity))
	drawSection("Income opportunity", opportunity)

	writeFooter(pdf, tr)
	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Reporte de Seguimiento ---

func (r *ExportRepositoryImpl) ExportTrackingToCSV(report entity.TrackingReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating tracking CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"Period", "Next dose", "Date", "Specialty", "Region", "Locality", "Sex", "Age bracket", "Dose", "Quantity"})

	writeDue := func(nextDose string, due []entity.DoseRecord) error {
		for _, rec := range due {
			err := writer.Write([]string{
				report.Period.String(),
				nextDose,
				rec.Date.Format(entity.DateLayout),
				rec.Specialty,
				rec.Region,
				rec.Locality,
				rec.Sex,
				rec.AgeBracket,
				string(rec.Dose),
				formatQuantity(rec.Quantity),
			})
			if err != nil {
				return fmt.Errorf("error writing CSV record: %w", err)
			}
		}
		return nil
	}
	if err := writeDue("2nd", report.DueSecondDose); err != nil {
		return "", err
	}
	if err := writeDue("3rd", report.DueThirdDose); err != nil {
		return "", err
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportTrackingToJSON(report entity.TrackingReport, filename, outputDir string) (string, error) {
	return writeJSON(report, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportTrackingToPDF(report entity.TrackingReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf, tr, drawSection := newReportPDF(fmt.Sprintf("Tracking - next doses for %s", report.Period))

	dueText := func(due []entity.DoseRecord) string {
		if len(due) == 0 {
			return "No patients due."
		}
		out := ""
		for _, rec := range due {
			out += fmt.Sprintf("%s | %s | %s | %s | %s | %s doses\n",
				rec.Date.Format(entity.DateLayout), rec.Specialty, rec.Locality, rec.Sex, rec.AgeBracket, formatQuantity(rec.Quantity))
		}
		return out
	}
	drawSection(fmt.Sprintf("Due for 2nd dose (%d)", len(report.DueSecondDose)), dueText(report.DueSecondDose))
	drawSection(fmt.Sprintf("Due for 3rd dose (%d)", len(report.DueThirdDose)), dueText(report.DueThirdDose))

	writeFooter(pdf, tr)
	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funciones Auxiliares ---

func writeJSON(payload interface{}, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// newReportPDF prepares an A4 portrait report page with the shared header
// style and returns a section writer bound to it.
func newReportPDF(title string) (*gofpdf.Fpdf, func(string) string, func(title, content string)) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{0, 133, 124}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", title)), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	return pdf, tr, drawSection
}

func writeFooter(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by D4D Dashboard | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
}

// formatQuantity renders a numeric cell without trailing float noise.
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// generateFilename crea un nombre de archivo único con timestamp y garantiza
// que el directorio exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
