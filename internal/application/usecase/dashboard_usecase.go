package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avergara/d4d-dashboard-go/internal/domain/entity"
	"github.com/avergara/d4d-dashboard-go/internal/domain/repository"
	"github.com/avergara/d4d-dashboard-go/internal/shared/types"
)

// Simulator fallbacks when neither a flag nor a config value was given.
const (
	defaultUnitPrice = 130000
	defaultUnitCost  = 89500
	defaultDiscount  = "3%"
)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	datasetRepo repository.DatasetRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	datasetRepo repository.DatasetRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		datasetRepo: datasetRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
	}
}

// resolveArgs merges the configuration file (if any) under the CLI arguments
// and fills preset defaults. Flag values always win over file values.
func (uc *DashboardUseCase) resolveArgs(args *types.CLIArgs) (Preset, error) {
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return Preset{}, err
		}
		mergeConfig(args, cfg)
	}

	preset, err := PresetByName(args.Preset)
	if err != nil {
		return Preset{}, err
	}

	if args.Price == 0 {
		args.Price = defaultUnitPrice
	}
	if args.Cost == 0 {
		args.Cost = defaultUnitCost
	}
	if args.Discount == "" {
		args.Discount = defaultDiscount
	}
	if args.Adherence2 == "" {
		args.Adherence2 = preset.DefaultAdherence2
	}
	if args.Adherence3 == "" {
		args.Adherence3 = preset.DefaultAdherence3
	}

	return preset, nil
}

func mergeConfig(args *types.CLIArgs, cfg *types.Config) {
	if args.File == "" {
		args.File = cfg.File
	}
	if args.Preset == "" {
		args.Preset = cfg.Preset
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
	if args.Price == 0 {
		args.Price = cfg.Price
	}
	if args.Cost == 0 {
		args.Cost = cfg.Cost
	}
	if args.Discount == "" {
		args.Discount = cfg.Discount
	}
	if args.Adherence2 == "" {
		args.Adherence2 = cfg.Adherence2
	}
	if args.Adherence3 == "" {
		args.Adherence3 = cfg.Adherence3
	}
	if args.Period == "" {
		args.Period = cfg.Period
	}
}

// parseSimulationInputs validates the percentage inputs at the boundary so the
// simulator itself only ever sees floats.
func parseSimulationInputs(args *types.CLIArgs) (entity.SimulationInputs, error) {
	discount, err := types.ParsePercent(args.Discount)
	if err != nil {
		return entity.SimulationInputs{}, fmt.Errorf("discount: %w", err)
	}
	adherence2, err := types.ParsePercent(args.Adherence2)
	if err != nil {
		return entity.SimulationInputs{}, fmt.Errorf("adherence goal 2nd dose: %w", err)
	}
	adherence3, err := types.ParsePercent(args.Adherence3)
	if err != nil {
		return entity.SimulationInputs{}, fmt.Errorf("adherence goal 3rd dose: %w", err)
	}
	return entity.SimulationInputs{
		UnitPrice:        args.Price,
		UnitCost:         args.Cost,
		CostDiscountPct:  discount,
		Adherence2Target: adherence2,
		Adherence3Target: adherence3,
	}, nil
}

// RunDashboard executes the main dashboard functionality: load the D4D file,
// render the requested sections and export the reports. Each section fails on
// its own; a cohort of zero first doses blocks only the simulator view.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	preset, err := uc.resolveArgs(args)
	if err != nil {
		return err
	}

	status := uc.console.Status("Loading D4D sell-out data...")
	records, err := uc.datasetRepo.LoadDataset(ctx, args.File)
	status.Stop()
	if errors.Is(err, types.ErrNoFileProvided) {
		// Expected state, not a failure: prompt and halt this render pass.
		uc.console.LogWarning("Upload a D4D file to use the dashboard")
		return nil
	}
	if err != nil {
		return fmt.Errorf("D4D file rejected: %w", err)
	}
	uc.console.LogSuccess("Loaded %d sell-out records from %s", len(records), args.File)

	showAnalytics, showAdherence, showTracking := args.Sections()

	var aggregations entity.AggregationSet
	if showAnalytics {
		aggregations = Aggregate(records, preset.DoseSort)
		uc.renderAnalytics(aggregations)
	}

	var (
		cohort    entity.CohortCounts
		result    entity.SimulationResult
		simulated bool
	)
	if showAdherence {
		cohort, err = Cohort(records)
		if err != nil {
			uc.console.LogError("Adherence simulator unavailable: %s", err)
		} else {
			uc.renderAdherence(cohort)
			inputs, err := parseSimulationInputs(args)
			if err != nil {
				uc.console.LogError("Simulator input rejected: %s", err)
			} else {
				result = Simulate(cohort, inputs)
				uc.renderSimulation(result)
				simulated = true
			}
		}
	}

	var (
		report  entity.TrackingReport
		tracked bool
	)
	if showTracking {
		report, tracked = uc.runTracking(records, args.Period)
	}

	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReports(args, showAnalytics, aggregations, simulated, cohort, result, tracked, report)
	}

	return nil
}

// runTracking resolves the consulted period (newest candidate when none was
// asked for) and builds the due-dose report.
func (uc *DashboardUseCase) runTracking(records []entity.DoseRecord, periodArg string) (entity.TrackingReport, bool) {
	candidates := CandidatePeriods(records)
	if len(candidates) == 0 {
		uc.console.LogWarning("No consultable periods in the loaded data")
		return entity.TrackingReport{}, false
	}

	period := candidates[0]
	if periodArg != "" {
		parsed, err := entity.ParseYearMonth(periodArg)
		if err != nil {
			uc.console.LogError("Tracking unavailable: %s", err)
			return entity.TrackingReport{}, false
		}
		period = parsed
	}

	report := Track(records, period)
	uc.renderTracking(report)
	return report, true
}

// exportReports writes one report file per requested type and view, logging
// per file the way the terminal dashboard does.
func (uc *DashboardUseCase) exportReports(
	args *types.CLIArgs,
	haveAnalytics bool, aggregations entity.AggregationSet,
	haveSimulation bool, cohort entity.CohortCounts, result entity.SimulationResult,
	haveTracking bool, report entity.TrackingReport,
) {
	for _, reportType := range args.ReportType {
		if haveAnalytics {
			uc.exportOne(reportType, "analytics", func() (string, error) {
				switch reportType {
				case "csv":
					return uc.exportRepo.ExportAnalyticsToCSV(aggregations, args.ReportName+"-analytics", args.Dir)
				case "json":
					return uc.exportRepo.ExportAnalyticsToJSON(aggregations, args.ReportName+"-analytics", args.Dir)
				case "pdf":
					return uc.exportRepo.ExportAnalyticsToPDF(aggregations, args.ReportName+"-analytics", args.Dir)
				}
				return "", fmt.Errorf("unsupported report type: %s", reportType)
			})
		}
		if haveSimulation {
			uc.exportOne(reportType, "simulation", func() (string, error) {
				switch reportType {
				case "csv":
					return uc.exportRepo.ExportSimulationToCSV(cohort, result, args.ReportName+"-simulation", args.Dir)
				case "json":
					return uc.exportRepo.ExportSimulationToJSON(cohort, result, args.ReportName+"-simulation", args.Dir)
				case "pdf":
					return uc.exportRepo.ExportSimulationToPDF(cohort, result, args.ReportName+"-simulation", args.Dir)
				}
				return "", fmt.Errorf("unsupported report type: %s", reportType)
			})
		}
		if haveTracking {
			uc.exportOne(reportType, "tracking", func() (string, error) {
				switch reportType {
				case "csv":
					return uc.exportRepo.ExportTrackingToCSV(report, args.ReportName+"-tracking", args.Dir)
				case "json":
					return uc.exportRepo.ExportTrackingToJSON(report, args.ReportName+"-tracking", args.Dir)
				case "pdf":
					return uc.exportRepo.ExportTrackingToPDF(report, args.ReportName+"-tracking", args.Dir)
				}
				return "", fmt.Errorf("unsupported report type: %s", reportType)
			})
		}
	}
}

func (uc *DashboardUseCase) exportOne(reportType, view string, export func() (string, error)) {
	path, err := export()
	if err != nil {
		uc.console.LogError("Failed to export %s report to %s: %s", view, reportType, err)
		return
	}
	uc.console.LogSuccess("Successfully exported %s report to %s: %s", view, reportType, path)
}
