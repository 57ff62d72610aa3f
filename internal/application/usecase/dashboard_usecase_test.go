package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/avergara/d4d-dashboard-go/internal/domain/entity"
	"github.com/avergara/d4d-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/require"
)

// --- stubs ---

type stubDatasetRepo struct {
	records []entity.DoseRecord
	err     error
}

func (s *stubDatasetRepo) LoadDataset(ctx context.Context, path string) ([]entity.DoseRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

type stubExportRepo struct {
	calls []string
}

func (s *stubExportRepo) record(name string) (string, error) {
	s.calls = append(s.calls, name)
	return "/tmp/" + name, nil
}

func (s *stubExportRepo) ExportAnalyticsToCSV(set entity.AggregationSet, filename, outputDir string) (string, error) {
	return s.record("analytics-csv")
}
func (s *stubExportRepo) ExportAnalyticsToJSON(set entity.AggregationSet, filename, outputDir string) (string, error) {
	return s.record("analytics-json")
}
func (s *stubExportRepo) ExportAnalyticsToPDF(set entity.AggregationSet, filename, outputDir string) (string, error) {
	return s.record("analytics-pdf")
}
func (s *stubExportRepo) ExportSimulationToCSV(cohort entity.CohortCounts, result entity.SimulationResult, filename, outputDir string) (string, error) {
	return s.record("simulation-csv")
}
func (s *stubExportRepo) ExportSimulationToJSON(cohort entity.CohortCounts, result entity.SimulationResult, filename, outputDir string) (string, error) {
	return s.record("simulation-json")
}
func (s *stubExportRepo) ExportSimulationToPDF(cohort entity.CohortCounts, result entity.SimulationResult, filename, outputDir string) (string, error) {
	return s.record("simulation-pdf")
}
func (s *stubExportRepo) ExportTrackingToCSV(report entity.TrackingReport, filename, outputDir string) (string, error) {
	return s.record("tracking-csv")
}
func (s *stubExportRepo) ExportTrackingToJSON(report entity.TrackingReport, filename, outputDir string) (string, error) {
	return s.record("tracking-json")
}
func (s *stubExportRepo) ExportTrackingToPDF(report entity.TrackingReport, filename, outputDir string) (string, error) {
	return s.record("tracking-pdf")
}

type stubConfigRepo struct {
	cfg *types.Config
	err error
}

func (s *stubConfigRepo) LoadConfigFile(filePath string) (*types.Config, error) {
	return s.cfg, s.err
}

type stubStatus struct{}

func (stubStatus) Update(string) {}
func (stubStatus) Stop() {}

type stubTable struct{}

func (stubTable) AddColumn(string, ...interface{}) {}
func (stubTable) AddRow(...interface{}) {}
func (stubTable) Render() string                   { return "" }

// stubConsole captures log lines per level so tests can assert on scoping.
type stubConsole struct {
	warnings  []string
	errors    []string
	successes []string
	infos     []string
}

func (c *stubConsole) Print(a ...interface{}) {}
func (c *stubConsole) Printf(f string, a ...interface{}) {}
func (c *stubConsole) Println(a ...interface{}) {}
func (c *stubConsole) LogInfo(f string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(f, a...))
}
func (c *stubConsole) LogWarning(f string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(f, a...))
}
func (c *stubConsole) LogError(f string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(f, a...))
}
func (c *stubConsole) LogSuccess(f string, a ...interface{}) {
	c.successes = append(c.successes, fmt.Sprintf(f, a...))
}
func (c *stubConsole) Status(string) types.StatusHandle { return stubStatus{} }
func (c *stubConsole) CreateTable() types.TableInterface { return stubTable{} }
func (c *stubConsole) DisplayBars(string, []types.BarEntry) {}
func (c *stubConsole) DisplayMetric(label, value, delta string) {}

func newTestUseCase(datasetRepo *stubDatasetRepo) (*DashboardUseCase, *stubExportRepo, *stubConsole) {
	exportRepo := &stubExportRepo{}
	console := &stubConsole{}
	uc := NewDashboardUseCase(datasetRepo, exportRepo, &stubConfigRepo{}, console)
	return uc, exportRepo, console
}

// --- tests ---

func TestRunDashboard_NoFileIsNotAFailure(t *testing.T) {
	uc, exportRepo, console := newTestUseCase(&stubDatasetRepo{err: types.ErrNoFileProvided})

	err := uc.RunDashboard(context.Background(), &types.CLIArgs{ReportName: "report"})
	require.NoError(t, err)
	require.NotEmpty(t, console.warnings)
	require.Empty(t, exportRepo.calls, "no computation may run without a file")
}

func TestRunDashboard_RejectedFileBlocksEverything(t *testing.T) {
	uc, exportRepo, _ := newTestUseCase(&stubDatasetRepo{err: &types.DateParseError{Row: 3, Value: "bad"}})

	err := uc.RunDashboard(context.Background(), &types.CLIArgs{File: "x.csv", ReportName: "report"})
	require.Error(t, err)
	require.Empty(t, exportRepo.calls)
}

func TestRunDashboard_CohortFailureBlocksOnlySimulator(t *testing.T) {
	// No first doses at all: simulator view must fail, analytics and
	// tracking keep working with their own data.
	datasetRepo := &stubDatasetRepo{records: []entity.DoseRecord{
		{Date: day(2024, 4, 10), Dose: entity.DoseSecond, Quantity: 5},
	}}
	uc, exportRepo, console := newTestUseCase(datasetRepo)

	err := uc.RunDashboard(context.Background(), &types.CLIArgs{
		File:       "x.csv",
		ReportName: "report",
		ReportType: []string{"csv"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, console.errors)
	require.Contains(t, exportRepo.calls, "analytics-csv")
	require.Contains(t, exportRepo.calls, "tracking-csv")
	require.NotContains(t, exportRepo.calls, "simulation-csv")
}

func TestRunDashboard_InvalidPercentageBlocksOnlySimulator(t *testing.T) {
	datasetRepo := &stubDatasetRepo{records: []entity.DoseRecord{
		{Date: day(2024, 4, 10), Dose: entity.DoseFirst, Quantity: 10},
	}}
	uc, exportRepo, console := newTestUseCase(datasetRepo)

	err := uc.RunDashboard(context.Background(), &types.CLIArgs{
		File:       "x.csv",
		Discount:   "three percent",
		ReportName: "report",
		ReportType: []string{"csv"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, console.errors)
	require.Contains(t, exportRepo.calls, "analytics-csv")
	require.NotContains(t, exportRepo.calls, "simulation-csv")
}

func TestRunDashboard_HappyPathExportsEveryView(t *testing.T) {
	datasetRepo := &stubDatasetRepo{records: []entity.DoseRecord{
		{Date: day(2024, 3, 1), Dose: entity.DoseFirst, Quantity: 100},
		{Date: day(2024, 4, 1), Dose: entity.DoseSecond, Quantity: 80},
		{Date: day(2024, 5, 1), Dose: entity.DoseThird, Quantity: 70},
	}}
	uc, exportRepo, console := newTestUseCase(datasetRepo)

	err := uc.RunDashboard(context.Background(), &types.CLIArgs{
		File:       "x.csv",
		ReportName: "report",
		ReportType: []string{"csv", "json"},
	})
	require.NoError(t, err)
	require.Empty(t, console.errors)
	require.ElementsMatch(t, []string{
		"analytics-csv", "simulation-csv", "tracking-csv",
		"analytics-json", "simulation-json", "tracking-json",
	}, exportRepo.calls)
}

func TestRunDashboard_SectionFlagsLimitViews(t *testing.T) {
	datasetRepo := &stubDatasetRepo{records: []entity.DoseRecord{
		{Date: day(2024, 3, 1), Dose: entity.DoseFirst, Quantity: 100},
	}}
	uc, exportRepo, _ := newTestUseCase(datasetRepo)

	err := uc.RunDashboard(context.Background(), &types.CLIArgs{
		File:       "x.csv",
		Analytics:  true,
		ReportName: "report",
		ReportType: []string{"csv"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"analytics-csv"}, exportRepo.calls)
}

func TestRunDashboard_UnknownPreset(t *testing.T) {
	uc, _, _ := newTestUseCase(&stubDatasetRepo{})
	err := uc.RunDashboard(context.Background(), &types.CLIArgs{Preset: "weekly"})
	require.Error(t, err)
}

func TestResolveArgs_ConfigFillsOnlyMissingValues(t *testing.T) {
	configRepo := &stubConfigRepo{cfg: &types.Config{
		File:       "from-config.csv",
		Preset:     "executive",
		Price:      99000,
		Adherence2: "95%",
	}}
	uc := NewDashboardUseCase(&stubDatasetRepo{}, &stubExportRepo{}, configRepo, &stubConsole{})

	args := &types.CLIArgs{
		ConfigFile: "config.toml",
		Price:      130000, // flag wins over config
	}
	preset, err := uc.resolveArgs(args)
	require.NoError(t, err)
	require.Equal(t, "executive", preset.Name)
	require.Equal(t, "from-config.csv", args.File)
	require.Equal(t, 130000.0, args.Price)
	require.Equal(t, "95%", args.Adherence2)
	// preset default only fills what neither flag nor config provided
	require.Equal(t, "80%", args.Adherence3)
	require.Equal(t, 89500.0, args.Cost)
	require.Equal(t, "3%", args.Discount)
}

func TestCLIArgsSections(t *testing.T) {
	all := &types.CLIArgs{}
	a, b, c := all.Sections()
	require.True(t, a && b && c)

	only := &types.CLIArgs{Tracking: true}
	a, b, c = only.Sections()
	require.False(t, a)
	require.False(t, b)
	require.True(t, c)
}
