package cli

import (
	"context"
	"path/filepath"

	"github.com/avergara/d4d-dashboard-go/internal/application/usecase"
	"github.com/avergara/d4d-dashboard-go/internal/shared/types"
	"github.com/avergara/d4d-dashboard-go/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	version          string
}

// NewCLIApp crea una nueva aplicación CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "d4d-dashboard",
		Short:   "Gardasil 9 D4D Sell-Out Dashboard CLI",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "D4D Sell-Out Dashboard version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Path to the D4D sell-out CSV file (;-separated, Latin-1)")
	rootCmd.PersistentFlags().StringP("preset", "P", "", "Dashboard preset: analytics (default) or executive")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report files (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("analytics", false, "Display only the analytics section (group-by tables and charts)")
	rootCmd.PersistentFlags().Bool("adherence", false, "Display only the adherence panel and revenue simulator")
	rootCmd.PersistentFlags().Bool("tracking", false, "Display only the next-dose tracking section")
	rootCmd.PersistentFlags().Float64("price", 0, "Gross sales price of each dose in CLP")
	rootCmd.PersistentFlags().Float64("cost", 0, "Net cost of each dose in CLP")
	rootCmd.PersistentFlags().String("discount", "", "Percentage discount on cost, e.g. 3%")
	rootCmd.PersistentFlags().String("adherence2", "", "Adherence goal for the 2nd dose, e.g. 100%")
	rootCmd.PersistentFlags().String("adherence3", "", "Adherence goal for the 3rd dose, e.g. 100%")
	rootCmd.PersistentFlags().String("period", "", "Tracking period to consult as YYYY-MM (default: newest in the data)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	file, _ := app.rootCmd.Flags().GetString("file")
	preset, _ := app.rootCmd.Flags().GetString("preset")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	analytics, _ := app.rootCmd.Flags().GetBool("analytics")
	adherence, _ := app.rootCmd.Flags().GetBool("adherence")
	tracking, _ := app.rootCmd.Flags().GetBool("tracking")
	price, _ := app.rootCmd.Flags().GetFloat64("price")
	cost, _ := app.rootCmd.Flags().GetFloat64("cost")
	discount, _ := app.rootCmd.Flags().GetString("discount")
	adherence2, _ := app.rootCmd.Flags().GetString("adherence2")
	adherence3, _ := app.rootCmd.Flags().GetString("adherence3")
	period, _ := app.rootCmd.Flags().GetString("period")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile: configFile,
		File:       file,
		Preset:     preset,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		Analytics:  analytics,
		Adherence:  adherence,
		Tracking:   tracking,
		Price:      price,
		Cost:       cost,
		Discount:   discount,
		Adherence2: adherence2,
		Adherence3: adherence3,
		Period:     period,
	}

	return args, nil
}

// runCommand es el punto de entrada principal del comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}
