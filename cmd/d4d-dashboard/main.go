package main

import (
	"fmt"
	"os"

	"github.com/avergara/d4d-dashboard-go/internal/adapter/driven/config"
	"github.com/avergara/d4d-dashboard-go/internal/adapter/driven/dataset"
	"github.com/avergara/d4d-dashboard-go/internal/adapter/driven/export"
	"github.com/avergara/d4d-dashboard-go/internal/adapter/driving/cli"
	"github.com/avergara/d4d-dashboard-go/internal/application/usecase"
	"github.com/avergara/d4d-dashboard-go/pkg/console"
	"github.com/avergara/d4d-dashboard-go/pkg/version"
)

func main() {
	// Inicializa la aplicación CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa los repositorios
	datasetRepo := dataset.NewDatasetRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa el caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		datasetRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define el caso de uso en la aplicación CLI
	app.SetDashboardUseCase(dashboardUseCase)

	// Ejecuta la aplicación
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
