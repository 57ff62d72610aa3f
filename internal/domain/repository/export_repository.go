package repository

import (
	"github.com/avergara/d4d-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	// Analytics report (the four aggregation tables)
	ExportAnalyticsToCSV(set entity.AggregationSet, filename, outputDir string) (string, error)
	ExportAnalyticsToJSON(set entity.AggregationSet, filename, outputDir string) (string, error)
	ExportAnalyticsToPDF(set entity.AggregationSet, filename, outputDir string) (string, error)

	// Simulation report (adherence cohort + scenario tables)
	ExportSimulationToCSV(cohort entity.CohortCounts, result entity.SimulationResult, filename, outputDir string) (string, error)
	ExportSimulationToJSON(cohort entity.CohortCounts, result entity.SimulationResult, filename, outputDir string) (string, error)
	ExportSimulationToPDF(cohort entity.CohortCounts, result entity.SimulationResult, filename, outputDir string) (string, error)

	// Tracking report (patients due for their next dose in a period)
	ExportTrackingToCSV(report entity.TrackingReport, filename, outputDir string) (string, error)
	ExportTrackingToJSON(report entity.TrackingReport, filename, outputDir string) (string, error)
	ExportTrackingToPDF(report entity.TrackingReport, filename, outputDir string) (string, error)
}
