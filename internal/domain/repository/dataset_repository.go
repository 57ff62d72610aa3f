package repository

import (
	"context"

	"github.com/avergara/d4d-dashboard-go/internal/domain/entity"
)

// DatasetRepository defines the interface for loading D4D sell-out files.
type DatasetRepository interface {
	// LoadDataset normalizes the file at path into typed dose records.
	// An empty path yields types.ErrNoFileProvided; a single row failing to
	// parse rejects the entire file.
	LoadDataset(ctx context.Context, path string) ([]entity.DoseRecord, error)
}
