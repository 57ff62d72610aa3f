package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/avergara/d4d-dashboard-go/internal/domain/entity"
	"github.com/avergara/d4d-dashboard-go/internal/domain/repository"
	"github.com/avergara/d4d-dashboard-go/internal/shared/types"
	"golang.org/x/text/encoding/charmap"
)

// columnCount is the fixed width of a D4D file. The columns are positional:
// date; specialty; region; region_id; locality; sex; age_bracket; dose_order; quantity.
const columnCount = 9

// DatasetRepositoryImpl implementa el DatasetRepository sobre archivos locales.
type DatasetRepositoryImpl struct{}

// NewDatasetRepository crea una nueva implementación del DatasetRepository.
func NewDatasetRepository() repository.DatasetRepository {
	return &DatasetRepositoryImpl{}
}

// LoadDataset abre y normaliza un archivo D4D.
func (r *DatasetRepositoryImpl) LoadDataset(ctx context.Context, path string) ([]entity.DoseRecord, error) {
	if strings.TrimSpace(path) == "" {
		return nil, types.ErrNoFileProvided
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening D4D file: %w", err)
	}
	defer file.Close()

	return Normalize(file)
}

// Normalize maps the raw table onto the canonical schema. The input is
// Latin-1 encoded, `;`-separated, with a header row that is discarded. Any
// row that fails to parse rejects the entire dataset; there is no partial
// load.
func Normalize(r io.Reader) ([]entity.DoseRecord, error) {
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	reader.Comma = ';'
	reader.FieldsPerRecord = columnCount

	records := []entity.DoseRecord{}
	row := 0
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading D4D file: %w", err)
		}
		row++
		if row == 1 {
			// header
			continue
		}

		date, err := time.Parse(entity.DateLayout, strings.TrimSpace(cells[0]))
		if err != nil {
			return nil, &types.DateParseError{Row: row - 1, Value: cells[0]}
		}

		quantity, err := strconv.ParseFloat(strings.TrimSpace(cells[8]), 64)
		if err != nil || quantity < 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
			return nil, &types.QuantityParseError{Row: row - 1, Value: cells[8]}
		}

		records = append(records, entity.DoseRecord{
			Date:       date,
			Specialty:  cells[1],
			Region:     cells[2],
			RegionID:   cells[3],
			Locality:   cells[4],
			Sex:        cells[5],
			AgeBracket: cells[6],
			Dose:       entity.DoseOrder(cells[7]),
			Quantity:   quantity,
		})
	}

	return records, nil
}
