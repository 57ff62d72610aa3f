package dataset

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avergara/d4d-dashboard-go/internal/domain/entity"
	"github.com/avergara/d4d-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/require"
)

const header = "fecha;especialidad;region;id_region;comuna;sexo;edad;dosis;cantidad\n"

func TestNormalize(t *testing.T) {
	input := header +
		"01-03-2024;Ginecologia;Metropolitana;13;Las Condes;F;15-19;1ra;100\n" +
		"15-04-2024;Pediatria;Valparaiso;5;Quillota;M;10-14;2da;80\n"

	records, err := Normalize(bytes.NewReader([]byte(input)))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), first.Date)
	require.Equal(t, "Ginecologia", first.Specialty)
	require.Equal(t, "Metropolitana", first.Region)
	require.Equal(t, "13", first.RegionID)
	require.Equal(t, "Las Condes", first.Locality)
	require.Equal(t, "F", first.Sex)
	require.Equal(t, "15-19", first.AgeBracket)
	require.Equal(t, entity.DoseFirst, first.Dose)
	require.Equal(t, 100.0, first.Quantity)

	require.Equal(t, entity.DoseSecond, records[1].Dose)
}

func TestNormalize_Latin1Charset(t *testing.T) {
	// "Ginecología" and "Viña del Mar" with Latin-1 single-byte í/ñ.
	row := []byte("01-03-2024;Ginecolog\xeda;Valpara\xedso;5;Vi\xf1a del Mar;F;15-19;1ra;10\n")
	input := append([]byte(header), row...)

	records, err := Normalize(bytes.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Ginecología", records[0].Specialty)
	require.Equal(t, "Viña del Mar", records[0].Locality)
}

func TestNormalize_BadDateRejectsWholeFile(t *testing.T) {
	input := header +
		"01-03-2024;Ginecologia;Metropolitana;13;Las Condes;F;15-19;1ra;100\n" +
		"2024-03-15;Pediatria;Valparaiso;5;Quillota;M;10-14;2da;80\n" // ISO order, not DD-MM-YYYY

	records, err := Normalize(bytes.NewReader([]byte(input)))
	require.Nil(t, records, "no partial load on date failure")

	var dateErr *types.DateParseError
	require.True(t, errors.As(err, &dateErr))
	require.Equal(t, 2, dateErr.Row)
	require.Equal(t, "2024-03-15", dateErr.Value)
}

func TestNormalize_BadQuantityRejectsWholeFile(t *testing.T) {
	// NaN and infinities parse as floats but would poison every downstream
	// total, so they count as bad quantities too.
	for _, quantity := range []string{"many", "-5", "", "NaN", "Inf", "-Inf"} {
		input := header + "01-03-2024;Ginecologia;Metropolitana;13;Las Condes;F;15-19;1ra;" + quantity + "\n"

		records, err := Normalize(bytes.NewReader([]byte(input)))
		require.Nil(t, records, "quantity %q", quantity)

		var qtyErr *types.QuantityParseError
		require.True(t, errors.As(err, &qtyErr), "quantity %q", quantity)
		require.Equal(t, quantity, qtyErr.Value)
	}
}

func TestNormalize_WrongColumnCount(t *testing.T) {
	input := header + "01-03-2024;Ginecologia;Metropolitana;13;Las Condes;F;15-19;1ra\n"
	_, err := Normalize(bytes.NewReader([]byte(input)))
	require.Error(t, err)
}

func TestNormalize_HeaderOnly(t *testing.T) {
	records, err := Normalize(bytes.NewReader([]byte(header)))
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestLoadDataset_NoFileProvided(t *testing.T) {
	repo := NewDatasetRepository()
	_, err := repo.LoadDataset(context.Background(), "")
	require.ErrorIs(t, err, types.ErrNoFileProvided)

	_, err = repo.LoadDataset(context.Background(), "   ")
	require.ErrorIs(t, err, types.ErrNoFileProvided)
}

func TestLoadDataset_ExampleFile(t *testing.T) {
	repo := NewDatasetRepository()
	records, err := repo.LoadDataset(context.Background(), "../../../../examples/g9_data_example.csv")
	require.NoError(t, err)
	require.Len(t, records, 12)
}
