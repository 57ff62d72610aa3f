package usecase

import (
	"fmt"

	"github.com/avergara/d4d-dashboard-go/internal/domain/entity"
)

// Preset names one of the dashboard variants. Both run the same engines; they
// only differ in the dose-table sort order and the default adherence targets.
type Preset struct {
	Name              string
	DoseSort          entity.DoseSort
	DefaultAdherence2 string
	DefaultAdherence3 string
}

var presets = map[string]Preset{
	"analytics": {
		Name:              "analytics",
		DoseSort:          entity.DoseSortAscending,
		DefaultAdherence2: "100%",
		DefaultAdherence3: "100%",
	},
	"executive": {
		Name:              "executive",
		DoseSort:          entity.DoseSortDescending,
		DefaultAdherence2: "90%",
		DefaultAdherence3: "80%",
	},
}

// PresetByName resolves a preset by name; the empty name means "analytics".
func PresetByName(name string) (Preset, error) {
	if name == "" {
		name = "analytics"
	}
	preset, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q (valid: analytics, executive)", name)
	}
	return preset, nil
}
