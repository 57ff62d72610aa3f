package usecase

import (
	"github.com/avergara/d4d-dashboard-go/internal/domain/entity"
	"github.com/avergara/d4d-dashboard-go/internal/shared/types"
)

// Cohort sums the dataset quantities per dose order and derives the adherence
// ratios relative to the first-dose cohort. An empty first-dose cohort makes
// the ratios undefined and fails with types.ErrDivisionUndefined instead of
// propagating NaN or infinity.
func Cohort(records []entity.DoseRecord) (entity.CohortCounts, error) {
	var counts entity.CohortCounts
	for _, rec := range records {
		switch rec.Dose {
		case entity.DoseFirst:
			counts.Dose1Total += rec.Quantity
		case entity.DoseSecond:
			counts.Dose2Total += rec.Quantity
		case entity.DoseThird:
			counts.Dose3Total += rec.Quantity
		}
	}

	if counts.Dose1Total == 0 {
		return entity.CohortCounts{}, types.ErrDivisionUndefined
	}

	counts.Dose1Share = 1
	counts.Dose2Share = counts.Dose2Total / counts.Dose1Total
	counts.Dose3Share = counts.Dose3Total / counts.Dose1Total
	return counts, nil
}
