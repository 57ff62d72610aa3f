package usecase

import (
	"sort"

	"github.com/avergara/d4d-dashboard-go/internal/domain/entity"
)

// DueInPeriod filters the records of sourceDose whose next dose falls in the
// consulted period, assuming the dose was given lagMonths before. The date
// window is half-open: [periodStart - lagMonths, periodStart - lagMonths + 1 month).
// The result depends only on the inputs, not on record ordering.
func DueInPeriod(records []entity.DoseRecord, period entity.YearMonth, sourceDose entity.DoseOrder, lagMonths int) []entity.DoseRecord {
	windowStart := period.Start().AddDate(0, -lagMonths, 0)
	windowEnd := windowStart.AddDate(0, 1, 0)

	due := []entity.DoseRecord{}
	for _, rec := range records {
		if rec.Dose != sourceDose {
			continue
		}
		if rec.Date.Before(windowStart) || !rec.Date.Before(windowEnd) {
			continue
		}
		due = append(due, rec)
	}
	return due
}

// Track builds the tracking report for one period: first-dose records due for
// their second dose and second-dose records due for their third.
func Track(records []entity.DoseRecord, period entity.YearMonth) entity.TrackingReport {
	return entity.TrackingReport{
		Period:        period,
		DueSecondDose: DueInPeriod(records, period, entity.DoseFirst, entity.SecondDoseLagMonths),
		DueThirdDose:  DueInPeriod(records, period, entity.DoseSecond, entity.ThirdDoseLagMonths),
	}
}

// CandidatePeriods lists the consultable periods, newest first. The list is
// driven by the data itself: the distinct year-months of date + 2 months
// across all records.
func CandidatePeriods(records []entity.DoseRecord) []entity.YearMonth {
	seen := map[entity.YearMonth]bool{}
	periods := []entity.YearMonth{}
	for _, rec := range records {
		// Truncate to the year-month before shifting so that month-end
		// dates do not overflow into the following month.
		ym := entity.YearMonthOf(rec.Date).AddMonths(entity.SecondDoseLagMonths)
		if !seen[ym] {
			seen[ym] = true
			periods = append(periods, ym)
		}
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[j].Before(periods[i])
	})
	return periods
}
