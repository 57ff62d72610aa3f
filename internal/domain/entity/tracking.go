package entity

import (
	"fmt"
	"time"
)

// Dosing-interval assumptions of the 3-dose schedule, in months. A patient is
// due for the next dose this long after the source dose.
const (
	SecondDoseLagMonths = 2
	ThirdDoseLagMonths  = 4
)

// YearMonth identifies a reporting period at month granularity.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// YearMonthOf truncates a calendar date to its year-month.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses a "YYYY-MM" period string.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid period %q, want YYYY-MM: %w", s, err)
	}
	return YearMonthOf(t), nil
}

// Start returns the first day of the period in UTC.
func (ym YearMonth) Start() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths shifts the period by n months (n may be negative).
func (ym YearMonth) AddMonths(n int) YearMonth {
	return YearMonthOf(ym.Start().AddDate(0, n, 0))
}

// Before reports whether ym precedes other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// TrackingReport lists the records whose next dose falls in the consulted
// period: first-dose records due for the second dose and second-dose records
// due for the third.
type TrackingReport struct {
	Period        YearMonth    `json:"period"`
	DueSecondDose []DoseRecord `json:"due_second_dose"`
	DueThirdDose  []DoseRecord `json:"due_third_dose"`
}
