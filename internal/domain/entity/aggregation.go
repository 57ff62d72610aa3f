package entity

// SexAgeTotal is the summed quantity for one (sex, age bracket) group.
type SexAgeTotal struct {
	Sex        string  `json:"sex"`
	AgeBracket string  `json:"age_bracket"`
	Quantity   float64 `json:"quantity"`
}

// LocalityTotal is the summed quantity for one locality.
type LocalityTotal struct {
	Locality string  `json:"locality"`
	Quantity float64 `json:"quantity"`
}

// SpecialtyTotal is the summed quantity for one prescriber specialty.
type SpecialtyTotal struct {
	Specialty string  `json:"specialty"`
	Quantity  float64 `json:"quantity"`
}

// DoseTotal is the summed quantity for one dose order.
type DoseTotal struct {
	Dose     DoseOrder `json:"dose_order"`
	Quantity float64   `json:"quantity"`
}

// AggregationSet bundles the four derived grouping tables of one dataset.
// Group keys are compared exactly; case or whitespace variants in the source
// data produce distinct groups on purpose.
type AggregationSet struct {
	BySexAge    []SexAgeTotal    `json:"by_sex_age"`
	ByLocality  []LocalityTotal  `json:"by_locality"`
	BySpecialty []SpecialtyTotal `json:"by_specialty"`
	ByDose      []DoseTotal      `json:"by_dose"`
}

// DoseSort selects the ordering of the dose table. The two dashboard
// variants disagree on it, so it is a caller choice.
type DoseSort int

const (
	DoseSortAscending DoseSort = iota
	DoseSortDescending
)
