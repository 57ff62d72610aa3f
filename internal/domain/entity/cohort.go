package entity

// CohortCounts holds the dose totals and the adherence ratios relative to the
// first-dose cohort. Dose1Share is the constant 1: the first-dose cohort is
// the 100% baseline by convention.
type CohortCounts struct {
	Dose1Total float64 `json:"dose1_total"`
	Dose2Total float64 `json:"dose2_total"`
	Dose3Total float64 `json:"dose3_total"`
	Dose1Share float64 `json:"dose1_share"`
	Dose2Share float64 `json:"dose2_share"`
	Dose3Share float64 `json:"dose3_share"`
}
