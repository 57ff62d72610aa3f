package entity

import "time"

// DoseOrder identifies the position of a dose in the 3-dose series, using the
// labels as they appear in the D4D sell-out files.
type DoseOrder string

const (
	DoseFirst  DoseOrder = "1ra"
	DoseSecond DoseOrder = "2da"
	DoseThird  DoseOrder = "3ra"
)

// DateLayout is the strict input date format (DD-MM-YYYY).
const DateLayout = "02-01-2006"

// DoseRecord is one row of a D4D sell-out file. A record may carry an
// aggregated count, not a single patient, so Quantity is not always 1.
type DoseRecord struct {
	Date       time.Time `json:"date"`
	Specialty  string    `json:"specialty"`
	Region     string    `json:"region"`
	RegionID   string    `json:"region_id"`
	Locality   string    `json:"locality"`
	Sex        string    `json:"sex"`
	AgeBracket string    `json:"age_bracket"`
	Dose       DoseOrder `json:"dose_order"`
	Quantity   float64   `json:"quantity"`
}
