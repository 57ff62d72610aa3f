package types

import (
	"errors"
	"fmt"
)

var (
	ErrNoFileProvided    = errors.New("no D4D file provided. Pass one with --file or set it in the configuration file")
	ErrDivisionUndefined = errors.New("first-dose cohort total is zero; adherence ratios are undefined")
)

// DateParseError reports a date cell that does not match the strict
// DD-MM-YYYY input format. A single bad date rejects the whole file.
type DateParseError struct {
	Row   int
	Value string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("row %d: date %q does not match format DD-MM-YYYY", e.Row, e.Value)
}

// QuantityParseError reports a quantity cell that is not a non-negative number.
type QuantityParseError struct {
	Row   int
	Value string
}

func (e *QuantityParseError) Error() string {
	return fmt.Sprintf("row %d: quantity %q is not a non-negative number", e.Row, e.Value)
}

// PercentParseError reports a percentage input (e.g. "3%") that could not be
// parsed after stripping the trailing % marker.
type PercentParseError struct {
	Input string
}

func (e *PercentParseError) Error() string {
	return fmt.Sprintf("invalid percentage input %q", e.Input)
}
