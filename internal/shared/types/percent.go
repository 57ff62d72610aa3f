package types

import (
	"strconv"
	"strings"
)

// ParsePercent converts a percentage string such as "3%" or "100%" into a
// fraction (0.03, 1.0). The % marker is optional; surrounding whitespace is
// ignored. The value is not clamped: callers may pass anything numeric and
// get proportional output downstream.
func ParsePercent(s string) (float64, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if trimmed == "" {
		return 0, &PercentParseError{Input: s}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &PercentParseError{Input: s}
	}
	return v / 100, nil
}
