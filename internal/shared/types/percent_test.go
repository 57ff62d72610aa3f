package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePercent(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"3%", 0.03},
		{"100%", 1.0},
		{"0%", 0},
		{"12.5%", 0.125},
		{"50", 0.50},
		{" 80 % ", 0.80},
		{"150%", 1.50},
	}
	for _, tc := range cases {
		got, err := ParsePercent(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		require.InDelta(t, tc.want, got, 1e-12, "input %q", tc.input)
	}
}

func TestParsePercent_Invalid(t *testing.T) {
	for _, input := range []string{"", "%", "abc%", "3%%", "12,5%"} {
		_, err := ParsePercent(input)
		require.Error(t, err, "input %q", input)

		var parseErr *PercentParseError
		require.True(t, errors.As(err, &parseErr), "input %q should yield a PercentParseError", input)
		require.Equal(t, input, parseErr.Input)
	}
}
