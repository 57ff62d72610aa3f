package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1848500, "1,848,500"},
		{1234.9, "1,234"}, // truncated, not rounded
		{-56789, "-56,789"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatAmount(tc.in), "input %v", tc.in)
	}
}

func TestFormatPercent(t *testing.T) {
	require.Equal(t, "100.0%", FormatPercent(1))
	require.Equal(t, "80.0%", FormatPercent(0.8))
	require.Equal(t, "3.0%", FormatPercent(0.03))
	require.Equal(t, "12.5%", FormatPercent(0.125))
}

func TestPresetByName(t *testing.T) {
	preset, err := PresetByName("")
	require.NoError(t, err)
	require.Equal(t, "analytics", preset.Name)
	require.Equal(t, "100%", preset.DefaultAdherence2)

	executive, err := PresetByName("executive")
	require.NoError(t, err)
	require.NotEqual(t, preset.DoseSort, executive.DoseSort)

	_, err = PresetByName("weekly")
	require.Error(t, err)
}
