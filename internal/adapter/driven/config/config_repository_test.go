package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFile_TOML(t *testing.T) {
	path := writeTempConfig(t, "d4d.toml", `
file = "data/g9_data_example.csv"
preset = "executive"
price = 130000.0
cost = 89500.0
discount = "3%"
report_type = ["csv", "pdf"]
`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, "data/g9_data_example.csv", cfg.File)
	require.Equal(t, "executive", cfg.Preset)
	require.Equal(t, 130000.0, cfg.Price)
	require.Equal(t, "3%", cfg.Discount)
	require.Equal(t, []string{"csv", "pdf"}, cfg.ReportType)
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "d4d.yaml", `
file: data/g9_data_example.csv
adherence2: "90%"
adherence3: "80%"
period: "2024-06"
`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, "90%", cfg.Adherence2)
	require.Equal(t, "80%", cfg.Adherence3)
	require.Equal(t, "2024-06", cfg.Period)
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "d4d.json", `{"file": "g9.csv", "report_name": "monthly"}`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, "g9.csv", cfg.File)
	require.Equal(t, "monthly", cfg.ReportName)
}

func TestLoadConfigFile_UnsupportedFormat(t *testing.T) {
	path := writeTempConfig(t, "d4d.ini", "file=g9.csv")
	_, err := NewConfigRepository().LoadConfigFile(path)
	require.Error(t, err)
}

func TestLoadConfigFile_MissingFile(t *testing.T) {
	_, err := NewConfigRepository().LoadConfigFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
