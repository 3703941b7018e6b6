package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_MissingOptionalFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 10, cfg.SheetLayout.DataStartRow())
	assert.Equal(t, 8, cfg.SheetLayout.MaxColumn())
}

func TestLoad_MissingRequiredFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml")
}

func TestLoad_OverridesKeepOtherDefaults(t *testing.T) {
	path := writeConfig(t, `
input_file: in/source.xlsx
metadata:
  data_date: "2025-03"
sheet_layout:
  female_column: 9
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "in/source.xlsx", cfg.InputFile)
	assert.Equal(t, DefaultOutputFile, cfg.OutputFile)
	assert.Equal(t, "2025-03", cfg.Metadata.DataDate)
	assert.Equal(t, DefaultVersion, cfg.Metadata.Version)
	assert.Equal(t, DefaultDescription, cfg.Metadata.Description)
	assert.Equal(t, 9, cfg.SheetLayout.FemaleColumn)
	assert.Equal(t, 5, cfg.SheetLayout.MaleColumn)
	assert.Equal(t, 9, cfg.SheetLayout.PreambleRows)
	assert.Equal(t, DefaultTerytSuffix, cfg.TerytSuffix)
}

func TestLoad_ExplicitZeroLayoutValues(t *testing.T) {
	path := writeConfig(t, `
sheet_layout:
  preamble_rows: 0
  name_column: 0
  code_column: 1
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.SheetLayout.PreambleRows)
	assert.Equal(t, 1, cfg.SheetLayout.DataStartRow())
	assert.Equal(t, 0, cfg.SheetLayout.NameColumn)
	assert.Equal(t, 1, cfg.SheetLayout.CodeColumn)
	assert.Equal(t, 5, cfg.SheetLayout.MaleColumn)
	assert.Equal(t, 8, cfg.SheetLayout.FemaleColumn)
}

func TestApplyDefaults_ReplacesZeroLayoutValues(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ApplyDefaults(cfg))
	assert.Equal(t, DefaultSheetLayout(), cfg.SheetLayout)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "input_file: [", "failed to parse"},
		{"bad log level", "log_level: loud", "log_level"},
		{"bad data date", "metadata:\n  data_date: \"2024-13\"", "data_date"},
		{"negative column", "sheet_layout:\n  code_column: -1", "code_column"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), true)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
