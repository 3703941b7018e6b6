// =============================================================================
// Powiaty Converter - Configuration Module
// =============================================================================
//
// This module loads the application configuration. Every setting has a
// default, so the tool runs with no configuration file at all; a YAML file
// only needs the keys it wants to override.
//
// EXAMPLE (config.yaml):
//   input_file: "data/pkt 6_emerytury_powiaty.xlsx"
//   output_file: "packages/data/src/json/powiaty.json"
//   log_level: "info"
//   sheet_layout:
//     preamble_rows: 9
//   metadata:
//     data_date: "2024-12"
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultConfigFile is the config path used when --config is not given.
	DefaultConfigFile = "config.yaml"

	// DefaultInputFile is the source workbook, relative to the repository root.
	DefaultInputFile = "data/pkt 6_emerytury_powiaty.xlsx"

	// DefaultOutputFile is the generated JSON document, relative to the repository root.
	DefaultOutputFile = "packages/data/src/json/powiaty.json"

	// DefaultVersion is the document format version.
	DefaultVersion = "1.0.0"

	// DefaultDataDate is the vintage of the bundled workbook.
	DefaultDataDate = "2024-12"

	// DefaultDescription is the human-readable document description.
	DefaultDescription = "Average pension amounts by powiat (district) in Poland"

	// DefaultTerytSuffix is appended to the 4-digit województwo+powiat code.
	DefaultTerytSuffix = "000"
)

var dataDatePattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// InputFile is the path to the source workbook.
	InputFile string `yaml:"input_file"`

	// OutputFile is the path of the JSON document to write.
	// Parent directories are created as needed.
	OutputFile string `yaml:"output_file"`

	// SummaryLogDir, when set, receives a processing summary text file per run.
	SummaryLogDir string `yaml:"summary_log_dir"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	LogLevel string `yaml:"log_level"`

	// TerytSuffix is appended to the zero-padded source code.
	TerytSuffix string `yaml:"teryt_suffix"`

	// SheetLayout describes where the data lives in the first sheet.
	SheetLayout SheetLayout `yaml:"sheet_layout"`

	// Metadata holds the fixed document metadata.
	Metadata Metadata `yaml:"metadata"`
}

// SheetLayout describes the positional layout of the source sheet.
// Column indices are 0-based (A=0, B=1, C=2, etc.)
type SheetLayout struct {
	// PreambleRows is the number of title rows before the column label row.
	PreambleRows int `yaml:"preamble_rows"`

	// NameColumn holds the powiat name. Rows with an empty name are skipped.
	NameColumn int `yaml:"name_column"`

	// CodeColumn holds the 4-digit województwo+powiat code.
	CodeColumn int `yaml:"code_column"`

	// MaleColumn holds the average pension for men (without allowances).
	MaleColumn int `yaml:"male_column"`

	// FemaleColumn holds the average pension for women (without allowances).
	FemaleColumn int `yaml:"female_column"`
}

// Metadata holds the fixed fields written to the document header.
type Metadata struct {
	Version string `yaml:"version"`

	// Source overrides the source file name. Empty means the input file's base name.
	Source string `yaml:"source"`

	DataDate    string `yaml:"data_date"`
	Description string `yaml:"description"`
}

// DataStartRow is the 0-based index of the first data row: the preamble is
// followed by one column label row.
func (l SheetLayout) DataStartRow() int {
	return l.PreambleRows + 1
}

// MaxColumn returns the highest column index the layout reads.
func (l SheetLayout) MaxColumn() int {
	highest := l.NameColumn
	for _, c := range []int{l.CodeColumn, l.MaleColumn, l.FemaleColumn} {
		if c > highest {
			highest = c
		}
	}
	return highest
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		InputFile:   DefaultInputFile,
		OutputFile:  DefaultOutputFile,
		LogLevel:    "info",
		TerytSuffix: DefaultTerytSuffix,
		SheetLayout: DefaultSheetLayout(),
		Metadata: Metadata{
			Version:     DefaultVersion,
			DataDate:    DefaultDataDate,
			Description: DefaultDescription,
		},
	}
}

// DefaultSheetLayout returns the layout of the ZUS "pkt 6" workbook.
//   Col 1: powiat name
//   Col 2: województwo+powiat code
//   Col 3-5: men without allowances (max, min, avg)
//   Col 6-8: women without allowances (max, min, avg)
func DefaultSheetLayout() SheetLayout {
	return SheetLayout{
		PreambleRows: 9,
		NameColumn:   1,
		CodeColumn:   2,
		MaleColumn:   5,
		FemaleColumn: 8,
	}
}

// Load loads the configuration from a YAML file and fills in defaults.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - required: When false, a missing file yields the defaults.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or is invalid.
func Load(configPath string, required bool) (*Config, error) {
	var cfg Config
	var explicit explicitLayout

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(data, &explicit); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
		// Defaults only.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := ApplyDefaults(&cfg); err != nil {
		return nil, err
	}
	explicit.apply(&cfg.SheetLayout)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// explicitLayout records which sheet_layout keys a config file sets, so
// that an explicit 0 survives ApplyDefaults.
type explicitLayout struct {
	SheetLayout struct {
		PreambleRows *int `yaml:"preamble_rows"`
		NameColumn   *int `yaml:"name_column"`
		CodeColumn   *int `yaml:"code_column"`
		MaleColumn   *int `yaml:"male_column"`
		FemaleColumn *int `yaml:"female_column"`
	} `yaml:"sheet_layout"`
}

func (e explicitLayout) apply(l *SheetLayout) {
	fields := []struct {
		set *int
		dst *int
	}{
		{e.SheetLayout.PreambleRows, &l.PreambleRows},
		{e.SheetLayout.NameColumn, &l.NameColumn},
		{e.SheetLayout.CodeColumn, &l.CodeColumn},
		{e.SheetLayout.MaleColumn, &l.MaleColumn},
		{e.SheetLayout.FemaleColumn, &l.FemaleColumn},
	}
	for _, f := range fields {
		if f.set != nil {
			*f.dst = *f.set
		}
	}
}

// ApplyDefaults fills every zero-valued field of cfg from Default().
//
// Column indices and preamble_rows are merged like any other field, so a 0
// is replaced by the default. Load puts back the zeros a config file sets
// explicitly.
func ApplyDefaults(cfg *Config) error {
	if err := mergo.Merge(cfg, *Default()); err != nil {
		return fmt.Errorf("failed to apply config defaults: %w", err)
	}
	return nil
}

// Validate checks the configuration for values the converter cannot use.
func Validate(cfg *Config) error {
	if cfg.InputFile == "" {
		return fmt.Errorf("input_file must not be empty")
	}
	if cfg.OutputFile == "" {
		return fmt.Errorf("output_file must not be empty")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}

	l := cfg.SheetLayout
	if l.PreambleRows < 0 {
		return fmt.Errorf("sheet_layout.preamble_rows must not be negative")
	}
	for name, col := range map[string]int{
		"name_column":   l.NameColumn,
		"code_column":   l.CodeColumn,
		"male_column":   l.MaleColumn,
		"female_column": l.FemaleColumn,
	} {
		if col < 0 {
			return fmt.Errorf("sheet_layout.%s must not be negative", name)
		}
	}

	if !dataDatePattern.MatchString(cfg.Metadata.DataDate) {
		return fmt.Errorf("metadata.data_date %q is not in YYYY-MM form", cfg.Metadata.DataDate)
	}

	return nil
}
