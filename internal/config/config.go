// Package config loads eyeprep settings from defaults, an optional YAML
// file and EYEPREP_* environment variables, in that order.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/eyeprep-go/pkg/eyeprep"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/normalizer"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/output"
)

// EnvPrefix prefixes every environment variable, e.g.
// EYEPREP_COLUMNS_GENDER or EYEPREP_CLEANING_UNKNOWN_LABELS.
const EnvPrefix = "EYEPREP"

// Config represents the complete tool configuration.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Columns  ColumnsConfig  `yaml:"columns"`
	Cleaning CleaningConfig `yaml:"cleaning"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// InputConfig contains input parsing options
type InputConfig struct {
	// Delimiter separates input fields. Empty picks one from the file
	// extension: tab for .tsv, ';' otherwise.
	Delimiter string `yaml:"delimiter" validate:"omitempty,len=1"`
	Sheet     string `yaml:"sheet"`
}

// ColumnsConfig assigns column roles
type ColumnsConfig struct {
	Gender  string   `yaml:"gender_column"`
	Group   string   `yaml:"group_column"`
	Numeric []string `yaml:"numeric_columns"`
	Exclude []string `yaml:"exclude_columns"`
}

// CleaningConfig contains label mapping and imputation options
type CleaningConfig struct {
	// Labels extends the default gender table unless ReplaceLabels is set.
	Labels        map[string]string `yaml:"gender_label_map"`
	ReplaceLabels bool              `yaml:"replace_default_labels" split_words:"true"`
	Sentinels     []float64         `yaml:"missing_sentinels"`
	UnknownLabels string            `yaml:"unknown_labels" split_words:"true" validate:"oneof=keep fail"`
	EmptyColumns  string            `yaml:"empty_columns" split_words:"true" validate:"oneof=fail fill"`
	FillValue     float64           `yaml:"fill_value" split_words:"true"`
	Workers       int               `yaml:"workers" validate:"min=1,max=64"`
}

// OutputConfig contains output options
type OutputConfig struct {
	Path           string `yaml:"path"`
	Delimiter      string `yaml:"delimiter" validate:"len=1"`
	Summary        bool   `yaml:"summary"`
	Comparison     string `yaml:"comparison"`
	ComparisonRows int    `yaml:"comparison_rows" split_words:"true" validate:"min=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Cleaning: CleaningConfig{
			Sentinels:     []float64{normalizer.DefaultSentinel},
			UnknownLabels: string(normalizer.UnknownLabelKeep),
			EmptyColumns:  string(normalizer.EmptyColumnFail),
			Workers:       1,
		},
		Output: OutputConfig{
			Delimiter:      ";",
			Summary:        true,
			ComparisonRows: output.DefaultComparisonRows,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds the configuration, reading the YAML file at path from fs.
// path may be empty, in which case only defaults and the environment apply.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(fs, path); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(fs afero.Fs, path string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}

// Labels resolves the gender label table.
func (c *Config) Labels() normalizer.LabelMap {
	if c.Cleaning.ReplaceLabels {
		return normalizer.NewLabelMap(c.Cleaning.Labels)
	}
	return normalizer.DefaultLabelMap().Merge(c.Cleaning.Labels)
}

// Options converts the configuration into library options.
func (c *Config) Options() eyeprep.Options {
	opts := eyeprep.DefaultOptions()
	opts.Normalizer.GenderColumn = c.Columns.Gender
	opts.Normalizer.GroupColumn = c.Columns.Group
	opts.Normalizer.NumericColumns = nonEmpty(c.Columns.Numeric)
	opts.Normalizer.ExcludeColumns = c.Columns.Exclude
	opts.Normalizer.Labels = c.Labels()
	opts.Normalizer.Sentinels = c.Cleaning.Sentinels
	opts.Normalizer.UnknownLabels = normalizer.UnknownLabelPolicy(c.Cleaning.UnknownLabels)
	opts.Normalizer.EmptyColumns = normalizer.EmptyColumnPolicy(c.Cleaning.EmptyColumns)
	opts.Normalizer.FillValue = c.Cleaning.FillValue
	opts.Normalizer.Workers = c.Cleaning.Workers
	opts.Read.Delimiter = firstRune(c.Input.Delimiter)
	opts.Read.Sheet = c.Input.Sheet
	opts.OutputDelimiter = firstRune(c.Output.Delimiter)
	opts.ComparisonRows = c.Output.ComparisonRows
	return opts
}

// Paths resolves artifact locations for input.
func (c *Config) Paths(input string) eyeprep.Paths {
	out := c.Output.Path
	if out == "" {
		out = output.ProcessedPath(input)
	}
	paths := eyeprep.Paths{Output: out}
	if c.Output.Summary {
		paths.Summary = output.SummaryPath(out)
	}
	switch {
	case c.Output.Comparison != "":
		paths.Comparison = c.Output.Comparison
	case c.Output.ComparisonRows > 0:
		paths.Comparison = output.ComparisonPath(out)
	}
	return paths
}

// nonEmpty keeps nil as "infer" and treats an empty list the same way.
func nonEmpty(cols []string) []string {
	if len(cols) == 0 {
		return nil
	}
	return cols
}

// firstRune returns 0 for an empty string, meaning "use the default".
func firstRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
