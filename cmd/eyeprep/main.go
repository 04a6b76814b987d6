// Package main provides the CLI entry point for eyeprep.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ukaji3/eyeprep-go/internal/config"
	"github.com/ukaji3/eyeprep-go/internal/logging"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep"
)

type flags struct {
	configPath      string
	output          string
	delimiter       string
	outputDelimiter string
	sheet           string
	genderColumn    string
	groupColumn     string
	numericColumns  []string
	excludeColumns  []string
	labels          map[string]string
	replaceLabels   bool
	sentinels       []float64
	unknownLabels   string
	emptyColumns    string
	fillValue       float64
	workers         int
	summary         bool
	comparison      string
	comparisonRows  int
	logLevel        string
	logJSON         bool
}

func main() {
	if err := newRootCmd(afero.NewOsFs(), os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(fs afero.Fs, logOut io.Writer) *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "eyeprep [input.csv|input.xlsx]",
		Short: "Clean eye-tracking tables for classification",
		Long: `eyeprep normalizes an eye-tracking export: gender labels become
Female/Male, numeric columns are parsed (decimal commas included) and their
missing values are replaced with the column median.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), fs, logOut, cmd.Flags(), f, args[0])
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fl.StringVarP(&f.output, "output", "o", "", "Output file path (default: <input>_PREPROCESSED.<ext>)")
	fl.StringVar(&f.delimiter, "delimiter", "", "Input field delimiter (default: tab for .tsv, ; otherwise)")
	fl.StringVar(&f.outputDelimiter, "output-delimiter", ";", "Output field delimiter")
	fl.StringVar(&f.sheet, "sheet", "", "Workbook sheet to read (default: first sheet)")
	fl.StringVar(&f.genderColumn, "gender-column", "", "Gender column (default: detected)")
	fl.StringVar(&f.groupColumn, "group-column", "", "Group column passed through untouched (default: detected)")
	fl.StringSliceVar(&f.numericColumns, "numeric-columns", nil, "Numeric columns (default: all others)")
	fl.StringSliceVar(&f.excludeColumns, "exclude-columns", nil, "Columns passed through untouched")
	fl.StringToStringVar(&f.labels, "label", nil, "Extra gender label mapping TOKEN=Label")
	fl.BoolVar(&f.replaceLabels, "replace-labels", false, "Use only --label mappings, not the defaults")
	fl.Float64SliceVar(&f.sentinels, "sentinel", nil, "Numeric values treated as missing (default: -1)")
	fl.StringVar(&f.unknownLabels, "unknown-label", "keep", "Unknown gender tokens: keep or fail")
	fl.StringVar(&f.emptyColumns, "empty-column", "fail", "All-missing numeric columns: fail or fill")
	fl.Float64Var(&f.fillValue, "fill-value", 0, "Value used by --empty-column=fill")
	fl.IntVar(&f.workers, "workers", 1, "Numeric columns processed in parallel")
	fl.BoolVar(&f.summary, "summary", true, "Write <output>_summary.csv")
	fl.StringVar(&f.comparison, "comparison", "", "Comparison table path (default: next to output)")
	fl.IntVar(&f.comparisonRows, "comparison-rows", 20, "Rows in the comparison table (0 disables it)")
	fl.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fl.BoolVar(&f.logJSON, "log-json", false, "Log as JSON")

	return cmd
}

func run(ctx context.Context, fs afero.Fs, logOut io.Writer, set *pflag.FlagSet, f *flags, input string) error {
	cfg, err := config.Load(fs, f.configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, set, f)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger, err := logging.New(logging.Config{Level: cfg.Logging.Level, JSON: cfg.Logging.JSON, Output: logOut})
	if err != nil {
		return err
	}
	logger = logger.With("run", uuid.NewString())

	opts := cfg.Options()
	opts.Normalizer.Logger = logger
	paths := cfg.Paths(input)

	logger.Info("loading data", "input", input)
	res, err := eyeprep.Preprocess(ctx, fs, input, opts)
	if err != nil {
		return err
	}
	logReport(logger, res)

	if err := eyeprep.WriteResult(fs, res, paths, opts); err != nil {
		return err
	}
	logger.Info("processing complete",
		"output", paths.Output,
		"summary", paths.Summary,
		"comparison", paths.Comparison,
		"rows", res.Processed.Len(),
		"columns", len(res.Processed.Columns))
	return nil
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cfg *config.Config, set *pflag.FlagSet, f *flags) {
	apply := map[string]func(){
		"output":           func() { cfg.Output.Path = f.output },
		"delimiter":        func() { cfg.Input.Delimiter = f.delimiter },
		"output-delimiter": func() { cfg.Output.Delimiter = f.outputDelimiter },
		"sheet":            func() { cfg.Input.Sheet = f.sheet },
		"gender-column":    func() { cfg.Columns.Gender = f.genderColumn },
		"group-column":     func() { cfg.Columns.Group = f.groupColumn },
		"numeric-columns":  func() { cfg.Columns.Numeric = f.numericColumns },
		"exclude-columns":  func() { cfg.Columns.Exclude = f.excludeColumns },
		"label":            func() { cfg.Cleaning.Labels = f.labels },
		"replace-labels":   func() { cfg.Cleaning.ReplaceLabels = f.replaceLabels },
		"sentinel":         func() { cfg.Cleaning.Sentinels = f.sentinels },
		"unknown-label":    func() { cfg.Cleaning.UnknownLabels = f.unknownLabels },
		"empty-column":     func() { cfg.Cleaning.EmptyColumns = f.emptyColumns },
		"fill-value":       func() { cfg.Cleaning.FillValue = f.fillValue },
		"workers":          func() { cfg.Cleaning.Workers = f.workers },
		"summary":          func() { cfg.Output.Summary = f.summary },
		"comparison":       func() { cfg.Output.Comparison = f.comparison },
		"comparison-rows":  func() { cfg.Output.ComparisonRows = f.comparisonRows },
		"log-level":        func() { cfg.Logging.Level = f.logLevel },
		"log-json":         func() { cfg.Logging.JSON = f.logJSON },
	}
	set.Visit(func(fl *pflag.Flag) {
		if fn, ok := apply[fl.Name]; ok {
			fn()
		}
	})
}

func logReport(logger *log.Logger, res *eyeprep.Result) {
	r := res.Report
	logger.Info("identified columns",
		"gender", r.Gender.Column,
		"group", r.GroupColumn,
		"numeric", len(r.Numeric))
	logger.Info("gender values",
		"original", strings.Join(r.Gender.Before, "|"),
		"processed", strings.Join(r.Gender.After, "|"),
		"unmapped", r.Gender.Unmapped)
	for _, s := range r.Numeric {
		if s.Filled > 0 {
			logger.Info("filled missing values", "column", s.Column, "count", s.Filled, "median", s.Imputed)
		}
		logger.Debug("column stats",
			"column", s.Column,
			"coerced", s.Coerced,
			"sentinels", s.Sentinels,
			"min", s.Min,
			"max", s.Max,
			"mean", s.Mean)
	}
}
