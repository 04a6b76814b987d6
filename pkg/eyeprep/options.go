// Package eyeprep prepares eye-tracking tables for classification: it loads
// a delimited or Excel export, canonicalizes gender labels, coerces and
// median-imputes numeric columns, and produces summary and comparison
// tables.
package eyeprep

import (
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/normalizer"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/output"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/parser"
)

// Options configures a preprocessing run.
type Options struct {
	// Normalizer configures column roles, labels and imputation.
	Normalizer normalizer.Config
	// Read configures input parsing (delimiter, sheet).
	Read parser.Options
	// OutputDelimiter separates fields in delimited output.
	// Zero means parser.DefaultDelimiter.
	OutputDelimiter rune
	// ComparisonRows is how many rows the comparison table holds.
	ComparisonRows int
}

// DefaultOptions returns the options matching the eye-tracking export.
func DefaultOptions() Options {
	return Options{
		Normalizer:      normalizer.DefaultConfig(),
		Read:            parser.Options{},
		OutputDelimiter: parser.DefaultDelimiter,
		ComparisonRows:  output.DefaultComparisonRows,
	}
}

// Paths says where WriteResult puts each artifact. Empty fields are skipped.
type Paths struct {
	Output     string
	Summary    string
	Comparison string
}

// DefaultPaths derives every artifact path from the input path.
func DefaultPaths(input string) Paths {
	out := output.ProcessedPath(input)
	return Paths{
		Output:     out,
		Summary:    output.SummaryPath(out),
		Comparison: output.ComparisonPath(out),
	}
}
