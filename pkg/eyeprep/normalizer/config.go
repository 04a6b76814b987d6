package normalizer

import "github.com/charmbracelet/log"

// UnknownLabelPolicy decides what happens to gender tokens with no entry
// in the label map.
type UnknownLabelPolicy string

const (
	// UnknownLabelKeep leaves the trimmed token in place.
	UnknownLabelKeep UnknownLabelPolicy = "keep"
	// UnknownLabelFail stops normalization with a LabelError.
	UnknownLabelFail UnknownLabelPolicy = "fail"
)

// EmptyColumnPolicy decides how a numeric column without any value is
// imputed.
type EmptyColumnPolicy string

const (
	// EmptyColumnFail returns an UndefinedMedianError.
	EmptyColumnFail EmptyColumnPolicy = "fail"
	// EmptyColumnFill writes Config.FillValue into every cell.
	EmptyColumnFill EmptyColumnPolicy = "fill"
)

// DefaultSentinel is the value the eye-tracking export uses for "no data".
const DefaultSentinel = -1.0

// Config configures a Normalizer.
type Config struct {
	// GenderColumn names the gender column. If empty, the last column whose
	// name contains "gender" (case-insensitive) is used.
	GenderColumn string
	// GroupColumn names the group column, which passes through untouched.
	// If empty, the last column containing "group" is used when present.
	GroupColumn string
	// NumericColumns lists the numeric columns. If nil, every column other
	// than the gender, group and excluded columns is numeric.
	NumericColumns []string
	// ExcludeColumns are passed through untouched.
	ExcludeColumns []string
	// Labels maps raw gender tokens to canonical labels. The zero value is
	// the default table.
	Labels LabelMap
	// Sentinels are numeric values treated as missing.
	Sentinels []float64
	// UnknownLabels defaults to UnknownLabelKeep.
	UnknownLabels UnknownLabelPolicy
	// EmptyColumns defaults to EmptyColumnFail.
	EmptyColumns EmptyColumnPolicy
	// FillValue is used by EmptyColumnFill.
	FillValue float64
	// Workers bounds how many numeric columns are processed at once.
	// Values below 1 mean 1.
	Workers int
	// Logger receives debug events. Nil discards them.
	Logger *log.Logger
}

// DefaultConfig returns the configuration matching the eye-tracking export:
// default labels, -1 as the missing sentinel, sequential processing.
func DefaultConfig() Config {
	return Config{
		Labels:        DefaultLabelMap(),
		Sentinels:     []float64{DefaultSentinel},
		UnknownLabels: UnknownLabelKeep,
		EmptyColumns:  EmptyColumnFail,
		Workers:       1,
	}
}

func (c Config) withDefaults() Config {
	if c.UnknownLabels == "" {
		c.UnknownLabels = UnknownLabelKeep
	}
	if c.EmptyColumns == "" {
		c.EmptyColumns = EmptyColumnFail
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c
}
