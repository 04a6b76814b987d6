package normalizer

import (
	"slices"

	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Median returns the median of values, averaging the two middle values for
// even lengths. ok is false for an empty slice. values is not modified.
func Median(values []float64) (median float64, ok bool) {
	n := len(values)
	if n == 0 {
		return 0, false
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	if n%2 == 1 {
		return sorted[n/2], true
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2, true
}

// Values returns the finite numbers held by col.
func Values(col []models.Cell) []float64 {
	out := make([]float64, 0, len(col))
	for _, c := range col {
		if v, ok := c.Float(); ok {
			out = append(out, v)
		}
	}
	return out
}

// ImputeMedian replaces every missing cell of an already coerced column
// with the median of its other values. The median is taken before any cell
// is written. A column with missing cells and no values is resolved by
// policy: EmptyColumnFill writes fill, anything else fails.
func ImputeMedian(name string, col []models.Cell, policy EmptyColumnPolicy, fill float64) (models.ColumnStats, error) {
	stats := models.ColumnStats{Column: name}

	values := Values(col)
	missing := len(col) - len(values)

	median, ok := Median(values)
	stats.Median = median
	stats.Imputed = median
	if !ok && missing > 0 {
		if policy != EmptyColumnFill {
			return stats, &UndefinedMedianError{Column: name}
		}
		stats.Imputed = fill
	}

	for i, c := range col {
		if _, ok := c.Float(); !ok {
			col[i] = models.Number(stats.Imputed)
			stats.Filled++
		}
	}

	if len(col) > 0 {
		final := Values(col)
		stats.Min = floats.Min(final)
		stats.Max = floats.Max(final)
		stats.Mean = stat.Mean(final, nil)
	}
	return stats, nil
}
