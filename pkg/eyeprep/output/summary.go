package output

import (
	"math"
	"slices"
	"sort"
	"strconv"

	"github.com/spf13/afero"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/normalizer"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// NoMode is reported as the most common value of an all-missing column.
const NoMode = "N/A"

var summaryHeader = []string{
	"Column", "Type", "Missing", "Min", "Max", "Mean", "Median", "Std", "Unique Values", "Most Common",
}

// Summarize computes one summary row per column. Columns named in numeric
// are always numeric, even without rows; any other column is numeric when
// it has at least one number and nothing but numbers and missing cells.
func Summarize(ds *models.Dataset, numeric []string) []models.ColumnSummary {
	out := make([]models.ColumnSummary, len(ds.Columns))
	for c, name := range ds.Columns {
		col := ds.Column(c)
		if slices.Contains(numeric, name) || isNumeric(col) {
			out[c] = summarizeNumeric(name, col)
		} else {
			out[c] = summarizeCategorical(name, col)
		}
	}
	return out
}

func isNumeric(col []models.Cell) bool {
	numbers := 0
	for _, cell := range col {
		switch cell.Kind {
		case models.KindNumber:
			numbers++
		case models.KindText:
			return false
		}
	}
	return numbers > 0
}

func summarizeNumeric(name string, col []models.Cell) models.ColumnSummary {
	values := normalizer.Values(col)
	s := models.ColumnSummary{
		Column:  name,
		Type:    models.ColumnNumeric,
		Missing: len(col) - len(values),
	}
	if len(values) == 0 {
		s.Min, s.Max, s.Mean, s.Median, s.Std = math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()
		return s
	}
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	s.Mean, s.Std = stat.MeanStdDev(values, nil)
	s.Median, _ = normalizer.Median(values)
	return s
}

func summarizeCategorical(name string, col []models.Cell) models.ColumnSummary {
	s := models.ColumnSummary{Column: name, Type: models.ColumnCategorical}

	counts := make(map[string]int)
	distinct := make(map[string]bool)
	for _, cell := range col {
		value := cell.String()
		distinct[value] = true
		if cell.IsMissing() || value == "" {
			s.Missing++
			continue
		}
		counts[value]++
	}
	s.Unique = len(distinct)
	s.MostCommon = mode(counts)
	return s
}

// mode returns the most frequent value, the smallest one on ties.
func mode(counts map[string]int) string {
	if len(counts) == 0 {
		return NoMode
	}
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Strings(values)
	best := values[0]
	for _, v := range values[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best
}

// WriteSummary writes the summary table as comma-delimited text.
func WriteSummary(fs afero.Fs, path string, summaries []models.ColumnSummary) error {
	records := make([][]string, 0, len(summaries)+1)
	records = append(records, summaryHeader)
	for _, s := range summaries {
		rec := []string{s.Column, string(s.Type), strconv.Itoa(s.Missing)}
		if s.Type == models.ColumnNumeric {
			rec = append(rec,
				formatFloat(s.Min), formatFloat(s.Max), formatFloat(s.Mean),
				formatFloat(s.Median), formatFloat(s.Std), "", "")
		} else {
			rec = append(rec, "", "", "", "", "", strconv.Itoa(s.Unique), s.MostCommon)
		}
		records = append(records, rec)
	}
	return writeRecords(fs, path, records, ',')
}

// formatFloat renders v for delimited output; NaN becomes empty.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
