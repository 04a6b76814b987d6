package output

import (
	"strconv"

	"github.com/spf13/afero"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
)

// DefaultComparisonRows is how many rows a comparison shows by default.
const DefaultComparisonRows = 20

// Compare pairs the first n rows of original and processed. Columns are
// matched by position and named after processed.
func Compare(original, processed *models.Dataset, n int) models.Comparison {
	n = min(n, original.Len(), processed.Len())
	cmp := models.Comparison{
		Columns: append([]string(nil), processed.Columns...),
		Rows:    make([]models.ComparisonRow, 0, max(n, 0)),
	}
	for r := range max(n, 0) {
		row := models.ComparisonRow{
			Row:       r + 1,
			Original:  make([]string, len(cmp.Columns)),
			Processed: make([]string, len(cmp.Columns)),
		}
		for c := range cmp.Columns {
			if c < len(original.Rows[r]) {
				row.Original[c] = original.Rows[r][c].String()
			}
			row.Processed[c] = processed.Rows[r][c].String()
		}
		cmp.Rows = append(cmp.Rows, row)
	}
	return cmp
}

// WriteComparison writes the comparison as comma-delimited text with a
// Row column and an _Original, _Processed and _Changed column per field.
func WriteComparison(fs afero.Fs, path string, cmp models.Comparison) error {
	header := make([]string, 0, 1+3*len(cmp.Columns))
	header = append(header, "Row")
	for _, col := range cmp.Columns {
		header = append(header, col+"_Original", col+"_Processed", col+"_Changed")
	}

	records := make([][]string, 0, len(cmp.Rows)+1)
	records = append(records, header)
	for _, row := range cmp.Rows {
		rec := make([]string, 0, len(header))
		rec = append(rec, strconv.Itoa(row.Row))
		for c := range cmp.Columns {
			changed := "NO"
			if row.Changed(c) {
				changed = "YES"
			}
			rec = append(rec, row.Original[c], row.Processed[c], changed)
		}
		records = append(records, rec)
	}
	return writeRecords(fs, path, records, ',')
}
