// Package output writes processed datasets and their companion reports.
package output

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/parser"
)

// ComparisonFile is the default comparison table name.
const ComparisonFile = "preprocessing_comparison.csv"

// Write stores ds at path in the format matching its extension.
func Write(fs afero.Fs, path string, ds *models.Dataset, delimiter rune) error {
	format, err := parser.DetectFormat(path)
	if err != nil {
		return err
	}
	if format == parser.FormatXLSX {
		return WriteXLSX(fs, path, ds, "")
	}
	return WriteCSV(fs, path, ds, delimiter)
}

// ProcessedPath derives the default output path for an input file:
// "dir/name.csv" becomes "dir/name_PREPROCESSED.csv".
func ProcessedPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_PREPROCESSED" + ext
}

// SummaryPath derives the summary table path from the output path. The
// summary is always delimited text.
func SummaryPath(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + "_summary.csv"
}

// ComparisonPath returns the default comparison table path next to output.
func ComparisonPath(output string) string {
	return filepath.Join(filepath.Dir(output), ComparisonFile)
}
