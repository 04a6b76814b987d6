// Package parser loads delimited text and Excel workbooks into datasets.
package parser

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
)

// DefaultDelimiter is the field separator of the eye-tracking export.
const DefaultDelimiter = ';'

// TabDelimiter is the default field separator of .tsv files.
const TabDelimiter = '\t'

// ErrNoHeader indicates an input without a header row.
var ErrNoHeader = errors.New("no header row")

// ErrUnsupportedFormat indicates a file extension no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format identifies an input or output file type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt", ".tsv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// DelimiterFor returns the default delimiter for path: tab for .tsv and
// DefaultDelimiter for everything else.
func DelimiterFor(path string) rune {
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return TabDelimiter
	}
	return DefaultDelimiter
}

// Options configures reading.
type Options struct {
	// Delimiter separates fields in delimited text. Zero means
	// DelimiterFor the file name.
	Delimiter rune
	// Sheet selects a workbook sheet. Empty means the first sheet.
	Sheet string
}

// Read loads path with the reader matching its extension.
func Read(fs afero.Fs, path string, opts Options) (*models.Dataset, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatXLSX:
		return ReadXLSX(fs, path, opts.Sheet)
	default:
		return ReadCSV(fs, path, opts.Delimiter)
	}
}
