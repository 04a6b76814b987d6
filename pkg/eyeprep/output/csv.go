package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/parser"
)

// WriteCSV writes ds as delimited text with a header row.
func WriteCSV(fs afero.Fs, path string, ds *models.Dataset, delimiter rune) error {
	records := make([][]string, 0, ds.Len()+1)
	records = append(records, ds.Columns)
	records = append(records, ds.Records()...)
	return writeRecords(fs, path, records, delimiter)
}

func writeRecords(fs afero.Fs, path string, records [][]string, delimiter rune) error {
	if delimiter == 0 {
		delimiter = parser.DefaultDelimiter
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	f, err := fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	w.Comma = delimiter
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
