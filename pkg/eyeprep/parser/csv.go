package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
)

const utf8BOM = "\ufeff"

// ReadCSV reads a delimited text file. The first record is the header and
// every record must have as many fields as the header. A zero delimiter
// means DelimiterFor(path).
func ReadCSV(fs afero.Fs, path string, delimiter rune) (*models.Dataset, error) {
	if delimiter == 0 {
		delimiter = DelimiterFor(path)
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := DecodeCSV(f, delimiter)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	ds.Name = filepath.Base(path)
	return ds, nil
}

// DecodeCSV reads delimited text from r.
func DecodeCSV(r io.Reader, delimiter rune) (*models.Dataset, error) {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	cr := csv.NewReader(r)
	cr.Comma = delimiter

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return models.NewDataset(header, records), nil
}
