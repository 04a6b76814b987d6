package parser

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads one sheet of a workbook. The table is the bounding box of
// the non-empty cells; its first row is the header.
func ReadXLSX(fs afero.Fs, path, sheet string) (*models.Dataset, error) {
	r, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	ds, err := ExtractTable(f, sheet)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	ds.Name = filepath.Base(path)
	return ds, nil
}

// ExtractTable reads the data region of sheet, or of the first sheet when
// sheet is empty. Raw cell values are used so number formats do not leak
// into the text.
func ExtractTable(f *excelize.File, sheet string) (*models.Dataset, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoHeader
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, ErrNoHeader
	}

	width := maxCol - minCol + 1
	header := cropRow(rows[minRow], minCol, width)
	records := make([][]string, 0, maxRow-minRow)
	for r := minRow + 1; r <= maxRow; r++ {
		records = append(records, cropRow(rows[r], minCol, width))
	}
	return models.NewDataset(header, records), nil
}

// cropRow returns width cells of row starting at from, padding with "".
func cropRow(row []string, from, width int) []string {
	out := make([]string, width)
	for i := range width {
		if c := from + i; c < len(row) {
			out[i] = row[c]
		}
	}
	return out
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
