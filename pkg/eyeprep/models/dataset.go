package models

// Dataset is a rectangular table: every row has one cell per column.
type Dataset struct {
	// Name is the source file name (no path), if any.
	Name string `json:"name,omitempty"`
	// Columns holds column names in file order.
	Columns []string `json:"columns"`
	// Rows holds cells indexed by column position.
	Rows [][]Cell `json:"-"`
}

// NewDataset builds a dataset from a header and text rows. Short rows are
// padded with empty text cells; extra cells are dropped.
func NewDataset(columns []string, records [][]string) *Dataset {
	ds := &Dataset{
		Columns: append([]string(nil), columns...),
		Rows:    make([][]Cell, len(records)),
	}
	for r, rec := range records {
		row := make([]Cell, len(columns))
		for c := range columns {
			if c < len(rec) {
				row[c] = Text(rec[c])
			} else {
				row[c] = Text("")
			}
		}
		ds.Rows[r] = row
	}
	return ds
}

// Index returns the position of the named column, or -1.
func (d *Dataset) Index(name string) int {
	for i, col := range d.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Value returns the cell at row r of the named column.
func (d *Dataset) Value(r int, name string) (Cell, bool) {
	c := d.Index(name)
	if c < 0 || r < 0 || r >= len(d.Rows) {
		return Cell{}, false
	}
	return d.Rows[r][c], true
}

// Column copies the cells of column c out of every row.
func (d *Dataset) Column(c int) []Cell {
	out := make([]Cell, len(d.Rows))
	for r, row := range d.Rows {
		out[r] = row[c]
	}
	return out
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Rows) }

// Clone returns a deep copy of d.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		Name:    d.Name,
		Columns: append([]string(nil), d.Columns...),
		Rows:    make([][]Cell, len(d.Rows)),
	}
	for r, row := range d.Rows {
		out.Rows[r] = append([]Cell(nil), row...)
	}
	return out
}

// Records renders the dataset as text records, header excluded.
func (d *Dataset) Records() [][]string {
	out := make([][]string, len(d.Rows))
	for r, row := range d.Rows {
		rec := make([]string, len(row))
		for c, cell := range row {
			rec[c] = cell.String()
		}
		out[r] = rec
	}
	return out
}
