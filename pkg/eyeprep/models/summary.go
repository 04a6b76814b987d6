package models

// ColumnType classifies a summary row.
type ColumnType string

const (
	ColumnNumeric     ColumnType = "Numeric"
	ColumnCategorical ColumnType = "Categorical"
)

// ColumnSummary is one row of the summary table. Numeric fields are set for
// numeric columns; Unique and MostCommon for categorical ones.
type ColumnSummary struct {
	Column     string     `json:"column"`
	Type       ColumnType `json:"type"`
	Missing    int        `json:"missing"`
	Min        float64    `json:"min,omitempty"`
	Max        float64    `json:"max,omitempty"`
	Mean       float64    `json:"mean,omitempty"`
	Median     float64    `json:"median,omitempty"`
	Std        float64    `json:"std,omitempty"`
	Unique     int        `json:"unique_values,omitempty"`
	MostCommon string     `json:"most_common,omitempty"`
}

// ComparisonRow pairs original and processed values for one dataset row.
type ComparisonRow struct {
	// Row is the 1-based row number.
	Row int `json:"row"`
	// Original holds the source rendering per column.
	Original []string `json:"original"`
	// Processed holds the output rendering per column.
	Processed []string `json:"processed"`
}

// Changed reports whether column c differs between the two renderings.
func (r ComparisonRow) Changed(c int) bool {
	return r.Original[c] != r.Processed[c]
}

// Comparison is a side-by-side view of the first rows of a run.
type Comparison struct {
	Columns []string        `json:"columns"`
	Rows    []ComparisonRow `json:"rows"`
}
