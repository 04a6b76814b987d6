package models

// ColumnStats describes what normalization did to one numeric column.
type ColumnStats struct {
	// Column is the column name.
	Column string `json:"column"`
	// Coerced counts cells that failed to parse and became missing.
	Coerced int `json:"coerced"`
	// Sentinels counts cells whose value matched a missing sentinel.
	Sentinels int `json:"sentinels"`
	// Filled counts cells replaced by the imputed value.
	Filled int `json:"filled"`
	// Median is the median of the non-missing values (0 if none).
	Median float64 `json:"median"`
	// Imputed is the value written into missing cells.
	Imputed float64 `json:"imputed"`
	// Min is the minimum after imputation.
	Min float64 `json:"min"`
	// Max is the maximum after imputation.
	Max float64 `json:"max"`
	// Mean is the mean after imputation.
	Mean float64 `json:"mean"`
}

// GenderStats describes what normalization did to the gender column.
type GenderStats struct {
	// Column is the gender column name.
	Column string `json:"column"`
	// Before lists distinct raw values in first-seen order.
	Before []string `json:"before"`
	// After lists distinct processed values in first-seen order.
	After []string `json:"after"`
	// Mapped counts cells replaced by a canonical label.
	Mapped int `json:"mapped"`
	// Unmapped counts cells whose token had no table entry.
	Unmapped int `json:"unmapped"`
}

// Report summarizes a normalization run.
type Report struct {
	// Columns holds the dataset header after trimming.
	Columns []string `json:"columns"`
	// Rows is the number of processed rows.
	Rows int `json:"rows"`
	// Gender describes the gender column.
	Gender GenderStats `json:"gender"`
	// GroupColumn is the detected or configured group column, if any.
	GroupColumn string `json:"group_column,omitempty"`
	// Numeric holds per-column stats in column order.
	Numeric []ColumnStats `json:"numeric"`
}

// NumericColumns returns the numeric column names in column order.
func (r *Report) NumericColumns() []string {
	out := make([]string, len(r.Numeric))
	for i, s := range r.Numeric {
		out[i] = s.Column
	}
	return out
}

// FilledTotal returns the number of imputed cells across all columns.
func (r *Report) FilledTotal() int {
	n := 0
	for _, s := range r.Numeric {
		n += s.Filled
	}
	return n
}
