package normalizer

import (
	"errors"
	"fmt"
)

// ErrColumnNotFound indicates a designated column is absent from the dataset.
var ErrColumnNotFound = errors.New("column not found")

// ErrInvalidColumns indicates column roles that contradict each other.
var ErrInvalidColumns = errors.New("invalid column configuration")

// ErrUndefinedMedian indicates a numeric column with no usable values.
var ErrUndefinedMedian = errors.New("median undefined: column has no numeric values")

// ErrUnknownLabel indicates a gender token absent from the label map.
var ErrUnknownLabel = errors.New("unknown gender label")

// ErrNotRectangular indicates a row whose cell count differs from the header.
var ErrNotRectangular = errors.New("row length does not match header")

// Role names the part a column plays during normalization.
type Role string

const (
	RoleHeader  Role = "header"
	RoleRow     Role = "row"
	RoleGender  Role = "gender"
	RoleGroup   Role = "group"
	RoleNumeric Role = "numeric"
	RoleExclude Role = "exclude"
)

// ConfigurationError reports a column configuration that does not fit the
// dataset. It is never recovered.
type ConfigurationError struct {
	Column string
	Role   Role
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Role == RoleRow {
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
	if e.Column == "" {
		return fmt.Sprintf("configuration error: %s column: %v", e.Role, e.Err)
	}
	return fmt.Sprintf("configuration error: %s column %q: %v", e.Role, e.Column, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(column string, role Role, err error) *ConfigurationError {
	return &ConfigurationError{
		Column: column,
		Role:   role,
		Err:    err,
	}
}

// UndefinedMedianError reports a numeric column whose every cell is missing.
type UndefinedMedianError struct {
	Column string
}

func (e *UndefinedMedianError) Error() string {
	return fmt.Sprintf("column %q: %v", e.Column, ErrUndefinedMedian)
}

func (e *UndefinedMedianError) Unwrap() error {
	return ErrUndefinedMedian
}

// LabelError reports a gender token with no canonical label.
type LabelError struct {
	Column string
	// Row is the 1-based data row (header excluded).
	Row   int
	Token string
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("column %q row %d: %v %q", e.Column, e.Row, ErrUnknownLabel, e.Token)
}

func (e *LabelError) Unwrap() error {
	return ErrUnknownLabel
}
