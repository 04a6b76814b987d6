package eyeprep

import (
	"errors"
	"fmt"

	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/normalizer"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// Errors raised by normalization, re-exported for callers of this package.
var (
	ErrColumnNotFound  = normalizer.ErrColumnNotFound
	ErrInvalidColumns  = normalizer.ErrInvalidColumns
	ErrUndefinedMedian = normalizer.ErrUndefinedMedian
	ErrUnknownLabel    = normalizer.ErrUnknownLabel
	ErrNotRectangular  = normalizer.ErrNotRectangular
)

type (
	ConfigurationError   = normalizer.ConfigurationError
	UndefinedMedianError = normalizer.UndefinedMedianError
	LabelError           = normalizer.LabelError
)

// Stage names a step of a preprocessing run.
type Stage string

const (
	StageRead      Stage = "read"
	StageNormalize Stage = "normalize"
	StageWrite     Stage = "write"
)

// StageError represents an error during one stage of a run.
type StageError struct {
	Path  string
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(path string, stage Stage, err error) *StageError {
	return &StageError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
