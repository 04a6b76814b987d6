package eyeprep

import (
	"context"
	"errors"
	"io/fs"

	"github.com/spf13/afero"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/normalizer"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/output"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/parser"
)

// Result holds everything a run produces.
type Result struct {
	Original   *models.Dataset
	Processed  *models.Dataset
	Report     *models.Report
	Summary    []models.ColumnSummary
	Comparison models.Comparison
}

// Preprocess loads path from fsys and normalizes it.
func Preprocess(ctx context.Context, fsys afero.Fs, path string, opts Options) (*Result, error) {
	if _, err := fsys.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, NewStageError(path, StageRead, ErrFileNotFound)
	}

	ds, err := parser.Read(fsys, path, opts.Read)
	if err != nil {
		return nil, NewStageError(path, StageRead, err)
	}

	res, err := Run(ctx, ds, opts)
	if err != nil {
		return nil, NewStageError(path, StageNormalize, err)
	}
	return res, nil
}

// Run normalizes an already loaded dataset.
func Run(ctx context.Context, ds *models.Dataset, opts Options) (*Result, error) {
	processed, report, err := normalizer.New(opts.Normalizer).Normalize(ctx, ds)
	if err != nil {
		return nil, err
	}
	return &Result{
		Original:   ds,
		Processed:  processed,
		Report:     report,
		Summary:    output.Summarize(processed, report.NumericColumns()),
		Comparison: output.Compare(ds, processed, opts.ComparisonRows),
	}, nil
}

// WriteResult stores the processed dataset and its reports.
func WriteResult(fsys afero.Fs, res *Result, paths Paths, opts Options) error {
	if paths.Output != "" {
		if err := output.Write(fsys, paths.Output, res.Processed, opts.OutputDelimiter); err != nil {
			return NewStageError(paths.Output, StageWrite, err)
		}
	}
	if paths.Summary != "" {
		if err := output.WriteSummary(fsys, paths.Summary, res.Summary); err != nil {
			return NewStageError(paths.Summary, StageWrite, err)
		}
	}
	if paths.Comparison != "" {
		if err := output.WriteComparison(fsys, paths.Comparison, res.Comparison); err != nil {
			return NewStageError(paths.Comparison, StageWrite, err)
		}
	}
	return nil
}
