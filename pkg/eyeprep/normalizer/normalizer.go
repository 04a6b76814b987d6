// Package normalizer turns a raw eye-tracking table into an analysis-ready
// one: gender labels are canonicalized and numeric columns are parsed and
// median-imputed.
package normalizer

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
	"golang.org/x/sync/errgroup"
)

// Normalizer applies the preprocessing steps to datasets. It keeps no state
// between calls and is safe for concurrent use.
type Normalizer struct {
	cfg    Config
	logger *log.Logger
}

// New creates a Normalizer.
func New(cfg Config) *Normalizer {
	cfg = cfg.withDefaults()
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Normalizer{cfg: cfg, logger: logger}
}

// Config returns the effective configuration.
func (n *Normalizer) Config() Config { return n.cfg }

// Normalize returns a processed copy of ds together with a report. ds is
// left untouched. The gender column is canonicalized first; numeric columns
// are then coerced and imputed one column at a time, Workers columns in
// parallel.
func (n *Normalizer) Normalize(ctx context.Context, ds *models.Dataset) (*models.Dataset, *models.Report, error) {
	if err := CheckShape(ds); err != nil {
		return nil, nil, err
	}
	out := ds.Clone()

	columns, err := TrimHeaders(out.Columns)
	if err != nil {
		return nil, nil, err
	}
	out.Columns = columns

	roles, err := ResolveRoles(columns, n.cfg)
	if err != nil {
		return nil, nil, err
	}
	n.logger.Debug("resolved columns",
		"gender", roles.GenderName,
		"group", roles.GroupName,
		"numeric", len(roles.Numeric),
		"passthrough", len(roles.Passthrough))

	report := &models.Report{
		Columns:     columns,
		Rows:        out.Len(),
		GroupColumn: roles.GroupName,
	}

	if report.Gender, err = n.normalizeGender(out, roles); err != nil {
		return nil, nil, err
	}

	stats, err := n.normalizeNumeric(ctx, out, roles)
	if err != nil {
		return nil, nil, err
	}
	report.Numeric = stats

	return out, report, nil
}

func (n *Normalizer) normalizeGender(ds *models.Dataset, roles Roles) (models.GenderStats, error) {
	stats := models.GenderStats{Column: roles.GenderName}
	before := make(map[string]bool)
	after := make(map[string]bool)

	for r, row := range ds.Rows {
		raw := CellText(row[roles.Gender])
		if !before[raw] {
			before[raw] = true
			stats.Before = append(stats.Before, raw)
		}

		value, mapped := CanonicalGender(row[roles.Gender], n.cfg.Labels)
		if mapped {
			stats.Mapped++
		} else {
			if n.cfg.UnknownLabels == UnknownLabelFail {
				return stats, &LabelError{Column: roles.GenderName, Row: r + 1, Token: value}
			}
			stats.Unmapped++
		}
		row[roles.Gender] = models.Text(value)

		if !after[value] {
			after[value] = true
			stats.After = append(stats.After, value)
		}
	}

	if stats.Unmapped > 0 {
		n.logger.Debug("unmapped gender tokens kept", "column", roles.GenderName, "count", stats.Unmapped)
	}
	return stats, nil
}

func (n *Normalizer) normalizeNumeric(ctx context.Context, ds *models.Dataset, roles Roles) ([]models.ColumnStats, error) {
	stats := make([]models.ColumnStats, len(roles.Numeric))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(n.cfg.Workers)
	for i, c := range roles.Numeric {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := n.normalizeColumn(ds, c)
			if err != nil {
				return err
			}
			stats[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// normalizeColumn coerces and imputes column c. Each call touches only its
// own column, so calls for different columns may run concurrently.
func (n *Normalizer) normalizeColumn(ds *models.Dataset, c int) (models.ColumnStats, error) {
	name := ds.Columns[c]
	col := ds.Column(c)

	coerced, sentinels := coerceColumn(col, n.cfg.Sentinels)
	stats, err := ImputeMedian(name, col, n.cfg.EmptyColumns, n.cfg.FillValue)
	if err != nil {
		return stats, err
	}
	stats.Coerced = coerced
	stats.Sentinels = sentinels

	for r, row := range ds.Rows {
		row[c] = col[r]
	}

	if stats.Filled > 0 {
		n.logger.Debug("imputed column", "column", name, "filled", stats.Filled, "median", stats.Imputed)
	}
	return stats, nil
}
