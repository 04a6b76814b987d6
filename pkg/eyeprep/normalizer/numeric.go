package normalizer

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
)

// NormalizeDecimal turns a decimal comma into a point. Only a string with a
// single comma and no point is rewritten; "1,5" becomes "1.5" while
// "1.234,5" and "1,234,567" are left alone.
func NormalizeDecimal(s string) string {
	if strings.Count(s, ",") != 1 || strings.Contains(s, ".") {
		return s
	}
	return strings.Replace(s, ",", ".", 1)
}

// ParseNumber coerces c to a number. The result is either a finite
// models.Number or models.Missing; it never fails.
func ParseNumber(c models.Cell) models.Cell {
	switch c.Kind {
	case models.KindNumber:
		if v, ok := c.Float(); ok {
			return models.Number(v)
		}
		return models.Missing()
	case models.KindText:
		s := NormalizeDecimal(strings.TrimSpace(c.Text))
		// ParseFloat also takes hex floats and Go digit separators.
		if s == "" || strings.ContainsAny(s, "xX_") {
			return models.Missing()
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return models.Missing()
		}
		return models.Number(v)
	default:
		return models.Missing()
	}
}

func isSentinel(v float64, sentinels []float64) bool {
	for _, s := range sentinels {
		if v == s {
			return true
		}
	}
	return false
}

// coerceColumn parses every cell of col in place and returns how many
// cells failed to parse and how many held a sentinel.
func coerceColumn(col []models.Cell, sentinels []float64) (coerced, sentinel int) {
	for i, c := range col {
		p := ParseNumber(c)
		switch {
		case p.IsMissing():
			if !c.IsMissing() {
				coerced++
			}
		case isSentinel(p.Num, sentinels):
			p = models.Missing()
			sentinel++
		}
		col[i] = p
	}
	return coerced, sentinel
}
