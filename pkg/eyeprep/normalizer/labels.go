package normalizer

import (
	"maps"
	"strconv"
	"strings"

	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical gender labels.
const (
	LabelFemale = "Female"
	LabelMale   = "Male"
)

var defaultLabels = map[string]string{
	"F":      LabelFemale,
	"FEMALE": LabelFemale,
	"M":      LabelMale,
	"MALE":   LabelMale,
}

// LabelMap maps raw gender tokens to canonical labels. Keys are stored
// trimmed and upper-cased so lookups ignore case and surrounding space.
// The zero value behaves like DefaultLabelMap.
type LabelMap struct {
	m map[string]string
}

// NewLabelMap builds a map from raw token/label pairs. A nil or empty input
// yields a map that recognizes nothing.
func NewLabelMap(raw map[string]string) LabelMap {
	m := make(map[string]string, len(raw))
	for token, label := range raw {
		m[FoldToken(token)] = label
	}
	return LabelMap{m: m}
}

// DefaultLabelMap returns the F/FEMALE/M/MALE table.
func DefaultLabelMap() LabelMap {
	return LabelMap{m: maps.Clone(defaultLabels)}
}

func (l LabelMap) table() map[string]string {
	if l.m == nil {
		return defaultLabels
	}
	return l.m
}

// Lookup returns the canonical label for token.
func (l LabelMap) Lookup(token string) (string, bool) {
	label, ok := l.table()[FoldToken(token)]
	return label, ok
}

// With returns a copy of l with token mapped to label.
func (l LabelMap) With(token, label string) LabelMap {
	m := maps.Clone(l.table())
	m[FoldToken(token)] = label
	return LabelMap{m: m}
}

// Merge returns a copy of l extended with every pair in raw.
func (l LabelMap) Merge(raw map[string]string) LabelMap {
	m := maps.Clone(l.table())
	for token, label := range raw {
		m[FoldToken(token)] = label
	}
	return LabelMap{m: m}
}

// Len returns the number of entries.
func (l LabelMap) Len() int { return len(l.table()) }

// Entries returns a copy of the folded token/label pairs.
func (l LabelMap) Entries() map[string]string { return maps.Clone(l.table()) }

// FoldToken trims space and upper-cases s, producing a lookup key.
func FoldToken(s string) string {
	// A Caser is stateful, so one is made per call.
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}

// CellText renders a cell as the string a gender lookup sees. Numbers use
// their shortest representation and missing cells become "".
func CellText(c models.Cell) string {
	switch c.Kind {
	case models.KindText:
		return c.Text
	case models.KindNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// CanonicalGender trims c and maps it through labels. Tokens without an
// entry come back trimmed with mapped set to false.
func CanonicalGender(c models.Cell, labels LabelMap) (value string, mapped bool) {
	token := strings.TrimSpace(CellText(c))
	if label, ok := labels.Lookup(token); ok {
		return label, true
	}
	return token, false
}
