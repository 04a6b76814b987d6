// Package models defines data structures for tabular preprocessing.
package models

import (
	"math"
	"strconv"
)

// Kind identifies what a Cell holds.
type Kind int

const (
	// KindText is a raw or categorical string value.
	KindText Kind = iota
	// KindNumber is a parsed floating-point value.
	KindNumber
	// KindMissing marks an absent or unparseable value.
	KindMissing
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Cell is a single table value. Exactly one of Text or Num is meaningful,
// selected by Kind.
type Cell struct {
	Kind Kind
	Text string
	Num  float64
}

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

// Number returns a numeric cell.
func Number(v float64) Cell { return Cell{Kind: KindNumber, Num: v} }

// Missing returns the missing marker.
func Missing() Cell { return Cell{Kind: KindMissing} }

// IsMissing reports whether c is the missing marker.
func (c Cell) IsMissing() bool { return c.Kind == KindMissing }

// Float returns the numeric value and whether c holds a finite number.
func (c Cell) Float() (float64, bool) {
	if c.Kind != KindNumber || math.IsNaN(c.Num) || math.IsInf(c.Num, 0) {
		return 0, false
	}
	return c.Num, true
}

// String renders the cell the way it is written to delimited output.
// Numbers use the shortest representation that round-trips; the missing
// marker renders as the empty string.
func (c Cell) String() string {
	switch c.Kind {
	case KindNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case KindText:
		return c.Text
	default:
		return ""
	}
}
