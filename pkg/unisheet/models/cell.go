// Package models defines the data structures for sheet unification.
package models

import (
	"math"
	"strconv"
	"strings"
)

// CellKind identifies which variant a Cell holds.
type CellKind uint8

const (
	// KindNull is an empty or missing cell.
	KindNull CellKind = iota
	// KindNumber is a numeric cell.
	KindNumber
	// KindText is a textual cell.
	KindText
)

// Cell is a tagged union of the three value shapes a spreadsheet cell can
// take: null, number, or text. Cells are read as text and only become
// numbers after type application.
type Cell struct {
	Kind CellKind
	Num  float64
	Text string
}

// NullCell returns an empty cell.
func NullCell() Cell {
	return Cell{Kind: KindNull}
}

// NumberCell returns a numeric cell holding v.
func NumberCell(v float64) Cell {
	return Cell{Kind: KindNumber, Num: v}
}

// TextCell returns a textual cell holding s.
func TextCell(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

// IsNull reports whether the cell is null.
func (c Cell) IsNull() bool {
	return c.Kind == KindNull
}

// AsText returns the cell's text representation. Null cells yield "".
func (c Cell) AsText() string {
	switch c.Kind {
	case KindNumber:
		return FormatNumber(c.Num)
	case KindText:
		return c.Text
	default:
		return ""
	}
}

// AsNumber reports the cell's numeric value. Text cells are parsed with
// locale-independent decimal parsing; null cells and unparseable text
// report false.
func (c Cell) AsNumber() (float64, bool) {
	switch c.Kind {
	case KindNumber:
		return c.Num, true
	case KindText:
		v, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

// FormatNumber renders v without a decimal point when it is integral and
// fits an int64, and with the shortest round-trip representation otherwise.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) &&
		v >= math.MinInt64 && v < math.MaxInt64 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
