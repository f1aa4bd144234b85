package frame

import (
	"fmt"

	"tabular/pkg/errors"
)

// ColumnKind identifies the homogeneous type of a column vector.
type ColumnKind int

const (
	ColNumeric ColumnKind = iota
	ColText
)

func (k ColumnKind) String() string {
	if k == ColNumeric {
		return "numeric"
	}
	return "text"
}

// Column is a homogeneously typed vector: numeric-with-missing, or text.
// Numeric columns hold Number and Missing cells; text columns hold Text
// cells only (absent text is the empty string, matching the source data).
type Column struct {
	kind  ColumnKind
	cells []Scalar
}

// NumericColumn builds a numeric column from Number and Missing scalars.
func NumericColumn(values []Scalar) (Column, error) {
	cells := make([]Scalar, len(values))
	for i, v := range values {
		if v.IsText() {
			return Column{}, errors.NewShapeMismatch(
				fmt.Sprintf("numeric column cannot hold text cell at position %d", i))
		}
		cells[i] = v
	}
	return Column{kind: ColNumeric, cells: cells}, nil
}

// NumbersColumn builds a numeric column from plain floats, no missing cells.
func NumbersColumn(values []float64) Column {
	cells := make([]Scalar, len(values))
	for i, v := range values {
		cells[i] = Number(v)
	}
	return Column{kind: ColNumeric, cells: cells}
}

// TextColumn builds a text column.
func TextColumn(values []string) Column {
	cells := make([]Scalar, len(values))
	for i, v := range values {
		cells[i] = Text(v)
	}
	return Column{kind: ColText, cells: cells}
}

// Len returns the number of cells in the column
func (c Column) Len() int { return len(c.cells) }

// Kind returns the column's type
func (c Column) Kind() ColumnKind { return c.kind }

// Cell returns the scalar at position i. Callers index through the table,
// which bounds-checks; this panics on out-of-range like a slice.
func (c Column) Cell(i int) Scalar { return c.cells[i] }

// Values returns a copy of the column's cells.
func (c Column) Values() []Scalar {
	out := make([]Scalar, len(c.cells))
	copy(out, c.cells)
	return out
}

// accepts reports whether a scalar may be stored in this column.
func (c Column) accepts(v Scalar) bool {
	if c.kind == ColNumeric {
		return !v.IsText()
	}
	return v.IsText()
}

func (c Column) clone() Column {
	cells := make([]Scalar, len(c.cells))
	copy(cells, c.cells)
	return Column{kind: c.kind, cells: cells}
}
