package frame

import (
	"fmt"

	"tabular/pkg/errors"
)

// Predicate is a scalar test used to build boolean masks. A predicate must
// be strictly boolean: comparisons against Missing yield false, never a
// third state.
type Predicate func(Scalar) bool

// Gt returns a predicate satisfied by numbers strictly greater than the
// threshold. Missing and text cells yield false.
func Gt(threshold float64) Predicate {
	return func(s Scalar) bool {
		v, ok := s.Float()
		return ok && v > threshold
	}
}

// Ge returns a predicate satisfied by numbers at or above the threshold.
func Ge(threshold float64) Predicate {
	return func(s Scalar) bool {
		v, ok := s.Float()
		return ok && v >= threshold
	}
}

// Lt returns a predicate satisfied by numbers strictly below the threshold.
func Lt(threshold float64) Predicate {
	return func(s Scalar) bool {
		v, ok := s.Float()
		return ok && v < threshold
	}
}

// Le returns a predicate satisfied by numbers at or below the threshold.
func Le(threshold float64) Predicate {
	return func(s Scalar) bool {
		v, ok := s.Float()
		return ok && v <= threshold
	}
}

// Eq returns a predicate satisfied by cells equal to the given scalar.
// Missing never satisfies Eq, including Eq(Missing()).
func Eq(v Scalar) Predicate {
	return func(s Scalar) bool {
		if s.IsMissing() || v.IsMissing() {
			return false
		}
		return s.Equal(v)
	}
}

// Grid is a same-shape boolean mask aligned to the table it was produced
// from. Alignment is re-validated by shape comparison when the grid is
// applied; a stale grid of matching shape is accepted.
type Grid struct {
	rows, cols int
	cells      []bool
}

// Rows returns the grid's row count
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid's column count
func (g *Grid) Cols() int { return g.cols }

// At returns the mask value at (r, c).
func (g *Grid) At(r, c int) bool { return g.cells[r*g.cols+c] }

// Row returns one row of the grid as a boolean vector.
func (g *Grid) Row(r int) []bool {
	out := make([]bool, g.cols)
	copy(out, g.cells[r*g.cols:(r+1)*g.cols])
	return out
}

// CountTrue returns the number of true cells in the grid.
func (g *Grid) CountTrue() int {
	n := 0
	for _, b := range g.cells {
		if b {
			n++
		}
	}
	return n
}

// Mask evaluates the predicate independently against every cell and returns
// the same-shape boolean grid.
func (t *Table) Mask(pred Predicate) *Grid {
	g := &Grid{
		rows:  t.RowCount(),
		cols:  t.ColumnCount(),
		cells: make([]bool, t.RowCount()*t.ColumnCount()),
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			g.cells[r*g.cols+c] = pred(t.cellAt(r, c))
		}
	}
	return g
}

// MaskColumn evaluates the predicate against one named column and returns a
// single-axis boolean vector usable as a row selector.
func (t *Table) MaskColumn(column string, pred Predicate) (MaskVec, error) {
	pos, ok := t.colIndex[column]
	if !ok {
		return nil, errors.NewLookupError(ColumnAxis, column)
	}
	out := make(MaskVec, t.RowCount())
	for r := range out {
		out[r] = pred(t.cellAt(r, pos))
	}
	return out, nil
}

// FilterRows returns the subset of rows where the predicate holds over the
// named column, preserving row order. With no keep arguments all columns
// are returned; otherwise only the named columns, in the given order.
func (t *Table) FilterRows(column string, pred Predicate, keep ...string) (*Table, error) {
	rowMask, err := t.MaskColumn(column, pred)
	if err != nil {
		return nil, err
	}
	var colSel Selector = All{}
	if len(keep) > 0 {
		colSel = Labels(keep)
	}
	cols, _, err := t.resolveColumn(colSel)
	if err != nil {
		return nil, err
	}
	rows, _, err := t.resolveRow(rowMask)
	if err != nil {
		return nil, err
	}
	return t.subTable(rows, cols)
}

// ApplyMask assigns the replacement to every cell where the grid is true,
// in place, without changing shape or labels. The grid must match the
// table's shape and the replacement must be storable in every masked
// column; the assignment is validated completely before any write, so a
// failed ApplyMask leaves the table untouched. Applying the same mask and
// replacement twice is the same as applying it once.
func (t *Table) ApplyMask(g *Grid, replacement Scalar) error {
	if g.rows != t.RowCount() || g.cols != t.ColumnCount() {
		return errors.NewShapeMismatch(
			fmt.Sprintf("mask of shape %dx%d for table of shape %dx%d",
				g.rows, g.cols, t.RowCount(), t.ColumnCount()))
	}
	for c := range t.cols {
		if !t.cols[c].accepts(replacement) {
			for r := 0; r < g.rows; r++ {
				if g.At(r, c) {
					return errors.NewShapeMismatch(
						fmt.Sprintf("cannot assign %s value to %s column %q",
							scalarKindName(replacement), t.cols[c].kind, t.colLabels[c])).
						WithContext("column", t.colLabels[c])
				}
			}
		}
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.At(r, c) {
				t.setCellAt(r, c, replacement)
			}
		}
	}
	return nil
}
