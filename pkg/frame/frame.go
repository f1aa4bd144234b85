package frame

import (
	"fmt"

	"tabular/pkg/errors"
)

// Axis names used in lookup errors.
const (
	RowAxis    = "row"
	ColumnAxis = "column"
)

// Table is the labeled 2-D container at the core of the engine: ordered,
// unique row labels; ordered, unique column labels; column-major typed
// storage. Rows and columns may share label text without conflict since
// they index different axes.
//
// A Table is created by ingestion or by a transform (transpose, filter,
// aggregate) and is otherwise immutable except through explicit in-place
// assignment via Set, ApplyMask, or ForwardFill, which mutate only the
// addressed cells and never change shape or labels.
type Table struct {
	rowLabels []string
	colLabels []string
	cols      []Column
	rowIndex  map[string]int
	colIndex  map[string]int
}

// New constructs a table from raw columns. Every column must share the row
// count and labels must be unique per axis; otherwise a ShapeMismatch error
// is returned.
func New(rowLabels, colLabels []string, cols []Column) (*Table, error) {
	if len(colLabels) != len(cols) {
		return nil, errors.NewShapeMismatch(
			fmt.Sprintf("%d column labels for %d columns", len(colLabels), len(cols)))
	}
	for i, c := range cols {
		if c.Len() != len(rowLabels) {
			return nil, errors.NewShapeMismatch(
				fmt.Sprintf("column %q has %d cells for %d rows", colLabels[i], c.Len(), len(rowLabels))).
				WithContext("column", colLabels[i])
		}
	}
	rowIndex, err := buildLabelIndex(RowAxis, rowLabels)
	if err != nil {
		return nil, err
	}
	colIndex, err := buildLabelIndex(ColumnAxis, colLabels)
	if err != nil {
		return nil, err
	}
	t := &Table{
		rowLabels: append([]string(nil), rowLabels...),
		colLabels: append([]string(nil), colLabels...),
		cols:      make([]Column, len(cols)),
		rowIndex:  rowIndex,
		colIndex:  colIndex,
	}
	for i, c := range cols {
		t.cols[i] = c.clone()
	}
	return t, nil
}

// buildLabelIndex builds the label-to-position map for one axis, rejecting
// duplicates.
func buildLabelIndex(axis string, labels []string) (map[string]int, error) {
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		if _, dup := index[label]; dup {
			return nil, errors.NewShapeMismatch(
				fmt.Sprintf("duplicate %s label %q", axis, label)).
				WithContext("axis", axis).
				WithContext("label", label)
		}
		index[label] = i
	}
	return index, nil
}

// RowCount returns the number of rows
func (t *Table) RowCount() int { return len(t.rowLabels) }

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int { return len(t.cols) }

// RowLabels returns a copy of the ordered row labels
func (t *Table) RowLabels() []string {
	return append([]string(nil), t.rowLabels...)
}

// ColumnLabels returns a copy of the ordered column labels
func (t *Table) ColumnLabels() []string {
	return append([]string(nil), t.colLabels...)
}

// RelabelRows replaces the row labels. The new labels must match the row
// count and be unique; the row label-to-position map is rebuilt.
func (t *Table) RelabelRows(newLabels []string) error {
	if len(newLabels) != len(t.rowLabels) {
		return errors.NewShapeMismatch(
			fmt.Sprintf("%d new row labels for %d rows", len(newLabels), len(t.rowLabels)))
	}
	index, err := buildLabelIndex(RowAxis, newLabels)
	if err != nil {
		return err
	}
	t.rowLabels = append([]string(nil), newLabels...)
	t.rowIndex = index
	return nil
}

// RelabelColumns replaces the column labels. The new labels must match the
// column count and be unique; the column label-to-position map is rebuilt.
func (t *Table) RelabelColumns(newLabels []string) error {
	if len(newLabels) != len(t.colLabels) {
		return errors.NewShapeMismatch(
			fmt.Sprintf("%d new column labels for %d columns", len(newLabels), len(t.cols)))
	}
	index, err := buildLabelIndex(ColumnAxis, newLabels)
	if err != nil {
		return err
	}
	t.colLabels = append([]string(nil), newLabels...)
	t.colIndex = index
	return nil
}

// Column returns the column stored under the given label.
func (t *Table) Column(label string) (Column, error) {
	pos, ok := t.colIndex[label]
	if !ok {
		return Column{}, errors.NewLookupError(ColumnAxis, label)
	}
	return t.cols[pos].clone(), nil
}

// ColumnValues returns a copy of one column's cells.
func (t *Table) ColumnValues(label string) ([]Scalar, error) {
	col, err := t.Column(label)
	if err != nil {
		return nil, err
	}
	return col.cells, nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out, err := New(t.rowLabels, t.colLabels, t.cols)
	if err != nil {
		// Invariants already hold on a constructed table.
		panic(err)
	}
	return out
}

// cellAt reads a cell by position. Bounds are the caller's responsibility.
func (t *Table) cellAt(r, c int) Scalar {
	return t.cols[c].cells[r]
}

// setCellAt writes a cell by position after the caller has validated type
// compatibility via Column.accepts.
func (t *Table) setCellAt(r, c int, v Scalar) {
	t.cols[c].cells[r] = v
}
