package frame

import (
	"fmt"

	"tabular/pkg/errors"
)

// ResultKind identifies what a Get call produced.
type ResultKind int

const (
	ResultScalar ResultKind = iota
	ResultVector
	ResultTable
)

// Result is the value returned by Get: a bare Scalar when both axes resolve
// to a single position, a Vector when exactly one axis does, and a Table
// otherwise. A 1x1 selection never comes back as a table.
type Result struct {
	kind   ResultKind
	scalar Scalar
	vector []Scalar
	labels []string
	table  *Table
}

// Kind returns what the result holds
func (r Result) Kind() ResultKind { return r.kind }

// Scalar returns the scalar value when both axes resolved to one position.
func (r Result) Scalar() (Scalar, bool) {
	return r.scalar, r.kind == ResultScalar
}

// Vector returns the value vector and the labels along its varying axis
// when exactly one axis resolved to a single position.
func (r Result) Vector() ([]Scalar, []string, bool) {
	return r.vector, r.labels, r.kind == ResultVector
}

// Table returns the sub-table when both axes resolved to multiple positions.
func (r Result) Table() (*Table, bool) {
	return r.table, r.kind == ResultTable
}

// Get reads the cells addressed by the two selectors. Label selectors
// resolve through the axis label-to-position maps, positional selectors by
// bounds check, boolean selectors by scanning for true positions.
func (t *Table) Get(rowSel, colSel Selector) (Result, error) {
	rows, rowSingle, err := t.resolveRow(rowSel)
	if err != nil {
		return Result{}, err
	}
	cols, colSingle, err := t.resolveColumn(colSel)
	if err != nil {
		return Result{}, err
	}

	switch {
	case rowSingle && colSingle:
		return Result{kind: ResultScalar, scalar: t.cellAt(rows[0], cols[0])}, nil

	case rowSingle:
		// One row across many columns.
		vec := make([]Scalar, len(cols))
		labels := make([]string, len(cols))
		for i, c := range cols {
			vec[i] = t.cellAt(rows[0], c)
			labels[i] = t.colLabels[c]
		}
		return Result{kind: ResultVector, vector: vec, labels: labels}, nil

	case colSingle:
		// One column across many rows.
		vec := make([]Scalar, len(rows))
		labels := make([]string, len(rows))
		for i, r := range rows {
			vec[i] = t.cellAt(r, cols[0])
			labels[i] = t.rowLabels[r]
		}
		return Result{kind: ResultVector, vector: vec, labels: labels}, nil

	default:
		sub, err := t.subTable(rows, cols)
		if err != nil {
			return Result{}, err
		}
		return Result{kind: ResultTable, table: sub}, nil
	}
}

// subTable builds a new table from resolved positions.
func (t *Table) subTable(rows, cols []int) (*Table, error) {
	rowLabels := make([]string, len(rows))
	for i, r := range rows {
		rowLabels[i] = t.rowLabels[r]
	}
	colLabels := make([]string, len(cols))
	outCols := make([]Column, len(cols))
	for i, c := range cols {
		colLabels[i] = t.colLabels[c]
		cells := make([]Scalar, len(rows))
		for j, r := range rows {
			cells[j] = t.cols[c].cells[r]
		}
		outCols[i] = Column{kind: t.cols[c].kind, cells: cells}
	}
	return New(rowLabels, colLabels, outCols)
}

// Set writes the cells addressed by the two selectors. A single value
// broadcasts to every resolved cell; n values require exactly one varying
// axis with n resolved positions. The assignment is validated completely
// before any cell is written, so a failed Set leaves the table untouched.
func (t *Table) Set(rowSel, colSel Selector, values ...Scalar) error {
	rows, _, err := t.resolveRow(rowSel)
	if err != nil {
		return err
	}
	cols, _, err := t.resolveColumn(colSel)
	if err != nil {
		return err
	}

	pick, err := t.assignPlan(rows, cols, values)
	if err != nil {
		return err
	}

	// Validate every write before applying any.
	for i := range rows {
		for j, c := range cols {
			v := pick(i, j)
			if !t.cols[c].accepts(v) {
				return errors.NewShapeMismatch(
					fmt.Sprintf("cannot assign %s value to %s column %q",
						scalarKindName(v), t.cols[c].kind, t.colLabels[c])).
					WithContext("column", t.colLabels[c])
			}
		}
	}
	for i, r := range rows {
		for j, c := range cols {
			t.setCellAt(r, c, pick(i, j))
		}
	}
	return nil
}

// assignPlan maps (row index, column index) within the resolved region to
// the value assigned there, enforcing the broadcast and vector rules.
func (t *Table) assignPlan(rows, cols []int, values []Scalar) (func(i, j int) Scalar, error) {
	switch {
	case len(values) == 0:
		return nil, errors.NewShapeMismatch("assignment requires at least one value")
	case len(values) == 1:
		return func(int, int) Scalar { return values[0] }, nil
	case len(rows) == len(values) && len(cols) == 1:
		return func(i, _ int) Scalar { return values[i] }, nil
	case len(cols) == len(values) && len(rows) == 1:
		return func(_, j int) Scalar { return values[j] }, nil
	default:
		return nil, errors.NewShapeMismatch(
			fmt.Sprintf("%d values for %dx%d resolved cells; vector assignment requires one varying axis",
				len(values), len(rows), len(cols)))
	}
}

func scalarKindName(v Scalar) string {
	switch v.Kind() {
	case ScalarNumber:
		return "numeric"
	case ScalarText:
		return "text"
	default:
		return "missing"
	}
}
