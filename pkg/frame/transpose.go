package frame

// Transpose returns a new table with rows and columns swapped: the value at
// (r, c) in the receiver is at (c, r) in the result, and the label
// sequences trade places.
//
// Column typing is recomputed. When every source column is numeric the
// result's columns are numeric too, and Transpose(Transpose(t)) reproduces
// t exactly. When source columns mix numeric and text, a result column
// would have to hold cells from both, so every result column widens to
// text: numbers are formatted with strconv 'g' and Missing becomes the
// empty string.
func (t *Table) Transpose() (*Table, error) {
	allNumeric := true
	for _, c := range t.cols {
		if c.kind != ColNumeric {
			allNumeric = false
			break
		}
	}

	outCols := make([]Column, len(t.rowLabels))
	for r := range t.rowLabels {
		cells := make([]Scalar, len(t.cols))
		for c := range t.cols {
			v := t.cellAt(r, c)
			if allNumeric {
				cells[c] = v
			} else {
				cells[c] = Text(v.String())
			}
		}
		kind := ColNumeric
		if !allNumeric {
			kind = ColText
		}
		outCols[r] = Column{kind: kind, cells: cells}
	}

	return New(t.colLabels, t.rowLabels, outCols)
}
