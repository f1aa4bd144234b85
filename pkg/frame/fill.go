package frame

import (
	"fmt"

	"tabular/pkg/errors"
)

// ForwardFill replaces Missing cells with the last non-missing value above
// them, per column, in place. Leading Missing cells have no prior value and
// stay Missing. With no arguments every numeric column is filled; named
// columns must exist (LookupError) and be numeric (DomainError). The
// operation is idempotent.
func (t *Table) ForwardFill(columns ...string) error {
	var positions []int
	if len(columns) == 0 {
		for c := range t.cols {
			if t.cols[c].kind == ColNumeric {
				positions = append(positions, c)
			}
		}
	} else {
		for _, label := range columns {
			pos, ok := t.colIndex[label]
			if !ok {
				return errors.NewLookupError(ColumnAxis, label)
			}
			if t.cols[pos].kind != ColNumeric {
				return errors.NewDomainError(
					fmt.Sprintf("cannot forward-fill text column %q", label)).
					WithContext("column", label)
			}
			positions = append(positions, pos)
		}
	}

	for _, c := range positions {
		last := Missing()
		for r := 0; r < t.RowCount(); r++ {
			v := t.cellAt(r, c)
			if v.IsMissing() {
				if !last.IsMissing() {
					t.setCellAt(r, c, last)
				}
				continue
			}
			last = v
		}
	}
	return nil
}
