package frame

import (
	"fmt"

	"tabular/pkg/errors"
)

// Selector specifies which positions along one axis an operation addresses.
// The variants are a single position, a half-open position range, a
// position set, a single label, a label set, a boolean vector, and All.
// Resolving a selector yields the addressed positions; resolution fails
// with a LookupError if a label is absent or a position is out of bounds,
// never with silent truncation.
type Selector interface {
	// resolve returns the addressed positions and whether the selector
	// addresses a single position (which unboxes results to scalars or
	// vectors in Get).
	resolve(axis string, labels []string, index map[string]int) ([]int, bool, error)
}

// At addresses a single position.
type At int

// Span addresses the half-open positional range [Start, Stop).
type Span struct {
	Start, Stop int
}

// Positions addresses an explicit set of positions, in the given order.
// Duplicate positions are rejected with a ShapeMismatch error since the
// resulting table could not keep its labels unique.
type Positions []int

// Label addresses a single label.
type Label string

// Labels addresses a set of labels, in the given order. Duplicates are
// rejected like in Positions.
type Labels []string

// MaskVec addresses every position where the vector is true. Its length
// must equal the axis length.
type MaskVec []bool

// All addresses every position on the axis.
type All struct{}

func (s At) resolve(axis string, labels []string, _ map[string]int) ([]int, bool, error) {
	if int(s) < 0 || int(s) >= len(labels) {
		return nil, false, errors.NewLookupError(axis, int(s))
	}
	return []int{int(s)}, true, nil
}

func (s Span) resolve(axis string, labels []string, _ map[string]int) ([]int, bool, error) {
	if s.Start < 0 || s.Stop > len(labels) || s.Start > s.Stop {
		return nil, false, errors.NewLookupError(axis, fmt.Sprintf("[%d:%d)", s.Start, s.Stop))
	}
	out := make([]int, 0, s.Stop-s.Start)
	for i := s.Start; i < s.Stop; i++ {
		out = append(out, i)
	}
	return out, false, nil
}

func (s Positions) resolve(axis string, labels []string, _ map[string]int) ([]int, bool, error) {
	seen := make(map[int]bool, len(s))
	out := make([]int, 0, len(s))
	for _, p := range s {
		if p < 0 || p >= len(labels) {
			return nil, false, errors.NewLookupError(axis, p)
		}
		if seen[p] {
			return nil, false, errors.NewShapeMismatch(
				fmt.Sprintf("duplicate position %d in %s selector", p, axis))
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, false, nil
}

func (s Label) resolve(axis string, _ []string, index map[string]int) ([]int, bool, error) {
	pos, ok := index[string(s)]
	if !ok {
		return nil, false, errors.NewLookupError(axis, string(s))
	}
	return []int{pos}, true, nil
}

func (s Labels) resolve(axis string, _ []string, index map[string]int) ([]int, bool, error) {
	seen := make(map[int]bool, len(s))
	out := make([]int, 0, len(s))
	for _, label := range s {
		pos, ok := index[label]
		if !ok {
			return nil, false, errors.NewLookupError(axis, label)
		}
		if seen[pos] {
			return nil, false, errors.NewShapeMismatch(
				fmt.Sprintf("duplicate label %q in %s selector", label, axis))
		}
		seen[pos] = true
		out = append(out, pos)
	}
	return out, false, nil
}

func (s MaskVec) resolve(axis string, labels []string, _ map[string]int) ([]int, bool, error) {
	if len(s) != len(labels) {
		return nil, false, errors.NewShapeMismatch(
			fmt.Sprintf("boolean selector of length %d for %s axis of length %d", len(s), axis, len(labels)))
	}
	var out []int
	for i, keep := range s {
		if keep {
			out = append(out, i)
		}
	}
	return out, false, nil
}

func (s All) resolve(_ string, labels []string, _ map[string]int) ([]int, bool, error) {
	out := make([]int, len(labels))
	for i := range out {
		out[i] = i
	}
	return out, false, nil
}

// resolveRow and resolveColumn bind selectors to the table's axes.
func (t *Table) resolveRow(sel Selector) ([]int, bool, error) {
	return sel.resolve(RowAxis, t.rowLabels, t.rowIndex)
}

func (t *Table) resolveColumn(sel Selector) ([]int, bool, error) {
	return sel.resolve(ColumnAxis, t.colLabels, t.colIndex)
}
