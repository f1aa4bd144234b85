package agg

import (
	"fmt"
	"strings"

	"tabular/pkg/errors"
	"tabular/pkg/frame"
)

// MissingPolicy selects how reducers treat Missing cells within a
// partition.
type MissingPolicy int

const (
	// IgnoreMissing reduces over the non-missing values only.
	IgnoreMissing MissingPolicy = iota
	// PropagateMissing makes any Missing cell in the partition yield a
	// Missing result for that column.
	PropagateMissing
)

// Reducer collapses the values of one column within one partition into a
// single value. Fn receives the values admitted by the missing policy.
type Reducer struct {
	Name string
	Fn   func(values []float64) float64
	// ZeroIdentity marks reducers with a defined result for an empty
	// input (Count is 0 over no values). Without it an all-Missing
	// partition column yields Missing rather than a reducer default.
	ZeroIdentity bool
}

// Built-in reducers.
var (
	Sum = Reducer{Name: "sum", Fn: func(v []float64) float64 {
		var s float64
		for _, x := range v {
			s += x
		}
		return s
	}}
	Mean = Reducer{Name: "mean", Fn: func(v []float64) float64 {
		var s float64
		for _, x := range v {
			s += x
		}
		return s / float64(len(v))
	}}
	Count = Reducer{Name: "count", ZeroIdentity: true, Fn: func(v []float64) float64 {
		return float64(len(v))
	}}
	Min = Reducer{Name: "min", Fn: func(v []float64) float64 {
		m := v[0]
		for _, x := range v[1:] {
			if x < m {
				m = x
			}
		}
		return m
	}}
	Max = Reducer{Name: "max", Fn: func(v []float64) float64 {
		m := v[0]
		for _, x := range v[1:] {
			if x > m {
				m = x
			}
		}
		return m
	}}
)

// Options configures an aggregation.
type Options struct {
	Policy MissingPolicy
}

// Aggregate partitions the table's rows by the externally supplied group
// keys (one per row) and reduces each partition per column. The result has
// one row per distinct key, in order of first appearance rather than
// lexical order, and the same column labels as the input. Text columns cannot be
// reduced numerically and produce a DomainError; project the numeric
// columns first via Get.
func Aggregate(t *frame.Table, keys []string, red Reducer, opts Options) (*frame.Table, error) {
	if len(keys) != t.RowCount() {
		return nil, errors.NewShapeMismatch(
			fmt.Sprintf("%d group keys for %d rows", len(keys), t.RowCount()))
	}
	colLabels := t.ColumnLabels()
	for _, label := range colLabels {
		col, err := t.Column(label)
		if err != nil {
			return nil, err
		}
		if col.Kind() != frame.ColNumeric {
			return nil, errors.NewDomainError(
				fmt.Sprintf("cannot aggregate text column %q", label)).
				WithContext("column", label)
		}
	}

	// Partition rows, keeping first-appearance order of keys.
	var order []string
	groups := make(map[string][]int, len(keys))
	for row, key := range keys {
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], row)
	}

	cols := make([]frame.Column, len(colLabels))
	for j, label := range colLabels {
		values, err := t.ColumnValues(label)
		if err != nil {
			return nil, err
		}
		cells := make([]frame.Scalar, len(order))
		for i, key := range order {
			cells[i] = reducePartition(values, groups[key], red, opts.Policy)
		}
		col, err := frame.NumericColumn(cells)
		if err != nil {
			return nil, err
		}
		cols[j] = col
	}

	return frame.New(order, colLabels, cols)
}

// reducePartition reduces one column over one partition's rows.
func reducePartition(values []frame.Scalar, rows []int, red Reducer, policy MissingPolicy) frame.Scalar {
	admitted := make([]float64, 0, len(rows))
	for _, r := range rows {
		v, ok := values[r].Float()
		if !ok {
			if policy == PropagateMissing {
				return frame.Missing()
			}
			continue
		}
		admitted = append(admitted, v)
	}
	if len(admitted) == 0 && !red.ZeroIdentity {
		return frame.Missing()
	}
	return frame.Number(red.Fn(admitted))
}

// compositeSep separates tuple parts inside a composite group label. The
// unit separator cannot appear in ordinary label text.
const compositeSep = "\x1f"

// CompositeKeys merges several per-row key sequences into one sequence of
// composite labels, so multiple simultaneous grouping keys behave as a
// single key. All sequences must have the same length.
func CompositeKeys(parts ...[]string) ([]string, error) {
	if len(parts) == 0 {
		return nil, errors.NewShapeMismatch("composite key needs at least one sequence")
	}
	n := len(parts[0])
	for i, p := range parts[1:] {
		if len(p) != n {
			return nil, errors.NewShapeMismatch(
				fmt.Sprintf("key sequence %d has length %d, expected %d", i+1, len(p), n))
		}
	}
	out := make([]string, n)
	tuple := make([]string, len(parts))
	for row := 0; row < n; row++ {
		for i, p := range parts {
			tuple[i] = p[row]
		}
		out[row] = strings.Join(tuple, compositeSep)
	}
	return out, nil
}

// SplitCompositeKey recovers the tuple parts of a composite group label.
func SplitCompositeKey(key string) []string {
	return strings.Split(key, compositeSep)
}
