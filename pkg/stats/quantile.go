package stats

import (
	"fmt"
	"sort"

	"tabular/pkg/errors"
	"tabular/pkg/frame"
)

// Quantile returns the interpolated order statistic for probability p in
// [0,1] over the non-missing values, interpolating linearly between
// adjacent order statistics at rank p*(n-1). Text values, a p outside
// [0,1], and an input with no non-missing values all produce a
// DomainError.
func Quantile(values []frame.Scalar, p float64) (frame.Scalar, error) {
	if p < 0 || p > 1 {
		return frame.Scalar{}, errors.NewDomainError(
			fmt.Sprintf("quantile probability %g outside [0,1]", p))
	}
	sorted, err := sortedNumbers(values)
	if err != nil {
		return frame.Scalar{}, err
	}
	if len(sorted) == 0 {
		return frame.Scalar{}, errors.NewDomainError("quantile of no non-missing values")
	}
	return frame.Number(quantileSorted(sorted, p)), nil
}

// sortedNumbers extracts the non-missing values in ascending order,
// rejecting text cells.
func sortedNumbers(values []frame.Scalar) ([]float64, error) {
	out := make([]float64, 0, len(values))
	for i, s := range values {
		if s.IsText() {
			return nil, errors.NewDomainError(
				fmt.Sprintf("statistics over text value at position %d", i))
		}
		if v, ok := s.Float(); ok {
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out, nil
}

// quantileSorted interpolates over an already sorted, non-empty slice.
func quantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := p * float64(n-1)
	lo := int(rank)
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
