package stats

import (
	"fmt"

	"tabular/pkg/errors"
	"tabular/pkg/frame"
)

// ClassifyOutliers flags every value strictly greater than the median of
// the non-missing values multiplied by medianMultiplier. The returned
// vector is aligned to the input; Missing values are never flagged. A
// DomainError is returned when no non-missing value exists to take a
// median of.
func ClassifyOutliers(values []frame.Scalar, medianMultiplier float64) ([]bool, error) {
	median, err := Quantile(values, 0.5)
	if err != nil {
		return nil, err
	}
	m, _ := median.Float()
	threshold := m * medianMultiplier

	out := make([]bool, len(values))
	for i, s := range values {
		v, ok := s.Float()
		out[i] = ok && v > threshold
	}
	return out, nil
}

// OutlierProportion returns the fraction of flagged entries over an
// explicit denominator. The caller supplies the denominator rather than the
// function assuming the mask's own length, because after filtering the
// relevant population size and the mask length legitimately differ and the
// engine must not guess between them.
func OutlierProportion(mask []bool, denominator int) (float64, error) {
	if denominator < 1 {
		return 0, errors.NewDomainError(
			fmt.Sprintf("outlier proportion denominator %d below 1", denominator))
	}
	flagged := 0
	for _, b := range mask {
		if b {
			flagged++
		}
	}
	if flagged > denominator {
		return 0, errors.NewDomainError(
			fmt.Sprintf("%d flagged entries exceed denominator %d", flagged, denominator))
	}
	return float64(flagged) / float64(denominator), nil
}
