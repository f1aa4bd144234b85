// Package stats computes descriptive statistics over labeled tables and
// column vectors: per-column summaries (count, mean, sample standard
// deviation, min, quartiles, max), interpolated quantiles, and a
// quantile-based outlier classifier.
//
// Missing values are excluded from every statistic. Quantiles interpolate
// linearly between order statistics at rank p*(n-1); standard deviation is
// the sample convention (n-1 denominator).
package stats
