// Package agg reduces labeled tables by group: rows are partitioned by an
// externally supplied key sequence and each partition is collapsed per
// column with a reducer (sum, mean, count, min, max, or caller-supplied).
// Output rows follow the keys' order of first appearance. Missing handling
// is chosen per call: ignore Missing cells, or let any Missing cell
// propagate into a Missing result.
package agg
