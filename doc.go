// Package tabular is an in-process labeled tabular engine for comparing
// time series across categories: CSV and workbook ingestion with numeric
// coercion, dual positional/label indexing, transpose, boolean-mask
// selection and assignment, group-by aggregation, descriptive statistics,
// and quantile-based outlier classification.
//
// The engine is a library-level abstraction with no serving surface: raw
// text goes in, labeled tables come out, and rendering or retrieval are
// left to the caller.
//
//   - tabular/pkg/frame: the labeled table, selectors, transpose, masks
//   - tabular/pkg/ingest: coercion plus CSV and Excel readers
//   - tabular/pkg/agg: group-by aggregation
//   - tabular/pkg/stats: summaries, quantiles, outliers
//   - tabular/pkg/config: environment/YAML configuration and loggers
//   - tabular/pkg/errors: the typed error kinds shared by all of the above
package tabular
