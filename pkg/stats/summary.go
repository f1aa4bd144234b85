package stats

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"tabular/pkg/errors"
	"tabular/pkg/frame"
)

// Summary holds the descriptive statistics of one numeric column. Missing
// values are excluded from every statistic and do not count toward Count.
// Std is the sample standard deviation (n-1 denominator; 0 for a single
// value); the quartiles use the linear interpolation rule documented on
// Quantile.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Summarizer computes per-column summaries. Columns are independent, so
// they are summarized concurrently up to maxConcurrency; each result lands
// in its own pre-sized slot, so the output is identical to a sequential
// pass.
type Summarizer struct {
	logger         *slog.Logger
	maxConcurrency int
}

// NewSummarizer creates a summarizer. A nil logger falls back to
// slog.Default; a non-positive concurrency limit falls back to 4.
func NewSummarizer(logger *slog.Logger, maxConcurrency int) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 4
	}
	return &Summarizer{logger: logger, maxConcurrency: maxConcurrency}
}

// Summarize computes a Summary for every column of the table. Text columns
// and all-Missing columns produce a DomainError naming the column; project
// the numeric columns first via Get when the table mixes types.
func (s *Summarizer) Summarize(ctx context.Context, t *frame.Table) (map[string]Summary, error) {
	labels := t.ColumnLabels()
	s.logger.DebugContext(ctx, "summarizing table",
		slog.Int("columns", len(labels)),
		slog.Int("rows", t.RowCount()))

	results := make([]Summary, len(labels))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for i, label := range labels {
		g.Go(func() error {
			values, err := t.ColumnValues(label)
			if err != nil {
				return err
			}
			sum, err := summarizeColumn(label, values)
			if err != nil {
				return err
			}
			results[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]Summary, len(labels))
	for i, label := range labels {
		out[label] = results[i]
	}
	return out, nil
}

// Summarize is the package-level convenience using a default summarizer.
func Summarize(ctx context.Context, t *frame.Table) (map[string]Summary, error) {
	return NewSummarizer(nil, 0).Summarize(ctx, t)
}

func summarizeColumn(label string, values []frame.Scalar) (Summary, error) {
	sorted, err := sortedNumbers(values)
	if err != nil {
		return Summary{}, err
	}
	if len(sorted) == 0 {
		return Summary{}, errors.NewDomainError(
			fmt.Sprintf("statistics requested on all-missing column %q", label)).
			WithContext("column", label)
	}

	n := len(sorted)
	var total float64
	for _, v := range sorted {
		total += v
	}
	mean := total / float64(n)

	std := 0.0
	if n > 1 {
		var ss float64
		for _, v := range sorted {
			d := v - mean
			ss += d * d
		}
		std = math.Sqrt(ss / float64(n-1))
	}

	return Summary{
		Count:  n,
		Mean:   mean,
		Std:    std,
		Min:    sorted[0],
		Q1:     quantileSorted(sorted, 0.25),
		Median: quantileSorted(sorted, 0.5),
		Q3:     quantileSorted(sorted, 0.75),
		Max:    sorted[n-1],
	}, nil
}
