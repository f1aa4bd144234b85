package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"tabular/pkg/errors"
	"tabular/pkg/frame"
)

// Reader turns delimited text and workbook sheets into labeled tables. The
// header row supplies the column labels and the first column supplies the
// row labels.
type Reader struct {
	logger *slog.Logger
	opts   Options
}

// NewReader creates a reader with the given options. A nil logger falls
// back to slog.Default.
func NewReader(logger *slog.Logger, opts Options) (*Reader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Reader{logger: logger, opts: opts}, nil
}

// ReadCSV parses delimited text into a table.
func (r *Reader) ReadCSV(ctx context.Context, src io.Reader) (*frame.Table, error) {
	cr := csv.NewReader(src)
	cr.Comma = r.opts.Comma
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.NewParseError("malformed delimited input", err)
	}
	return r.fromRows(ctx, rows)
}

// ReadFile opens a file and parses it as delimited text.
func (r *Reader) ReadFile(ctx context.Context, path string) (*frame.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewParseError(fmt.Sprintf("open %s", path), err)
	}
	defer f.Close()

	t, err := r.ReadCSV(ctx, f)
	if err != nil {
		return nil, err
	}
	r.logger.InfoContext(ctx, "ingested delimited file",
		slog.String("path", path),
		slog.Int("rows", t.RowCount()),
		slog.Int("columns", t.ColumnCount()))
	return t, nil
}

// fromRows builds a table from raw string rows: header first, one label
// plus data cells per remaining row. Each column is coerced to numeric
// where its tokens allow it; a column whose every non-empty token fails
// numeric parsing is kept as text in lenient mode.
func (r *Reader) fromRows(ctx context.Context, rows [][]string) (*frame.Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.NewParseError("input has no header row", nil)
	}
	header := rows[0]
	colLabels := header[1:]
	data := rows[1:]

	rowLabels := make([]string, len(data))
	tokens := make([][]string, len(colLabels))
	for j := range tokens {
		tokens[j] = make([]string, len(data))
	}
	for i, row := range data {
		if len(row) > len(header) {
			return nil, errors.NewParseError(
				fmt.Sprintf("row %d has %d fields, header has %d", i+1, len(row), len(header)), nil).
				WithContext("row", i + 1)
		}
		if len(row) == 0 || row[0] == "" {
			return nil, errors.NewParseError(
				fmt.Sprintf("row %d has no row label", i+1), nil).
				WithContext("row", i + 1)
		}
		rowLabels[i] = row[0]
		for j := range colLabels {
			// Workbook rows may be ragged; short rows read as empty cells.
			if j+1 < len(row) {
				tokens[j][i] = row[j+1]
			}
		}
	}

	cols := make([]frame.Column, len(colLabels))
	for j, label := range colLabels {
		col, err := r.coerceColumn(label, tokens[j])
		if err != nil {
			return nil, err
		}
		cols[j] = col
	}

	t, err := frame.New(rowLabels, colLabels, cols)
	if err != nil {
		return nil, err
	}
	r.logger.DebugContext(ctx, "built table from rows",
		slog.Int("rows", t.RowCount()),
		slog.Int("columns", t.ColumnCount()))
	return t, nil
}

// coerceColumn decides a column's type from its tokens and coerces it.
func (r *Reader) coerceColumn(label string, tokens []string) (frame.Column, error) {
	cells := make([]frame.Scalar, len(tokens))
	parsed, failed := 0, -1
	for i, tok := range tokens {
		s, ok := coerceToken(tok, r.opts)
		if !ok && failed == -1 {
			failed = i
		}
		if s.IsNumber() {
			parsed++
		}
		cells[i] = s
	}

	if failed >= 0 && parsed == 0 {
		// Nothing in the column is numeric; keep it as text.
		raw := make([]string, len(tokens))
		for i, tok := range tokens {
			if r.opts.TrimSpace {
				tok = strings.TrimSpace(tok)
			}
			raw[i] = tok
		}
		return frame.TextColumn(raw), nil
	}
	if failed >= 0 && r.opts.Strict {
		return frame.Column{}, errors.NewParseError(
			fmt.Sprintf("cannot parse %q as a number", tokens[failed]), nil).
			WithContext("row", failed + 1).
			WithContext("column", label)
	}
	col, err := frame.NumericColumn(cells)
	if err != nil {
		return frame.Column{}, err
	}
	return col, nil
}
