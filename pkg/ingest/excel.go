package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"tabular/pkg/errors"
	"tabular/pkg/frame"
)

// ReadWorkbook reads one sheet of an Excel workbook into a table, feeding
// the sheet's rows through the same header/label/coercion pipeline as
// delimited text. An empty sheet name selects the workbook's first sheet.
func (r *Reader) ReadWorkbook(ctx context.Context, path, sheet string) (*frame.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewParseError(fmt.Sprintf("open workbook %s", path), err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.NewParseError(fmt.Sprintf("workbook %s has no sheets", path), nil)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewLookupError("sheet", sheet).WithContext("path", path)
	}

	r.logger.InfoContext(ctx, "ingesting workbook sheet",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("raw_rows", len(rows)))

	return r.fromRows(ctx, rows)
}
