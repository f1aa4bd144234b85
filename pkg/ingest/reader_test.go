package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabular/internal/shared/testutil"
	"tabular/pkg/errors"
	"tabular/pkg/frame"
)

const incidenceCSV = `year,Colombia,Paraguay
1990,"25,804",5
1991,"17,280",15
1992,"61,368",25
`

func TestReader_ReadCSV(t *testing.T) {
	r, err := NewReader(nil, DefaultOptions())
	require.NoError(t, err)

	table, err := r.ReadCSV(context.Background(), strings.NewReader(incidenceCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"1990", "1991", "1992"}, table.RowLabels())
	assert.Equal(t, []string{"Colombia", "Paraguay"}, table.ColumnLabels())

	values, err := table.ColumnValues("Colombia")
	require.NoError(t, err)
	assert.Equal(t, []frame.Scalar{
		frame.Number(25804),
		frame.Number(17280),
		frame.Number(61368),
	}, values, "thousands separators inside quoted fields are stripped")
}

func TestReader_ReadCSV_TextColumn(t *testing.T) {
	src := `code,name,cases
CO,Colombia,10
PY,Paraguay,20
`
	r, err := NewReader(nil, DefaultOptions())
	require.NoError(t, err)

	table, err := r.ReadCSV(context.Background(), strings.NewReader(src))
	require.NoError(t, err)

	name, err := table.Column("name")
	require.NoError(t, err)
	assert.Equal(t, frame.ColText, name.Kind(), "a column with no numeric token stays text")

	cases, err := table.Column("cases")
	require.NoError(t, err)
	assert.Equal(t, frame.ColNumeric, cases.Kind())
}

func TestReader_ReadCSV_LenientMixedColumn(t *testing.T) {
	src := `year,cases
1990,10
1991,n/a
1992,30
`
	r, err := NewReader(nil, DefaultOptions())
	require.NoError(t, err)

	table, err := r.ReadCSV(context.Background(), strings.NewReader(src))
	require.NoError(t, err)

	values, err := table.ColumnValues("cases")
	require.NoError(t, err)
	assert.Equal(t, []frame.Scalar{
		frame.Number(10),
		frame.Missing(),
		frame.Number(30),
	}, values, "lenient mode absorbs the bad token as Missing")
}

func TestReader_ReadCSV_StrictNamesOffendingCell(t *testing.T) {
	src := `year,cases
1990,10
1991,n/a
`
	opts := DefaultOptions()
	opts.Strict = true
	r, err := NewReader(nil, opts)
	require.NoError(t, err)

	_, err = r.ReadCSV(context.Background(), strings.NewReader(src))
	require.Error(t, err)
	assert.True(t, errors.IsParse(err))

	var te *errors.TableError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 2, te.Context["row"])
	assert.Equal(t, "cases", te.Context["column"])
}

func TestReader_ReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "empty input", src: ""},
		{name: "ragged row", src: "a,b\nr1,1,2\n"},
		{name: "missing row label", src: "a,b\n,1\n"},
		{name: "duplicate row labels", src: "a,b\nr1,1\nr1,2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(nil, DefaultOptions())
			require.NoError(t, err)

			_, err = r.ReadCSV(context.Background(), strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestReader_ReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "incidence.csv")
	require.NoError(t, os.WriteFile(path, []byte(incidenceCSV), 0o644))

	logger, handler := testutil.NewTestLogger(t)
	r, err := NewReader(logger, DefaultOptions())
	require.NoError(t, err)

	table, err := r.ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, table.RowCount())

	assert.True(t, handler.ContainsMessage("ingested delimited file"))
	assert.True(t, handler.ContainsAttr("rows", int64(3)))
}

func TestReader_ReadFile_NotFound(t *testing.T) {
	r, err := NewReader(nil, DefaultOptions())
	require.NoError(t, err)

	_, err = r.ReadFile(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.True(t, errors.IsParse(err))
}

func TestNewReader_InvalidOptions(t *testing.T) {
	_, err := NewReader(nil, Options{})
	require.Error(t, err)
	assert.True(t, errors.IsConfig(err))
}
