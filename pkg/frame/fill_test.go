package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabular/pkg/errors"
)

func gappyTable(t *testing.T) *Table {
	t.Helper()
	table, err := New(
		[]string{"d1", "d2", "d3", "d4"},
		[]string{"cases", "rate"},
		[]Column{
			mustNumericColumn(t, Missing(), Number(10), Missing(), Number(40)),
			mustNumericColumn(t, Number(1), Missing(), Missing(), Number(4)),
		},
	)
	require.NoError(t, err)
	return table
}

func TestTable_ForwardFill(t *testing.T) {
	table := gappyTable(t)

	require.NoError(t, table.ForwardFill())

	values, err := table.ColumnValues("cases")
	require.NoError(t, err)
	assert.Equal(t, []Scalar{Missing(), Number(10), Number(10), Number(40)}, values,
		"leading gap stays Missing, interior gap takes the last value above")

	values, err = table.ColumnValues("rate")
	require.NoError(t, err)
	assert.Equal(t, []Scalar{Number(1), Number(1), Number(1), Number(4)}, values)
}

func TestTable_ForwardFill_NamedColumn(t *testing.T) {
	table := gappyTable(t)

	require.NoError(t, table.ForwardFill("cases"))

	values, err := table.ColumnValues("rate")
	require.NoError(t, err)
	assert.Equal(t, []Scalar{Number(1), Missing(), Missing(), Number(4)}, values,
		"unnamed columns keep their gaps")
}

func TestTable_ForwardFill_Idempotent(t *testing.T) {
	once := gappyTable(t)
	require.NoError(t, once.ForwardFill())

	twice := gappyTable(t)
	require.NoError(t, twice.ForwardFill())
	require.NoError(t, twice.ForwardFill())

	assert.Equal(t, once, twice)
}

func TestTable_ForwardFill_Errors(t *testing.T) {
	table, err := New(
		[]string{"r1"},
		[]string{"name"},
		[]Column{TextColumn([]string{"x"})},
	)
	require.NoError(t, err)

	err = table.ForwardFill("name")
	require.Error(t, err)
	assert.True(t, errors.IsDomain(err))

	err = table.ForwardFill("nope")
	require.Error(t, err)
	assert.True(t, errors.IsLookup(err))

	// With no arguments text columns are simply skipped.
	require.NoError(t, table.ForwardFill())
}
