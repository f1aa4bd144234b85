package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabular/pkg/errors"
)

func TestTable_Mask_GreaterThanScenario(t *testing.T) {
	table := incidenceTable(t)

	grid := table.Mask(Gt(10))

	want := [][]bool{
		{false, false},
		{true, false},
		{true, false},
	}
	for r, row := range want {
		assert.Equal(t, row, grid.Row(r), "row %d", r)
	}
	assert.Equal(t, 2, grid.CountTrue())
}

func TestPredicates_MissingIsAlwaysFalse(t *testing.T) {
	tests := []struct {
		name string
		pred Predicate
	}{
		{name: "gt", pred: Gt(0)},
		{name: "ge", pred: Ge(0)},
		{name: "lt", pred: Lt(0)},
		{name: "le", pred: Le(0)},
		{name: "eq number", pred: Eq(Number(0))},
		{name: "eq missing", pred: Eq(Missing())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.pred(Missing()), "comparison against Missing must be false, not a third state")
		})
	}
}

func TestPredicates_TextVsNumber(t *testing.T) {
	assert.False(t, Gt(0)(Text("5")))
	assert.False(t, Eq(Number(5))(Text("5")))
	assert.True(t, Eq(Text("5"))(Text("5")))
}

func TestTable_MaskColumn(t *testing.T) {
	table := incidenceTable(t)

	vec, err := table.MaskColumn("A", Gt(10))
	require.NoError(t, err)
	assert.Equal(t, MaskVec{false, true, true}, vec)

	_, err = table.MaskColumn("Z", Gt(10))
	require.Error(t, err)
	assert.True(t, errors.IsLookup(err))
}

func TestTable_FilterRows(t *testing.T) {
	table := incidenceTable(t)

	t.Run("all columns", func(t *testing.T) {
		got, err := table.FilterRows("A", Gt(10))
		require.NoError(t, err)
		assert.Equal(t, []string{"1991", "1992"}, got.RowLabels(), "row order preserved")
		assert.Equal(t, []string{"A", "B"}, got.ColumnLabels())
	})

	t.Run("projected columns", func(t *testing.T) {
		got, err := table.FilterRows("A", Gt(10), "B")
		require.NoError(t, err)
		assert.Equal(t, []string{"B"}, got.ColumnLabels())

		values, err := got.ColumnValues("B")
		require.NoError(t, err)
		assert.Equal(t, []Scalar{Number(2), Number(3)}, values)
	})

	t.Run("no matching rows", func(t *testing.T) {
		got, err := table.FilterRows("A", Gt(1000))
		require.NoError(t, err)
		assert.Equal(t, 0, got.RowCount())
		assert.Equal(t, 2, got.ColumnCount())
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := table.FilterRows("Z", Gt(0))
		require.Error(t, err)
		assert.True(t, errors.IsLookup(err))
	})

	t.Run("missing never matches", func(t *testing.T) {
		withGap := incidenceTable(t)
		require.NoError(t, withGap.Set(Label("1991"), Label("A"), Missing()))

		got, err := withGap.FilterRows("A", Gt(10))
		require.NoError(t, err)
		assert.Equal(t, []string{"1992"}, got.RowLabels())
	})
}

func TestTable_ApplyMask(t *testing.T) {
	table := incidenceTable(t)
	grid := table.Mask(Gt(10))

	require.NoError(t, table.ApplyMask(grid, Missing()))

	values, err := table.ColumnValues("A")
	require.NoError(t, err)
	assert.Equal(t, []Scalar{Number(5), Missing(), Missing()}, values)

	values, err = table.ColumnValues("B")
	require.NoError(t, err)
	assert.Equal(t, []Scalar{Number(1), Number(2), Number(3)}, values, "unmasked cells untouched")
}

func TestTable_ApplyMask_Idempotent(t *testing.T) {
	once := incidenceTable(t)
	grid := once.Mask(Gt(10))
	require.NoError(t, once.ApplyMask(grid, Number(0)))

	twice := incidenceTable(t)
	require.NoError(t, twice.ApplyMask(grid, Number(0)))
	require.NoError(t, twice.ApplyMask(grid, Number(0)))

	assert.Equal(t, once, twice)
}

func TestTable_ApplyMask_ShapeMismatch(t *testing.T) {
	table := incidenceTable(t)
	other, err := New(
		[]string{"r1"},
		[]string{"c1"},
		[]Column{NumbersColumn([]float64{1})},
	)
	require.NoError(t, err)

	grid := other.Mask(Gt(0))
	err = table.ApplyMask(grid, Number(0))
	require.Error(t, err)
	assert.True(t, errors.IsShapeMismatch(err))
}

func TestTable_ApplyMask_TypeValidationIsAtomic(t *testing.T) {
	table, err := New(
		[]string{"r1", "r2"},
		[]string{"num", "txt"},
		[]Column{
			NumbersColumn([]float64{5, 50}),
			TextColumn([]string{"a", "b"}),
		},
	)
	require.NoError(t, err)

	// Flag a text cell alongside numeric cells; a numeric replacement must
	// fail without writing anything.
	grid := table.Mask(func(s Scalar) bool { return true })
	err = table.ApplyMask(grid, Number(0))
	require.Error(t, err)
	assert.True(t, errors.IsShapeMismatch(err))

	values, err := table.ColumnValues("num")
	require.NoError(t, err)
	assert.Equal(t, []Scalar{Number(5), Number(50)}, values)
}
