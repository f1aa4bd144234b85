package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := NewDomainError("quantile probability outside [0,1]")
		assert.Equal(t, "[DOMAIN] quantile probability outside [0,1]", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		err := NewParseError("coerce token", io.ErrUnexpectedEOF)
		assert.Equal(t, "[PARSE] coerce token: unexpected EOF", err.Error())
	})
}

func TestTableError_Unwrap(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := NewConfigError("read config file", cause)

	assert.True(t, stderrors.Is(err, cause))

	var te *TableError
	require.True(t, stderrors.As(err, &te))
	assert.Equal(t, KindConfig, te.Kind)
}

func TestTableError_WithContext(t *testing.T) {
	err := NewParseError("cannot coerce token", nil).
		WithContext("position", 3).
		WithContext("token", "n/a")

	assert.Equal(t, 3, err.Context["position"])
	assert.Equal(t, "n/a", err.Context["token"])
}

func TestNewLookupError(t *testing.T) {
	err := NewLookupError("row", "1993")

	assert.Equal(t, KindLookup, err.Kind)
	assert.Equal(t, "row", err.Context["axis"])
	assert.Equal(t, "1993", err.Context["selector"])
	assert.Contains(t, err.Error(), "row axis")
	assert.Contains(t, err.Error(), "1993")
}

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{name: "shape mismatch", err: NewShapeMismatch("ragged columns"), pred: IsShapeMismatch},
		{name: "lookup", err: NewLookupError("column", 7), pred: IsLookup},
		{name: "domain", err: NewDomainError("empty input"), pred: IsDomain},
		{name: "parse", err: NewParseError("bad token", nil), pred: IsParse},
		{name: "config", err: NewConfigError("bad delimiter", nil), pred: IsConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.pred(tt.err))
			assert.False(t, tt.pred(io.EOF), "foreign errors never match")
		})
	}
}

func TestIsKind_Wrapped(t *testing.T) {
	inner := NewDomainError("text column")
	outer := NewConfigError("load defaults", inner)

	// As stops at the outermost TableError.
	assert.True(t, IsKind(outer, KindConfig))
	assert.False(t, IsKind(outer, KindDomain))

	assert.True(t, IsKind(fmt.Errorf("loading: %w", outer), KindConfig))
}
