package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"tabular/pkg/errors"
	"tabular/pkg/frame"
)

// Coerce parses a column of locale-formatted numeric text into scalars.
// The thousands separator is stripped before parsing. In lenient mode any
// token that still fails to parse becomes Missing, keeping ingestion total;
// in strict mode the first such token produces a ParseError carrying its
// position. Empty and whitespace-only tokens are Missing in both modes;
// a gap in the data is not malformed input.
func Coerce(tokens []string, opts Options) ([]frame.Scalar, error) {
	out := make([]frame.Scalar, len(tokens))
	for i, tok := range tokens {
		s, ok := coerceToken(tok, opts)
		if !ok && opts.Strict {
			return nil, errors.NewParseError(
				fmt.Sprintf("cannot parse %q as a number", tok), nil).
				WithContext("position", i).
				WithContext("token", tok)
		}
		out[i] = s
	}
	return out, nil
}

// coerceToken parses one token. ok is false only for a non-empty token that
// failed to parse; such a token maps to Missing in lenient mode.
func coerceToken(tok string, opts Options) (frame.Scalar, bool) {
	if opts.TrimSpace {
		tok = strings.TrimSpace(tok)
	}
	if tok == "" {
		return frame.Missing(), true
	}
	if opts.ThousandsSep != 0 {
		tok = strings.ReplaceAll(tok, string(opts.ThousandsSep), "")
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return frame.Missing(), false
	}
	return frame.Number(v), true
}
