package ingest

import (
	"github.com/go-playground/validator/v10"

	"tabular/pkg/errors"
)

// Options configures numeric coercion and the delimited-text readers.
type Options struct {
	// Comma is the field delimiter for delimited text.
	Comma rune `validate:"required"`
	// ThousandsSep is stripped from tokens before numeric parsing.
	// Zero disables stripping.
	ThousandsSep rune
	// Strict makes coercion fail with a ParseError naming the offending
	// cell instead of mapping unparseable tokens to Missing.
	Strict bool
	// TrimSpace trims surrounding whitespace from every token.
	TrimSpace bool
}

// DefaultOptions returns lenient options for comma-delimited input with
// comma thousands separators.
func DefaultOptions() Options {
	return Options{
		Comma:        ',',
		ThousandsSep: ',',
		TrimSpace:    true,
	}
}

var validate = validator.New()

// Validate checks the options. The delimiter must be set and usable by the
// CSV reader; the thousands separator may equal the delimiter because
// delimited fields containing it must be quoted anyway.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return errors.NewConfigError("invalid ingest options", err)
	}
	if o.Comma == '\n' || o.Comma == '\r' {
		return errors.NewConfigError("field delimiter cannot be a line terminator", nil)
	}
	return nil
}
