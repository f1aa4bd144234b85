package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an engine error.
type Kind string

const (
	KindShapeMismatch Kind = "SHAPE_MISMATCH"
	KindLookup        Kind = "LOOKUP"
	KindDomain        Kind = "DOMAIN"
	KindParse         Kind = "PARSE"
	KindConfig        Kind = "CONFIG"
)

// TableError is the error type returned by every engine operation.
// All errors are local and recoverable; the engine carries no process-wide
// state that an error could poison.
type TableError struct {
	Kind    Kind
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *TableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with TableError
func (e *TableError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *TableError) WithContext(key string, value interface{}) *TableError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new TableError
func New(kind Kind, message string, cause error) *TableError {
	return &TableError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewShapeMismatch creates an error for incompatible lengths or duplicate
// labels during construction, relabeling, or assignment.
func NewShapeMismatch(message string) *TableError {
	return New(KindShapeMismatch, message, nil)
}

// NewLookupError creates an error for an unknown label or out-of-range
// position. The axis name and the offending selector are carried in the
// error context.
func NewLookupError(axis string, selector interface{}) *TableError {
	err := New(KindLookup, fmt.Sprintf("no such position or label on %s axis: %v", axis, selector), nil)
	return err.WithContext("axis", axis).WithContext("selector", selector)
}

// NewDomainError creates an error for arguments outside an operation's
// domain, such as a quantile probability outside [0,1].
func NewDomainError(message string) *TableError {
	return New(KindDomain, message, nil)
}

// NewParseError creates an error for malformed input in strict coercion mode
func NewParseError(message string, cause error) *TableError {
	return New(KindParse, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *TableError {
	return New(KindConfig, message, cause)
}

// IsKind reports whether err is (or wraps) a TableError of the given kind.
func IsKind(err error, kind Kind) bool {
	var te *TableError
	if stderrors.As(err, &te) {
		return te.Kind == kind
	}
	return false
}

// IsShapeMismatch reports whether err is a shape-mismatch error
func IsShapeMismatch(err error) bool { return IsKind(err, KindShapeMismatch) }

// IsLookup reports whether err is a lookup error
func IsLookup(err error) bool { return IsKind(err, KindLookup) }

// IsDomain reports whether err is a domain error
func IsDomain(err error) bool { return IsKind(err, KindDomain) }

// IsParse reports whether err is a parse error
func IsParse(err error) bool { return IsKind(err, KindParse) }

// IsConfig reports whether err is a configuration error
func IsConfig(err error) bool { return IsKind(err, KindConfig) }
