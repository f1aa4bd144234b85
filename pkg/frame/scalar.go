package frame

import "strconv"

// ScalarKind identifies the variant held by a Scalar.
type ScalarKind int

const (
	// ScalarMissing is the explicit absence-of-value sentinel, distinct
	// from any numeric value including zero and from empty text.
	ScalarMissing ScalarKind = iota
	ScalarNumber
	ScalarText
)

// Scalar is a single table cell: a number, a text value, or Missing.
// Every comparison and reduction decides its Missing policy explicitly;
// there is no implicit propagation.
type Scalar struct {
	kind ScalarKind
	num  float64
	text string
}

// Number creates a numeric scalar
func Number(v float64) Scalar {
	return Scalar{kind: ScalarNumber, num: v}
}

// Text creates a text scalar
func Text(s string) Scalar {
	return Scalar{kind: ScalarText, text: s}
}

// Missing creates the missing-value sentinel
func Missing() Scalar {
	return Scalar{kind: ScalarMissing}
}

// Kind returns the variant held by the scalar
func (s Scalar) Kind() ScalarKind { return s.kind }

// IsMissing reports whether the scalar is the missing sentinel
func (s Scalar) IsMissing() bool { return s.kind == ScalarMissing }

// IsNumber reports whether the scalar holds a numeric value
func (s Scalar) IsNumber() bool { return s.kind == ScalarNumber }

// IsText reports whether the scalar holds a text value
func (s Scalar) IsText() bool { return s.kind == ScalarText }

// Float returns the numeric value and whether the scalar holds one.
func (s Scalar) Float() (float64, bool) {
	return s.num, s.kind == ScalarNumber
}

// String renders the scalar for display and for type widening: numbers in
// the shortest round-trippable form, Missing as the empty string.
func (s Scalar) String() string {
	switch s.kind {
	case ScalarNumber:
		return strconv.FormatFloat(s.num, 'g', -1, 64)
	case ScalarText:
		return s.text
	default:
		return ""
	}
}

// Equal reports structural equality. Missing equals Missing here; use the
// Eq predicate when comparisons against Missing must yield false.
func (s Scalar) Equal(o Scalar) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case ScalarNumber:
		return s.num == o.num
	case ScalarText:
		return s.text == o.text
	default:
		return true
	}
}
