package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Numeric is a user-entered numeric field captured as raw text. The original
// text is preserved verbatim for display; coercion to a number is explicit.
// An empty value means "absent", not zero.
type Numeric string

// Empty reports whether the field is blank (whitespace counts as blank).
func (n Numeric) Empty() bool {
	return strings.TrimSpace(string(n)) == ""
}

// Number parses the field as a decimal. The second return is false when the
// field is blank or does not parse.
func (n Numeric) Number() (decimal.Decimal, bool) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Value coerces the field for computation: blank or non-numeric text
// degrades to zero. It never fails.
func (n Numeric) Value() decimal.Decimal {
	d, ok := n.Number()
	if !ok {
		return decimal.Zero
	}
	return d
}

// NumericFrom renders a computed decimal back into field form.
func NumericFrom(d decimal.Decimal) Numeric {
	return Numeric(d.String())
}
