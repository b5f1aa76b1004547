package request

import (
	"github.com/shopspring/decimal"
)

// LenientDecimal is a decimal that never fails to unmarshal: malformed or
// non-finite numeric input becomes zero instead of rejecting the whole
// request body. Amount validation happens after binding, against the
// coerced value.
type LenientDecimal struct {
	decimal.Decimal
}

// UnmarshalJSON coerces anything unparseable to zero
func (d *LenientDecimal) UnmarshalJSON(data []byte) error {
	var dec decimal.Decimal
	if err := dec.UnmarshalJSON(data); err != nil {
		d.Decimal = decimal.Zero
		return nil
	}
	d.Decimal = dec
	return nil
}

// MarshalJSON writes the wrapped decimal
func (d LenientDecimal) MarshalJSON() ([]byte, error) {
	return d.Decimal.MarshalJSON()
}

// LenientInt is an int with the same coercion rule: malformed input
// becomes zero. Fractional input truncates.
type LenientInt int

// UnmarshalJSON coerces anything unparseable to zero
func (i *LenientInt) UnmarshalJSON(data []byte) error {
	var dec decimal.Decimal
	if err := dec.UnmarshalJSON(data); err != nil {
		*i = 0
		return nil
	}
	*i = LenientInt(dec.IntPart())
	return nil
}
