package money

import (
	"fmt"
	"math/big"

	fixed "github.com/govalues/decimal"
)

// Fixed returns the value in major units as a fixed-size decimal with the
// scale of its currency.
//
// Fixed returns an error if the value needs more than [fixed.MaxPrec] digits,
// which is common for 18-digit crypto currencies.
func (v Value) Fixed() (fixed.Decimal, error) {
	d, err := fixed.ParseExact(v.MajorString(), v.curr.Precision())
	if err != nil {
		return fixed.Decimal{}, fmt.Errorf("converting %v to fixed decimal: %w", v, err)
	}
	return d, nil
}

// NewValueFromFixed converts a fixed-size decimal in major units to a value.
// Digits beyond the precision of the currency are dropped (truncated toward
// zero).
func NewValueFromFixed(c Currency, d fixed.Decimal) Value {
	units := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		units.Neg(units)
	}
	a := Amount{units: units, prec: d.Scale()}
	return Value{curr: c, amount: a.Rescale(c.Precision())}
}
