package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ExchangeRate represents a unidirectional exchange rate between two currencies.
// The zero value is not a valid rate and cannot convert values.
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base  Currency        // currency being exchanged
	quote Currency        // currency being obtained in exchange for the base currency
	value decimal.Decimal // how many units of quote currency are needed to exchange for 1 unit of the base currency
}

var one = decimal.NewFromInt(1)

// NewExchRate returns a new exchange rate between the base and quote currencies.
//
// NewExchRate returns [ErrInvalidRate] if:
//   - the rate is not positive;
//   - the base and quote currencies are the same and the rate is not 1.
func NewExchRate(base, quote Currency, rate decimal.Decimal) (ExchangeRate, error) {
	if !rate.IsPositive() {
		return ExchangeRate{}, fmt.Errorf("%w: %v/%v rate %v must be positive", ErrInvalidRate, base, quote, rate)
	}
	if base.Equal(quote) && !rate.Equal(one) {
		return ExchangeRate{}, fmt.Errorf("%w: %v/%v rate %v must be equal to 1", ErrInvalidRate, base, quote, rate)
	}
	return ExchangeRate{base: base, quote: quote, value: rate}, nil
}

// ParseExchRate converts a decimal string to an exchange rate.
// See also [NewExchRate].
func ParseExchRate(base, quote Currency, rate string) (ExchangeRate, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(rate))
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing %v/%v rate %q: %w", base, quote, rate, ErrParse)
	}
	r, err := NewExchRate(base, quote, d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing %v/%v rate %q: %w", base, quote, rate, err)
	}
	return r, nil
}

// MustParseExchRate is like [ParseExchRate] but panics if the rate cannot be parsed.
// It simplifies safe initialization of variables holding exchange rates.
func MustParseExchRate(base, quote Currency, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%v, %v, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Decimal returns the number of quote units per base unit.
func (r ExchangeRate) Decimal() decimal.Decimal {
	return r.value
}

// CanConv returns true if [ExchangeRate.Conv] can be used to convert the given value.
func (r ExchangeRate) CanConv(v Value) bool {
	return v.Curr().Equal(r.Base()) && r.value.IsPositive()
}

// Conv returns the value converted from the base currency to the quote currency.
// The result is truncated toward zero to the precision of the quote currency,
// the same policy as [ParseMajorAmount].
//
// Conv returns [ErrCurrencyMismatch] if the value is not denominated in the
// base currency of the rate.
func (r ExchangeRate) Conv(v Value) (Value, error) {
	if !r.CanConv(v) {
		return Value{}, fmt.Errorf("converting %v with %v: %w", v, r, ErrCurrencyMismatch)
	}
	prec := r.Quote().Precision()
	d := v.Amount().Decimal().Mul(r.value).Shift(int32(prec)) //nolint:gosec
	return Value{curr: r.Quote(), amount: Amount{units: d.BigInt(), prec: prec}}, nil
}

// Inv returns the inverse of the exchange rate, rounded to the sum of the
// precisions of its base and quote currencies.
//
// Inv returns an error if the rate is invalid or its inverse rounds to zero.
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	if !r.value.IsPositive() {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, ErrDivisionByZero)
	}
	scale := int32(r.Base().Precision() + r.Quote().Precision()) //nolint:gosec
	inv := one.DivRound(r.value, scale)
	q, err := NewExchRate(r.Quote(), r.Base(), inv)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return q, nil
}

// SameCurr returns true if exchange rates are denominated in the same base
// and quote currencies.
func (r ExchangeRate) SameCurr(q ExchangeRate) bool {
	return q.Base().Equal(r.Base()) && q.Quote().Equal(r.Quote())
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, e.g. "BTC/USD 60000".
func (r ExchangeRate) String() string {
	return r.Base().Code() + "/" + r.Quote().Code() + " " + r.value.String()
}

// Format implements [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	%s, %v: BTC/USD 60000
//	%q:    "BTC/USD 60000"
//	%f:     60000
//	%c:     BTC/USD
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
func (r ExchangeRate) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V':
		s = r.String()
	case 'q', 'Q':
		s = `"` + r.String() + `"`
	case 'f', 'F':
		s = r.value.String()
	case 'c', 'C':
		s = r.Base().Code() + "/" + r.Quote().Code()
	default:
		fmt.Fprintf(state, "%%!%c(money.ExchangeRate=%s)", verb, r.String())
		return
	}
	writePadded(state, s)
}
