package money

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Value represents an amount of money in a specific currency.
// The precision of its amount always equals the precision of its currency.
//
// The zero value has no currency and is not useful; construct values with
// [Zero], [NewValue], [NewValueFromMinor] or [ParseValue].
// Value is immutable and is safe for concurrent use by multiple goroutines.
// Values must be compared with [Value.Equal] or [Value.Cmp], not with ==.
type Value struct {
	curr   Currency
	amount Amount
}

// Zero returns a value of 0 in the given currency.
func Zero(c Currency) Value {
	return Value{curr: c, amount: NewAmountFromMinor(nil, c.Precision())}
}

// NewValue returns a value of units minor units in the given currency.
// The integer is copied.
func NewValue(c Currency, units *big.Int) Value {
	return Value{curr: c, amount: NewAmountFromMinor(units, c.Precision())}
}

// NewValueFromMinor converts a decimal integer string of minor units, such as
// "100000000" satoshi, to a value.
//
// NewValueFromMinor returns [ErrParse] if the string is not an integer numeral.
func NewValueFromMinor(c Currency, minor string) (Value, error) {
	a, err := ParseMinorAmount(minor, c.Precision())
	if err != nil {
		return Value{}, fmt.Errorf("creating %v value: %w", c, err)
	}
	return Value{curr: c, amount: a}, nil
}

// ParseValue converts a decimal string of major units, such as "1.5" bitcoin,
// to a value. See [ParseMajorAmount] for the accepted formats and the
// truncation of excess fractional digits.
//
// ParseValue returns [ErrParse] if the string is not a decimal numeral.
func ParseValue(c Currency, major string) (Value, error) {
	a, err := ParseMajorAmount(major, c.Precision())
	if err != nil {
		return Value{}, fmt.Errorf("creating %v value: %w", c, err)
	}
	return Value{curr: c, amount: a}, nil
}

// MustParseValue is like [ParseValue] but panics if the string cannot be parsed.
// It simplifies safe initialization of variables holding values.
func MustParseValue(c Currency, major string) Value {
	v, err := ParseValue(c, major)
	if err != nil {
		panic(fmt.Sprintf("ParseValue(%v, %q) failed: %v", c, major, err))
	}
	return v
}

// Curr returns the currency of the value.
func (v Value) Curr() Currency {
	return v.curr
}

// Amount returns the amount of the value.
func (v Value) Amount() Amount {
	return v.amount
}

// Sign returns:
//
//	-1 if v < 0
//	 0 if v = 0
//	+1 if v > 0
func (v Value) Sign() int {
	return v.amount.Sign()
}

// IsZero returns true if v = 0.
func (v Value) IsZero() bool {
	return v.amount.IsZero()
}

// IsPos returns true if v > 0.
func (v Value) IsPos() bool {
	return v.amount.IsPos()
}

// IsNeg returns true if v < 0.
func (v Value) IsNeg() bool {
	return v.amount.IsNeg()
}

// Neg returns a value with the opposite sign.
func (v Value) Neg() Value {
	return Value{curr: v.curr, amount: v.amount.Neg()}
}

// Abs returns the absolute value.
func (v Value) Abs() Value {
	return Value{curr: v.curr, amount: v.amount.Abs()}
}

// SameCurr returns true if values are denominated in the same currency.
func (v Value) SameCurr(w Value) bool {
	return v.curr.Equal(w.curr)
}

// Add returns the sum of values v and w.
//
// Add returns [ErrCurrencyMismatch] if values are denominated in different
// currencies. No implicit conversion is ever performed.
func (v Value) Add(w Value) (Value, error) {
	if !v.SameCurr(w) {
		return Value{}, fmt.Errorf("computing [%v + %v]: %w", v, w, ErrCurrencyMismatch)
	}
	return Value{curr: v.curr, amount: v.amount.Add(w.amount)}, nil
}

// Sub returns the difference between values v and w.
//
// Sub returns [ErrCurrencyMismatch] if values are denominated in different
// currencies.
func (v Value) Sub(w Value) (Value, error) {
	if !v.SameCurr(w) {
		return Value{}, fmt.Errorf("computing [%v - %v]: %w", v, w, ErrCurrencyMismatch)
	}
	return Value{curr: v.curr, amount: v.amount.Sub(w.amount)}, nil
}

// Cmp compares values and returns:
//
//	-1 if v < w
//	 0 if v = w
//	+1 if v > w
//
// Cmp returns [ErrCurrencyMismatch] if values are denominated in different
// currencies.
func (v Value) Cmp(w Value) (int, error) {
	if !v.SameCurr(w) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", v, w, ErrCurrencyMismatch)
	}
	return v.amount.Cmp(w.amount), nil
}

// Equal returns true if v = w.
//
// Equal returns [ErrCurrencyMismatch] rather than false if values are
// denominated in different currencies.
func (v Value) Equal(w Value) (bool, error) {
	c, err := v.Cmp(w)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// Less returns true if v < w.
//
// Less returns [ErrCurrencyMismatch] if values are denominated in different
// currencies.
func (v Value) Less(w Value) (bool, error) {
	c, err := v.Cmp(w)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// Percentage returns the ratio v / w as a decimal fraction, e.g. 0.25 for a
// quarter. It is not multiplied by 100.
// If w is zero, the result is 0 rather than an error, so that percentage
// displays stay well-defined.
//
// Percentage returns [ErrCurrencyMismatch] if values are denominated in
// different currencies.
func (v Value) Percentage(w Value) (decimal.Decimal, error) {
	if !v.SameCurr(w) {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", v, w, ErrCurrencyMismatch)
	}
	if w.IsZero() {
		return decimal.Zero, nil
	}
	// Same precision on both sides, so minor units divide directly.
	d := decimal.NewFromBigInt(v.amount.int(), 0)
	e := decimal.NewFromBigInt(w.amount.int(), 0)
	return d.Div(e), nil
}

// Convert returns the value converted with the exchange rate.
// See [ExchangeRate.Conv].
func (v Value) Convert(r ExchangeRate) (Value, error) {
	return r.Conv(v)
}

// MinorString returns the value in minor units, e.g. "150000000".
func (v Value) MinorString() string {
	return v.amount.MinorString()
}

// MajorString returns the value in major units with exactly as many digits
// after the decimal point as the currency precision, e.g. "1.50000000".
func (v Value) MajorString() string {
	return v.amount.MajorString()
}

// DisplayString returns the value formatted for display.
// With includeSymbol, fiat values are prefixed with the currency symbol and
// crypto values are suffixed with the currency code:
//
//	$10.50
//	-$10.50
//	0.50000000 BTC
//
// Without includeSymbol, only the major-unit string is returned.
func (v Value) DisplayString(includeSymbol bool) string {
	s := v.MajorString()
	if !includeSymbol {
		return s
	}
	if v.curr.IsCrypto() {
		return s + " " + v.curr.Symbol()
	}
	if v.IsNeg() {
		return "-" + v.curr.Symbol() + s[1:]
	}
	return v.curr.Symbol() + s
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the value, e.g. "BTC 1.50000000".
func (v Value) String() string {
	return v.curr.Code() + " " + v.MajorString()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example          | Description                |
//	| ------ | ---------------- | -------------------------- |
//	| %s, %v | BTC 1.50000000   | Currency and amount        |
//	| %q     | "BTC 1.50000000" | Quoted currency and amount |
//	| %f     | 1.50000000       | Amount in major units      |
//	| %d     | 150000000        | Amount in minor units      |
//	| %c     | BTC              | Currency                   |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
func (v Value) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V':
		s = v.String()
	case 'q', 'Q':
		s = `"` + v.String() + `"`
	case 'f', 'F':
		s = v.MajorString()
	case 'd', 'D':
		s = v.MinorString()
	case 'c', 'C':
		s = v.curr.Code()
	default:
		fmt.Fprintf(state, "%%!%c(money.Value=%s)", verb, v.String())
		return
	}
	writePadded(state, s)
}

// MarshalJSON implements the [json.Marshaler] interface.
// Both wire shapes understood by [Codec] are emitted:
//
//	{"value":"100000000","amount":100000000,"currency":"BTC"}
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireValue{
		Value:    v.MinorString(),
		Amount:   v.amount.int(),
		Currency: v.curr.Code(),
	})
}
