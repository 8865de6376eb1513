package money

import "fmt"

// Pair holds two related values in different currencies at a point in time,
// such as a crypto balance and its fiat equivalent. The ratio quote / base is
// the exchange rate between the two currencies.
type Pair struct {
	base  Value
	quote Value
}

// NewPair returns a pair of values.
//
// NewPair returns [ErrSameCurrency] if both values have the same currency.
func NewPair(base, quote Value) (Pair, error) {
	if base.SameCurr(quote) {
		return Pair{}, fmt.Errorf("pairing %v with %v: %w", base, quote, ErrSameCurrency)
	}
	return Pair{base: base, quote: quote}, nil
}

// ZeroPair returns a pair of zero values in the given currencies.
//
// ZeroPair returns [ErrSameCurrency] if the currencies are the same.
func ZeroPair(base, quote Currency) (Pair, error) {
	return NewPair(Zero(base), Zero(quote))
}

// NewPairFromRate returns a pair of the base value and its conversion with
// the exchange rate.
func NewPairFromRate(base Value, rate ExchangeRate) (Pair, error) {
	quote, err := rate.Conv(base)
	if err != nil {
		return Pair{}, err
	}
	return NewPair(base, quote)
}

// Base returns the base value.
func (p Pair) Base() Value {
	return p.base
}

// Quote returns the quote value.
func (p Pair) Quote() Value {
	return p.quote
}

// Inverted returns the pair with base and quote swapped.
func (p Pair) Inverted() Pair {
	return Pair{base: p.quote, quote: p.base}
}

// ExchangeRate returns the rate quote / base in major units, rounded to the
// sum of the precisions of both currencies.
//
// ExchangeRate returns [ErrDivisionByZero] if the base value is zero and
// [ErrInvalidRate] if the ratio is not positive.
func (p Pair) ExchangeRate() (ExchangeRate, error) {
	if p.base.IsZero() {
		return ExchangeRate{}, fmt.Errorf("computing rate of %v: %w", p, ErrDivisionByZero)
	}
	scale := int32(p.base.Curr().Precision() + p.quote.Curr().Precision()) //nolint:gosec
	d := p.quote.Amount().Decimal().DivRound(p.base.Amount().Decimal(), scale)
	r, err := NewExchRate(p.base.Curr(), p.quote.Curr(), d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("computing rate of %v: %w", p, err)
	}
	return r, nil
}

// String implements the [fmt.Stringer] interface, e.g. "BTC 1.00000000 = USD 60000.00".
func (p Pair) String() string {
	return p.base.String() + " = " + p.quote.String()
}
