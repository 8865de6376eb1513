package money

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is returned when a minor- or major-unit string is not a valid
	// decimal numeral.
	ErrParse = errors.New("invalid numeral")

	// ErrUnknownCurrency is returned when a currency code does not resolve in
	// a [Registry].
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrCurrencyMismatch is returned when an arithmetic or comparison
	// operation is attempted between values of different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrSameCurrency is returned when a pair is constructed from two values
	// of the same currency.
	ErrSameCurrency = errors.New("base and quote currencies are the same")

	// ErrInvalidRate is returned for exchange rates that are not positive, or
	// not equal to 1 between a currency and itself.
	ErrInvalidRate = errors.New("invalid exchange rate")

	// ErrDivisionByZero is returned when a ratio has a zero denominator.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnableToRetrieve is returned by [BalanceInfoBetween] when the balance
	// information cannot be computed.
	ErrUnableToRetrieve = errors.New("unable to retrieve balance info")

	errInvalidCurrency = errors.New("invalid currency definition")
)

// WireShape identifies one of the JSON shapes understood by [Codec].
type WireShape int

const (
	// ShapeAmount is {"amount": <integer>, "currency": "<code>"}.
	ShapeAmount WireShape = iota
	// ShapeValue is the legacy {"value": "<minor units>", "currency": "<code>"}.
	ShapeValue
)

func (s WireShape) String() string {
	switch s {
	case ShapeAmount:
		return "amount"
	case ShapeValue:
		return "value"
	default:
		return fmt.Sprintf("WireShape(%d)", int(s))
	}
}

// DecodingError is returned by [Codec.Decode].
// Shape is the last wire shape that was attempted.
type DecodingError struct {
	Shape WireShape
	Err   error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decoding %s shape: %v", e.Shape, e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}
