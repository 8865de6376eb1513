package money

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
)

// wireValue is the encoded form of a [Value].
type wireValue struct {
	Value    string   `json:"value"`
	Amount   *big.Int `json:"amount"`
	Currency string   `json:"currency"`
}

// Codec encodes and decodes values to and from their JSON wire
// representation. Two shapes are accepted when decoding:
//
//	{"amount": 100000000, "currency": "BTC"}      // ShapeAmount, amount may also be a string
//	{"value": "100000000", "currency": "BTC"}     // ShapeValue, legacy
//
// ShapeAmount is attempted first; ShapeValue is the fallback.
// Amounts are always minor units. Currency codes are resolved with the
// registry the codec was created with.
//
// A Codec is safe for concurrent use by multiple goroutines.
type Codec struct {
	reg *Registry
}

// NewCodec returns a codec resolving currency codes with the registry.
func NewCodec(reg *Registry) *Codec {
	return &Codec{reg: reg}
}

// Encode returns the JSON encoding of the value, carrying both the "value"
// and the "amount" field for readers expecting either shape.
func (c *Codec) Encode(v Value) ([]byte, error) {
	return json.Marshal(v)
}

// Decode parses a JSON value in either wire shape.
//
// Decode returns a [*DecodingError] wrapping [ErrParse] if neither shape
// carries a valid integer, or [ErrUnknownCurrency] if the currency code does
// not resolve.
func (c *Codec) Decode(data []byte) (Value, error) {
	v, _, err := c.DecodeShape(data)
	return v, err
}

// DecodeShape is like [Codec.Decode] but also reports which wire shape the
// value was decoded from.
func (c *Codec) DecodeShape(data []byte) (Value, WireShape, error) {
	var w struct {
		Amount   json.RawMessage `json:"amount"`
		Value    json.RawMessage `json:"value"`
		Currency json.RawMessage `json:"currency"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return Value{}, ShapeAmount, &DecodingError{Shape: ShapeAmount, Err: fmt.Errorf("%w: %v", ErrParse, err)}
	}

	units, shape, err := decodeUnits(w.Amount, w.Value)
	if err != nil {
		return Value{}, shape, &DecodingError{Shape: shape, Err: err}
	}

	code, err := decodeString("currency", w.Currency)
	if err != nil {
		return Value{}, shape, &DecodingError{Shape: shape, Err: err}
	}
	curr, err := c.reg.Parse(code)
	if err != nil {
		return Value{}, shape, &DecodingError{Shape: shape, Err: err}
	}
	return Value{curr: curr, amount: Amount{units: units, prec: curr.Precision()}}, shape, nil
}

// decodeUnits tries the amount field and then the value field.
func decodeUnits(amount, value json.RawMessage) (*big.Int, WireShape, error) {
	units, errA := decodeAmountField(amount)
	if errA == nil {
		return units, ShapeAmount, nil
	}
	units, errB := decodeValueField(value)
	if errB == nil {
		return units, ShapeValue, nil
	}
	return nil, ShapeValue, errors.Join(errA, errB)
}

// decodeAmountField accepts a JSON integer or a JSON string holding an integer.
func decodeAmountField(raw json.RawMessage) (*big.Int, error) {
	if isAbsent(raw) {
		return nil, fmt.Errorf("%w: field %q is missing", ErrParse, "amount")
	}
	text := string(raw)
	if raw[0] == '"' {
		var err error
		text, err = decodeString("amount", raw)
		if err != nil {
			return nil, err
		}
	}
	u, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("%w: field %q is not an integer: %s", ErrParse, "amount", raw)
	}
	return u, nil
}

// decodeValueField accepts a JSON string holding an integer.
func decodeValueField(raw json.RawMessage) (*big.Int, error) {
	text, err := decodeString("value", raw)
	if err != nil {
		return nil, err
	}
	u, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("%w: field %q is not an integer: %q", ErrParse, "value", text)
	}
	return u, nil
}

func decodeString(field string, raw json.RawMessage) (string, error) {
	if isAbsent(raw) {
		return "", fmt.Errorf("%w: field %q is missing", ErrParse, field)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: field %q is not a string: %s", ErrParse, field, raw)
	}
	return s, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
