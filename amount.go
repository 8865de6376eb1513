package money

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount represents a signed number of minor units (e.g. satoshi, wei, cents)
// together with the precision that relates minor units to major units.
// The number of minor units is an arbitrary-precision integer, so amounts
// with 18 fractional digits and large balances never overflow.
//
// Its zero value is 0 with precision 0.
// Amount is immutable and is safe for concurrent use by multiple goroutines.
type Amount struct {
	units *big.Int // minor units, never mutated after construction
	prec  int      // number of digits after the decimal point
}

var bigZero = new(big.Int)

// NewAmountFromMinor returns an amount of units minor units with the given
// precision. The integer is copied. A nil integer is treated as 0 and a
// negative precision as 0.
func NewAmountFromMinor(units *big.Int, precision int) Amount {
	precision = max(precision, 0)
	if units == nil {
		return Amount{prec: precision}
	}
	return Amount{units: new(big.Int).Set(units), prec: precision}
}

// ParseMinorAmount converts a decimal integer string of minor units to an amount.
//
// ParseMinorAmount returns [ErrParse] if the string is not an integer numeral.
func ParseMinorAmount(units string, precision int) (Amount, error) {
	u, ok := new(big.Int).SetString(units, 10)
	if !ok {
		return Amount{}, fmt.Errorf("parsing minor units %q: %w", units, ErrParse)
	}
	return Amount{units: u, prec: max(precision, 0)}, nil
}

// ParseMajorAmount converts a human-entered decimal string of major units to
// an amount with the given precision.
// The input string must be in one of the following formats:
//
//	10.5
//	-10.5
//	+10.5
//	10,5
//	.5
//	10.
//
// Surrounding whitespace is ignored and an empty string is parsed as 0.
// A comma is accepted as the fractional separator when no dot is present.
// Fractional digits beyond the precision are dropped (truncated toward zero),
// not rounded: "10.123456789" with precision 8 becomes 1012345678 minor units.
//
// ParseMajorAmount returns [ErrParse] if the string is not a decimal numeral,
// including exponents, grouping separators and mixed separators.
func ParseMajorAmount(s string, precision int) (Amount, error) {
	a, err := parseMajor(s, precision)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing major units %q: %w", s, err)
	}
	return a, nil
}

func parseMajor(s string, precision int) (Amount, error) {
	if precision < 0 {
		return Amount{}, fmt.Errorf("%w: negative precision %v", ErrParse, precision)
	}
	norm, err := normalizeMajor(s)
	if err != nil {
		return Amount{}, err
	}
	if norm == "" {
		return Amount{units: new(big.Int), prec: precision}, nil
	}
	d, err := decimal.NewFromString(norm)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	// BigInt truncates toward zero.
	return Amount{units: d.Shift(int32(precision)).BigInt(), prec: precision}, nil //nolint:gosec
}

// normalizeMajor trims the string, replaces a locale comma with a dot and
// checks that only a sign, digits and a single dot remain.
func normalizeMajor(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") {
			return "", fmt.Errorf("%w: mixed separators", ErrParse)
		}
		s = strings.ReplaceAll(s, ",", ".")
	}
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b >= '0' && b <= '9':
			digits++
		case b == '.':
			dots++
			if dots > 1 {
				return "", fmt.Errorf("%w: more than one separator", ErrParse)
			}
		case (b == '-' || b == '+') && i == 0:
			// sign
		default:
			return "", fmt.Errorf("%w: unexpected character %q", ErrParse, b)
		}
	}
	if digits == 0 {
		return "", fmt.Errorf("%w: no digits", ErrParse)
	}
	return s, nil
}

// int returns the minor units. The result must not be modified.
func (a Amount) int() *big.Int {
	if a.units == nil {
		return bigZero
	}
	return a.units
}

// BigInt returns a copy of the minor units.
func (a Amount) BigInt() *big.Int {
	return new(big.Int).Set(a.int())
}

// Precision returns the number of digits after the decimal point.
func (a Amount) Precision() int {
	return a.prec
}

// Decimal returns the amount in major units as an arbitrary-precision decimal.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(a.int(), -int32(a.prec)) //nolint:gosec
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.int().Sign()
}

// IsZero returns true if a = 0.
func (a Amount) IsZero() bool {
	return a.Sign() == 0
}

// IsPos returns true if a > 0.
func (a Amount) IsPos() bool {
	return a.Sign() > 0
}

// IsNeg returns true if a < 0.
func (a Amount) IsNeg() bool {
	return a.Sign() < 0
}

// Add returns the sum of amounts a and b.
// The result has the precision of a; keeping precisions consistent is the
// responsibility of the caller.
func (a Amount) Add(b Amount) Amount {
	return Amount{units: new(big.Int).Add(a.int(), b.int()), prec: a.prec}
}

// Sub returns the difference between amounts a and b, with the precision of a.
func (a Amount) Sub(b Amount) Amount {
	return Amount{units: new(big.Int).Sub(a.int(), b.int()), prec: a.prec}
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return Amount{units: new(big.Int).Neg(a.int()), prec: a.prec}
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return Amount{units: new(big.Int).Abs(a.int()), prec: a.prec}
}

// Cmp compares the minor units of amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
func (a Amount) Cmp(b Amount) int {
	return a.int().Cmp(b.int())
}

// Equal returns true if amounts have the same minor units and precision.
func (a Amount) Equal(b Amount) bool {
	return a.prec == b.prec && a.Cmp(b) == 0
}

// Rescale returns an amount with the given precision.
// Extra digits are dropped (truncated toward zero); missing digits are
// padded with zeros.
func (a Amount) Rescale(precision int) Amount {
	precision = max(precision, 0)
	u := a.int()
	switch {
	case precision > a.prec:
		u = new(big.Int).Mul(u, pow10(precision-a.prec))
	case precision < a.prec:
		u = new(big.Int).Quo(u, pow10(a.prec-precision))
	default:
		u = new(big.Int).Set(u)
	}
	return Amount{units: u, prec: precision}
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// MinorString returns the minor units as a decimal integer string.
func (a Amount) MinorString() string {
	return a.int().String()
}

// MajorString returns the amount in major units with exactly
// [Amount.Precision] digits after the decimal point, e.g. "-0.50".
func (a Amount) MajorString() string {
	return a.Decimal().StringFixed(int32(a.prec)) //nolint:gosec
}

// String implements the [fmt.Stringer] interface and returns the same
// representation as [Amount.MajorString].
func (a Amount) String() string {
	return a.MajorString()
}
