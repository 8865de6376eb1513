package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BalanceInfo describes a balance and how it changed since a previous
// balance. All fields are computed together and are always consistent.
type BalanceInfo struct {
	Balance Value
	Change  Value
	// ChangePercentage is Change / previous balance as a decimal fraction,
	// e.g. "0.5" for a 50% increase. Callers apply percent formatting.
	ChangePercentage string
}

// BalanceInfoBetween computes the change from previous to current.
// The change percentage is 0 when the current balance is zero, or when the
// previous balance is zero or negative.
//
// BalanceInfoBetween returns [ErrUnableToRetrieve] wrapping the cause if the
// balances are denominated in different currencies. No partial result is
// returned.
func BalanceInfoBetween(current, previous Value) (BalanceInfo, error) {
	change, err := current.Sub(previous)
	if err != nil {
		return BalanceInfo{}, fmt.Errorf("%w: %w", ErrUnableToRetrieve, err)
	}

	percentage := decimal.Zero
	switch {
	case current.IsZero():
		// no balance left to relate the change to
	case previous.IsZero() || previous.IsNeg():
		// guards division by zero and a meaningless negative base
	default:
		percentage, err = change.Percentage(previous)
		if err != nil {
			return BalanceInfo{}, fmt.Errorf("%w: %w", ErrUnableToRetrieve, err)
		}
	}

	return BalanceInfo{
		Balance:          current,
		Change:           change,
		ChangePercentage: percentage.String(),
	}, nil
}
