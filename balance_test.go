package money

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// balanceView flattens a BalanceInfo into comparable strings.
type balanceView struct {
	Balance, Change, ChangePercentage string
}

func viewOf(b BalanceInfo) balanceView {
	return balanceView{
		Balance:          b.Balance.String(),
		Change:           b.Change.String(),
		ChangePercentage: b.ChangePercentage,
	}
}

func TestBalanceInfoBetween(t *testing.T) {
	tests := map[string]struct {
		curr              Currency
		current, previous string
		want              balanceView
	}{
		"from zero": {
			usd, "5", "0",
			balanceView{"USD 5.00", "USD 5.00", "0"},
		},
		"increase": {
			usd, "15", "10",
			balanceView{"USD 15.00", "USD 5.00", "0.5"},
		},
		"to zero": {
			usd, "0", "10",
			balanceView{"USD 0.00", "USD -10.00", "0"},
		},
		"from negative": {
			usd, "5", "-10",
			balanceView{"USD 5.00", "USD 15.00", "0"},
		},
		"decrease": {
			usd, "5", "10",
			balanceView{"USD 5.00", "USD -5.00", "-0.5"},
		},
		"repeating": {
			usd, "10", "30",
			balanceView{"USD 10.00", "USD -20.00", "-0.6666666666666667"},
		},
		"unchanged": {
			btc, "0.5", "0.5",
			balanceView{"BTC 0.50000000", "BTC 0.00000000", "0"},
		},
		"doubled crypto": {
			eth, "2", "1",
			balanceView{"ETH 2.000000000000000000", "ETH 1.000000000000000000", "1"},
		},
		"both zero": {
			btc, "0", "0",
			balanceView{"BTC 0.00000000", "BTC 0.00000000", "0"},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			current := MustParseValue(tt.curr, tt.current)
			previous := MustParseValue(tt.curr, tt.previous)
			got, err := BalanceInfoBetween(current, previous)
			if err != nil {
				t.Fatalf("BalanceInfoBetween(%v, %v) failed: %v", current, previous, err)
			}
			if diff := cmp.Diff(tt.want, viewOf(got)); diff != "" {
				t.Errorf("BalanceInfoBetween(%v, %v) mismatch (-want +got):\n%s", current, previous, diff)
			}
		})
	}
}

func TestBalanceInfoBetween_Mismatch(t *testing.T) {
	current := MustParseValue(btc, "1")
	previous := MustParseValue(usd, "1")
	got, err := BalanceInfoBetween(current, previous)
	if !errors.Is(err, ErrUnableToRetrieve) {
		t.Errorf("BalanceInfoBetween(%v, %v) error = %v, want %v", current, previous, err, ErrUnableToRetrieve)
	}
	if !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("BalanceInfoBetween(%v, %v) error = %v, want %v", current, previous, err, ErrCurrencyMismatch)
	}
	if got.ChangePercentage != "" || !got.Balance.Curr().Equal(Currency{}) {
		t.Errorf("BalanceInfoBetween(%v, %v) returned a partial result: %+v", current, previous, viewOf(got))
	}
}
