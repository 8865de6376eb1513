package money

import (
	"testing"

	fixed "github.com/govalues/decimal"
)

func TestValue_Fixed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			v    Value
			want string
		}{
			{MustParseValue(usd, "10.5"), "10.50"},
			{MustParseValue(usd, "-0.01"), "-0.01"},
			{MustParseValue(jpy, "1000"), "1000"},
			{MustParseValue(btc, "1.5"), "1.50000000"},
		}
		for _, tt := range tests {
			got, err := tt.v.Fixed()
			if err != nil {
				t.Errorf("%v.Fixed() failed: %v", tt.v, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%v.Fixed() = %v, want %v", tt.v, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		v := MustParseValue(eth, "100")
		if _, err := v.Fixed(); err == nil {
			t.Errorf("%v.Fixed() did not fail", v)
		}
	})
}

func TestNewValueFromFixed(t *testing.T) {
	tests := []struct {
		curr Currency
		d    string
		want string
	}{
		{usd, "1.239", "USD 1.23"},
		{usd, "-1.239", "USD -1.23"},
		{usd, "10.5", "USD 10.50"},
		{btc, "5", "BTC 5.00000000"},
		{eth, "0.000000000000000001", "ETH 0.000000000000000001"},
	}
	for _, tt := range tests {
		got := NewValueFromFixed(tt.curr, fixed.MustParse(tt.d))
		if got.String() != tt.want {
			t.Errorf("NewValueFromFixed(%v, %v) = %v, want %v", tt.curr, tt.d, got, tt.want)
		}
	}
}
