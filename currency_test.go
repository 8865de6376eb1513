package money

import (
	"errors"
	"fmt"
	"testing"
)

var testReg = NewDefaultRegistry()

var (
	usd = testReg.MustParse("USD")
	jpy = testReg.MustParse("JPY")
	btc = testReg.MustParse("BTC")
	eth = testReg.MustParse("ETH")
)

func TestNewFiat(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c, err := NewFiat("XAU", "Gold", "", 4)
		if err != nil {
			t.Fatalf("NewFiat(\"XAU\") failed: %v", err)
		}
		if c.Kind() != Fiat || !c.IsFiat() || c.IsCrypto() {
			t.Errorf("NewFiat(\"XAU\").Kind() = %v, want %v", c.Kind(), Fiat)
		}
		if got := c.Symbol(); got != "XAU" {
			t.Errorf("%v.Symbol() = %q, want %q", c, got, "XAU")
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			code string
			prec int
		}{
			"empty code":     {"", 2},
			"lowercase code": {"usd", 2},
			"mixed code":     {"Usd", 2},
			"space in code":  {"U SD", 2},
			"negative prec":  {"USD", -1},
			"prec too large": {"USD", MaxPrecision + 1},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewFiat(tt.code, "", "", tt.prec)
				if err == nil {
					t.Errorf("NewFiat(%q, %v) did not fail", tt.code, tt.prec)
				}
			})
		}
	})
}

func TestNewCrypto(t *testing.T) {
	c, err := NewCrypto("USDC", "USD Coin", 6, "microusdc")
	if err != nil {
		t.Fatalf("NewCrypto(\"USDC\") failed: %v", err)
	}
	if c.Kind() != Crypto {
		t.Errorf("%v.Kind() = %v, want %v", c, c.Kind(), Crypto)
	}
	if c.MinorUnit() != "microusdc" {
		t.Errorf("%v.MinorUnit() = %q, want %q", c, c.MinorUnit(), "microusdc")
	}
	if c.Symbol() != "USDC" {
		t.Errorf("%v.Symbol() = %q, want %q", c, c.Symbol(), "USDC")
	}
	if _, err := NewCrypto("eth", "", 18, "wei"); err == nil {
		t.Errorf("NewCrypto(\"eth\") did not fail")
	}
}

func TestCurrency_Precision(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"JPY", 0},
		{"USD", 2},
		{"EUR", 2},
		{"KWD", 3},
		{"BTC", 8},
		{"BCH", 8},
		{"XLM", 7},
		{"DOT", 10},
		{"ETH", 18},
		{"PAX", 18},
	}
	for _, tt := range tests {
		c := testReg.MustParse(tt.code)
		if got := c.Precision(); got != tt.want {
			t.Errorf("%v.Precision() = %v, want %v", c, got, tt.want)
		}
	}
}

func TestCurrency_Symbol(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"USD", "$"},
		{"EUR", "€"},
		{"GBP", "£"},
		{"BTC", "BTC"},
		{"ETH", "ETH"},
	}
	for _, tt := range tests {
		c := testReg.MustParse(tt.code)
		if got := c.Symbol(); got != tt.want {
			t.Errorf("%v.Symbol() = %q, want %q", c, got, tt.want)
		}
	}
}

func TestCurrency_Equal(t *testing.T) {
	fiat, _ := NewFiat("XAU", "Gold", "", 2)
	crypto, _ := NewCrypto("XAU", "Gold token", 2, "")
	other, _ := NewFiat("XAU", "Gold (troy)", "oz", 2)
	if fiat.Equal(crypto) {
		t.Errorf("%v.Equal(%v) across kinds = true, want false", fiat, crypto)
	}
	if !fiat.Equal(other) {
		t.Errorf("%v.Equal(%v) with same kind and code = false, want true", fiat, other)
	}
	if usd.Equal(btc) {
		t.Errorf("%v.Equal(%v) = true, want false", usd, btc)
	}
}

func TestCurrency_Format(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"%v", "BTC"},
		{"%s", "BTC"},
		{"%c", "BTC"},
		{"%q", "\"BTC\""},
		{"%5v", "  BTC"},
		{"%-5v|", "BTC  |"},
		{"%d", "%!d(money.Currency=BTC)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, btc)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, btc, got, tt.want)
		}
	}
}

func TestCurrency_MarshalText(t *testing.T) {
	got, err := eth.MarshalText()
	if err != nil {
		t.Fatalf("%v.MarshalText() failed: %v", eth, err)
	}
	if string(got) != "ETH" {
		t.Errorf("%v.MarshalText() = %q, want %q", eth, got, "ETH")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		s    string
		want Kind
	}{
		{"fiat", Fiat},
		{"FIAT", Fiat},
		{"crypto", Crypto},
		{"Crypto", Crypto},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.s)
		if err != nil {
			t.Errorf("ParseKind(%q) failed: %v", tt.s, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
	if _, err := ParseKind("token"); err == nil {
		t.Errorf("ParseKind(\"token\") did not fail")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for _, code := range []string{"USD", "EUR", "JPY", "BTC", "BCH", "ETH", "XLM"} {
			c, ok := testReg.Lookup(code)
			if !ok {
				t.Errorf("Lookup(%q) did not find currency", code)
				continue
			}
			if c.Code() != code {
				t.Errorf("Lookup(%q).Code() = %q", code, c.Code())
			}
		}
	})

	t.Run("unknown", func(t *testing.T) {
		for _, code := range []string{"", "usd", "btc", "Btc", "XYZ", " BTC", "BTC "} {
			if _, ok := testReg.Lookup(code); ok {
				t.Errorf("Lookup(%q) found a currency", code)
			}
		}
	})

	t.Run("crypto first", func(t *testing.T) {
		fiat, _ := NewFiat("XAU", "Gold", "", 2)
		crypto, _ := NewCrypto("XAU", "Gold token", 6, "")
		reg, err := NewRegistry(fiat, crypto)
		if err != nil {
			t.Fatalf("NewRegistry() failed: %v", err)
		}
		got, ok := reg.Lookup("XAU")
		if !ok || got.Kind() != Crypto {
			t.Errorf("Lookup(\"XAU\") = %v %v, want crypto", got.Kind(), ok)
		}
	})
}

func TestRegistry_Parse(t *testing.T) {
	_, err := testReg.Parse("XYZ")
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("Parse(\"XYZ\") error = %v, want %v", err, ErrUnknownCurrency)
	}
}

func TestRegistry_MustParse(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParse(\"XYZ\") did not panic")
		}
	}()
	testReg.MustParse("XYZ")
}

func TestNewRegistry(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		a, _ := NewFiat("USD", "US Dollar", "$", 2)
		b, _ := NewFiat("USD", "Dollar", "US$", 2)
		if _, err := NewRegistry(a, b); err == nil {
			t.Errorf("NewRegistry() with duplicate codes did not fail")
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := NewRegistry(Currency{}); err == nil {
			t.Errorf("NewRegistry(Currency{}) did not fail")
		}
	})
}

func TestRegistry_With(t *testing.T) {
	usdc, _ := NewCrypto("USDC", "USD Coin", 6, "")
	reg, err := testReg.With(usdc)
	if err != nil {
		t.Fatalf("With(%v) failed: %v", usdc, err)
	}
	if _, ok := reg.Lookup("USDC"); !ok {
		t.Errorf("With(%v).Lookup(\"USDC\") did not find currency", usdc)
	}
	if _, ok := testReg.Lookup("USDC"); ok {
		t.Errorf("With(%v) modified the receiver", usdc)
	}
	if got, want := reg.Len(), testReg.Len()+1; got != want {
		t.Errorf("With(%v).Len() = %v, want %v", usdc, got, want)
	}
	if _, err := reg.With(usdc); err == nil {
		t.Errorf("With(%v) twice did not fail", usdc)
	}
}

func TestRegistry_Currencies(t *testing.T) {
	fiat := testReg.Currencies(Fiat)
	crypto := testReg.Currencies(Crypto)
	if len(fiat)+len(crypto) != testReg.Len() {
		t.Errorf("Currencies() returned %v + %v currencies, want %v", len(fiat), len(crypto), testReg.Len())
	}
	for i := 1; i < len(fiat); i++ {
		if fiat[i-1].Code() >= fiat[i].Code() {
			t.Errorf("Currencies(Fiat) is not sorted: %v before %v", fiat[i-1], fiat[i])
		}
	}
	for _, c := range crypto {
		if !c.IsCrypto() {
			t.Errorf("Currencies(Crypto) returned %v of kind %v", c, c.Kind())
		}
	}
}
