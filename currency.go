package money

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

//go:generate go run scripts/currency/codegen.go

// MaxPrecision is the largest number of fractional digits a currency may declare.
const MaxPrecision = 36

// Kind distinguishes fiat currencies from crypto currencies.
type Kind uint8

const (
	Fiat Kind = iota
	Crypto
)

// String implements the [fmt.Stringer] interface.
func (k Kind) String() string {
	switch k {
	case Fiat:
		return "fiat"
	case Crypto:
		return "crypto"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind converts "fiat" or "crypto" (in any case) to a kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "fiat":
		return Fiat, nil
	case "crypto":
		return Crypto, nil
	}
	return 0, fmt.Errorf("parsing kind %q: %w", s, errInvalidCurrency)
}

// Currency represents a fiat or crypto currency.
// The zero value is not a valid currency.
//
// Currency is an immutable value and is safe for concurrent use by multiple
// goroutines. Two currencies are the same currency when they have the same
// kind and code, see [Currency.Equal].
type Currency struct {
	kind      Kind
	code      string
	name      string
	symbol    string
	precision int
	minorUnit string
}

// NewFiat returns a fiat currency.
// An empty symbol makes the currency display with its code.
//
// NewFiat returns an error if:
//   - the code is empty, contains whitespace or lowercase letters;
//   - the precision is negative or greater than [MaxPrecision].
func NewFiat(code, name, symbol string, precision int) (Currency, error) {
	c := Currency{kind: Fiat, code: code, name: name, symbol: symbol, precision: precision}
	if err := c.validate(); err != nil {
		return Currency{}, err
	}
	return c, nil
}

// NewCrypto returns a crypto currency.
// The minor unit is the name of the smallest indivisible unit, e.g. "satoshi".
//
// NewCrypto returns an error under the same conditions as [NewFiat].
func NewCrypto(code, name string, precision int, minorUnit string) (Currency, error) {
	c := Currency{kind: Crypto, code: code, name: name, precision: precision, minorUnit: minorUnit}
	if err := c.validate(); err != nil {
		return Currency{}, err
	}
	return c, nil
}

func mustNewCurrency(c Currency, err error) Currency {
	if err != nil {
		panic(fmt.Sprintf("currency definition failed: %v", err))
	}
	return c
}

func (c Currency) validate() error {
	if c.code == "" {
		return fmt.Errorf("%w: empty code", errInvalidCurrency)
	}
	for _, r := range c.code {
		if unicode.IsLower(r) || unicode.IsSpace(r) {
			return fmt.Errorf("%w: code %q must be uppercase without spaces", errInvalidCurrency, c.code)
		}
	}
	if c.precision < 0 || c.precision > MaxPrecision {
		return fmt.Errorf("%w: precision %v of %q is out of range [0, %v]", errInvalidCurrency, c.precision, c.code, MaxPrecision)
	}
	return nil
}

// Kind returns whether the currency is fiat or crypto.
func (c Currency) Kind() Kind {
	return c.kind
}

// IsFiat returns true for fiat currencies.
func (c Currency) IsFiat() bool {
	return c.kind == Fiat
}

// IsCrypto returns true for crypto currencies.
func (c Currency) IsCrypto() bool {
	return c.kind == Crypto
}

// Code returns the short uppercase identifier of the currency, e.g. "BTC".
func (c Currency) Code() string {
	return c.code
}

// Name returns the human-readable name of the currency.
func (c Currency) Name() string {
	return c.name
}

// Symbol returns the display symbol.
// Fiat currencies use their configured symbol, falling back to the code.
// Crypto currencies always display with their code.
func (c Currency) Symbol() string {
	if c.kind == Fiat && c.symbol != "" {
		return c.symbol
	}
	return c.code
}

// MinorUnit returns the name of the smallest unit of a crypto currency.
// It is empty for fiat currencies.
func (c Currency) MinorUnit() string {
	return c.minorUnit
}

// Precision returns the number of digits after the decimal point used for
// displaying major units and for scaling minor units.
// For example, Bitcoin has a precision of 8 and Ether a precision of 18.
func (c Currency) Precision() int {
	return c.precision
}

// Equal returns true if currencies have the same kind and code.
func (c Currency) Equal(d Currency) bool {
	return c.kind == d.kind && c.code == d.code
}

// String method implements the [fmt.Stringer] interface and returns
// the currency code.
func (c Currency) String() string {
	return c.code
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Currencies are always encoded by code; decoding requires a [Registry].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.code), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | BTC     | Currency        |
//	| %q         | "BTC"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
func (c Currency) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 'q', 'Q':
		s = `"` + c.code + `"`
	case 's', 'S', 'v', 'V', 'c', 'C':
		s = c.code
	default:
		fmt.Fprintf(state, "%%!%c(money.Currency=%s)", verb, c.code)
		return
	}
	writePadded(state, s)
}

// writePadded writes s honouring the width and '-' flag of the state.
func writePadded(state fmt.State, s string) {
	w, ok := state.Width()
	pad := 0
	if ok && w > len(s) {
		pad = w - len(s)
	}
	//nolint:errcheck
	switch {
	case pad == 0:
		state.Write([]byte(s))
	case state.Flag('-'):
		state.Write([]byte(s + strings.Repeat(" ", pad)))
	default:
		state.Write([]byte(strings.Repeat(" ", pad) + s))
	}
}

// Registry resolves currency codes to currencies.
// A registry is immutable once constructed and is safe for concurrent use
// by multiple goroutines. There is no package-level registry; callers
// construct one and pass it to the components that need it.
type Registry struct {
	fiat   map[string]Currency
	crypto map[string]Currency
}

// NewRegistry returns a registry holding the given currencies.
//
// NewRegistry returns an error if a currency is invalid or if two currencies
// of the same kind share a code.
func NewRegistry(currs ...Currency) (*Registry, error) {
	r := &Registry{
		fiat:   make(map[string]Currency),
		crypto: make(map[string]Currency),
	}
	if err := r.add(currs); err != nil {
		return nil, err
	}
	return r, nil
}

// NewDefaultRegistry returns a new registry holding [DefaultCurrencies].
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultCurrencies()...)
	if err != nil {
		panic(fmt.Sprintf("NewDefaultRegistry() failed: %v", err))
	}
	return r
}

func (r *Registry) add(currs []Currency) error {
	for _, c := range currs {
		if err := c.validate(); err != nil {
			return fmt.Errorf("registering currency: %w", err)
		}
		table := r.table(c.kind)
		if _, ok := table[c.code]; ok {
			return fmt.Errorf("registering currency: %w: duplicate %v code %q", errInvalidCurrency, c.kind, c.code)
		}
		table[c.code] = c
	}
	return nil
}

func (r *Registry) table(k Kind) map[string]Currency {
	if k == Crypto {
		return r.crypto
	}
	return r.fiat
}

// With returns a new registry holding the currencies of r and extra.
// The receiver is left unchanged.
func (r *Registry) With(extra ...Currency) (*Registry, error) {
	n := &Registry{
		fiat:   make(map[string]Currency, len(r.fiat)),
		crypto: make(map[string]Currency, len(r.crypto)+len(extra)),
	}
	for code, c := range r.fiat {
		n.fiat[code] = c
	}
	for code, c := range r.crypto {
		n.crypto[code] = c
	}
	if err := n.add(extra); err != nil {
		return nil, err
	}
	return n, nil
}

// Lookup resolves a code against the crypto and then the fiat currencies.
// Matching is case-sensitive and exact.
// Lookup returns false if the code is unknown.
func (r *Registry) Lookup(code string) (Currency, bool) {
	if c, ok := r.crypto[code]; ok {
		return c, true
	}
	c, ok := r.fiat[code]
	return c, ok
}

// Parse is like [Registry.Lookup] but returns [ErrUnknownCurrency] if the code
// is unknown.
func (r *Registry) Parse(code string) (Currency, error) {
	c, ok := r.Lookup(code)
	if !ok {
		return Currency{}, fmt.Errorf("parsing currency %q: %w", code, ErrUnknownCurrency)
	}
	return c, nil
}

// MustParse is like [Registry.Parse] but panics if the code is unknown.
// It simplifies safe initialization of variables holding currencies.
func (r *Registry) MustParse(code string) Currency {
	c, err := r.Parse(code)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", code, err))
	}
	return c
}

// Currencies returns the currencies of the given kind sorted by code.
func (r *Registry) Currencies(k Kind) []Currency {
	table := r.table(k)
	res := make([]Currency, 0, len(table))
	for _, c := range table {
		res = append(res, c)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].code < res[j].code })
	return res
}

// Len returns the number of currencies in the registry.
func (r *Registry) Len() int {
	return len(r.fiat) + len(r.crypto)
}
