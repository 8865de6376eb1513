/*
Package money implements exact-precision monetary values for fiat and crypto
currencies, as used by a non-custodial wallet.
It stores amounts as arbitrary-precision integers of minor units (satoshi,
wei, cents) and relies on the [decimal] package only for parsing, rendering
and ratios.

# Features

  - Immutable values, ensuring safe usage across multiple goroutines
  - Fiat and crypto currencies with precisions of up to 36 digits
  - Arithmetic and comparison that refuse to mix currencies
  - Exact conversion between minor-unit and major-unit strings
  - Conversion of values using exchange rates
  - Balance change computation
  - A JSON codec that understands two legacy wire shapes

# Representation

The package consists of four main types: [Currency], [Amount], [Value] and
[ExchangeRate].
A Currency is a fiat or crypto currency with a code and a precision.
Currencies are resolved from codes by a [Registry], which callers construct
explicitly; there is no package-level registry.
An Amount is a signed number of minor units together with a precision.
A Value is a Currency and an Amount whose precision equals the precision of
the currency.

# Parsing

Major-unit strings accept a dot or a comma as the fractional separator.
Fractional digits beyond the precision of the currency are truncated, not
rounded, and an empty string is parsed as zero.

# Errors

Errors are returned as values and can be inspected with [errors.Is]:
[ErrParse], [ErrUnknownCurrency], [ErrCurrencyMismatch] and friends.
Decoding failures are reported as [*DecodingError].
Only the Must* helpers panic.

[decimal]: https://pkg.go.dev/github.com/shopspring/decimal
*/
package money
