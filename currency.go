package money

import (
	"fmt"
)

// Currency a currency from the closed set of supported currencies.
// Values other than the zero value come only from the package level
// currencies or ParseCurrency.
type Currency struct {
	code string
}

var (
	// USD the dollar
	USD = Currency{code: "USD"}
	// CHF the franc
	CHF = Currency{code: "CHF"}
)

// Currencies returns every supported currency
func Currencies() []Currency {
	return []Currency{USD, CHF}
}

// ParseCurrency converts a currency code into a Currency.
// Codes are matched exactly, so "usd" is not USD.
func ParseCurrency(code string) (Currency, error) {
	for _, c := range Currencies() {
		if c.code == code {
			return c, nil
		}
	}
	return Currency{}, fmt.Errorf("parse currency [%v]: %w", code, ErrUnknownCurrency)
}

// Valid reports whether c belongs to the supported set. Only the zero value is invalid.
func (c Currency) Valid() bool {
	switch c {
	case USD, CHF:
		return true
	default:
		return false
	}
}

// Equal reports whether c and other are the same currency
func (c Currency) Equal(other Currency) bool {
	return c == other
}

func (c Currency) String() string {
	return c.code
}

// MarshalText renders the currency code
func (c Currency) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("marshal currency: %w", ErrUnknownCurrency)
	}
	return []byte(c.code), nil
}

// UnmarshalText parses a currency code
func (c *Currency) UnmarshalText(text []byte) error {
	parsed, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
