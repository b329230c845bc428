package money

import "errors"

var (
	// ErrUnknownCurrency a currency code outside the supported set
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrInvalidRate a rate that cannot be used for conversion, i.e. zero
	ErrInvalidRate = errors.New("invalid rate")
	// ErrMissingRate no rate registered for a pair of different currencies
	ErrMissingRate = errors.New("missing rate")
)
