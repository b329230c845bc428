// Package reduce evaluates money expressions against the current rate table.
package reduce

import (
	"context"
	"fmt"
	"go-money-expression"
	"go-money-expression/rates"
)

// Service reduces expressions and reports exchange rates
type Service interface {
	Reduce(ctx context.Context, expr money.Expression, to money.Currency) (money.Money, error)
	Rate(ctx context.Context, from money.Currency, to money.Currency) (int64, error)
}

// service reduces with a Bank loaded per call
type service struct {
	// ratesService to load the rate table from
	ratesService rates.Service

	// strict rejects unregistered pairs of different currencies instead of
	// treating them as equivalent
	strict bool
}

// NewService constructs a valid Service
func NewService(s rates.Service, strict bool) Service {
	return &service{
		ratesService: s,
		strict:       strict,
	}
}

// Reduce evaluates expr to a single amount in the currency to.
// In strict mode an unregistered cross-currency rate is money.ErrMissingRate.
func (s *service) Reduce(ctx context.Context, expr money.Expression, to money.Currency) (money.Money, error) {
	bank, err := rates.LoadBank(ctx, s.ratesService)
	if err != nil {
		return money.Money{}, fmt.Errorf("reduce to [%v]: %w", to, err)
	}

	if !s.strict {
		return bank.Reduce(expr, to), nil
	}
	return bank.ReduceStrict(expr, to)
}

// Rate returns the rate for from->to
func (s *service) Rate(ctx context.Context, from money.Currency, to money.Currency) (int64, error) {
	bank, err := rates.LoadBank(ctx, s.ratesService)
	if err != nil {
		return 0, fmt.Errorf("rate [%v->%v]: %w", from, to, err)
	}

	if !s.strict {
		return bank.Rate(from, to), nil
	}
	return bank.LookupRate(from, to)
}
