package money

import (
	"fmt"
	"sort"
)

// Pair an ordered pair of currencies. The rate for From->To says how many
// units of From make one unit of To.
type Pair struct {
	From Currency
	To   Currency
}

// Rate an exchange rate registered for a Pair
type Rate struct {
	From Currency `json:"from"`
	To   Currency `json:"to"`
	Rate int64    `json:"rate"`
}

// Bank holds directional exchange rates and reduces expressions with them.
// A Bank is not safe for concurrent mutation; the zero value is an empty Bank.
type Bank struct {
	rates map[Pair]int64
}

// NewBank constructs a Bank with an empty rate table
func NewBank() *Bank {
	return &Bank{
		rates: map[Pair]int64{},
	}
}

// AddRate registers or overwrites the rate for from->to. The reverse pair is
// not implied. A zero rate is rejected; negative rates are accepted.
func (b *Bank) AddRate(from Currency, to Currency, rate int64) error {
	if rate == 0 {
		return fmt.Errorf("add rate [%v->%v]: %w", from, to, ErrInvalidRate)
	}
	if b.rates == nil {
		b.rates = map[Pair]int64{}
	}
	b.rates[Pair{From: from, To: to}] = rate
	return nil
}

// Rate returns the rate for from->to, or 1 when none is registered.
// The default also applies to pairs of different currencies; use LookupRate
// to tell those apart.
func (b *Bank) Rate(from Currency, to Currency) int64 {
	rate, ok := b.rates[Pair{From: from, To: to}]
	if !ok {
		return 1
	}
	return rate
}

// LookupRate returns the rate for from->to. Identical currencies default to 1,
// an unregistered pair of different currencies is ErrMissingRate.
func (b *Bank) LookupRate(from Currency, to Currency) (int64, error) {
	rate, ok := b.rates[Pair{From: from, To: to}]
	if ok {
		return rate, nil
	}
	if from == to {
		return 1, nil
	}
	return 0, fmt.Errorf("lookup rate [%v->%v]: %w", from, to, ErrMissingRate)
}

// Reduce evaluates source to a single Money in the currency to
func (b *Bank) Reduce(source Expression, to Currency) Money {
	return source.Reduce(b, to)
}

// ReduceStrict is Reduce, but fails with ErrMissingRate instead of treating
// an unregistered pair of different currencies as equivalent.
func (b *Bank) ReduceStrict(source Expression, to Currency) (Money, error) {
	err := Walk(source, func(m Money) error {
		_, err := b.LookupRate(m.Currency, to)
		return err
	})
	if err != nil {
		return Money{}, fmt.Errorf("reduce %v to %v: %w", source, to, err)
	}
	return b.Reduce(source, to), nil
}

// Rates returns a snapshot of the registered rates ordered by pair
func (b *Bank) Rates() []Rate {
	rates := make([]Rate, 0, len(b.rates))
	for pair, rate := range b.rates {
		rates = append(rates, Rate{From: pair.From, To: pair.To, Rate: rate})
	}
	sort.Slice(rates, func(i, j int) bool {
		if rates[i].From != rates[j].From {
			return rates[i].From.String() < rates[j].From.String()
		}
		return rates[i].To.String() < rates[j].To.String()
	})
	return rates
}
