// Package money models amounts in several currencies, deferred arithmetic
// over them and their reduction to a single currency through a Bank.
package money

import (
	"fmt"
)

// Money an amount in a single currency. Money is the only leaf of an Expression.
type Money struct {
	Amount   int64    `json:"amount"`
	Currency Currency `json:"currency"`
}

// New constructs Money
func New(amount int64, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// NewDollar constructs Money in USD
func NewDollar(amount int64) Money {
	return New(amount, USD)
}

// NewFranc constructs Money in CHF
func NewFranc(amount int64) Money {
	return New(amount, CHF)
}

// Times scales the amount, keeping the currency
func (m Money) Times(multiplier int64) Expression {
	return New(m.Amount*multiplier, m.Currency)
}

// Plus defers the addition to reduction time. Equal currencies are not collapsed.
func (m Money) Plus(addend Expression) Expression {
	return NewSum(m, addend)
}

// Reduce converts m to the currency to using the bank's rate for the pair.
// The division truncates toward zero.
func (m Money) Reduce(bank *Bank, to Currency) Money {
	rate := bank.Rate(m.Currency, to)
	return New(m.Amount/rate, to)
}

func (m Money) String() string {
	return fmt.Sprintf("%d %v", m.Amount, m.Currency)
}

func (Money) expression() {}
