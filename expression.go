package money

import (
	"fmt"
)

// Expression deferred arithmetic over Money. The only implementations are
// Money and Sum, and trees are never modified once built.
type Expression interface {
	// Reduce evaluates the expression to a single amount in the currency to
	Reduce(bank *Bank, to Currency) Money
	// Times scales every leaf of the expression
	Times(multiplier int64) Expression
	// Plus wraps the expression and addend in a new Sum
	Plus(addend Expression) Expression

	String() string

	expression()
}

// Sum the addition of two expressions
type Sum struct {
	Augend Expression
	Addend Expression
}

// NewSum constructs a Sum. Nested sums are accepted on either side.
func NewSum(augend, addend Expression) Sum {
	return Sum{Augend: augend, Addend: addend}
}

// Reduce reduces both sides to the same currency and adds the amounts
func (s Sum) Reduce(bank *Bank, to Currency) Money {
	augend := s.Augend.Reduce(bank, to)
	addend := s.Addend.Reduce(bank, to)
	return New(augend.Amount+addend.Amount, to)
}

// Times distributes the multiplier over both sides
func (s Sum) Times(multiplier int64) Expression {
	return NewSum(s.Augend.Times(multiplier), s.Addend.Times(multiplier))
}

// Plus wraps the sum and addend in a new Sum
func (s Sum) Plus(addend Expression) Expression {
	return NewSum(s, addend)
}

func (s Sum) String() string {
	return fmt.Sprintf("(%v + %v)", s.Augend, s.Addend)
}

func (Sum) expression() {}

// Walk calls fn for every Money leaf of expr, augend before addend.
// Walk stops at the first error returned by fn.
func Walk(expr Expression, fn func(Money) error) error {
	switch e := expr.(type) {
	case Money:
		return fn(e)
	case Sum:
		if err := Walk(e.Augend, fn); err != nil {
			return err
		}
		return Walk(e.Addend, fn)
	default:
		return fmt.Errorf("walk: unexpected expression %T", expr)
	}
}

// Leaves returns the Money leaves of expr in evaluation order
func Leaves(expr Expression) []Money {
	var leaves []Money
	_ = Walk(expr, func(m Money) error {
		leaves = append(leaves, m)
		return nil
	})
	return leaves
}

// Depth the number of Sum levels above the deepest leaf. A lone Money has depth 0.
func Depth(expr Expression) int {
	s, ok := expr.(Sum)
	if !ok {
		return 0
	}
	augend, addend := Depth(s.Augend), Depth(s.Addend)
	if augend > addend {
		return augend + 1
	}
	return addend + 1
}
