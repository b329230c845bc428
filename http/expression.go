package http

import (
	"errors"
	"fmt"
	"go-money-expression"
	"math"
)

var errBadExpression = errors.New("bad expression")

// node the JSON form of an expression. A node is either a leaf
// {"amount":5,"currency":"USD"} or a sum {"augend":{...},"addend":{...}},
// optionally scaled by "times".
type node struct {
	Amount   *int64 `json:"amount,omitempty"`
	Currency string `json:"currency,omitempty"`
	Augend   *node  `json:"augend,omitempty"`
	Addend   *node  `json:"addend,omitempty"`
	Times    *int64 `json:"times,omitempty"`
}

// expression builds the expression tree described by n
func (n *node) expression() (money.Expression, error) {
	if n == nil {
		return nil, fmt.Errorf("missing node: %w", errBadExpression)
	}

	var expr money.Expression
	switch {
	case n.Augend != nil || n.Addend != nil:
		if n.Augend == nil || n.Addend == nil {
			return nil, fmt.Errorf("sum needs augend and addend: %w", errBadExpression)
		}
		if n.Amount != nil || n.Currency != "" {
			return nil, fmt.Errorf("sum cannot carry an amount: %w", errBadExpression)
		}
		augend, err := n.Augend.expression()
		if err != nil {
			return nil, err
		}
		addend, err := n.Addend.expression()
		if err != nil {
			return nil, err
		}
		expr = augend.Plus(addend)
	default:
		if n.Amount == nil {
			return nil, fmt.Errorf("money needs an amount: %w", errBadExpression)
		}
		currency, err := money.ParseCurrency(n.Currency)
		if err != nil {
			return nil, err
		}
		expr = money.New(*n.Amount, currency)
	}

	if n.Times != nil {
		err := money.Walk(expr, func(m money.Money) error {
			if mulOverflows(m.Amount, *n.Times) {
				return fmt.Errorf("%v times %d overflows: %w", m, *n.Times, errBadExpression)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		expr = expr.Times(*n.Times)
	}
	return expr, nil
}

// mulOverflows reports whether a*b does not fit in an int64
func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return true
	}
	return (a*b)/b != a
}
