// Package budget is a fixture for structural chunking tests.
package budget

import (
	"errors"
	"fmt"
)

// ErrOverBudget is returned when a request exceeds its token budget.
var ErrOverBudget = errors.New("over budget")

// Budget tracks token spend against a ceiling.
type Budget struct {
	Ceiling int
	Spent   int
}

// Spend records n tokens, failing once the ceiling would be crossed.
func (b *Budget) Spend(n int) error {
	if b.Spent+n > b.Ceiling {
		return fmt.Errorf("%w: %d + %d > %d", ErrOverBudget, b.Spent, n, b.Ceiling)
	}
	b.Spent += n
	return nil
}

// Remaining reports the unspent budget.
func (b *Budget) Remaining() int {
	return b.Ceiling - b.Spent
}

const (
	DefaultCeiling = 500
	DefaultOverlap = 50
)

// trailing comment kept with the last declaration
