package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Money is a value object for monetary amounts, held as integer cents to keep
// pricing arithmetic exact. Surcharges and totals are flat additions, so no
// fractional-cent rounding can occur.
//
// The zero value is a valid amount of zero cents. Negative amounts are invalid
// and rejected by the constructor.
//
// Money is immutable: arithmetic methods return new values.
type Money struct {
	cents int64
}

// NewMoney creates a monetary amount from a number of cents.
// Returns an error for negative amounts; prices and surcharges in this domain
// are never negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"cents",
			fmt.Errorf("%d is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// MustNewMoney creates a monetary amount from cents and panics on a negative
// value. Intended for fixed tariffs known at compile time.
func MustNewMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyBy returns the amount multiplied by a non-negative factor.
// Used to scale unit prices by line-item quantities.
func (m Money) MultiplyBy(factor int) (Money, error) {
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"factor",
			fmt.Errorf("%d is negative", factor),
		)
	}
	return Money{cents: m.cents * int64(factor)}, nil
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// IsZero reports whether the amount is zero cents.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// String formats the amount as dollars, e.g. "$22.00".
// Implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("$%d.%02d", m.cents/100, m.cents%100)
}
