package kernel

import (
	"fmt"

	"burgershop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// one of the constructor functions. Returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, MoneyFromString, or ZeroMoney",
)

// moneyScale is the number of digits after the decimal point for the
// currency's minor unit. Amounts with a finer scale are rejected rather
// than rounded.
const moneyScale = 2

// Money is a value object representing a non-negative monetary amount in the
// shop's currency. It is backed by exact fixed-point decimal arithmetic;
// binary floating point is never used for prices or totals.
//
// The zero value of Money is invalid and must be constructed via NewMoney,
// MoneyFromString, or ZeroMoney. Money is immutable: arithmetic methods
// return new values.
//
// Example usage:
//
//	base, _ := kernel.MoneyFromString("8.00")
//	extra, _ := kernel.MoneyFromString("1.50")
//	twoExtras, _ := extra.Multiply(2)
//	subtotal, _ := base.Add(twoExtras) // 11.00
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// NewMoney creates a Money value from a decimal amount.
// The amount must be non-negative and must not carry more than two decimal
// places; violations return a validation error.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	if amount.Exponent() < -moneyScale {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s has more than %d decimal places", amount.String(), moneyScale),
		)
	}

	return Money{amount: amount, isConstructed: true}, nil
}

// MoneyFromString parses a Money value from its decimal string representation,
// e.g. "8.00" or "1.5". Used when reconstructing amounts from persistence or
// inbound requests.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a properly constructed zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

// Add returns the sum of two Money values.
// Both operands must be properly constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return Money{amount: m.amount.Add(other.amount), isConstructed: true}, nil
}

// Sub returns the difference of two Money values.
// Fails if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s minus %s is negative", m.amount.String(), other.amount.String()),
		)
	}

	return Money{amount: result, isConstructed: true}, nil
}

// Multiply returns the amount multiplied by a non-negative integer factor.
// Used for pricing extra ingredients by quantity.
func (m Money) Multiply(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"factor",
			fmt.Errorf("%d is negative", factor),
		)
	}

	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor))), isConstructed: true}, nil
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with exactly two decimal places,
// e.g. "11.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two Money values by amount, ignoring representation scale:
// "1.5" and "1.50" are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate checks if the Money value is properly constructed.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
