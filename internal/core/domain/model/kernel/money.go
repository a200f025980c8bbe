package kernel

import (
	"fmt"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a zero-value Money is used.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney, MoneyFromString, or ZeroMoney")

// Money is a non-negative monetary amount. Arithmetic is exact (decimal), so a total
// computed from unit prices never suffers floating point drift.
//
// Example usage:
//
//	price, err := kernel.MoneyFromString("10.00")
//	if err != nil {
//	    return err
//	}
//	lineTotal := price.Mul(2) // 20.00
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates Money from a decimal amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", "unbounded")
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal string such as "19.99".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal: %w", s, err))
	}
	return NewMoney(amount)
}

// ZeroMoney returns a constructed zero amount, the identity for Add.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Mul returns m multiplied by a non-negative quantity. A negative quantity yields zero.
func (m Money) Mul(quantity int) Money {
	if quantity < 0 {
		return ZeroMoney()
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), guard: guard.NewConstructorGuard()}
}

// Equal compares amounts numerically, so 25 equals 25.00.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal exposes the amount for persistence and read models.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with two fraction digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate reports whether the value was built by one of the constructors.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
