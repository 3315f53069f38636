package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits every Money value carries.
const MoneyScale = 4

// ZeroMoney is the canonical zero-valued Money at the ledger scale.
var ZeroMoney = Money{amount: decimal.New(0, -MoneyScale)}

// Money is a non-negative monetary value with a fixed scale of 4 digits.
// The zero value is usable but callers should prefer ZeroMoney so the
// scale is explicit.
type Money struct {
	amount decimal.Decimal
}

// NewMoney constructs a Money from a raw decimal, rounding half away from
// zero to MoneyScale. Negative input is rejected with ErrInvalidAmount.
func NewMoney(value decimal.Decimal) (Money, error) {
	if value.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount must not be negative: %s", ErrInvalidAmount, value)
	}

	return Money{amount: value.Round(MoneyScale)}, nil
}

// NewMoneyFromString constructs a Money from a decimal string.
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidAmount, value)
	}

	return NewMoney(d)
}

// Add returns the sum of two Money values. Scale is preserved.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two Money values. The result may be
// negative; only construction from raw input forbids negatives.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Equal compares by numeric value, ignoring representation.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the value is numerically zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the value is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
