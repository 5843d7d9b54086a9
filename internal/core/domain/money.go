package domain

import (
	"fmt"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places an amount may carry. It matches the
// NUMERIC(19,2) columns, so a stored amount always equals the one that was validated.
const MoneyScale = 2

// Money is a non-negative amount in the single currency unit the engine handles.
// The zero value is a valid zero amount. All operations return new values.
type Money struct {
	amount decimal.Decimal
}

// NewMoney builds Money from a decimal, rejecting negative values and values
// finer than a cent. Trailing zeros such as "1.500" are accepted.
func NewMoney(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount must be >= 0, got %s", apperrors.ErrValidation, d.String())
	}
	if !d.Equal(d.Truncate(MoneyScale)) {
		return Money{}, fmt.Errorf("%w: amount must have at most %d decimal places, got %s", apperrors.ErrValidation, MoneyScale, d.String())
	}
	return Money{amount: d}, nil
}

// MustMoney is NewMoney for values known to be valid (constants, tests).
func MustMoney(d decimal.Decimal) Money {
	m, err := NewMoney(d)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoney parses a decimal string such as "100.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: invalid amount %q", apperrors.ErrValidation, s)
	}
	return NewMoney(d)
}

// ZeroMoney returns an amount of zero.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub fails with ErrInsufficientBalance instead of going below zero.
func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, apperrors.ErrInsufficientBalance
	}
	return Money{amount: result}, nil
}

func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Decimal exposes the underlying value for persistence and transport.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.amount.MarshalJSON()
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	parsed, err := NewMoney(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
