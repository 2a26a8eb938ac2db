package domain

import (
	"strings"

	"wallet-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
)

// Money is an immutable fixed-point amount in a single currency.
// Amounts are normalized to 2 fractional digits (round half-up) and are
// never negative. Construct via NewMoney; arithmetic returns new values.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney validates and normalizes an amount into a Money value.
// The currency code is upper-cased; the amount is scaled to 2 decimal
// places using round half-up.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, apperror.ErrInvalidArgument("Amount cannot be negative")
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return Money{}, apperror.ErrInvalidArgument("Currency must be a 3-letter code")
	}
	return Money{
		amount:   amount.Round(2),
		currency: currency,
	}, nil
}

// ZeroMoney returns a zero-amount Money in the given currency.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Amount returns the normalized amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the upper-cased 3-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Add returns the sum of two Money values of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, apperror.ErrCurrencyMismatch()
	}
	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns the difference of two Money values of the same
// currency. A negative result is rejected as insufficient funds.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, apperror.ErrCurrencyMismatch()
	}
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, apperror.ErrInsufficientFunds()
	}
	return NewMoney(result, m.currency)
}

// Equals reports value equality of amount and currency.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + m.currency
}
