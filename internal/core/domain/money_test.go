package domain

import (
	"testing"

	"wallet-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount string, currency string) Money {
	t.Helper()
	m, err := NewMoney(decimal.RequireFromString(amount), currency)
	require.NoError(t, err)
	return m
}

func TestNewMoney_NegativeAmount(t *testing.T) {
	_, err := NewMoney(decimal.NewFromInt(-1), "BRL")
	require.Error(t, err)
	assert.Equal(t, "WAL_001", apperror.CodeOf(err))
}

func TestNewMoney_NormalizesCurrencyCase(t *testing.T) {
	lower := mustMoney(t, "10", "usd")
	upper := mustMoney(t, "10", "USD")
	assert.True(t, lower.Equals(upper))
	assert.Equal(t, "USD", lower.Currency())
}

func TestNewMoney_RejectsBadCurrency(t *testing.T) {
	_, err := NewMoney(decimal.NewFromInt(1), "REAIS")
	require.Error(t, err)
	assert.Equal(t, "WAL_001", apperror.CodeOf(err))
}

func TestNewMoney_RoundsHalfUpToTwoDecimals(t *testing.T) {
	m := mustMoney(t, "10.005", "BRL")
	assert.Equal(t, "10.01", m.Amount().StringFixed(2))

	m = mustMoney(t, "10.004", "BRL")
	assert.Equal(t, "10.00", m.Amount().StringFixed(2))
}

func TestMoney_AddSubtractRoundTrip(t *testing.T) {
	a := mustMoney(t, "100.50", "BRL")
	b := mustMoney(t, "30.25", "BRL")

	sum, err := a.Add(b)
	require.NoError(t, err)
	back, err := sum.Subtract(b)
	require.NoError(t, err)
	assert.True(t, back.Equals(a))
}

func TestMoney_AddCurrencyMismatch(t *testing.T) {
	a := mustMoney(t, "10", "BRL")
	b := mustMoney(t, "10", "USD")

	_, err := a.Add(b)
	require.Error(t, err)
	assert.Equal(t, "WAL_002", apperror.CodeOf(err))
}

func TestMoney_SubtractInsufficientFunds(t *testing.T) {
	a := mustMoney(t, "10", "BRL")
	b := mustMoney(t, "10.01", "BRL")

	_, err := a.Subtract(b)
	require.Error(t, err)
	assert.Equal(t, "WAL_003", apperror.CodeOf(err))
}

func TestMoney_SubtractToZero(t *testing.T) {
	a := mustMoney(t, "10", "BRL")

	result, err := a.Subtract(a)
	require.NoError(t, err)
	assert.True(t, result.Amount().IsZero())
	assert.Equal(t, "BRL", result.Currency())
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "10.50 BRL", mustMoney(t, "10.5", "brl").String())
}
