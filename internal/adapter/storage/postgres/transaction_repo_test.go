package postgres

import (
	"context"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry(t *testing.T, walletID uuid.UUID, amount, after string) *domain.WalletTransaction {
	t.Helper()
	amt, err := domain.NewMoney(decimal.RequireFromString(amount), "BRL")
	require.NoError(t, err)
	bal, err := domain.NewMoney(decimal.RequireFromString(after), "BRL")
	require.NoError(t, err)
	return &domain.WalletTransaction{
		ID:            uuid.New(),
		WalletID:      walletID,
		Type:          domain.TransactionTypeDeposit,
		Amount:        amt,
		BalanceAfter:  bal,
		Description:   "Deposit to wallet",
		Timestamp:     time.Now().UTC().Truncate(time.Microsecond),
		CorrelationID: uuid.New(),
	}
}

func transactionColumns() []string {
	return []string{"id", "wallet_id", "seq", "type", "amount", "balance_after", "currency", "description", "occurred_at", "correlation_id"}
}

func transactionRow(e *domain.WalletTransaction, seq int64) []any {
	return []any{
		e.ID, e.WalletID, seq, e.Type, e.Amount.Amount(), e.BalanceAfter.Amount(),
		e.Amount.Currency(), e.Description, e.Timestamp, e.CorrelationID,
	}
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	entry := newTestEntry(t, uuid.New(), "30", "130")

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO wallet_transactions").
		WithArgs(entry.ID, entry.WalletID, entry.Type, entry.Amount.Amount(),
			entry.BalanceAfter.Amount(), "BRL", entry.Description, entry.Timestamp, entry.CorrelationID).
		WillReturnRows(pgxmock.NewRows([]string{"seq"}).AddRow(int64(7)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, entry)
	require.NoError(t, err)
	assert.EqualValues(t, 7, entry.Seq)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByWalletUntil(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	walletID := uuid.New()
	first := newTestEntry(t, walletID, "100", "100")
	second := newTestEntry(t, walletID, "30", "70")
	second.Type = domain.TransactionTypeWithdraw
	until := time.Now().UTC()

	rows := pgxmock.NewRows(transactionColumns()).
		AddRow(transactionRow(first, 1)...).
		AddRow(transactionRow(second, 2)...)

	mock.ExpectQuery("SELECT .+ FROM wallet_transactions").
		WithArgs(walletID, until).
		WillReturnRows(rows)

	entries, err := repo.ListByWalletUntil(context.Background(), walletID, until)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.EqualValues(t, 1, entries[0].Seq)
	assert.Equal(t, domain.TransactionTypeWithdraw, entries[1].Type)
	assert.True(t, entries[1].BalanceAfter.Amount().Equal(decimal.RequireFromString("70")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByWalletUntil_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	walletID := uuid.New()
	until := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM wallet_transactions").
		WithArgs(walletID, until).
		WillReturnRows(pgxmock.NewRows(transactionColumns()))

	entries, err := repo.ListByWalletUntil(context.Background(), walletID, until)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}
