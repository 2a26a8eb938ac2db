package postgres

import (
	"context"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransactionRepo implements ports.TransactionRepository. Ledger
// entries are append-only; there are no update or delete paths.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserts a ledger entry within a database transaction. The
// store assigns the insertion sequence, used to break ties between
// entries sharing a timestamp.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.WalletTransaction) error {
	query := `INSERT INTO wallet_transactions
		(id, wallet_id, type, amount, balance_after, currency, description, occurred_at, correlation_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING seq`

	err := tx.QueryRow(ctx, query,
		t.ID, t.WalletID, t.Type, t.Amount.Amount(), t.BalanceAfter.Amount(),
		t.Amount.Currency(), t.Description, t.Timestamp, t.CorrelationID,
	).Scan(&t.Seq)
	if err != nil {
		return fmt.Errorf("insert wallet transaction: %w", err)
	}
	return nil
}

// ListByWalletUntil fetches all entries for the wallet with
// occurred_at <= until, ascending by (occurred_at, seq).
func (r *TransactionRepo) ListByWalletUntil(ctx context.Context, walletID uuid.UUID, until time.Time) ([]domain.WalletTransaction, error) {
	query := `SELECT id, wallet_id, seq, type, amount, balance_after, currency, description, occurred_at, correlation_id
		FROM wallet_transactions
		WHERE wallet_id = $1 AND occurred_at <= $2
		ORDER BY occurred_at ASC, seq ASC`

	rows, err := r.pool.Query(ctx, query, walletID, until)
	if err != nil {
		return nil, fmt.Errorf("list wallet transactions: %w", err)
	}
	defer rows.Close()

	var entries []domain.WalletTransaction
	for rows.Next() {
		entry, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet transaction rows: %w", err)
	}
	return entries, nil
}

func scanTransaction(row pgx.Row) (*domain.WalletTransaction, error) {
	t := &domain.WalletTransaction{}
	var amount, balanceAfter decimal.Decimal
	var currency string

	err := row.Scan(
		&t.ID, &t.WalletID, &t.Seq, &t.Type, &amount, &balanceAfter,
		&currency, &t.Description, &t.Timestamp, &t.CorrelationID,
	)
	if err != nil {
		return nil, fmt.Errorf("scan wallet transaction: %w", err)
	}

	t.Amount, err = domain.NewMoney(amount, currency)
	if err != nil {
		return nil, fmt.Errorf("restore transaction amount: %w", err)
	}
	t.BalanceAfter, err = domain.NewMoney(balanceAfter, currency)
	if err != nil {
		return nil, fmt.Errorf("restore transaction balance: %w", err)
	}
	return t, nil
}
