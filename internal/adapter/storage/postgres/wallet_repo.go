package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const uniqueViolationCode = "23505"

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet within a database transaction and assigns
// its ID. The unique constraint on user_id backs the one-wallet-per-user
// invariant even when two creations race past the service-level check.
func (r *WalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	w.ID = uuid.New()
	w.Version = 0

	query := `INSERT INTO wallets (id, user_id, balance, currency, created_at, updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		w.ID, w.UserID, w.Balance.Amount(), w.Balance.Currency(),
		w.CreatedAt, w.UpdatedAt, w.Version,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperror.ErrDuplicateWallet(w.UserID)
		}
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByUserID fetches a wallet by user ID. Returns nil, nil when the
// user has no wallet.
func (r *WalletRepo) GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `SELECT id, user_id, balance, currency, created_at, updated_at, version
		FROM wallets WHERE user_id = $1`

	return scanWallet(r.pool.QueryRow(ctx, query, userID))
}

// Update persists the wallet's balance with a compare-and-swap on the
// version column. Zero affected rows means a concurrent writer won; the
// caller must re-read and retry the whole operation.
func (r *WalletRepo) Update(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	query := `UPDATE wallets SET balance = $1, updated_at = $2, version = version + 1
		WHERE id = $3 AND version = $4`

	tag, err := tx.Exec(ctx, query, w.Balance.Amount(), w.UpdatedAt, w.ID, w.Version)
	if err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrVersionConflict()
	}
	w.Version++
	return nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	var amount decimal.Decimal
	var currency string

	err := row.Scan(&w.ID, &w.UserID, &amount, &currency, &w.CreatedAt, &w.UpdatedAt, &w.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan wallet: %w", err)
	}

	balance, err := domain.NewMoney(amount, currency)
	if err != nil {
		return nil, fmt.Errorf("restore wallet balance: %w", err)
	}
	w.Balance = balance
	return w, nil
}
