package ports

import (
	"context"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepository defines persistence operations for wallets.
// Mutating methods take a pgx.Tx so they join the caller's unit of work.
type WalletRepository interface {
	// Create inserts a new wallet and assigns its ID.
	Create(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	// GetByUserID returns nil, nil when no wallet exists for the user.
	GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
	// Update persists wallet state with an optimistic version check:
	// the write only succeeds against the version the wallet was read
	// at, and increments it. A stale version yields a version conflict.
	Update(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
}

// TransactionRepository defines persistence for immutable ledger entries.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, entry *domain.WalletTransaction) error
	// ListByWalletUntil returns all entries for the wallet with
	// timestamp <= until, ascending by (timestamp, seq).
	ListByWalletUntil(ctx context.Context, walletID uuid.UUID, until time.Time) ([]domain.WalletTransaction, error)
}

// OutboxRepository defines persistence for outbox event rows. Creation
// joins the originating unit of work; status updates belong to the relay.
type OutboxRepository interface {
	Create(ctx context.Context, tx pgx.Tx, event *domain.OutboxEvent) error
	// ListUnprocessed returns up to limit unprocessed events created
	// before olderThan with retry_count below maxRetries, oldest first.
	ListUnprocessed(ctx context.Context, olderThan time.Time, maxRetries, limit int) ([]domain.OutboxEvent, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, processedAt time.Time) error
	// RecordFailure increments retry_count and stores the error message,
	// leaving the event unprocessed for a later cycle.
	RecordFailure(ctx context.Context, id uuid.UUID, errMsg string) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
