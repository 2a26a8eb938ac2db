package ports

import (
	"context"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WalletService defines the wallet use cases. Mutating operations run
// as one atomic unit of work spanning the wallet write, the ledger
// entry and the outbox event.
type WalletService interface {
	CreateWallet(ctx context.Context, userID, currency string) (*domain.Wallet, error)
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)
	Deposit(ctx context.Context, userID string, amount domain.Money) (*domain.WalletTransaction, error)
	Withdraw(ctx context.Context, userID string, amount domain.Money) (*domain.WalletTransaction, error)
	// Transfer returns both ledger entries, withdraw leg first.
	Transfer(ctx context.Context, fromUserID, toUserID string, amount domain.Money) ([]domain.WalletTransaction, error)
	GetBalance(ctx context.Context, userID string) (domain.Money, error)
	// GetHistoricalBalance returns the balance at end of day of date.
	GetHistoricalBalance(ctx context.Context, userID string, date time.Time) (domain.Money, error)
}

// WalletEventPublisher publishes events to the synchronous event
// channel. Best-effort: callers log failures and never roll back.
type WalletEventPublisher interface {
	PublishWalletEvent(ctx context.Context, payload domain.EventPayload) error
}

// OutboxEventPublisher durably records an intent-to-publish inside the
// caller's unit of work. A failure must abort the enclosing work.
type OutboxEventPublisher interface {
	PublishOutboxEvent(ctx context.Context, tx pgx.Tx, payload domain.EventPayload) error
}

// BrokerPublisher is the message transport primitive. Publish blocks
// until the broker acknowledges the message or the context expires.
type BrokerPublisher interface {
	Publish(ctx context.Context, stream, key string, message []byte) error
}
