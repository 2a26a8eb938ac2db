package domain

import (
	"time"

	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
)

// Wallet is the aggregate holding a user's balance. Exactly one wallet
// exists per user; the balance currency is fixed at creation. Version
// backs optimistic concurrency: the store rejects writes made against a
// stale version.
type Wallet struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Balance   Money     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int64     `json:"version"`
}

// NewWallet builds an unsaved wallet with a zero balance in the given
// currency. The ID is assigned by the repository on first save.
func NewWallet(userID, currency string) (*Wallet, error) {
	if userID == "" {
		return nil, apperror.ErrInvalidArgument("UserId cannot be empty")
	}
	balance, err := ZeroMoney(currency)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Wallet{
		UserID:    userID,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Deposit adds amount to the balance. In-memory only; durability is the
// repository's responsibility.
func (w *Wallet) Deposit(amount Money) error {
	if err := w.validateAmount(amount); err != nil {
		return err
	}
	balance, err := w.Balance.Add(amount)
	if err != nil {
		return err
	}
	w.Balance = balance
	w.UpdatedAt = time.Now().UTC()
	return nil
}

// Withdraw subtracts amount from the balance. Fails with insufficient
// funds when the balance would go negative.
func (w *Wallet) Withdraw(amount Money) error {
	if err := w.validateAmount(amount); err != nil {
		return err
	}
	balance, err := w.Balance.Subtract(amount)
	if err != nil {
		return err
	}
	w.Balance = balance
	w.UpdatedAt = time.Now().UTC()
	return nil
}

func (w *Wallet) validateAmount(amount Money) error {
	if !amount.IsPositive() {
		return apperror.ErrInvalidArgument("Amount must be positive")
	}
	if amount.Currency() != w.Balance.Currency() {
		return apperror.ErrCurrencyMismatch()
	}
	return nil
}
