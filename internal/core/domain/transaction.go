package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType tags the kind of balance-affecting operation.
type TransactionType string

const (
	TransactionTypeDeposit     TransactionType = "DEPOSIT"
	TransactionTypeWithdraw    TransactionType = "WITHDRAW"
	TransactionTypeTransferIn  TransactionType = "TRANSFER_IN"
	TransactionTypeTransferOut TransactionType = "TRANSFER_OUT"
)

// WalletTransaction is an immutable ledger entry recording one balance
// mutation, with a snapshot of the wallet balance after it was applied.
// A transfer produces two entries (TRANSFER_OUT then TRANSFER_IN)
// sharing one correlation id. Seq is the store-assigned insertion
// sequence, used as the deterministic tie-break when several entries
// share a timestamp.
type WalletTransaction struct {
	ID            uuid.UUID       `json:"id"`
	WalletID      uuid.UUID       `json:"wallet_id"`
	Seq           int64           `json:"-"`
	Type          TransactionType `json:"type"`
	Amount        Money           `json:"-"`
	BalanceAfter  Money           `json:"-"`
	Description   string          `json:"description"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID uuid.UUID       `json:"correlation_id"`
}
