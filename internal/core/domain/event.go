package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Event types emitted by wallet operations.
const (
	EventTypeWalletCreated    = "WALLET_CREATED"
	EventTypeFundsDeposited   = "FUNDS_DEPOSITED"
	EventTypeFundsWithdrawn   = "FUNDS_WITHDRAWN"
	EventTypeFundsTransferred = "FUNDS_TRANSFERRED"
)

// UnknownAggregateID is recorded when a payload carries no wallet id.
const UnknownAggregateID = "unknown"

// EventPayload is implemented by every per-event-type payload struct.
// AggregateID and CorrelationID return "" when the payload does not
// carry the respective field; the outbox store substitutes defaults.
//
// Payload structs never serialize their OccurredAt field: the outbox
// keeps its own createdAt and the broker envelope carries the time, so
// the serialized payload form stays deterministic.
type EventPayload interface {
	EventType() string
	AggregateID() string
	CorrelationID() string
}

// WalletCreated is emitted when a wallet is created for a user.
type WalletCreated struct {
	WalletID   string    `json:"walletId"`
	UserID     string    `json:"userId"`
	Currency   string    `json:"currency"`
	OccurredAt time.Time `json:"-"`
}

func (e WalletCreated) EventType() string     { return EventTypeWalletCreated }
func (e WalletCreated) AggregateID() string   { return e.WalletID }
func (e WalletCreated) CorrelationID() string { return "" }

// FundsDeposited is emitted after a deposit commits.
type FundsDeposited struct {
	WalletID        string          `json:"walletId"`
	UserID          string          `json:"userId"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	NewBalance      decimal.Decimal `json:"newBalance"`
	TransactionID   string          `json:"transactionId"`
	OccurredAt      time.Time       `json:"-"`
}

func (e FundsDeposited) EventType() string     { return EventTypeFundsDeposited }
func (e FundsDeposited) AggregateID() string   { return e.WalletID }
func (e FundsDeposited) CorrelationID() string { return "" }

// FundsWithdrawn is emitted after a withdrawal commits.
type FundsWithdrawn struct {
	WalletID        string          `json:"walletId"`
	UserID          string          `json:"userId"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	NewBalance      decimal.Decimal `json:"newBalance"`
	TransactionID   string          `json:"transactionId"`
	OccurredAt      time.Time       `json:"-"`
}

func (e FundsWithdrawn) EventType() string     { return EventTypeFundsWithdrawn }
func (e FundsWithdrawn) AggregateID() string   { return e.WalletID }
func (e FundsWithdrawn) CorrelationID() string { return "" }

// FundsTransferred is emitted after both legs of a transfer commit. It
// carries the correlation id shared by the two ledger entries.
type FundsTransferred struct {
	TransferID          string          `json:"correlationId"`
	SourceWalletID      string          `json:"sourceWalletId"`
	TargetWalletID      string          `json:"targetWalletId"`
	SourceUserID        string          `json:"sourceUserId"`
	TargetUserID        string          `json:"targetUserId"`
	Amount              decimal.Decimal `json:"amount"`
	Currency            string          `json:"currency"`
	SourceBalanceBefore decimal.Decimal `json:"sourceBalanceBefore"`
	SourceBalanceAfter  decimal.Decimal `json:"sourceBalanceAfter"`
	TargetBalanceBefore decimal.Decimal `json:"targetBalanceBefore"`
	TargetBalanceAfter  decimal.Decimal `json:"targetBalanceAfter"`
	OccurredAt          time.Time       `json:"-"`
}

func (e FundsTransferred) EventType() string     { return EventTypeFundsTransferred }
func (e FundsTransferred) AggregateID() string   { return e.SourceWalletID }
func (e FundsTransferred) CorrelationID() string { return e.TransferID }

// EventEnvelope wraps a serialized payload for broker delivery.
// Consumers deduplicate by EventID: delivery is at-least-once.
type EventEnvelope struct {
	EventID       string          `json:"eventId"`
	EventType     string          `json:"eventType"`
	AggregateID   string          `json:"aggregateId,omitempty"`
	Payload       json.RawMessage `json:"payload"`
	CreatedAt     time.Time       `json:"createdAt"`
	CorrelationID string          `json:"correlationId,omitempty"`
}
