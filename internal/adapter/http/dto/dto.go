package dto

import "github.com/shopspring/decimal"

// CreateWalletRequest is the request body for wallet creation.
type CreateWalletRequest struct {
	UserID   string `json:"userId" binding:"required,min=1,max=100"`
	Currency string `json:"currency" binding:"required,len=3"`
}

// DepositRequest is the request body for a deposit.
type DepositRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required,len=3"`
}

// WithdrawRequest is the request body for a withdrawal.
type WithdrawRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required,len=3"`
}

// TransferRequest is the request body for a transfer between users.
type TransferRequest struct {
	FromUserID string          `json:"fromUserId" binding:"required"`
	ToUserID   string          `json:"toUserId" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Currency   string          `json:"currency" binding:"required,len=3"`
}

// WalletResponse is the response body for wallet queries.
type WalletResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
	Version   int64           `json:"version"`
}

// TransactionResponse is the response body for ledger entries.
type TransactionResponse struct {
	ID            string          `json:"id"`
	WalletID      string          `json:"walletId"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	Currency      string          `json:"currency"`
	Description   string          `json:"description"`
	Timestamp     string          `json:"timestamp"`
	CorrelationID string          `json:"correlationId"`
}

// BalanceResponse is the response body for balance queries. Date is
// only set on historical queries.
type BalanceResponse struct {
	UserID   string          `json:"userId"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	Date     string          `json:"date,omitempty"`
}
