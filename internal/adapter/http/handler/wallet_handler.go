package handler

import (
	"time"

	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// WalletHandler handles wallet endpoints. Thin adapter only: binding,
// money construction and response mapping; all rules live in the
// service.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// CreateWallet handles POST /api/v1/wallets.
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidArgument(err.Error()))
		return
	}

	wallet, err := h.walletSvc.CreateWallet(c.Request.Context(), req.UserID, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toWalletResponse(wallet))
}

// GetWallet handles GET /api/v1/wallets/:userId.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	wallet, err := h.walletSvc.GetWallet(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(wallet))
}

// Deposit handles POST /api/v1/wallets/:userId/deposit.
func (h *WalletHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidArgument(err.Error()))
		return
	}

	amount, err := domain.NewMoney(req.Amount, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	entry, err := h.walletSvc.Deposit(c.Request.Context(), c.Param("userId"), amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTransactionResponse(entry))
}

// Withdraw handles POST /api/v1/wallets/:userId/withdraw.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidArgument(err.Error()))
		return
	}

	amount, err := domain.NewMoney(req.Amount, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	entry, err := h.walletSvc.Withdraw(c.Request.Context(), c.Param("userId"), amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTransactionResponse(entry))
}

// Transfer handles POST /api/v1/wallets/transfer.
func (h *WalletHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidArgument(err.Error()))
		return
	}

	amount, err := domain.NewMoney(req.Amount, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	entries, err := h.walletSvc.Transfer(c.Request.Context(), req.FromUserID, req.ToUserID, amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, toTransactionResponse(&entries[i]))
	}
	response.OK(c, resp)
}

// GetBalance handles GET /api/v1/wallets/:userId/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID := c.Param("userId")
	balance, err := h.walletSvc.GetBalance(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		UserID:   userID,
		Balance:  balance.Amount(),
		Currency: balance.Currency(),
	})
}

// GetHistoricalBalance handles
// GET /api/v1/wallets/:userId/balance/historical?date=YYYY-MM-DD.
func (h *WalletHandler) GetHistoricalBalance(c *gin.Context) {
	userID := c.Param("userId")
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidArgument("Date must be in YYYY-MM-DD format"))
		return
	}

	balance, err := h.walletSvc.GetHistoricalBalance(c.Request.Context(), userID, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		UserID:   userID,
		Balance:  balance.Amount(),
		Currency: balance.Currency(),
		Date:     date.Format(dateLayout),
	})
}

func toWalletResponse(w *domain.Wallet) dto.WalletResponse {
	return dto.WalletResponse{
		ID:        w.ID.String(),
		UserID:    w.UserID,
		Balance:   w.Balance.Amount(),
		Currency:  w.Balance.Currency(),
		CreatedAt: w.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: w.UpdatedAt.UTC().Format(time.RFC3339),
		Version:   w.Version,
	}
}

func toTransactionResponse(t *domain.WalletTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            t.ID.String(),
		WalletID:      t.WalletID.String(),
		Type:          string(t.Type),
		Amount:        t.Amount.Amount(),
		BalanceAfter:  t.BalanceAfter.Amount(),
		Currency:      t.Amount.Currency(),
		Description:   t.Description,
		Timestamp:     t.Timestamp.UTC().Format(time.RFC3339Nano),
		CorrelationID: t.CorrelationID.String(),
	}
}
