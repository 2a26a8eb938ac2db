package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CodeOf returns the code carried by err, or "" if err is not an AppError.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Wallet Business Logic (WAL) ----

func ErrInvalidArgument(message string) *AppError {
	return New("WAL_001", message, http.StatusBadRequest)
}

func ErrCurrencyMismatch() *AppError {
	return New("WAL_002", "Currency mismatch", http.StatusBadRequest)
}

func ErrInsufficientFunds() *AppError {
	return New("WAL_003", "Insufficient funds", http.StatusPaymentRequired)
}

func ErrWalletNotFound(userID string) *AppError {
	return New("WAL_004", fmt.Sprintf("Wallet not found for user: %s", userID), http.StatusNotFound)
}

func ErrDuplicateWallet(userID string) *AppError {
	return New("WAL_005", fmt.Sprintf("User already has a wallet: %s", userID), http.StatusConflict)
}

func ErrSameUser() *AppError {
	return New("WAL_006", "Cannot transfer to same user", http.StatusBadRequest)
}

func ErrVersionConflict() *AppError {
	return New("WAL_007", "Wallet was modified concurrently", http.StatusConflict)
}

// ---- Outbox & Transport (OBX) ----

func ErrOutboxWrite(err error) *AppError {
	return Wrap("OBX_001", "Failed to create outbox event", http.StatusInternalServerError, err)
}

func ErrTransport(err error) *AppError {
	return Wrap("OBX_002", "Message transport failure", http.StatusServiceUnavailable, err)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
