package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := New("WAL_001", "Amount must be positive", http.StatusBadRequest)
	assert.Equal(t, "[WAL_001] Amount must be positive", err.Error())
}

func TestAppError_ErrorWithWrapped(t *testing.T) {
	inner := errors.New("connection refused")
	err := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, inner)
	assert.Equal(t, "[SYS_001] Internal server error: connection refused", err.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("insert failed")
	err := ErrOutboxWrite(inner)
	assert.ErrorIs(t, err, inner)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, "WAL_003", CodeOf(ErrInsufficientFunds()))
	assert.Equal(t, "WAL_007", CodeOf(fmt.Errorf("retrying: %w", ErrVersionConflict())))
	assert.Equal(t, "", CodeOf(errors.New("plain error")))
	assert.Equal(t, "", CodeOf(nil))
}

func TestErrorConstructors_HTTPStatus(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{ErrInvalidArgument("bad input"), "WAL_001", http.StatusBadRequest},
		{ErrCurrencyMismatch(), "WAL_002", http.StatusBadRequest},
		{ErrInsufficientFunds(), "WAL_003", http.StatusPaymentRequired},
		{ErrWalletNotFound("user-1"), "WAL_004", http.StatusNotFound},
		{ErrDuplicateWallet("user-1"), "WAL_005", http.StatusConflict},
		{ErrSameUser(), "WAL_006", http.StatusBadRequest},
		{ErrVersionConflict(), "WAL_007", http.StatusConflict},
		{ErrOutboxWrite(errors.New("x")), "OBX_001", http.StatusInternalServerError},
		{ErrTransport(errors.New("x")), "OBX_002", http.StatusServiceUnavailable},
		{InternalError(errors.New("x")), "SYS_001", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, tc.err.HTTPStatus)
	}
}

func TestErrWalletNotFound_Message(t *testing.T) {
	err := ErrWalletNotFound("alice")
	assert.Contains(t, err.Message, "alice")
}
