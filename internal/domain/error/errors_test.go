package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credits", ErrInvalidCredits, CodeInvalidCredits},
		{"self recognition", ErrSelfRecognition, CodeSelfRecognition},
		{"invalid user id", ErrInvalidUserID, CodeInvalidUserID},
		{"insufficient send balance", ErrInsufficientSendBalance, CodeInsufficientSendBalance},
		{"monthly limit exceeded", ErrMonthlyLimitExceeded, CodeMonthlyLimitExceeded},
		{"insufficient received balance", ErrInsufficientReceivedBalance, CodeInsufficientReceivedCredit},
		{"already endorsed", ErrAlreadyEndorsed, CodeAlreadyEndorsed},
		{"duplicate email", ErrDuplicateEmail, CodeDuplicateEmail},
		{"invalid credentials", ErrInvalidCredentials, CodeInvalidCredentials},
		{"account not found", ErrAccountNotFound, CodeAccountNotFound},
		{"recognition not found", ErrRecognitionNotFound, CodeRecognitionNotFound},
		{"unknown error", errors.New("boom"), CodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ErrorCode(tt.err))
		})
	}
}

func TestErrorCode_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("sending failed: %w", ErrMonthlyLimitExceeded)
	assert.Equal(t, CodeMonthlyLimitExceeded, ErrorCode(wrapped))
}

func TestInsufficientSendBalanceError(t *testing.T) {
	err := NewInsufficientSendBalanceError(42, 80, 30)

	assert.ErrorIs(t, err, ErrInsufficientSendBalance)
	assert.Contains(t, err.Error(), "required 80")
	assert.Contains(t, err.Error(), "available 30")

	var detailed *InsufficientSendBalanceError
	assert.True(t, errors.As(err, &detailed))
	assert.Equal(t, uint64(42), detailed.UserID)

	fields := detailed.LogFields()
	assert.Equal(t, "insufficient_send_balance", fields["error_type"])
	assert.Equal(t, CodeInsufficientSendBalance, fields["error_code"])
}

func TestMonthlyLimitError(t *testing.T) {
	err := NewMonthlyLimitError(7, 90, 20, 100)

	assert.ErrorIs(t, err, ErrMonthlyLimitExceeded)
	assert.NotErrorIs(t, err, ErrInsufficientSendBalance)

	var detailed *MonthlyLimitError
	assert.True(t, errors.As(err, &detailed))
	assert.Equal(t, 90, detailed.MonthlySent)
	assert.Equal(t, 100, detailed.Limit)
}

func TestDuplicateEndorsementError(t *testing.T) {
	err := NewDuplicateEndorsementError("e7cb2c9e-4f7b-4a19-93b9-6f0a5d3a6a01", 9)

	assert.ErrorIs(t, err, ErrAlreadyEndorsed)
	assert.True(t, IsAlreadyEndorsedError(err))

	fields := err.(*DuplicateEndorsementError).LogFields()
	assert.Equal(t, uint64(9), fields["endorser_id"])
}

func TestErrorClassHelpers(t *testing.T) {
	assert.True(t, IsValidationError(ErrSelfRecognition))
	assert.True(t, IsValidationError(fmt.Errorf("bad input: %w", ErrInvalidCredits)))
	assert.False(t, IsValidationError(ErrMonthlyLimitExceeded))

	assert.True(t, IsBusinessRuleError(ErrAlreadyEndorsed))
	assert.True(t, IsBusinessRuleError(NewMonthlyLimitError(1, 100, 1, 100)))
	assert.False(t, IsBusinessRuleError(ErrAccountNotFound))

	assert.True(t, IsNotFoundError(ErrAccountNotFound))
	assert.True(t, IsNotFoundError(ErrRecognitionNotFound))
	assert.False(t, IsNotFoundError(ErrInvalidCredits))
}
