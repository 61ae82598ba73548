package recognition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/boostly-app/boostly/internal/domain/error"
	"github.com/boostly-app/boostly/internal/domain/port/usecase"
)

func TestValidator_ValidateSend(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		senderID uint64
		req      usecase.SendRecognitionRequest
		wantErr  error
	}{
		{
			name:     "valid request",
			senderID: 1,
			req:      usecase.SendRecognitionRequest{ReceiverID: 2, Credits: 10},
			wantErr:  nil,
		},
		{
			name:     "missing sender",
			senderID: 0,
			req:      usecase.SendRecognitionRequest{ReceiverID: 2, Credits: 10},
			wantErr:  errs.ErrInvalidUserID,
		},
		{
			name:     "missing receiver",
			senderID: 1,
			req:      usecase.SendRecognitionRequest{Credits: 10},
			wantErr:  errs.ErrMissingReceiver,
		},
		{
			name:     "zero credits",
			senderID: 1,
			req:      usecase.SendRecognitionRequest{ReceiverID: 2},
			wantErr:  errs.ErrInvalidCredits,
		},
		{
			name:     "negative credits",
			senderID: 1,
			req:      usecase.SendRecognitionRequest{ReceiverID: 2, Credits: -5},
			wantErr:  errs.ErrInvalidCredits,
		},
		{
			name:     "self recognition",
			senderID: 1,
			req:      usecase.SendRecognitionRequest{ReceiverID: 1, Credits: 10},
			wantErr:  errs.ErrSelfRecognition,
		},
		{
			// credits are checked before the self-send rule
			name:     "self recognition with bad credits",
			senderID: 1,
			req:      usecase.SendRecognitionRequest{ReceiverID: 1, Credits: 0},
			wantErr:  errs.ErrInvalidCredits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateSend(tt.senderID, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
