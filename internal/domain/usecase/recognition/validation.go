package recognition

import (
	errs "github.com/boostly-app/boostly/internal/domain/error"
	"github.com/boostly-app/boostly/internal/domain/port/usecase"
)

// Validator provides validation for recognition send requests
type Validator struct{}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSend checks the send request fields before any account is loaded.
// Checks run in a fixed order so the first failure wins: receiver and credits
// first, then the self-send rule.
func (v *Validator) ValidateSend(senderID uint64, req usecase.SendRecognitionRequest) error {
	if senderID == 0 {
		return errs.ErrInvalidUserID
	}
	if req.ReceiverID == 0 {
		return errs.ErrMissingReceiver
	}
	if req.Credits <= 0 {
		return errs.ErrInvalidCredits
	}
	if req.ReceiverID == senderID {
		return errs.ErrSelfRecognition
	}
	return nil
}
