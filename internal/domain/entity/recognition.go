package entity

import (
	"strings"
	"time"

	errs "github.com/boostly-app/boostly/internal/domain/error"
	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/google/uuid"
)

// Recognition is an immutable record of one user transferring credits to
// another with an optional message. It is created atomically with the paired
// balance mutation and never mutated or deleted afterwards.
type Recognition struct {
	ID         uint64 // database key
	PublicID   string // UUID exposed over the API
	SenderID   uint64
	ReceiverID uint64
	Credits    int
	Message    string
	CreatedAt  time.Time
}

// NewRecognition creates a new recognition with basic validation
func NewRecognition(
	senderID, receiverID uint64,
	credits int,
	message string,
	timeProvider coreport.TimeProvider,
) (*Recognition, error) {
	if senderID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if receiverID == 0 {
		return nil, errs.ErrMissingReceiver
	}
	if credits <= 0 {
		return nil, errs.ErrInvalidCredits
	}
	if senderID == receiverID {
		return nil, errs.ErrSelfRecognition
	}

	return &Recognition{
		PublicID:   uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Credits:    credits,
		Message:    strings.TrimSpace(message),
		CreatedAt:  timeProvider.Now(),
	}, nil
}
