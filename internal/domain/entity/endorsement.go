package entity

import (
	"time"

	errs "github.com/boostly-app/boostly/internal/domain/error"
	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/google/uuid"
)

// Endorsement is a single user's one-time affirmation of an existing
// recognition. At most one endorsement may exist per (recognition, endorser)
// pair; the storage layer enforces this with a unique constraint.
type Endorsement struct {
	ID            uint64
	PublicID      string
	RecognitionID uint64
	EndorserID    uint64
	CreatedAt     time.Time
}

// NewEndorsement creates a new endorsement for an existing recognition
func NewEndorsement(recognitionID, endorserID uint64, timeProvider coreport.TimeProvider) (*Endorsement, error) {
	if recognitionID == 0 {
		return nil, errs.ErrRecognitionNotFound
	}
	if endorserID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	return &Endorsement{
		PublicID:      uuid.NewString(),
		RecognitionID: recognitionID,
		EndorserID:    endorserID,
		CreatedAt:     timeProvider.Now(),
	}, nil
}
