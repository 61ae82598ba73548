package usecase

import (
	"context"
)

// EndorsementResponse represents a newly created endorsement
type EndorsementResponse struct {
	ID            string `json:"id"`
	RecognitionID string `json:"recognitionId"`
}

// EndorsementUseCase defines methods for endorsement-related business operations
type EndorsementUseCase interface {
	// Endorse records a one-time affirmation of an existing recognition.
	// Duplicate endorsements by the same user are rejected with
	// ErrAlreadyEndorsed, backed by the storage uniqueness constraint.
	Endorse(ctx context.Context, recognitionID string, endorserID uint64) (*EndorsementResponse, error)
}
