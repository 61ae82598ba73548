package persistence

import (
	"context"

	"github.com/boostly-app/boostly/internal/domain/entity"
)

// EndorsementRepository defines essential methods to interact with
// endorsement records
type EndorsementRepository interface {
	// Create persists a new endorsement. Uniqueness per (recognition,
	// endorser) pair is enforced by the storage layer's unique index, not an
	// application pre-check, so concurrent duplicate requests cannot both
	// succeed.
	//
	// Possible errors:
	// - ErrAlreadyEndorsed: If the (recognition, endorser) pair already exists
	// - ErrDatabaseConnection: If the database connection fails
	Create(ctx context.Context, endorsement *entity.Endorsement) error

	// CountByRecognitionIDs returns the endorsement count per recognition for
	// the given IDs. Recognitions without endorsements are absent from the map.
	CountByRecognitionIDs(ctx context.Context, recognitionIDs []uint64) (map[uint64]int, error)
}
