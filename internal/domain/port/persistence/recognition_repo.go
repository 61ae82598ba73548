package persistence

import (
	"context"

	"github.com/boostly-app/boostly/internal/domain/entity"
)

// RecognitionRepository defines essential methods to interact with
// recognition records. Recognitions are append-only; there is no update or
// delete.
type RecognitionRepository interface {
	// Create persists a new recognition and fills in its generated ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database connection fails
	Create(ctx context.Context, recognition *entity.Recognition) error

	// GetByPublicID retrieves a recognition by its public UUID
	//
	// Possible errors:
	// - ErrRecognitionNotFound: If no recognition with the UUID exists
	// - ErrDatabaseConnection: If the database connection fails
	GetByPublicID(ctx context.Context, publicID string) (*entity.Recognition, error)

	// ListByReceiver returns the recognitions received by a user, newest first
	ListByReceiver(ctx context.Context, receiverID uint64) ([]*entity.Recognition, error)

	// ListRecent returns the most recent recognitions across all users,
	// newest first, truncated to limit
	ListRecent(ctx context.Context, limit int) ([]*entity.Recognition, error)
}
