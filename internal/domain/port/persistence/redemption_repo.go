package persistence

import (
	"context"

	"github.com/boostly-app/boostly/internal/domain/entity"
)

// RedemptionRepository defines essential methods to interact with redemption
// records. Redemptions are an append-only log.
type RedemptionRepository interface {
	// Create persists a new redemption and fills in its generated ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database connection fails
	Create(ctx context.Context, redemption *entity.Redemption) error

	// ListByUser returns a user's redemptions, newest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Redemption, error)
}
