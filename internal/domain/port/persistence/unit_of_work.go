package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transactional operations
// across multiple repositories. A recognition transfer mutates two accounts
// and creates a record; a redemption mutates one account and creates a
// record. Both must commit or roll back as a whole.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetAccountRepository returns an account repository bound to the current transaction
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetRecognitionRepository returns a recognition repository bound to the current transaction
	GetRecognitionRepository(ctx context.Context) RecognitionRepository

	// GetRedemptionRepository returns a redemption repository bound to the current transaction
	GetRedemptionRepository(ctx context.Context) RedemptionRepository
}
