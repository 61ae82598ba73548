package persistence

import (
	"context"

	"github.com/boostly-app/boostly/internal/domain/entity"
)

// AccountRepository defines essential methods to interact with account data
type AccountRepository interface {
	// GetByID retrieves an account by ID
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account with the ID exists
	// - ErrDatabaseConnection: If the database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Account, error)

	// GetByEmail retrieves an account by its (unique) email address
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account with the email exists
	// - ErrDatabaseConnection: If the database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account and fills in its generated ID
	//
	// Possible errors:
	// - ErrDuplicateEmail: If an account with the same email already exists
	// - ErrDatabaseConnection: If the database connection fails
	Create(ctx context.Context, account *entity.Account) error

	// Update persists the account's mutable state (balances, counters)
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist
	// - ErrDatabaseConnection: If the database connection fails
	Update(ctx context.Context, account *entity.Account) error

	// List returns all accounts ordered by full name ascending, used by the
	// user directory
	List(ctx context.Context) ([]*entity.Account, error)

	// ListTopReceivers returns up to limit accounts ordered by lifetime
	// received total descending, tie-broken by ID ascending for deterministic
	// leaderboard ordering
	ListTopReceivers(ctx context.Context, limit int) ([]*entity.Account, error)

	// IncrementEndorsementsReceived bumps the endorsement counter for the
	// account in a single atomic update. Used as the best-effort secondary
	// write after an endorsement record commits.
	IncrementEndorsementsReceived(ctx context.Context, id uint64) error
}
