package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boostly-app/boostly/internal/domain/entity"
	errs "github.com/boostly-app/boostly/internal/domain/error"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/repository"
)

func TestAccountRepository_CreateAndGet(t *testing.T) {
	env := newRepoTestEnv(t)
	repo := repository.NewAccountRepository(env.db, env.timeProvider, env.logger)
	ctx := context.Background()

	t.Run("create fills the generated ID and round trips", func(t *testing.T) {
		// Arrange & Act
		account := env.mustCreateAccount(t, repo, "Asha Rao", "asha@example.com")

		// Assert
		assert.NotZero(t, account.ID)

		loaded, err := repo.GetByID(ctx, account.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Asha Rao", loaded.FullName)
		assert.Equal(t, "asha@example.com", loaded.Email)
		assert.Equal(t, "stored-hash", loaded.PasswordHash)
		assert.Equal(t, 100, loaded.SendBalance())
		assert.Equal(t, 0, loaded.MonthlySent())
		assert.Equal(t, "2026-03", loaded.LastResetMonth())
		assert.Equal(t, 0, loaded.ReceivedBalance())
	})

	t.Run("get by email", func(t *testing.T) {
		// Act
		loaded, err := repo.GetByEmail(ctx, "asha@example.com")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "Asha Rao", loaded.FullName)
	})

	t.Run("missing account yields not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)

		_, err = repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("duplicate email is rejected by the unique index", func(t *testing.T) {
		// Arrange
		duplicate, err := entity.NewAccount("Imposter", "asha@example.com", "other-hash", env.timeProvider)
		assert.NoError(t, err)

		// Act
		err = repo.Create(ctx, duplicate)

		// Assert
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})
}

func TestAccountRepository_Update(t *testing.T) {
	env := newRepoTestEnv(t)
	repo := repository.NewAccountRepository(env.db, env.timeProvider, env.logger)
	ctx := context.Background()

	t.Run("balance mutations persist", func(t *testing.T) {
		// Arrange
		account := env.mustCreateAccount(t, repo, "Ravi Menon", "ravi@example.com")
		assert.NoError(t, account.ApplySend(30, env.timeProvider))
		assert.NoError(t, account.ApplyReceive(20, env.timeProvider))

		// Act
		err := repo.Update(ctx, account)

		// Assert
		assert.NoError(t, err)

		loaded, err := repo.GetByID(ctx, account.ID)
		assert.NoError(t, err)
		assert.Equal(t, 70, loaded.SendBalance())
		assert.Equal(t, 30, loaded.MonthlySent())
		assert.Equal(t, 20, loaded.ReceivedBalance())
		assert.Equal(t, 20, loaded.TotalReceived())
		assert.Equal(t, 1, loaded.RecognitionsReceivedCount)
	})

	t.Run("updating a deleted account yields not found", func(t *testing.T) {
		// Arrange
		account := env.mustCreateAccount(t, repo, "Ghost", "ghost@example.com")
		assert.NoError(t, env.db.Exec("DELETE FROM users WHERE id = ?", account.ID).Error)

		// Act
		err := repo.Update(ctx, account)

		// Assert
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}

func TestAccountRepository_Listings(t *testing.T) {
	env := newRepoTestEnv(t)
	repo := repository.NewAccountRepository(env.db, env.timeProvider, env.logger)
	ctx := context.Background()

	// Three accounts with distinct received totals
	asha := env.mustCreateAccount(t, repo, "Asha Rao", "asha@example.com")
	ravi := env.mustCreateAccount(t, repo, "Ravi Menon", "ravi@example.com")
	meera := env.mustCreateAccount(t, repo, "Meera Iyer", "meera@example.com")

	assert.NoError(t, ravi.ApplyReceive(120, env.timeProvider))
	assert.NoError(t, repo.Update(ctx, ravi))
	assert.NoError(t, meera.ApplyReceive(40, env.timeProvider))
	assert.NoError(t, repo.Update(ctx, meera))

	t.Run("list orders by full name", func(t *testing.T) {
		// Act
		accounts, err := repo.List(ctx)

		// Assert
		assert.NoError(t, err)
		names := make([]string, 0, len(accounts))
		for _, a := range accounts {
			names = append(names, a.FullName)
		}
		assert.Equal(t, []string{"Asha Rao", "Meera Iyer", "Ravi Menon"}, names)
	})

	t.Run("top receivers order by lifetime total with ID tiebreak", func(t *testing.T) {
		// Act
		top, err := repo.ListTopReceivers(ctx, 2)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, top, 2)
		assert.Equal(t, ravi.ID, top[0].ID)
		assert.Equal(t, meera.ID, top[1].ID)
	})

	t.Run("increment endorsements is a single atomic update", func(t *testing.T) {
		// Act
		assert.NoError(t, repo.IncrementEndorsementsReceived(ctx, asha.ID))
		assert.NoError(t, repo.IncrementEndorsementsReceived(ctx, asha.ID))

		// Assert
		loaded, err := repo.GetByID(ctx, asha.ID)
		assert.NoError(t, err)
		assert.Equal(t, 2, loaded.EndorsementsReceived)
	})
}
