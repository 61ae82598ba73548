package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boostly-app/boostly/internal/domain/entity"
	errs "github.com/boostly-app/boostly/internal/domain/error"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/repository"
)

func TestEndorsementRepository(t *testing.T) {
	env := newRepoTestEnv(t)
	accountRepo := repository.NewAccountRepository(env.db, env.timeProvider, env.logger)
	recognitionRepo := repository.NewRecognitionRepository(env.db, env.logger)
	repo := repository.NewEndorsementRepository(env.db, env.logger)
	ctx := context.Background()

	asha := env.mustCreateAccount(t, accountRepo, "Asha Rao", "asha@example.com")
	ravi := env.mustCreateAccount(t, accountRepo, "Ravi Menon", "ravi@example.com")
	meera := env.mustCreateAccount(t, accountRepo, "Meera Iyer", "meera@example.com")

	recognition := env.mustCreateRecognition(t, recognitionRepo, asha.ID, ravi.ID, 30, "Great launch work")
	other := env.mustCreateRecognition(t, recognitionRepo, asha.ID, meera.ID, 5, "")

	endorse := func(recognitionID, endorserID uint64) error {
		endorsement, err := entity.NewEndorsement(recognitionID, endorserID, env.timeProvider)
		assert.NoError(t, err)
		return repo.Create(ctx, endorsement)
	}

	t.Run("distinct endorsers may endorse the same recognition", func(t *testing.T) {
		assert.NoError(t, endorse(recognition.ID, meera.ID))
		assert.NoError(t, endorse(recognition.ID, ravi.ID))
	})

	t.Run("same endorser twice trips the unique constraint", func(t *testing.T) {
		// Act
		err := endorse(recognition.ID, meera.ID)

		// Assert
		assert.ErrorIs(t, err, errs.ErrAlreadyEndorsed)
	})

	t.Run("counts group by recognition", func(t *testing.T) {
		// Arrange
		assert.NoError(t, endorse(other.ID, ravi.ID))

		// Act
		counts, err := repo.CountByRecognitionIDs(ctx, []uint64{recognition.ID, other.ID})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, map[uint64]int{recognition.ID: 2, other.ID: 1}, counts)
	})

	t.Run("empty input short-circuits without querying", func(t *testing.T) {
		counts, err := repo.CountByRecognitionIDs(ctx, nil)
		assert.NoError(t, err)
		assert.Empty(t, counts)
	})
}
