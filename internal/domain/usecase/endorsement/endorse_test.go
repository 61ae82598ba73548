package endorsement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/boostly-app/boostly/internal/domain/entity"
	errs "github.com/boostly-app/boostly/internal/domain/error"
	"github.com/boostly-app/boostly/mocks/port/core"
	"github.com/boostly-app/boostly/mocks/port/persistence"
)

func newTestLogger() *core.MockLogger {
	mockLogger := new(core.MockLogger)
	mockLogger.On("Debug", mock.Anything, mock.Anything).Maybe()
	mockLogger.On("Info", mock.Anything, mock.Anything).Maybe()
	mockLogger.On("Warn", mock.Anything, mock.Anything).Maybe()
	mockLogger.On("Error", mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func newFixture(fixedTime time.Time) (*Service, *persistence.MockRecognitionRepository, *persistence.MockEndorsementRepository, *persistence.MockAccountRepository) {
	mockTimeProvider := new(core.MockTimeProvider)
	mockTimeProvider.On("Now").Return(fixedTime)
	recognitionRepo := new(persistence.MockRecognitionRepository)
	endorsementRepo := new(persistence.MockEndorsementRepository)
	accountRepo := new(persistence.MockAccountRepository)
	service := NewService(recognitionRepo, endorsementRepo, accountRepo, mockTimeProvider, newTestLogger())
	return service, recognitionRepo, endorsementRepo, accountRepo
}

func TestService_Endorse(t *testing.T) {
	fixedTime := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	recognition := &entity.Recognition{
		ID:         7,
		PublicID:   "rec-7",
		SenderID:   1,
		ReceiverID: 2,
		Credits:    30,
		CreatedAt:  fixedTime,
	}

	t.Run("should create endorsement and bump the receiver counter", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, recognitionRepo, endorsementRepo, accountRepo := newFixture(fixedTime)

		recognitionRepo.On("GetByPublicID", ctx, "rec-7").Return(recognition, nil)
		endorsementRepo.On("Create", ctx, mock.AnythingOfType("*entity.Endorsement")).Return(nil)
		accountRepo.On("IncrementEndorsementsReceived", ctx, uint64(2)).Return(nil)

		// Act
		response, err := service.Endorse(ctx, "rec-7", 3)

		// Assert
		assert.NoError(t, err)
		assert.NotEmpty(t, response.ID)
		assert.Equal(t, "rec-7", response.RecognitionID)
		accountRepo.AssertCalled(t, "IncrementEndorsementsReceived", ctx, uint64(2))
	})

	t.Run("should map the uniqueness violation to a duplicate endorsement error", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, recognitionRepo, endorsementRepo, accountRepo := newFixture(fixedTime)

		recognitionRepo.On("GetByPublicID", ctx, "rec-7").Return(recognition, nil)
		endorsementRepo.On("Create", ctx, mock.Anything).Return(errs.ErrAlreadyEndorsed)

		// Act
		_, err := service.Endorse(ctx, "rec-7", 3)

		// Assert
		assert.ErrorIs(t, err, errs.ErrAlreadyEndorsed)
		var dupErr *errs.DuplicateEndorsementError
		assert.True(t, errors.As(err, &dupErr))
		assert.Equal(t, "rec-7", dupErr.RecognitionID)
		assert.Equal(t, uint64(3), dupErr.EndorserID)
		accountRepo.AssertNotCalled(t, "IncrementEndorsementsReceived", mock.Anything, mock.Anything)
	})

	t.Run("should keep the endorsement when the counter bump fails", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, recognitionRepo, endorsementRepo, accountRepo := newFixture(fixedTime)

		recognitionRepo.On("GetByPublicID", ctx, "rec-7").Return(recognition, nil)
		endorsementRepo.On("Create", ctx, mock.Anything).Return(nil)
		accountRepo.On("IncrementEndorsementsReceived", ctx, uint64(2)).Return(errs.ErrDatabaseConnection)

		// Act
		response, err := service.Endorse(ctx, "rec-7", 3)

		// Assert: counter failure is logged, not surfaced
		assert.NoError(t, err)
		assert.NotNil(t, response)
	})

	t.Run("should fail for an unknown recognition", func(t *testing.T) {
		ctx := context.Background()
		service, recognitionRepo, endorsementRepo, _ := newFixture(fixedTime)

		recognitionRepo.On("GetByPublicID", ctx, "missing").Return(nil, errs.ErrRecognitionNotFound)

		_, err := service.Endorse(ctx, "missing", 3)

		assert.ErrorIs(t, err, errs.ErrRecognitionNotFound)
		endorsementRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should reject an invalid endorser", func(t *testing.T) {
		service, recognitionRepo, _, _ := newFixture(fixedTime)

		_, err := service.Endorse(context.Background(), "rec-7", 0)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		recognitionRepo.AssertNotCalled(t, "GetByPublicID", mock.Anything, mock.Anything)
	})
}
