package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/boostly-app/boostly/internal/domain/entity"
	errs "github.com/boostly-app/boostly/internal/domain/error"
	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/domain/port/usecase"
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

type fixture struct {
	service     *Service
	accountRepo *persistence.MockAccountRepository
	hasher      *core.MockPasswordHasher
	tokens      *core.MockTokenService
}

func newFixture(fixedTime time.Time) *fixture {
	mockTimeProvider := new(core.MockTimeProvider)
	mockTimeProvider.On("Now").Return(fixedTime)

	f := &fixture{
		accountRepo: new(persistence.MockAccountRepository),
		hasher:      new(core.MockPasswordHasher),
		tokens:      new(core.MockTokenService),
	}
	f.service = NewService(f.accountRepo, f.hasher, f.tokens, mockTimeProvider, newTestLogger())
	return f
}

func storedAccount(fixedTime time.Time) *entity.Account {
	return entity.RehydrateAccount(1, "Asha Rao", "asha@example.com", "stored-hash", entity.BalanceSnapshot{
		SendBalance:     80,
		ReceivedBalance: 15,
		LastResetMonth:  "2026-03",
	}, 0, 0, fixedTime, fixedTime)
}

func TestService_Register(t *testing.T) {
	fixedTime := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("should create account and issue a token", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newFixture(fixedTime)

		f.accountRepo.On("GetByEmail", ctx, "asha@example.com").Return(nil, errs.ErrAccountNotFound)
		f.hasher.On("Hash", "s3cret-pass").Return("hashed", nil)
		f.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.Account).ID = 42
			}).Return(nil)
		f.tokens.On("Issue", mock.MatchedBy(func(p coreport.Principal) bool {
			return p.UserID == 42 && p.Email == "asha@example.com"
		})).Return("jwt-token", nil)

		// Act: email is normalized before lookup and storage
		response, err := f.service.Register(ctx, usecase.RegisterRequest{
			FullName: "  Asha Rao  ",
			Email:    "  Asha@Example.com ",
			Password: "s3cret-pass",
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, uint64(42), response.User.ID)
		assert.Equal(t, "Asha Rao", response.User.FullName)
		assert.Equal(t, "asha@example.com", response.User.Email)
		assert.Equal(t, entity.MonthlyAllowance, response.User.SendBalance)
		assert.Equal(t, "jwt-token", response.Token)
	})

	t.Run("should reject a taken email", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(fixedTime)

		f.accountRepo.On("GetByEmail", ctx, "asha@example.com").Return(storedAccount(fixedTime), nil)

		_, err := f.service.Register(ctx, usecase.RegisterRequest{
			FullName: "Asha Rao",
			Email:    "asha@example.com",
			Password: "s3cret-pass",
		})

		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
		f.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should surface the storage uniqueness violation on a registration race", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(fixedTime)

		f.accountRepo.On("GetByEmail", ctx, "asha@example.com").Return(nil, errs.ErrAccountNotFound)
		f.hasher.On("Hash", "s3cret-pass").Return("hashed", nil)
		f.accountRepo.On("Create", ctx, mock.Anything).Return(errs.ErrDuplicateEmail)

		_, err := f.service.Register(ctx, usecase.RegisterRequest{
			FullName: "Asha Rao",
			Email:    "asha@example.com",
			Password: "s3cret-pass",
		})

		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})

	t.Run("should reject incomplete requests", func(t *testing.T) {
		f := newFixture(fixedTime)

		tests := []usecase.RegisterRequest{
			{Email: "asha@example.com", Password: "s3cret-pass"},
			{FullName: "Asha Rao", Password: "s3cret-pass"},
			{FullName: "Asha Rao", Email: "asha@example.com", Password: "short"},
		}
		for _, req := range tests {
			_, err := f.service.Register(context.Background(), req)
			assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		}
		f.accountRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}

func TestService_Login(t *testing.T) {
	fixedTime := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("should issue a token for valid credentials", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newFixture(fixedTime)
		account := storedAccount(fixedTime)

		f.accountRepo.On("GetByEmail", ctx, "asha@example.com").Return(account, nil)
		f.hasher.On("Compare", "stored-hash", "s3cret-pass").Return(true)
		f.tokens.On("Issue", mock.Anything).Return("jwt-token", nil)

		// Act
		response, err := f.service.Login(ctx, usecase.Credentials{
			Email:    "Asha@Example.com",
			Password: "s3cret-pass",
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, uint64(1), response.User.ID)
		assert.Equal(t, 80, response.User.SendBalance)
		assert.Equal(t, 15, response.User.ReceivedBalance)
		assert.Equal(t, "jwt-token", response.Token)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(fixedTime)
		account := storedAccount(fixedTime)

		f.accountRepo.On("GetByEmail", ctx, "asha@example.com").Return(account, nil)
		f.hasher.On("Compare", "stored-hash", "wrong").Return(false)

		_, err := f.service.Login(ctx, usecase.Credentials{Email: "asha@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		f.tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("should not reveal whether the email exists", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(fixedTime)

		f.accountRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, errs.ErrAccountNotFound)

		_, err := f.service.Login(ctx, usecase.Credentials{Email: "ghost@example.com", Password: "whatever"})

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}
