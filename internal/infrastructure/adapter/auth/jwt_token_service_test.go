package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/boostly-app/boostly/internal/domain/error"
	"github.com/boostly-app/boostly/internal/domain/port/core"
	mockcore "github.com/boostly-app/boostly/mocks/port/core"
)

const testSecret = "test-signing-secret"

func newTokenService(now time.Time, ttl core.Duration) (*JWTTokenService, *mockcore.MockTimeProvider) {
	timeProvider := new(mockcore.MockTimeProvider)
	timeProvider.On("Now").Return(now)
	return NewJWTTokenService(testSecret, ttl, timeProvider), timeProvider
}

func TestJWTTokenService_IssueAndVerify(t *testing.T) {
	issuedAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("issued token round trips the principal", func(t *testing.T) {
		// Arrange
		service, _ := newTokenService(issuedAt, 24*core.Hour)
		principal := core.Principal{
			UserID:   42,
			Email:    "asha@example.com",
			FullName: "Asha Rao",
		}

		// Act
		token, err := service.Issue(principal)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		verified, err := service.Verify(token)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, principal.UserID, verified.UserID)
		assert.Equal(t, principal.Email, verified.Email)
		assert.Equal(t, principal.FullName, verified.FullName)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		// Arrange
		issuer, _ := newTokenService(issuedAt, core.Hour)
		token, err := issuer.Issue(core.Principal{UserID: 42, Email: "asha@example.com"})
		assert.NoError(t, err)

		// Verifier's clock is past the one hour TTL
		verifier, _ := newTokenService(issuedAt.Add(2*time.Hour), core.Hour)

		// Act
		principal, err := verifier.Verify(token)

		// Assert
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, errs.ErrTokenExpired)
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		// Arrange
		timeProvider := new(mockcore.MockTimeProvider)
		timeProvider.On("Now").Return(issuedAt)
		other := NewJWTTokenService("another-secret", 24*core.Hour, timeProvider)
		token, err := other.Issue(core.Principal{UserID: 42})
		assert.NoError(t, err)

		service, _ := newTokenService(issuedAt, 24*core.Hour)

		// Act
		principal, err := service.Verify(token)

		// Assert
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		// Arrange
		service, _ := newTokenService(issuedAt, 24*core.Hour)

		// Act
		principal, err := service.Verify("not-a-jwt")

		// Assert
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}

func TestBcryptHasher(t *testing.T) {
	t.Run("hash verifies against the original password", func(t *testing.T) {
		// Arrange
		hasher := NewBcryptHasher(4)

		// Act
		hash, err := hasher.Hash("sekret123")

		// Assert
		assert.NoError(t, err)
		assert.NotEqual(t, "sekret123", hash)
		assert.True(t, hasher.Compare(hash, "sekret123"))
		assert.False(t, hasher.Compare(hash, "wrong-password"))
	})

	t.Run("out of range cost falls back to the default", func(t *testing.T) {
		// Arrange
		hasher := NewBcryptHasher(99)

		// Act
		hash, err := hasher.Hash("sekret123")

		// Assert
		assert.NoError(t, err)
		assert.True(t, hasher.Compare(hash, "sekret123"))
	})
}
