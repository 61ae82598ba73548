package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/boostly-app/boostly/internal/domain/error"
)

func TestNewRecognition(t *testing.T) {
	fixedTime := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("should create recognition with a public ID", func(t *testing.T) {
		// Arrange
		mockTimeProvider := newFixedTimeProvider(fixedTime)

		// Act
		recognition, err := NewRecognition(1, 2, 30, "  great incident response  ", mockTimeProvider)

		// Assert
		assert.NoError(t, err)
		assert.NotEmpty(t, recognition.PublicID)
		assert.Equal(t, uint64(1), recognition.SenderID)
		assert.Equal(t, uint64(2), recognition.ReceiverID)
		assert.Equal(t, 30, recognition.Credits)
		assert.Equal(t, "great incident response", recognition.Message)
		assert.Equal(t, fixedTime, recognition.CreatedAt)
	})

	t.Run("should reject a self recognition", func(t *testing.T) {
		mockTimeProvider := newFixedTimeProvider(fixedTime)

		_, err := NewRecognition(1, 1, 10, "", mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrSelfRecognition)
	})

	t.Run("should reject missing parties and bad credits", func(t *testing.T) {
		mockTimeProvider := newFixedTimeProvider(fixedTime)

		_, err := NewRecognition(0, 2, 10, "", mockTimeProvider)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = NewRecognition(1, 0, 10, "", mockTimeProvider)
		assert.ErrorIs(t, err, errs.ErrMissingReceiver)

		_, err = NewRecognition(1, 2, 0, "", mockTimeProvider)
		assert.ErrorIs(t, err, errs.ErrInvalidCredits)
	})

	t.Run("should assign distinct public IDs", func(t *testing.T) {
		mockTimeProvider := newFixedTimeProvider(fixedTime)

		first, err := NewRecognition(1, 2, 5, "", mockTimeProvider)
		assert.NoError(t, err)
		second, err := NewRecognition(1, 2, 5, "", mockTimeProvider)
		assert.NoError(t, err)

		assert.NotEqual(t, first.PublicID, second.PublicID)
	})
}
