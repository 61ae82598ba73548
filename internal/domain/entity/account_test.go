package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/boostly-app/boostly/internal/domain/error"
	"github.com/boostly-app/boostly/mocks/port/core"
)

func newFixedTimeProvider(fixedTime time.Time) *core.MockTimeProvider {
	mockTimeProvider := new(core.MockTimeProvider)
	mockTimeProvider.On("Now").Return(fixedTime)
	return mockTimeProvider
}

func TestMonthToken(t *testing.T) {
	t.Run("should format as YYYY-MM", func(t *testing.T) {
		assert.Equal(t, "2026-03", MonthToken(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("should compute the month in UTC regardless of zone", func(t *testing.T) {
		// 2026-03-01 00:30 IST is still 2026-02-28 19:00 UTC
		ist := time.FixedZone("IST", 5*3600+1800)
		assert.Equal(t, "2026-02", MonthToken(time.Date(2026, 3, 1, 0, 30, 0, 0, ist)))
	})
}

func TestNewAccount(t *testing.T) {
	fixedTime := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("should create account with full monthly allowance", func(t *testing.T) {
		// Arrange
		mockTimeProvider := newFixedTimeProvider(fixedTime)

		// Act
		account, err := NewAccount("Asha Rao", "asha@example.com", "hashed", mockTimeProvider)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, MonthlyAllowance, account.SendBalance())
		assert.Equal(t, 0, account.MonthlySent())
		assert.Equal(t, "2026-03", account.LastResetMonth())
		assert.Equal(t, 0, account.ReceivedBalance())
		assert.Equal(t, 0, account.TotalReceived())
	})

	t.Run("should reject empty name or email", func(t *testing.T) {
		mockTimeProvider := newFixedTimeProvider(fixedTime)

		_, err := NewAccount("", "asha@example.com", "hashed", mockTimeProvider)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		_, err = NewAccount("Asha Rao", "", "hashed", mockTimeProvider)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func rehydrateWithBalances(t *testing.T, balances BalanceSnapshot) *Account {
	t.Helper()
	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return RehydrateAccount(1, "Asha Rao", "asha@example.com", "hashed", balances, 0, 0, createdAt, createdAt)
}

func TestAccount_EnsureMonthlyReset(t *testing.T) {
	t.Run("should carry forward unused balance below the cap", func(t *testing.T) {
		account := rehydrateWithBalances(t, BalanceSnapshot{
			SendBalance:    30,
			MonthlySent:    70,
			LastResetMonth: "2026-02",
		})

		changed := account.EnsureMonthlyReset("2026-03")

		assert.True(t, changed)
		assert.Equal(t, 130, account.SendBalance())
		assert.Equal(t, 0, account.MonthlySent())
		assert.Equal(t, "2026-03", account.LastResetMonth())
	})

	t.Run("should cap the carry forward", func(t *testing.T) {
		account := rehydrateWithBalances(t, BalanceSnapshot{
			SendBalance:    90,
			MonthlySent:    10,
			LastResetMonth: "2026-02",
		})

		changed := account.EnsureMonthlyReset("2026-03")

		assert.True(t, changed)
		assert.Equal(t, MonthlyAllowance+CarryForwardCap, account.SendBalance())
	})

	t.Run("should be a no-op within the same month", func(t *testing.T) {
		account := rehydrateWithBalances(t, BalanceSnapshot{
			SendBalance:    30,
			MonthlySent:    70,
			LastResetMonth: "2026-03",
		})

		changed := account.EnsureMonthlyReset("2026-03")

		assert.False(t, changed)
		assert.Equal(t, 30, account.SendBalance())
		assert.Equal(t, 70, account.MonthlySent())
	})

	t.Run("should be idempotent across repeated calls", func(t *testing.T) {
		account := rehydrateWithBalances(t, BalanceSnapshot{
			SendBalance:    30,
			LastResetMonth: "2026-02",
		})

		assert.True(t, account.EnsureMonthlyReset("2026-03"))
		assert.False(t, account.EnsureMonthlyReset("2026-03"))
		assert.Equal(t, 130, account.SendBalance())
	})

	t.Run("should apply a single reset after several skipped months", func(t *testing.T) {
		account := rehydrateWithBalances(t, BalanceSnapshot{
			SendBalance:    80,
			LastResetMonth: "2025-11",
		})

		changed := account.EnsureMonthlyReset("2026-03")

		assert.True(t, changed)
		assert.Equal(t, MonthlyAllowance+CarryForwardCap, account.SendBalance())
		assert.Equal(t, "2026-03", account.LastResetMonth())
	})
}

func TestAccount_CanSend(t *testing.T) {
	t.Run("should reject non-positive credits", func(t *testing.T) {
		account := rehydrateWithBalances(t, BalanceSnapshot{SendBalance: 100, LastResetMonth: "2026-03"})

		assert.ErrorIs(t, account.CanSend(0), errs.ErrInvalidCredits)
		assert.ErrorIs(t, account.CanSend(-5), errs.ErrInvalidCredits)
	})

	t.Run("should reject when send balance is insufficient", func(t *testing.T) {
		account := rehydrateWithBalances(t, BalanceSnapshot{
			SendBalance:    20,
			MonthlySent:    80,
			LastResetMonth: "2026-03",
		})

		err := account.CanSend(30)

		assert.ErrorIs(t, err, errs.ErrInsufficientSendBalance)
	})

	t.Run("should reject when the monthly cap would be exceeded", func(t *testing.T) {
		// Carry-forward can push the balance above the cap headroom
		account := rehydrateWithBalances(t, BalanceSnapshot{
			SendBalance:    70,
			MonthlySent:    80,
			LastResetMonth: "2026-03",
		})

		err := account.CanSend(30)

		assert.ErrorIs(t, err, errs.ErrMonthlyLimitExceeded)
	})

	t.Run("should report insufficient balance before the monthly cap", func(t *testing.T) {
		account := rehydrateWithBalances(t, BalanceSnapshot{
			SendBalance:    10,
			MonthlySent:    95,
			LastResetMonth: "2026-03",
		})

		err := account.CanSend(20)

		assert.ErrorIs(t, err, errs.ErrInsufficientSendBalance)
	})

	t.Run("should allow a send that exactly reaches the cap", func(t *testing.T) {
		account := rehydrateWithBalances(t, BalanceSnapshot{
			SendBalance:    50,
			MonthlySent:    70,
			LastResetMonth: "2026-03",
		})

		assert.NoError(t, account.CanSend(30))
	})
}

func TestAccount_ApplySendAndReceive(t *testing.T) {
	fixedTime := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("should move credits between sender and receiver", func(t *testing.T) {
		// Arrange
		mockTimeProvider := newFixedTimeProvider(fixedTime)
		sender := rehydrateWithBalances(t, BalanceSnapshot{SendBalance: 100, LastResetMonth: "2026-03"})
		receiver := rehydrateWithBalances(t, BalanceSnapshot{LastResetMonth: "2026-03"})

		// Act
		assert.NoError(t, sender.ApplySend(30, mockTimeProvider))
		assert.NoError(t, receiver.ApplyReceive(30, mockTimeProvider))

		// Assert
		assert.Equal(t, 70, sender.SendBalance())
		assert.Equal(t, 30, sender.MonthlySent())
		assert.Equal(t, 30, receiver.ReceivedBalance())
		assert.Equal(t, 30, receiver.TotalReceived())
		assert.Equal(t, 1, receiver.RecognitionsReceivedCount)
	})

	t.Run("should not mutate sender on rejected send", func(t *testing.T) {
		mockTimeProvider := newFixedTimeProvider(fixedTime)
		sender := rehydrateWithBalances(t, BalanceSnapshot{SendBalance: 10, LastResetMonth: "2026-03"})

		err := sender.ApplySend(30, mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrInsufficientSendBalance)
		assert.Equal(t, 10, sender.SendBalance())
		assert.Equal(t, 0, sender.MonthlySent())
	})
}

func TestAccount_ApplyRedemption(t *testing.T) {
	fixedTime := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("should drain received balance but never the lifetime total", func(t *testing.T) {
		// Arrange
		mockTimeProvider := newFixedTimeProvider(fixedTime)
		account := rehydrateWithBalances(t, BalanceSnapshot{
			ReceivedBalance: 30,
			TotalReceived:   30,
			LastResetMonth:  "2026-03",
		})

		// Act
		err := account.ApplyRedemption(10, mockTimeProvider)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 20, account.ReceivedBalance())
		assert.Equal(t, 30, account.TotalReceived())
	})

	t.Run("should reject redemption beyond the received balance", func(t *testing.T) {
		mockTimeProvider := newFixedTimeProvider(fixedTime)
		account := rehydrateWithBalances(t, BalanceSnapshot{
			ReceivedBalance: 5,
			TotalReceived:   40,
			LastResetMonth:  "2026-03",
		})

		err := account.ApplyRedemption(10, mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrInsufficientReceivedBalance)
		assert.Equal(t, 5, account.ReceivedBalance())
	})

	t.Run("should reject non-positive credits", func(t *testing.T) {
		mockTimeProvider := newFixedTimeProvider(fixedTime)
		account := rehydrateWithBalances(t, BalanceSnapshot{ReceivedBalance: 5, LastResetMonth: "2026-03"})

		assert.ErrorIs(t, account.ApplyRedemption(0, mockTimeProvider), errs.ErrInvalidCredits)
	})
}

func TestAccount_RecordEndorsementReceived(t *testing.T) {
	fixedTime := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	mockTimeProvider := newFixedTimeProvider(fixedTime)
	account := rehydrateWithBalances(t, BalanceSnapshot{LastResetMonth: "2026-03"})

	account.RecordEndorsementReceived(mockTimeProvider)
	account.RecordEndorsementReceived(mockTimeProvider)

	assert.Equal(t, 2, account.EndorsementsReceived)
}
