package entity

import (
	"time"

	errs "github.com/boostly-app/boostly/internal/domain/error"
	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
)

// Credit accounting constants
const (
	// MonthlyAllowance is the number of fresh send credits granted each month
	MonthlyAllowance = 100
	// CarryForwardCap limits how much unused send balance rolls into the next month
	CarryForwardCap = 50
	// MonthlySendCap is the hard limit on credits sent within one calendar month,
	// regardless of carry-forward
	MonthlySendCap = 100
)

// MonthToken returns the "YYYY-MM" token identifying the calendar month of t.
// Tokens are computed in UTC so the reset boundary does not depend on server
// timezone.
func MonthToken(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// Account represents a user's credit accounting state. The balance and counter
// fields are private; all mutations funnel through the send, receive,
// redemption and endorsement operations so the invariants hold.
type Account struct {
	ID           uint64
	FullName     string
	Email        string
	PasswordHash string

	sendBalance    int    // credits available to send this month
	monthlySent    int    // credits sent this month, never exceeds MonthlySendCap
	lastResetMonth string // "YYYY-MM" of the last applied monthly reset

	receivedBalance int // redeemable credits currently held
	totalReceived   int // lifetime received total, never reduced by redemption

	RecognitionsReceivedCount int
	EndorsementsReceived      int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BalanceSnapshot carries the credit fields of a persisted account for
// rehydration by repositories.
type BalanceSnapshot struct {
	SendBalance     int
	MonthlySent     int
	LastResetMonth  string
	ReceivedBalance int
	TotalReceived   int
}

// NewAccount creates a new account with the full monthly allowance for the
// current month.
func NewAccount(fullName, email, passwordHash string, timeProvider coreport.TimeProvider) (*Account, error) {
	if fullName == "" || email == "" {
		return nil, errs.ErrInvalidRequest
	}

	now := timeProvider.Now()
	return &Account{
		FullName:       fullName,
		Email:          email,
		PasswordHash:   passwordHash,
		sendBalance:    MonthlyAllowance,
		monthlySent:    0,
		lastResetMonth: MonthToken(now),
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// RehydrateAccount reconstructs an account entity from persisted state
// (for internal use, like repositories).
func RehydrateAccount(
	id uint64,
	fullName, email, passwordHash string,
	balances BalanceSnapshot,
	recognitionsReceivedCount, endorsementsReceived int,
	createdAt, updatedAt time.Time,
) *Account {
	return &Account{
		ID:                        id,
		FullName:                  fullName,
		Email:                     email,
		PasswordHash:              passwordHash,
		sendBalance:               balances.SendBalance,
		monthlySent:               balances.MonthlySent,
		lastResetMonth:            balances.LastResetMonth,
		receivedBalance:           balances.ReceivedBalance,
		totalReceived:             balances.TotalReceived,
		RecognitionsReceivedCount: recognitionsReceivedCount,
		EndorsementsReceived:      endorsementsReceived,
		CreatedAt:                 createdAt,
		UpdatedAt:                 updatedAt,
	}
}

// SendBalance returns the credits available to send this month
func (a *Account) SendBalance() int {
	return a.sendBalance
}

// MonthlySent returns the credits sent this month
func (a *Account) MonthlySent() int {
	return a.monthlySent
}

// LastResetMonth returns the "YYYY-MM" token of the last applied reset
func (a *Account) LastResetMonth() string {
	return a.lastResetMonth
}

// ReceivedBalance returns the redeemable credits currently held
func (a *Account) ReceivedBalance() int {
	return a.receivedBalance
}

// TotalReceived returns the lifetime received total
func (a *Account) TotalReceived() int {
	return a.totalReceived
}

// Balances returns the credit fields as a snapshot (for internal use, like
// repositories persisting the account).
func (a *Account) Balances() BalanceSnapshot {
	return BalanceSnapshot{
		SendBalance:     a.sendBalance,
		MonthlySent:     a.monthlySent,
		LastResetMonth:  a.lastResetMonth,
		ReceivedBalance: a.receivedBalance,
		TotalReceived:   a.totalReceived,
	}
}

// EnsureMonthlyReset rolls the send allowance over to currentMonth if the
// account has not been reset for it yet. Unused send balance carries forward
// up to CarryForwardCap. Returns true when the account changed and must be
// persisted by the caller. Repeated calls within the same month are no-ops.
func (a *Account) EnsureMonthlyReset(currentMonth string) bool {
	if a.lastResetMonth == currentMonth {
		return false
	}

	carryForward := a.sendBalance
	if carryForward > CarryForwardCap {
		carryForward = CarryForwardCap
	}

	a.sendBalance = MonthlyAllowance + carryForward
	a.monthlySent = 0
	a.lastResetMonth = currentMonth
	return true
}

// CanSend checks whether the account may send the given credits this month.
// The send-balance check comes before the monthly-cap check so the two
// rejections stay distinguishable in the order callers expect.
func (a *Account) CanSend(credits int) error {
	if credits <= 0 {
		return errs.ErrInvalidCredits
	}
	if a.sendBalance < credits {
		return errs.NewInsufficientSendBalanceError(a.ID, credits, a.sendBalance)
	}
	if a.monthlySent+credits > MonthlySendCap {
		return errs.NewMonthlyLimitError(a.ID, a.monthlySent, credits, MonthlySendCap)
	}
	return nil
}

// ApplySend deducts the credits from the send balance and counts them against
// the monthly cap. The caller must have applied the monthly reset first.
func (a *Account) ApplySend(credits int, timeProvider coreport.TimeProvider) error {
	if err := a.CanSend(credits); err != nil {
		return err
	}

	a.sendBalance -= credits
	a.monthlySent += credits
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// ApplyReceive credits the account with received recognition credits
func (a *Account) ApplyReceive(credits int, timeProvider coreport.TimeProvider) error {
	if credits <= 0 {
		return errs.ErrInvalidCredits
	}

	a.receivedBalance += credits
	a.totalReceived += credits
	a.RecognitionsReceivedCount++
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// ApplyRedemption drains credits from the redeemable pool. The lifetime total
// is unaffected; redemption never reduces leaderboard standing.
func (a *Account) ApplyRedemption(credits int, timeProvider coreport.TimeProvider) error {
	if credits <= 0 {
		return errs.ErrInvalidCredits
	}
	if a.receivedBalance < credits {
		return errs.ErrInsufficientReceivedBalance
	}

	a.receivedBalance -= credits
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// RecordEndorsementReceived bumps the endorsement counter
func (a *Account) RecordEndorsementReceived(timeProvider coreport.TimeProvider) {
	a.EndorsementsReceived++
	a.UpdatedAt = timeProvider.Now()
}
