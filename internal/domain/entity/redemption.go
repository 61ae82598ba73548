package entity

import (
	"time"

	errs "github.com/boostly-app/boostly/internal/domain/error"
	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/google/uuid"
)

// INRPerCredit is the fixed exchange rate applied when converting received
// credits into a fiat-equivalent voucher. Not configurable at runtime.
const INRPerCredit = 5

// Redemption is an immutable record of a point-in-time conversion of received
// credits into a fiat-equivalent voucher, created atomically with the
// receivedBalance decrement.
type Redemption struct {
	ID              uint64
	PublicID        string
	UserID          uint64
	CreditsRedeemed int
	AmountInINR     int
	CreatedAt       time.Time
}

// NewRedemption creates a new redemption record, computing the voucher amount
// at the fixed exchange rate
func NewRedemption(userID uint64, credits int, timeProvider coreport.TimeProvider) (*Redemption, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if credits <= 0 {
		return nil, errs.ErrInvalidCredits
	}

	return &Redemption{
		PublicID:        uuid.NewString(),
		UserID:          userID,
		CreditsRedeemed: credits,
		AmountInINR:     credits * INRPerCredit,
		CreatedAt:       timeProvider.Now(),
	}, nil
}
