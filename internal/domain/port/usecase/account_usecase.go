package usecase

import (
	"context"
)

// AccountResponse represents the full account state returned to its owner
type AccountResponse struct {
	ID                        uint64 `json:"id"`
	FullName                  string `json:"fullName"`
	Email                     string `json:"email"`
	SendBalance               int    `json:"sendBalance"`
	MonthlySent               int    `json:"monthlySent"`
	ReceivedBalance           int    `json:"receivedBalance"`
	TotalReceived             int    `json:"totalReceived"`
	RecognitionsReceivedCount int    `json:"recognitionsReceivedCount"`
	EndorsementsReceived      int    `json:"endorsementsReceived"`
}

// RedemptionResponse represents the result of a redemption
type RedemptionResponse struct {
	RedemptionID       string `json:"redemptionId"`
	CreditsRedeemed    int    `json:"creditsRedeemed"`
	AmountInINR        int    `json:"amountInINR"`
	NewReceivedBalance int    `json:"newReceivedBalance"`
}

// UserSummary is the directory entry for picking recognition receivers
type UserSummary struct {
	ID       uint64 `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// AccountUseCase defines methods for account-related business operations
type AccountUseCase interface {
	// GetAccount returns the account state, applying (and persisting) a
	// pending monthly credit reset as a side effect first
	GetAccount(ctx context.Context, userID uint64) (*AccountResponse, error)

	// Redeem converts received credits into a fiat-equivalent voucher at the
	// fixed exchange rate, atomically with the balance decrement
	Redeem(ctx context.Context, userID uint64, credits int) (*RedemptionResponse, error)

	// ListUsers returns all users for the recognition receiver picker,
	// ordered by name
	ListUsers(ctx context.Context) ([]UserSummary, error)
}
