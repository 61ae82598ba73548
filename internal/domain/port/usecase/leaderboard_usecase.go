package usecase

import (
	"context"
)

// DefaultLeaderboardLimit is used when the caller does not supply a limit
const DefaultLeaderboardLimit = 10

// LeaderboardEntry is one ranked row of the leaderboard
type LeaderboardEntry struct {
	Rank                      int    `json:"rank"`
	ID                        uint64 `json:"id"`
	FullName                  string `json:"fullName"`
	Email                     string `json:"email"`
	TotalCreditsReceived      int    `json:"totalCreditsReceived"`
	RecognitionsReceivedCount int    `json:"recognitionsReceivedCount"`
	EndorsementsReceived      int    `json:"endorsementsReceived"`
}

// LeaderboardUseCase defines the read-only leaderboard query
type LeaderboardUseCase interface {
	// GetLeaderboard returns up to limit accounts ranked by lifetime received
	// credits descending, ties broken by ID ascending. Ranks are 1-based
	// positions in the truncated result; ties still get distinct ranks.
	GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}
