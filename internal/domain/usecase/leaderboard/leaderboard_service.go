package leaderboard

import (
	"context"

	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/domain/port/persistence"
	"github.com/boostly-app/boostly/internal/domain/port/usecase"
)

// Service implements the read-only leaderboard query over lifetime received
// totals. Ranks come from the stored totals as-is; the eventually consistent
// endorsement counter never affects ordering.
type Service struct {
	accountRepo persistence.AccountRepository
	logger      coreport.Logger
}

// NewService creates a new leaderboard service
func NewService(accountRepo persistence.AccountRepository, logger coreport.Logger) *Service {
	return &Service{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// GetLeaderboard returns up to limit accounts ranked by lifetime received
// credits descending, ties broken by ID ascending
func (s *Service) GetLeaderboard(ctx context.Context, limit int) ([]usecase.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = usecase.DefaultLeaderboardLimit
	}

	accounts, err := s.accountRepo.ListTopReceivers(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]usecase.LeaderboardEntry, 0, len(accounts))
	for i, a := range accounts {
		entries = append(entries, usecase.LeaderboardEntry{
			Rank:                      i + 1,
			ID:                        a.ID,
			FullName:                  a.FullName,
			Email:                     a.Email,
			TotalCreditsReceived:      a.TotalReceived(),
			RecognitionsReceivedCount: a.RecognitionsReceivedCount,
			EndorsementsReceived:      a.EndorsementsReceived,
		})
	}
	return entries, nil
}
