package account

import (
	"context"
	"fmt"

	"github.com/boostly-app/boostly/internal/domain/entity"
	errs "github.com/boostly-app/boostly/internal/domain/error"
	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/domain/port/persistence"
	"github.com/boostly-app/boostly/internal/domain/port/usecase"
)

// Service implements account reads, the user directory and credit redemption
type Service struct {
	uow          persistence.UnitOfWork
	accountRepo  persistence.AccountRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new account service
func NewService(
	uow persistence.UnitOfWork,
	accountRepo persistence.AccountRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		accountRepo:  accountRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetAccount returns the account state. A pending monthly reset is applied and
// persisted first, so the returned balances are always current-month balances.
func (s *Service) GetAccount(ctx context.Context, userID uint64) (*usecase.AccountResponse, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	account, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	currentMonth := entity.MonthToken(s.timeProvider.Now())
	if account.EnsureMonthlyReset(currentMonth) {
		if err := s.accountRepo.Update(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to persist monthly reset: %w", err)
		}
		s.logger.Info("Applied monthly credit reset", map[string]any{
			"user_id": userID,
			"month":   currentMonth,
		})
	}

	return toAccountResponse(account), nil
}

// Redeem converts received credits into a fiat-equivalent voucher. The balance
// decrement and the redemption record commit in one transaction; the lifetime
// received total is never reduced.
func (s *Service) Redeem(ctx context.Context, userID uint64, credits int) (*usecase.RedemptionResponse, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if credits <= 0 {
		return nil, errs.ErrInvalidCredits
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	redemption, account, err := s.executeRedemption(txCtx, userID, credits)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back redemption", map[string]any{
				"error":   rbErr.Error(),
				"user_id": userID,
			})
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit redemption: %w", err)
	}

	s.logger.Info("Credits redeemed", map[string]any{
		"redemption_id": redemption.PublicID,
		"user_id":       userID,
		"credits":       credits,
		"amount_inr":    redemption.AmountInINR,
	})

	return &usecase.RedemptionResponse{
		RedemptionID:       redemption.PublicID,
		CreditsRedeemed:    redemption.CreditsRedeemed,
		AmountInINR:        redemption.AmountInINR,
		NewReceivedBalance: account.ReceivedBalance(),
	}, nil
}

func (s *Service) executeRedemption(
	txCtx context.Context,
	userID uint64,
	credits int,
) (*entity.Redemption, *entity.Account, error) {
	accounts := s.uow.GetAccountRepository(txCtx)
	redemptions := s.uow.GetRedemptionRepository(txCtx)

	account, err := accounts.GetByID(txCtx, userID)
	if err != nil {
		return nil, nil, err
	}

	if err := account.ApplyRedemption(credits, s.timeProvider); err != nil {
		return nil, nil, err
	}

	redemption, err := entity.NewRedemption(userID, credits, s.timeProvider)
	if err != nil {
		return nil, nil, err
	}

	if err := accounts.Update(txCtx, account); err != nil {
		return nil, nil, fmt.Errorf("failed to update account: %w", err)
	}
	if err := redemptions.Create(txCtx, redemption); err != nil {
		return nil, nil, fmt.Errorf("failed to create redemption: %w", err)
	}

	return redemption, account, nil
}

// ListUsers returns the directory of all users, ordered by name
func (s *Service) ListUsers(ctx context.Context) ([]usecase.UserSummary, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]usecase.UserSummary, 0, len(accounts))
	for _, a := range accounts {
		summaries = append(summaries, usecase.UserSummary{
			ID:       a.ID,
			FullName: a.FullName,
			Email:    a.Email,
		})
	}
	return summaries, nil
}

func toAccountResponse(a *entity.Account) *usecase.AccountResponse {
	return &usecase.AccountResponse{
		ID:                        a.ID,
		FullName:                  a.FullName,
		Email:                     a.Email,
		SendBalance:               a.SendBalance(),
		MonthlySent:               a.MonthlySent(),
		ReceivedBalance:           a.ReceivedBalance(),
		TotalReceived:             a.TotalReceived(),
		RecognitionsReceivedCount: a.RecognitionsReceivedCount,
		EndorsementsReceived:      a.EndorsementsReceived,
	}
}
