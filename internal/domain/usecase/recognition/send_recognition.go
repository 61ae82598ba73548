package recognition

import (
	"context"
	"fmt"

	"github.com/boostly-app/boostly/internal/domain/entity"
	errs "github.com/boostly-app/boostly/internal/domain/error"
	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/domain/port/persistence"
	"github.com/boostly-app/boostly/internal/domain/port/usecase"
)

// Service implements the recognition use cases: sending credits and reading
// recognition feeds. All balance mutations of a send happen inside a single
// unit of work so partial transfers can never be observed.
type Service struct {
	uow             persistence.UnitOfWork
	accountRepo     persistence.AccountRepository
	recognitionRepo persistence.RecognitionRepository
	endorsementRepo persistence.EndorsementRepository
	validator       *Validator
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewService creates a new recognition service
func NewService(
	uow persistence.UnitOfWork,
	accountRepo persistence.AccountRepository,
	recognitionRepo persistence.RecognitionRepository,
	endorsementRepo persistence.EndorsementRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:             uow,
		accountRepo:     accountRepo,
		recognitionRepo: recognitionRepo,
		endorsementRepo: endorsementRepo,
		validator:       NewValidator(),
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Send validates and executes a credit transfer from sender to receiver.
//
// The checks run in a fixed order: request shape, self-send, existence of both
// parties, monthly reset, send balance, monthly cap. The reset is persisted
// before the balance checks so a stale account never causes a spurious
// rejection at a month boundary. The two account updates and the recognition
// record commit in one transaction.
func (s *Service) Send(
	ctx context.Context,
	senderID uint64,
	req usecase.SendRecognitionRequest,
) (*usecase.RecognitionResponse, error) {
	if err := s.validator.ValidateSend(senderID, req); err != nil {
		return nil, err
	}

	currentMonth := entity.MonthToken(s.timeProvider.Now())

	// Both parties must exist before any balance work happens
	sender, err := s.accountRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.accountRepo.GetByID(ctx, req.ReceiverID); err != nil {
		return nil, err
	}

	// Persist a pending monthly reset up front. If the transfer below is
	// rejected the reset still sticks, matching what the sender sees on
	// their next balance read.
	if sender.EnsureMonthlyReset(currentMonth) {
		if err := s.accountRepo.Update(ctx, sender); err != nil {
			return nil, fmt.Errorf("failed to persist monthly reset: %w", err)
		}
		s.logger.Info("Applied monthly credit reset", map[string]any{
			"user_id": senderID,
			"month":   currentMonth,
		})
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	recognition, err := s.executeTransfer(txCtx, senderID, req, currentMonth)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back recognition transfer", map[string]any{
				"error":     rbErr.Error(),
				"sender_id": senderID,
			})
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit recognition transfer: %w", err)
	}

	s.logger.Info("Recognition sent", map[string]any{
		"recognition_id": recognition.PublicID,
		"sender_id":      senderID,
		"receiver_id":    req.ReceiverID,
		"credits":        req.Credits,
	})

	return &usecase.RecognitionResponse{
		ID:         recognition.PublicID,
		SenderID:   recognition.SenderID,
		ReceiverID: recognition.ReceiverID,
		Credits:    recognition.Credits,
		Message:    recognition.Message,
		CreatedAt:  recognition.CreatedAt,
	}, nil
}

// executeTransfer performs the balance mutations and record creation inside
// the transaction bound to txCtx. Both accounts are re-read through the
// transactional repositories so the checks apply to current state.
func (s *Service) executeTransfer(
	txCtx context.Context,
	senderID uint64,
	req usecase.SendRecognitionRequest,
	currentMonth string,
) (*entity.Recognition, error) {
	accounts := s.uow.GetAccountRepository(txCtx)
	recognitions := s.uow.GetRecognitionRepository(txCtx)

	sender, err := accounts.GetByID(txCtx, senderID)
	if err != nil {
		return nil, err
	}
	receiver, err := accounts.GetByID(txCtx, req.ReceiverID)
	if err != nil {
		return nil, err
	}

	// Normally a no-op: the reset was persisted before the transaction began
	sender.EnsureMonthlyReset(currentMonth)

	if err := sender.ApplySend(req.Credits, s.timeProvider); err != nil {
		return nil, err
	}
	if err := receiver.ApplyReceive(req.Credits, s.timeProvider); err != nil {
		return nil, err
	}

	recognition, err := entity.NewRecognition(senderID, req.ReceiverID, req.Credits, req.Message, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := accounts.Update(txCtx, sender); err != nil {
		return nil, fmt.Errorf("failed to update sender: %w", err)
	}
	if err := accounts.Update(txCtx, receiver); err != nil {
		return nil, fmt.Errorf("failed to update receiver: %w", err)
	}
	if err := recognitions.Create(txCtx, recognition); err != nil {
		return nil, fmt.Errorf("failed to create recognition: %w", err)
	}

	return recognition, nil
}

// ListForReceiver returns the recognitions a user has received, newest first,
// enriched with sender names and endorsement counts
func (s *Service) ListForReceiver(ctx context.Context, receiverID uint64) ([]usecase.RecognitionFeedItem, error) {
	if receiverID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if _, err := s.accountRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	recognitions, err := s.recognitionRepo.ListByReceiver(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	return s.buildFeed(ctx, recognitions, false)
}

// defaultRecentLimit bounds the global feed when the caller gives no limit
const defaultRecentLimit = 50

// ListRecent returns the global recognition feed, newest first
func (s *Service) ListRecent(ctx context.Context, limit int) ([]usecase.RecognitionFeedItem, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	recognitions, err := s.recognitionRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.buildFeed(ctx, recognitions, true)
}

// buildFeed resolves party names and endorsement counts for a page of
// recognition records. Rows whose sender account no longer resolves are
// skipped rather than failing the whole feed.
func (s *Service) buildFeed(
	ctx context.Context,
	recognitions []*entity.Recognition,
	includeReceiver bool,
) ([]usecase.RecognitionFeedItem, error) {
	ids := make([]uint64, 0, len(recognitions))
	for _, r := range recognitions {
		ids = append(ids, r.ID)
	}

	counts := map[uint64]int{}
	if len(ids) > 0 {
		var err error
		counts, err = s.endorsementRepo.CountByRecognitionIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	accountCache := make(map[uint64]*entity.Account)
	lookup := func(id uint64) *entity.Account {
		if account, ok := accountCache[id]; ok {
			return account
		}
		account, err := s.accountRepo.GetByID(ctx, id)
		if err != nil {
			if !errs.IsNotFoundError(err) {
				s.logger.Warn("Failed to resolve feed participant", map[string]any{
					"user_id": id,
					"error":   err.Error(),
				})
			}
			account = nil
		}
		accountCache[id] = account
		return account
	}

	items := make([]usecase.RecognitionFeedItem, 0, len(recognitions))
	for _, r := range recognitions {
		sender := lookup(r.SenderID)
		if sender == nil {
			continue
		}

		item := usecase.RecognitionFeedItem{
			ID:                r.PublicID,
			SenderName:        sender.FullName,
			SenderEmail:       sender.Email,
			Credits:           r.Credits,
			Message:           r.Message,
			CreatedAt:         r.CreatedAt,
			EndorsementsCount: counts[r.ID],
		}
		if includeReceiver {
			if receiver := lookup(r.ReceiverID); receiver != nil {
				item.ReceiverName = receiver.FullName
				item.ReceiverEmail = receiver.Email
			}
		}
		items = append(items, item)
	}
	return items, nil
}
