package endorsement

import (
	"context"
	"errors"
	"fmt"

	"github.com/boostly-app/boostly/internal/domain/entity"
	errs "github.com/boostly-app/boostly/internal/domain/error"
	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/domain/port/persistence"
	"github.com/boostly-app/boostly/internal/domain/port/usecase"
)

// Service implements the endorsement use case. Uniqueness of the
// (recognition, endorser) pair is enforced by the storage constraint rather
// than a read-then-write check, so concurrent duplicates cannot slip through.
type Service struct {
	recognitionRepo persistence.RecognitionRepository
	endorsementRepo persistence.EndorsementRepository
	accountRepo     persistence.AccountRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewService creates a new endorsement service
func NewService(
	recognitionRepo persistence.RecognitionRepository,
	endorsementRepo persistence.EndorsementRepository,
	accountRepo persistence.AccountRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		recognitionRepo: recognitionRepo,
		endorsementRepo: endorsementRepo,
		accountRepo:     accountRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Endorse records a one-time affirmation of an existing recognition. The
// receiver's endorsement counter is bumped after the endorsement commits; a
// failed bump is logged and left for reconciliation, the endorsement stands.
func (s *Service) Endorse(
	ctx context.Context,
	recognitionID string,
	endorserID uint64,
) (*usecase.EndorsementResponse, error) {
	if endorserID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if recognitionID == "" {
		return nil, errs.ErrRecognitionNotFound
	}

	recognition, err := s.recognitionRepo.GetByPublicID(ctx, recognitionID)
	if err != nil {
		return nil, err
	}

	endorsement, err := entity.NewEndorsement(recognition.ID, endorserID, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.endorsementRepo.Create(ctx, endorsement); err != nil {
		if errors.Is(err, errs.ErrAlreadyEndorsed) {
			return nil, errs.NewDuplicateEndorsementError(recognitionID, endorserID)
		}
		return nil, fmt.Errorf("failed to create endorsement: %w", err)
	}

	if err := s.accountRepo.IncrementEndorsementsReceived(ctx, recognition.ReceiverID); err != nil {
		s.logger.Warn("Failed to bump endorsement counter", map[string]any{
			"recognition_id": recognitionID,
			"receiver_id":    recognition.ReceiverID,
			"error":          err.Error(),
		})
	}

	s.logger.Info("Recognition endorsed", map[string]any{
		"endorsement_id": endorsement.PublicID,
		"recognition_id": recognitionID,
		"endorser_id":    endorserID,
	})

	return &usecase.EndorsementResponse{
		ID:            endorsement.PublicID,
		RecognitionID: recognition.PublicID,
	}, nil
}
