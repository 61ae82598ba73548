package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/boostly-app/boostly/internal/domain/entity"
	errs "github.com/boostly-app/boostly/internal/domain/error"
	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/model"
)

// EndorsementRepository implements the endorsement persistence port using
// GORM. Duplicate detection relies on the composite unique index, not a
// pre-check, so concurrent duplicates resolve to exactly one winner.
type EndorsementRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewEndorsementRepository creates a new EndorsementRepository instance
func NewEndorsementRepository(db *gorm.DB, logger coreport.Logger) *EndorsementRepository {
	return &EndorsementRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create persists a new endorsement. A unique constraint violation on the
// (recognition_id, endorser_id) pair comes back as ErrAlreadyEndorsed.
func (r *EndorsementRepository) Create(ctx context.Context, endorsement *entity.Endorsement) error {
	endorsementModel := model.Endorsement{
		PublicID:      endorsement.PublicID,
		RecognitionID: endorsement.RecognitionID,
		EndorserID:    endorsement.EndorserID,
		CreatedAt:     endorsement.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&endorsementModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrAlreadyEndorsed
		}
		r.logger.Error("Failed to create endorsement", map[string]any{
			"recognition_id": endorsement.RecognitionID,
			"endorser_id":    endorsement.EndorserID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	endorsement.ID = endorsementModel.ID
	return nil
}

// CountByRecognitionIDs returns the endorsement count per recognition for the
// given IDs. Recognitions with no endorsements are absent from the map.
func (r *EndorsementRepository) CountByRecognitionIDs(ctx context.Context, recognitionIDs []uint64) (map[uint64]int, error) {
	counts := make(map[uint64]int, len(recognitionIDs))
	if len(recognitionIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		RecognitionID uint64
		Count         int
	}
	result := r.db.WithContext(ctx).
		Model(&model.Endorsement{}).
		Select("recognition_id, COUNT(*) AS count").
		Where("recognition_id IN ?", recognitionIDs).
		Group("recognition_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	for _, row := range rows {
		counts[row.RecognitionID] = row.Count
	}
	return counts, nil
}
