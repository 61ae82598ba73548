package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/boostly-app/boostly/internal/domain/entity"
	errs "github.com/boostly-app/boostly/internal/domain/error"
	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/model"
)

// RecognitionRepository implements the recognition persistence port using GORM
type RecognitionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewRecognitionRepository creates a new RecognitionRepository instance
func NewRecognitionRepository(db *gorm.DB, logger coreport.Logger) *RecognitionRepository {
	return &RecognitionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *RecognitionRepository) modelToEntity(m *model.Recognition) *entity.Recognition {
	return &entity.Recognition{
		ID:         m.ID,
		PublicID:   m.PublicID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Credits:    m.Credits,
		Message:    m.Message,
		CreatedAt:  m.CreatedAt,
	}
}

// Create persists a new recognition and fills in its generated ID
func (r *RecognitionRepository) Create(ctx context.Context, recognition *entity.Recognition) error {
	recognitionModel := model.Recognition{
		PublicID:   recognition.PublicID,
		SenderID:   recognition.SenderID,
		ReceiverID: recognition.ReceiverID,
		Credits:    recognition.Credits,
		Message:    recognition.Message,
		CreatedAt:  recognition.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&recognitionModel)
	if result.Error != nil {
		r.logger.Error("Failed to create recognition", map[string]any{
			"recognition_id": recognition.PublicID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	recognition.ID = recognitionModel.ID
	return nil
}

// GetByPublicID retrieves a recognition by its public UUID
func (r *RecognitionRepository) GetByPublicID(ctx context.Context, publicID string) (*entity.Recognition, error) {
	var recognitionModel model.Recognition
	result := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&recognitionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrRecognitionNotFound
		}
		r.logger.Error("Failed to get recognition", map[string]any{
			"recognition_id": publicID,
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&recognitionModel), nil
}

// ListByReceiver returns the recognitions received by a user, newest first
func (r *RecognitionRepository) ListByReceiver(ctx context.Context, receiverID uint64) ([]*entity.Recognition, error) {
	var recognitionModels []model.Recognition
	result := r.db.WithContext(ctx).
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC, id DESC").
		Find(&recognitionModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	recognitions := make([]*entity.Recognition, 0, len(recognitionModels))
	for i := range recognitionModels {
		recognitions = append(recognitions, r.modelToEntity(&recognitionModels[i]))
	}
	return recognitions, nil
}

// ListRecent returns up to limit recognitions across all users, newest first
func (r *RecognitionRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Recognition, error) {
	var recognitionModels []model.Recognition
	result := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&recognitionModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	recognitions := make([]*entity.Recognition, 0, len(recognitionModels))
	for i := range recognitionModels {
		recognitions = append(recognitions, r.modelToEntity(&recognitionModels[i]))
	}
	return recognitions, nil
}
