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

// RedemptionRepository implements the redemption persistence port using GORM
type RedemptionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewRedemptionRepository creates a new RedemptionRepository instance
func NewRedemptionRepository(db *gorm.DB, logger coreport.Logger) *RedemptionRepository {
	return &RedemptionRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new redemption record and fills in its generated ID
func (r *RedemptionRepository) Create(ctx context.Context, redemption *entity.Redemption) error {
	redemptionModel := model.Redemption{
		PublicID:        redemption.PublicID,
		UserID:          redemption.UserID,
		CreditsRedeemed: redemption.CreditsRedeemed,
		AmountInINR:     redemption.AmountInINR,
		CreatedAt:       redemption.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&redemptionModel)
	if result.Error != nil {
		r.logger.Error("Failed to create redemption", map[string]any{
			"user_id": redemption.UserID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	redemption.ID = redemptionModel.ID
	return nil
}

// ListByUser returns a user's redemption history, newest first
func (r *RedemptionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Redemption, error) {
	var redemptionModels []model.Redemption
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&redemptionModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	redemptions := make([]*entity.Redemption, 0, len(redemptionModels))
	for i := range redemptionModels {
		m := redemptionModels[i]
		redemptions = append(redemptions, &entity.Redemption{
			ID:              m.ID,
			PublicID:        m.PublicID,
			UserID:          m.UserID,
			CreditsRedeemed: m.CreditsRedeemed,
			AmountInINR:     m.AmountInINR,
			CreatedAt:       m.CreatedAt,
		})
	}
	return redemptions, nil
}
