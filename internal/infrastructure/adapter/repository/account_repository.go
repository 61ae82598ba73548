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

// AccountRepository implements the account persistence port using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an account entity
func (r *AccountRepository) modelToEntity(userModel *model.User) *entity.Account {
	return entity.RehydrateAccount(
		userModel.ID,
		userModel.FullName,
		userModel.Email,
		userModel.PasswordHash,
		entity.BalanceSnapshot{
			SendBalance:     userModel.SendBalance,
			MonthlySent:     userModel.MonthlySent,
			LastResetMonth:  userModel.LastResetMonth,
			ReceivedBalance: userModel.ReceivedBalance,
			TotalReceived:   userModel.TotalReceived,
		},
		userModel.RecognitionsReceivedCount,
		userModel.EndorsementsReceived,
		userModel.CreatedAt,
		userModel.UpdatedAt,
	)
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Account not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrAccountNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateEmail
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error, id)
	}

	return r.modelToEntity(&userModel), nil
}

// GetByEmail retrieves an account by its email address
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAccountNotFound
		}
		return nil, r.handleDatabaseError("getting account by email", result.Error, 0)
	}

	return r.modelToEntity(&userModel), nil
}

// Create persists a new account and fills in its generated ID
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	balances := account.Balances()
	userModel := model.User{
		FullName:                  account.FullName,
		Email:                     account.Email,
		PasswordHash:              account.PasswordHash,
		SendBalance:               balances.SendBalance,
		MonthlySent:               balances.MonthlySent,
		LastResetMonth:            balances.LastResetMonth,
		ReceivedBalance:           balances.ReceivedBalance,
		TotalReceived:             balances.TotalReceived,
		RecognitionsReceivedCount: account.RecognitionsReceivedCount,
		EndorsementsReceived:      account.EndorsementsReceived,
		CreatedAt:                 account.CreatedAt,
		UpdatedAt:                 account.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error, 0)
	}

	account.ID = userModel.ID

	r.logger.Info("Account created", map[string]any{
		"user_id": account.ID,
		"email":   account.Email,
	})
	return nil
}

// Update persists the account's mutable state
func (r *AccountRepository) Update(ctx context.Context, account *entity.Account) error {
	balances := account.Balances()

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", account.ID).
		Updates(map[string]interface{}{
			"send_balance":                balances.SendBalance,
			"monthly_sent":                balances.MonthlySent,
			"last_reset_month":            balances.LastResetMonth,
			"received_balance":            balances.ReceivedBalance,
			"total_received":              balances.TotalReceived,
			"recognitions_received_count": account.RecognitionsReceivedCount,
			"endorsements_received":       account.EndorsementsReceived,
			"updated_at":                  account.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating account", result.Error, account.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Account not found during update", map[string]any{
			"user_id": account.ID,
		})
		return errs.ErrAccountNotFound
	}

	return nil
}

// List returns all accounts ordered by full name ascending
func (r *AccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).Order("full_name ASC, id ASC").Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing accounts", result.Error, 0)
	}

	accounts := make([]*entity.Account, 0, len(userModels))
	for i := range userModels {
		accounts = append(accounts, r.modelToEntity(&userModels[i]))
	}
	return accounts, nil
}

// ListTopReceivers returns up to limit accounts ordered by lifetime received
// total descending, ties broken by ID ascending
func (r *AccountRepository) ListTopReceivers(ctx context.Context, limit int) ([]*entity.Account, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).
		Order("total_received DESC, id ASC").
		Limit(limit).
		Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing top receivers", result.Error, 0)
	}

	accounts := make([]*entity.Account, 0, len(userModels))
	for i := range userModels {
		accounts = append(accounts, r.modelToEntity(&userModels[i]))
	}
	return accounts, nil
}

// IncrementEndorsementsReceived bumps the endorsement counter in a single
// atomic update, avoiding a read-modify-write race on the counter
func (r *AccountRepository) IncrementEndorsementsReceived(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"endorsements_received": gorm.Expr("endorsements_received + 1"),
			"updated_at":            r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("incrementing endorsement counter", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}
