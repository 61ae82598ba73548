package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/boostly-app/boostly/internal/domain/entity"
)

// MockRedemptionRepository is a testify mock for the persistence.RedemptionRepository port
type MockRedemptionRepository struct {
	mock.Mock
}

func (m *MockRedemptionRepository) Create(ctx context.Context, redemption *entity.Redemption) error {
	args := m.Called(ctx, redemption)
	return args.Error(0)
}

func (m *MockRedemptionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Redemption, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Redemption), args.Error(1)
}
