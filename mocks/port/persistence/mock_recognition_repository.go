package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/boostly-app/boostly/internal/domain/entity"
)

// MockRecognitionRepository is a testify mock for the persistence.RecognitionRepository port
type MockRecognitionRepository struct {
	mock.Mock
}

func (m *MockRecognitionRepository) Create(ctx context.Context, recognition *entity.Recognition) error {
	args := m.Called(ctx, recognition)
	return args.Error(0)
}

func (m *MockRecognitionRepository) GetByPublicID(ctx context.Context, publicID string) (*entity.Recognition, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Recognition), args.Error(1)
}

func (m *MockRecognitionRepository) ListByReceiver(ctx context.Context, receiverID uint64) ([]*entity.Recognition, error) {
	args := m.Called(ctx, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Recognition), args.Error(1)
}

func (m *MockRecognitionRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Recognition, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Recognition), args.Error(1)
}
