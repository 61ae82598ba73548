package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/boostly-app/boostly/internal/domain/entity"
)

// MockEndorsementRepository is a testify mock for the persistence.EndorsementRepository port
type MockEndorsementRepository struct {
	mock.Mock
}

func (m *MockEndorsementRepository) Create(ctx context.Context, endorsement *entity.Endorsement) error {
	args := m.Called(ctx, endorsement)
	return args.Error(0)
}

func (m *MockEndorsementRepository) CountByRecognitionIDs(ctx context.Context, recognitionIDs []uint64) (map[uint64]int, error) {
	args := m.Called(ctx, recognitionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint64]int), args.Error(1)
}
