package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/boostly-app/boostly/internal/domain/port/persistence"
)

// MockUnitOfWork is a testify mock for the persistence.UnitOfWork port
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.AccountRepository)
}

func (m *MockUnitOfWork) GetRecognitionRepository(ctx context.Context) persistence.RecognitionRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.RecognitionRepository)
}

func (m *MockUnitOfWork) GetRedemptionRepository(ctx context.Context) persistence.RedemptionRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.RedemptionRepository)
}
