package core

import (
	"github.com/stretchr/testify/mock"

	"github.com/boostly-app/boostly/internal/domain/port/core"
)

// MockTokenService is a testify mock for the core.TokenService port
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(principal core.Principal) (string, error) {
	args := m.Called(principal)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token string) (*core.Principal, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.Principal), args.Error(1)
}
