package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/boostly-app/boostly/internal/domain/entity"
	errs "github.com/boostly-app/boostly/internal/domain/error"
	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/domain/port/persistence"
	"github.com/boostly-app/boostly/internal/domain/port/usecase"
)

// MinPasswordLength is the minimum accepted password length on registration
const MinPasswordLength = 6

// Service implements registration and login
type Service struct {
	accountRepo  persistence.AccountRepository
	hasher       coreport.PasswordHasher
	tokens       coreport.TokenService
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new auth service
func NewService(
	accountRepo persistence.AccountRepository,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenService,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates a new account with the full monthly allowance and issues a
// bearer token. Email uniqueness is backed by the storage constraint; the
// lookup here only gives a friendlier fast path.
func (s *Service) Register(ctx context.Context, req usecase.RegisterRequest) (*usecase.AuthResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := normalizeEmail(req.Email)
	if fullName == "" || email == "" || len(req.Password) < MinPasswordLength {
		return nil, errs.ErrInvalidRequest
	}

	if _, err := s.accountRepo.GetByEmail(ctx, email); err == nil {
		return nil, errs.ErrDuplicateEmail
	} else if !errors.Is(err, errs.ErrAccountNotFound) {
		return nil, err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := entity.NewAccount(fullName, email, passwordHash, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("Account registered", map[string]any{
		"user_id": account.ID,
		"email":   account.Email,
	})

	return s.buildAuthResponse(account)
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password both come back as ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, creds usecase.Credentials) (*usecase.AuthResponse, error) {
	email := normalizeEmail(creds.Email)
	if email == "" || creds.Password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Compare(account.PasswordHash, creds.Password) {
		s.logger.Warn("Failed login attempt", map[string]any{
			"email": email,
		})
		return nil, errs.ErrInvalidCredentials
	}

	return s.buildAuthResponse(account)
}

func (s *Service) buildAuthResponse(account *entity.Account) (*usecase.AuthResponse, error) {
	token, err := s.tokens.Issue(coreport.Principal{
		UserID:   account.ID,
		Email:    account.Email,
		FullName: account.FullName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &usecase.AuthResponse{
		User: usecase.UserProfile{
			ID:              account.ID,
			FullName:        account.FullName,
			Email:           account.Email,
			SendBalance:     account.SendBalance(),
			ReceivedBalance: account.ReceivedBalance(),
		},
		Token: token,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
