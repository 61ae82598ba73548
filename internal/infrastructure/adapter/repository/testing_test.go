package repository_test

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/boostly-app/boostly/internal/domain/entity"
	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/domain/port/persistence"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/database"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/logger"
	mockcore "github.com/boostly-app/boostly/mocks/port/core"
)

// repoTestEnv bundles what every repository integration test needs: an
// in-memory database with the real schema, a pinned clock and a quiet logger.
type repoTestEnv struct {
	db           *gorm.DB
	timeProvider *mockcore.MockTimeProvider
	logger       coreport.Logger
	now          time.Time
}

func newRepoTestEnv(t *testing.T) *repoTestEnv {
	t.Helper()

	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	timeProvider := new(mockcore.MockTimeProvider)
	timeProvider.On("Now").Return(now)

	return &repoTestEnv{
		db:           database.NewTestDB(t),
		timeProvider: timeProvider,
		logger:       logger.NewNoopLogger(),
		now:          now,
	}
}

// advanceClock re-pins the mocked clock to a later instant
func (e *repoTestEnv) advanceClock(d time.Duration) {
	e.now = e.now.Add(d)
	e.timeProvider.ExpectedCalls = nil
	e.timeProvider.On("Now").Return(e.now)
}

// mustCreateAccount persists a fresh account through the entity constructor
// so it starts with the full monthly allowance
func (e *repoTestEnv) mustCreateAccount(t *testing.T, repo persistence.AccountRepository, fullName, email string) *entity.Account {
	t.Helper()

	account, err := entity.NewAccount(fullName, email, "stored-hash", e.timeProvider)
	if err != nil {
		t.Fatalf("Failed to build account: %v", err)
	}
	if err := repo.Create(context.Background(), account); err != nil {
		t.Fatalf("Failed to create account %s: %v", email, err)
	}
	return account
}

// mustCreateRecognition persists a recognition between two existing accounts
func (e *repoTestEnv) mustCreateRecognition(t *testing.T, repo persistence.RecognitionRepository, senderID, receiverID uint64, credits int, message string) *entity.Recognition {
	t.Helper()

	recognition, err := entity.NewRecognition(senderID, receiverID, credits, message, e.timeProvider)
	if err != nil {
		t.Fatalf("Failed to build recognition: %v", err)
	}
	if err := repo.Create(context.Background(), recognition); err != nil {
		t.Fatalf("Failed to create recognition: %v", err)
	}
	return recognition
}
