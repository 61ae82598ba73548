package migration

import (
	"gorm.io/gorm"

	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
)

// IndexManager creates the indexes the hot query paths depend on
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateIndexes creates the query-path indexes. The uniqueness-bearing
// indexes (user email, endorsement pair) come from the model tags via
// AutoMigrate; these cover reads.
func (m *IndexManager) CreateIndexes() error {
	m.logger.Info("Creating database indexes", nil)

	// Leaderboard ordering: lifetime total descending, ID as tiebreak
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_users_leaderboard
		ON users (total_received DESC, id ASC)
	`).Error; err != nil {
		m.logger.Error("Failed to create leaderboard index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Received-recognitions feed, newest first
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_recognitions_receiver_created
		ON recognitions (receiver_id, created_at DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create receiver feed index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Redemption history per user
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_redemptions_user_created
		ON redemptions (user_id, created_at DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create redemption history index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// BRIN suits the append-only global feed on postgres; other drivers
	// fall back to the plain created_at index from the model tags
	if m.db.Dialector.Name() == "postgres" {
		if err := m.db.Exec(`
			CREATE INDEX IF NOT EXISTS idx_recognitions_created_at_brin
			ON recognitions USING BRIN (created_at)
			WITH (pages_per_range = 32)
		`).Error; err != nil {
			m.logger.Warn("Failed to create BRIN index on recognitions.created_at", map[string]any{
				"error": err.Error(),
			})
			// Not critical; the btree index still serves the feed
		}
	}

	m.logger.Info("Database indexes created successfully", nil)
	return nil
}
