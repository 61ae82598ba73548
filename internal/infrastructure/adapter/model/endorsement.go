package model

import (
	"time"
)

// Endorsement represents the database model for endorsements. The composite
// unique index on (recognition_id, endorser_id) is what makes duplicate
// endorsements impossible under concurrency.
type Endorsement struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	PublicID      string    `gorm:"uniqueIndex;not null;size:36"`
	RecognitionID uint64    `gorm:"not null;uniqueIndex:idx_endorsements_recognition_endorser"`
	EndorserID    uint64    `gorm:"not null;uniqueIndex:idx_endorsements_recognition_endorser"`
	CreatedAt     time.Time `gorm:"not null"`

	Recognition Recognition `gorm:"foreignKey:RecognitionID;references:ID"`
	Endorser    User        `gorm:"foreignKey:EndorserID;references:ID"`
}

// TableName specifies the table name for Endorsement
func (Endorsement) TableName() string {
	return "endorsements"
}
