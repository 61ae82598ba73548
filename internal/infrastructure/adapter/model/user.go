package model

import (
	"time"
)

// User represents the database model for user accounts
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	FullName     string `gorm:"not null;size:255"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`

	SendBalance    int    `gorm:"not null;default:0"`
	MonthlySent    int    `gorm:"not null;default:0"`
	LastResetMonth string `gorm:"not null;size:7"` // "YYYY-MM"

	ReceivedBalance int `gorm:"not null;default:0"`
	TotalReceived   int `gorm:"not null;default:0;index:idx_users_total_received"`

	RecognitionsReceivedCount int `gorm:"not null;default:0"`
	EndorsementsReceived      int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
