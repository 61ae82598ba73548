package model

import (
	"time"
)

// Redemption represents the database model for credit redemptions
type Redemption struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	PublicID        string    `gorm:"uniqueIndex;not null;size:36"`
	UserID          uint64    `gorm:"not null;index"`
	CreditsRedeemed int       `gorm:"not null"`
	AmountInINR     int       `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Redemption
func (Redemption) TableName() string {
	return "redemptions"
}
