package model

import (
	"time"
)

// Recognition represents the database model for recognitions
type Recognition struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	PublicID   string    `gorm:"uniqueIndex;not null;size:36"`
	SenderID   uint64    `gorm:"not null;index"`
	ReceiverID uint64    `gorm:"not null;index"`
	Credits    int       `gorm:"not null"`
	Message    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null;index"`

	Sender   User `gorm:"foreignKey:SenderID;references:ID"`
	Receiver User `gorm:"foreignKey:ReceiverID;references:ID"`
}

// TableName specifies the table name for Recognition
func (Recognition) TableName() string {
	return "recognitions"
}
