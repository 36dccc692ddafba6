package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Conversation struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title         string         `gorm:"type:text;not null"`
	Messages      datatypes.JSON `gorm:"type:jsonb"`
	SchemaVersion int            `gorm:"not null;default:1"`
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
}

func (Conversation) TableName() string {
	return "conversations"
}
