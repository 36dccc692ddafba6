package model

import "time"

// Preference is a namespaced durable key/value entry (welcome-modal flag,
// default persona).
type Preference struct {
	Key       string    `gorm:"type:text;primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Preference) TableName() string {
	return "preferences"
}
