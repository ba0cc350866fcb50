package models

import (
	"time"

	"gorm.io/gorm"
)

// Model is the shared base for all persisted records, based on gorm.Model
// with JSON tags for the API layer
type Model struct {
	ID        uint            `gorm:"primarykey" json:"ID,omitempty"`
	CreatedAt *time.Time      `json:"CreatedAt,omitempty"`
	UpdatedAt *time.Time      `json:"UpdatedAt,omitempty"`
	DeletedAt *gorm.DeletedAt `gorm:"index" json:"DeletedAt,omitempty"`
}
