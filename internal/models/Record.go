package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record carries the primary key and bookkeeping timestamps shared by every
// persisted entity. IDs are UUIDv7 strings, so they sort by creation time.
type Record struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a time-ordered id when the caller did not set one.
func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = NewID()
	}
	return nil
}

// NewID returns a fresh time-ordered identifier.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
