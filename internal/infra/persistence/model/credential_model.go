package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshCredentialModel mirrors the 'refresh_credentials' table.
// account_id is unique: one live refresh record per account.
type RefreshCredentialModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	TokenHash   string    `gorm:"type:char(64);uniqueIndex;not null"`
	Blacklisted bool      `gorm:"not null"`
	CreatedAt   time.Time
	ExpiresAt   time.Time `gorm:"index;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RefreshCredentialModel) TableName() string {
	return "refresh_credentials"
}
