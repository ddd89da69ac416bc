package model

import (
	"time"

	"github.com/google/uuid"
)

// RecoveryCodeModel mirrors the 'recovery_codes' table.
type RecoveryCodeModel struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CodeHash  string    `gorm:"type:char(64);not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecoveryCodeModel) TableName() string {
	return "recovery_codes"
}

// RecoverySessionModel mirrors the 'recovery_sessions' table.
type RecoverySessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecoverySessionModel) TableName() string {
	return "recovery_sessions"
}
