package model

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyAccountModel is the GORM-specific struct for the 'loyalty_accounts' table.
type LoyaltyAccountModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Email     string    `gorm:"type:varchar(255);not null;default:''" json:"email"`
	Name      string    `gorm:"type:varchar(255);not null;default:''" json:"name"`
	Points    int       `gorm:"not null;default:0;check:points >= 0" json:"points"`
	Level     int       `gorm:"not null;default:0;check:level >= 0" json:"level"`
	Version   int64     `gorm:"not null;default:0" json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyAccountModel) TableName() string {
	return "loyalty_accounts"
}
