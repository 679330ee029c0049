package model

import (
	"time"

	"storefront/internal/domain/entity"
)

// GalleryModel is the GORM-specific struct for the 'galleries' table.
// Images is a jsonb array so a gallery is replaced in one row write on either data store.
type GalleryModel struct {
	Key       string                `gorm:"type:varchar(128);primaryKey" json:"key"`
	Category  string                `gorm:"type:varchar(32);not null;index" json:"category"`
	Images    []entity.GalleryImage `gorm:"type:jsonb;not null;default:'[]';serializer:json" json:"images"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// TableName explicitly sets the table name for GORM.
func (GalleryModel) TableName() string {
	return "galleries"
}
