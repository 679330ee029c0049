package model

import "time"

// AssetSlotModel is the GORM-specific struct for the 'asset_slots' table.
// JSON tags match the column names so the same struct serves the REST data store.
type AssetSlotModel struct {
	Key        string    `gorm:"type:varchar(128);primaryKey" json:"key"`
	Category   string    `gorm:"type:varchar(32);not null;index" json:"category"`
	AssetURL   string    `gorm:"type:text;not null;default:''" json:"asset_url"`
	ObjectName string    `gorm:"type:varchar(255);not null;default:''" json:"object_name"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName explicitly sets the table name for GORM.
func (AssetSlotModel) TableName() string {
	return "asset_slots"
}
