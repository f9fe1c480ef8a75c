package models

import (
	"time"
)

// AdminSetting is a key/value row; the admin password hash lives under
// the well-known key in entities.AdminSettingKeyPasswordHash.
type AdminSetting struct {
	SettingKey   string `gorm:"type:varchar(100);primaryKey"`
	SettingValue string `gorm:"type:text;not null"`
	UpdatedAt    *time.Time
}

func (AdminSetting) TableName() string { return "admin_settings" }
