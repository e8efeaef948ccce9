// Package model defines database models for persistence layer.
package model

import "time"

// SettingModel represents the settings table, a simple key/value store for
// application-wide preferences such as the display currency.
type SettingModel struct {
	Key       string    `gorm:"type:varchar(50);primaryKey"`
	Value     string    `gorm:"type:varchar(255);not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SettingModel.
func (SettingModel) TableName() string {
	return "settings"
}
