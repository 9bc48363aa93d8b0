package models

import "gorm.io/gorm"

// Reminder is one record per user, replaced wholesale on every edit.
// Times are HH:MM strings stored comma-joined, sorted ascending.
type Reminder struct {
	gorm.Model
	UserID     uint   `gorm:"uniqueIndex;not null"`
	MealTimes  string `gorm:"type:text"`
	WaterTimes string `gorm:"type:text"`
}
