package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	Disabled      bool   `gorm:"default:false"`
	ResetToken    string
	ResetTokenExp time.Time
}
