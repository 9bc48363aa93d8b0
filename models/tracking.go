package models

import "gorm.io/gorm"

// WaterLog rows accumulate: logging 500ml twice on the same date keeps two
// rows, daily totals are summed by the caller.
type WaterLog struct {
	gorm.Model
	UserID uint    `gorm:"index;not null"`
	Date   string  `gorm:"size:10;index;not null"` // YYYY-MM-DD
	ML     float64 `gorm:"not null"`
}

type WeightLog struct {
	gorm.Model
	UserID uint    `gorm:"index;not null"`
	Date   string  `gorm:"size:10;index;not null"` // YYYY-MM-DD
	KG     float64 `gorm:"not null"`
}
