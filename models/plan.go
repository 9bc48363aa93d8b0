package models

import (
	"database/sql/driver"
	"encoding/json"

	"gorm.io/gorm"
)

type MacroMap map[string]float64

func (m MacroMap) Value() (driver.Value, error) {
	if m == nil {
		m = MacroMap{}
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *MacroMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

type Plan struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"not null"`
	Goal      string `gorm:"size:16"`
	DailyKcal float64
	Macros    MacroMap `gorm:"type:text"`
	IsPublic  bool     `gorm:"index;default:false"`
	Days      []PlanDay
}

// PlanDay is one calendar day inside a plan; each meal slot optionally
// references a recipe. Slot references are loose — they are not checked
// against the catalog at write time.
type PlanDay struct {
	gorm.Model
	PlanID    uint `gorm:"uniqueIndex:idx_plan_day;not null"`
	DayIndex  int  `gorm:"uniqueIndex:idx_plan_day;not null"`
	Breakfast *uint
	Lunch     *uint
	Snack     *uint
	Dinner    *uint
}
