package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// Ingredient is a name/amount/unit triple, e.g. {"Oats", 80, "g"}.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type IngredientList []Ingredient

func (l IngredientList) Value() (driver.Value, error) {
	if l == nil {
		l = IngredientList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *IngredientList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	}
	return errors.New("unsupported column type for JSON scan")
}

type Recipe struct {
	gorm.Model
	UserID      uint           `gorm:"index;not null"`
	Title       string         `gorm:"not null"`
	Description string         `gorm:"type:text"`
	Ingredients IngredientList `gorm:"type:text"`
	Steps       StringList     `gorm:"type:text"`
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	ImageURL    string
	IsPublic    bool `gorm:"index;default:false"`
}
