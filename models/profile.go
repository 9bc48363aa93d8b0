package models

import (
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

// Profile holds everything the app shows about a user; identity (email,
// password) stays on User. One profile per user, created on first upsert.
type Profile struct {
	gorm.Model
	UserID       uint   `gorm:"uniqueIndex;not null"`
	FullName     string
	City         string
	Goal         string `gorm:"size:16"`   // "lose" | "maintain" | "gain"
	DietaryPrefs string `gorm:"type:text"` // comma-separated
	Allergies    string `gorm:"type:text"` // comma-separated
	AvatarURL    string
	Role         string `gorm:"size:16;default:user"`
	Onboarded    bool   `gorm:"default:false"`
}

func ValidGoal(goal string) bool {
	switch goal {
	case GoalLose, GoalMaintain, GoalGain:
		return true
	}
	return false
}
