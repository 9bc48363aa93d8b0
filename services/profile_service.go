package services

import (
	"strings"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// ProfileUpdate carries a partial field set: nil pointers and nil slices
// leave the stored value untouched.
type ProfileUpdate struct {
	FullName     *string  `json:"full_name"`
	City         *string  `json:"city"`
	Goal         *string  `json:"goal"`
	DietaryPrefs []string `json:"dietary_prefs"`
	Allergies    []string `json:"allergies"`
	AvatarURL    *string  `json:"avatar_url"`
}

func (s *ProfileService) Get(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileService) Upsert(userID uint, input ProfileUpdate) (*models.Profile, error) {
	if input.Goal != nil && !models.ValidGoal(*input.Goal) {
		return nil, invalid("goal must be one of lose, maintain, gain")
	}
	if input.AvatarURL != nil && *input.AvatarURL != "" && !utils.ValidHTTPURL(*input.AvatarURL) {
		return nil, invalid("avatar_url must be a valid URL")
	}

	var profile models.Profile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if err == gorm.ErrRecordNotFound {
		profile = models.Profile{UserID: userID, Role: models.RoleUser}
	}

	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.City != nil {
		profile.City = *input.City
	}
	if input.Goal != nil {
		profile.Goal = *input.Goal
	}
	if input.DietaryPrefs != nil {
		profile.DietaryPrefs = strings.Join(input.DietaryPrefs, ",")
	}
	if input.Allergies != nil {
		profile.Allergies = strings.Join(input.Allergies, ",")
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}

	// The app treats the first saved profile as onboarding done.
	profile.Onboarded = true

	if err := s.db.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// IsAdmin reports whether the user's profile carries the admin role.
// Users without a profile are plain users.
func (s *ProfileService) IsAdmin(userID uint) bool {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return false
	}
	return profile.Role == models.RoleAdmin
}

// SplitList undoes the comma-joined storage of prefs/allergies/times.
func SplitList(csv string) []string {
	if csv == "" {
		return []string{}
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ProfileView shapes a profile the way the API returns it.
func ProfileView(p *models.Profile) map[string]interface{} {
	return map[string]interface{}{
		"id":            p.ID,
		"user_id":       p.UserID,
		"full_name":     p.FullName,
		"city":          p.City,
		"goal":          p.Goal,
		"dietary_prefs": SplitList(p.DietaryPrefs),
		"allergies":     SplitList(p.Allergies),
		"avatar_url":    p.AvatarURL,
		"role":          p.Role,
		"onboarded":     p.Onboarded,
		"created_at":    p.CreatedAt,
		"updated_at":    p.UpdatedAt,
	}
}
