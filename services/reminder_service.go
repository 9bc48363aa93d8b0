package services

import (
	"sort"
	"strings"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type ReminderService struct {
	db   *gorm.DB
	push *PushService // optional; nil skips endpoint tagging
}

func NewReminderService(db *gorm.DB, push *PushService) *ReminderService {
	return &ReminderService{db: db, push: push}
}

// Get returns the user's reminder times, empty lists when nothing is set.
func (s *ReminderService) Get(userID uint) (mealTimes, waterTimes []string, err error) {
	var rec models.Reminder
	if err := s.db.Where("user_id = ?", userID).First(&rec).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return []string{}, []string{}, nil
		}
		return nil, nil, err
	}
	return SplitList(rec.MealTimes), SplitList(rec.WaterTimes), nil
}

func normalizeTimes(times []string) ([]string, error) {
	seen := make(map[string]struct{}, len(times))
	out := make([]string, 0, len(times))
	for _, t := range times {
		t = strings.TrimSpace(t)
		if !utils.ValidClockTime(t) {
			return nil, invalid("times must be in 24-hour HH:MM format")
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out, nil
}

// Upsert replaces the whole record. Times are validated, de-duplicated and
// stored sorted ascending; the saved lists are then pushed onto the user's
// notification endpoints as comma-joined tags.
func (s *ReminderService) Upsert(userID uint, mealTimes, waterTimes []string) (meal, water []string, err error) {
	meal, err = normalizeTimes(mealTimes)
	if err != nil {
		return nil, nil, err
	}
	water, err = normalizeTimes(waterTimes)
	if err != nil {
		return nil, nil, err
	}

	rec := models.Reminder{
		UserID:     userID,
		MealTimes:  strings.Join(meal, ","),
		WaterTimes: strings.Join(water, ","),
	}
	err = s.db.
		Where("user_id = ?", userID).
		Assign(map[string]interface{}{
			"meal_times":  rec.MealTimes,
			"water_times": rec.WaterTimes,
		}).
		FirstOrCreate(&rec).Error
	if err != nil {
		return nil, nil, err
	}

	if s.push != nil {
		s.push.TagReminderTimes(userID, rec.MealTimes, rec.WaterTimes)
	}
	return meal, water, nil
}
