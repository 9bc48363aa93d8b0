package services

import (
	"time"

	"backend/models"
	"backend/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReminderScheduler fires once a minute and pushes a notification to every
// user whose saved meal or water times match the current HH:MM.
type ReminderScheduler struct {
	db   *gorm.DB
	push *PushService
	cron *cron.Cron
}

func NewReminderScheduler(db *gorm.DB, push *PushService) *ReminderScheduler {
	return &ReminderScheduler{db: db, push: push, cron: cron.New()}
}

func (s *ReminderScheduler) Start() error {
	if _, err := s.cron.AddFunc("* * * * *", s.tick); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *ReminderScheduler) Stop() {
	s.cron.Stop()
}

func (s *ReminderScheduler) tick() {
	s.Dispatch(time.Now().Format("15:04"))
}

// Dispatch sends the reminders due at the given HH:MM.
func (s *ReminderScheduler) Dispatch(hhmm string) {
	var reminders []models.Reminder
	if err := s.db.Find(&reminders).Error; err != nil {
		if utils.Logger != nil {
			utils.Logger.Error("reminder_scan_failed", zap.Error(err))
		}
		return
	}

	for _, r := range reminders {
		if containsTime(r.MealTimes, hhmm) {
			s.push.PushToUser(r.UserID, "Meal reminder", "Time for your next meal!", map[string]string{
				"kind": "meal",
			})
		}
		if containsTime(r.WaterTimes, hhmm) {
			s.push.PushToUser(r.UserID, "Water reminder", "Time to drink some water!", map[string]string{
				"kind": "water",
			})
		}
	}
}

func containsTime(csv, hhmm string) bool {
	for _, t := range SplitList(csv) {
		if t == hhmm {
			return true
		}
	}
	return false
}
