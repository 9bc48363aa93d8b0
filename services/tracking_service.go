package services

import (
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type TrackingService struct {
	db *gorm.DB
}

func NewTrackingService(db *gorm.DB) *TrackingService {
	return &TrackingService{db: db}
}

// Entries append: two logs on the same date stay two rows and the daily
// total is whatever the caller sums.

func (s *TrackingService) AddWater(userID uint, date string, ml float64) (*models.WaterLog, error) {
	if !utils.ValidDate(date) {
		return nil, invalid("date must be in YYYY-MM-DD format")
	}
	if ml <= 0 {
		return nil, invalid("ml must be positive")
	}

	log := models.WaterLog{UserID: userID, Date: date, ML: ml}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *TrackingService) AddWeight(userID uint, date string, kg float64) (*models.WeightLog, error) {
	if !utils.ValidDate(date) {
		return nil, invalid("date must be in YYYY-MM-DD format")
	}
	if kg <= 0 {
		return nil, invalid("kg must be positive")
	}

	log := models.WeightLog{UserID: userID, Date: date, KG: kg}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func cutoff30d() string {
	return time.Now().AddDate(0, 0, -30).Format("2006-01-02")
}

func (s *TrackingService) ListWater(userID uint) ([]models.WaterLog, error) {
	var logs []models.WaterLog
	err := s.db.
		Where("user_id = ? AND date >= ?", userID, cutoff30d()).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}

func (s *TrackingService) ListWeight(userID uint) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	err := s.db.
		Where("user_id = ? AND date >= ?", userID, cutoff30d()).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}
