package services

import (
	"sort"

	"backend/models"

	"gorm.io/gorm"
)

type PlanService struct {
	db *gorm.DB
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db}
}

type PlanInput struct {
	Name      string           `json:"name"`
	Goal      string           `json:"goal"`
	DailyKcal *float64         `json:"daily_kcal"`
	Macros    models.MacroMap  `json:"macros"`
	IsPublic  *bool            `json:"is_public"`
}

type PlanUpdate struct {
	Name      *string         `json:"name"`
	Goal      *string         `json:"goal"`
	DailyKcal *float64        `json:"daily_kcal"`
	Macros    models.MacroMap `json:"macros"`
	IsPublic  *bool           `json:"is_public"`
}

// PlanDayInput addresses a day by its zero-based index; slots hold recipe
// ids. Refs are stored as given — existence/visibility is not checked here.
type PlanDayInput struct {
	DayIndex  int   `json:"day_index"`
	Breakfast *uint `json:"breakfast"`
	Lunch     *uint `json:"lunch"`
	Snack     *uint `json:"snack"`
	Dinner    *uint `json:"dinner"`
}

// ListVisible returns public plans unioned with the caller's own, newest
// first. A single query keeps the union free of duplicates.
func (s *PlanService) ListVisible(userID uint) ([]models.Plan, error) {
	var plans []models.Plan
	err := s.db.
		Where("is_public = ? OR user_id = ?", true, userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (s *PlanService) Create(userID uint, input PlanInput) (*models.Plan, error) {
	if input.Name == "" {
		return nil, invalid("plan name is required")
	}
	if input.Goal != "" && !models.ValidGoal(input.Goal) {
		return nil, invalid("goal must be one of lose, maintain, gain")
	}
	if input.DailyKcal != nil && *input.DailyKcal <= 0 {
		return nil, invalid("daily_kcal must be positive")
	}

	plan := models.Plan{
		UserID: userID,
		Name:   input.Name,
		Goal:   input.Goal,
		Macros: input.Macros,
	}
	if input.DailyKcal != nil {
		plan.DailyKcal = *input.DailyKcal
	}
	if input.IsPublic != nil {
		plan.IsPublic = *input.IsPublic
	}

	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *PlanService) GetWithDays(userID, planID uint) (*models.Plan, error) {
	var plan models.Plan
	err := s.db.
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_index ASC")
		}).
		Where("id = ? AND (is_public = ? OR user_id = ?)", planID, true, userID).
		First(&plan).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if plan.Days == nil {
		plan.Days = []models.PlanDay{}
	}
	return &plan, nil
}

func (s *PlanService) owned(userID, planID uint) (*models.Plan, error) {
	var plan models.Plan
	if err := s.db.First(&plan, planID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if plan.UserID != userID {
		if !plan.IsPublic {
			return nil, ErrNotFound
		}
		return nil, ErrForbidden
	}
	return &plan, nil
}

func (s *PlanService) Update(userID, planID uint, input PlanUpdate) (*models.Plan, error) {
	plan, err := s.owned(userID, planID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, invalid("plan name is required")
		}
		plan.Name = *input.Name
	}
	if input.Goal != nil {
		if *input.Goal != "" && !models.ValidGoal(*input.Goal) {
			return nil, invalid("goal must be one of lose, maintain, gain")
		}
		plan.Goal = *input.Goal
	}
	if input.DailyKcal != nil {
		if *input.DailyKcal <= 0 {
			return nil, invalid("daily_kcal must be positive")
		}
		plan.DailyKcal = *input.DailyKcal
	}
	if input.Macros != nil {
		plan.Macros = input.Macros
	}
	if input.IsPublic != nil {
		plan.IsPublic = *input.IsPublic
	}

	if err := s.db.Save(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

// Delete removes the plan and its days.
func (s *PlanService) Delete(userID, planID uint) error {
	plan, err := s.owned(userID, planID)
	if err != nil {
		return err
	}
	if err := s.db.Where("plan_id = ?", plan.ID).Delete(&models.PlanDay{}).Error; err != nil {
		return err
	}
	return s.db.Delete(plan).Error
}

// ReplaceDays bulk-upserts day assignments keyed on (plan, day_index).
// Re-submitting an index overwrites the stored slots, so the operation is
// idempotent. Duplicate indexes within one payload resolve last-wins.
func (s *PlanService) ReplaceDays(userID, planID uint, days []PlanDayInput) ([]models.PlanDay, error) {
	if len(days) == 0 {
		return nil, invalid("at least one day is required")
	}

	plan, err := s.owned(userID, planID)
	if err != nil {
		return nil, err
	}

	byIndex := make(map[int]PlanDayInput, len(days))
	for _, d := range days {
		if d.DayIndex < 0 {
			return nil, invalid("day_index must be 0 or greater")
		}
		byIndex[d.DayIndex] = d
	}

	indexes := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	for _, idx := range indexes {
		d := byIndex[idx]
		day := models.PlanDay{
			PlanID:    plan.ID,
			DayIndex:  d.DayIndex,
			Breakfast: d.Breakfast,
			Lunch:     d.Lunch,
			Snack:     d.Snack,
			Dinner:    d.Dinner,
		}
		err := s.db.
			Where("plan_id = ? AND day_index = ?", plan.ID, d.DayIndex).
			Assign(map[string]interface{}{
				"breakfast": d.Breakfast,
				"lunch":     d.Lunch,
				"snack":     d.Snack,
				"dinner":    d.Dinner,
			}).
			FirstOrCreate(&day).Error
		if err != nil {
			return nil, err
		}
	}

	var out []models.PlanDay
	err = s.db.
		Where("plan_id = ?", plan.ID).
		Order("day_index ASC").
		Find(&out).Error
	return out, err
}
