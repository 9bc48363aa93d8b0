package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestPlanCreateRequiresName(t *testing.T) {
	svc := NewPlanService(testDB(t))

	_, err := svc.Create(1, PlanInput{})
	assert.True(t, IsValidation(err))
}

func TestPlanListVisibleUnion(t *testing.T) {
	svc := NewPlanService(testDB(t))

	// own private plan
	_, err := svc.Create(1, PlanInput{Name: "Mine"})
	require.NoError(t, err)
	// someone else's public plan
	_, err = svc.Create(2, PlanInput{Name: "Shared", IsPublic: boolPtr(true)})
	require.NoError(t, err)
	// someone else's private plan, must stay hidden
	_, err = svc.Create(2, PlanInput{Name: "Hidden"})
	require.NoError(t, err)

	plans, err := svc.ListVisible(1)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	names := []string{plans[0].Name, plans[1].Name}
	assert.ElementsMatch(t, []string{"Mine", "Shared"}, names)
}

func TestPlanDayBulkReplaceAndFetch(t *testing.T) {
	svc := NewPlanService(testDB(t))

	plan, err := svc.Create(1, PlanInput{Name: "Week 1", DailyKcal: floatPtr(1800)})
	require.NoError(t, err)

	days, err := svc.ReplaceDays(1, plan.ID, []PlanDayInput{
		{DayIndex: 0, Breakfast: uintPtr(42)},
	})
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 0, days[0].DayIndex)
	require.NotNil(t, days[0].Breakfast)
	assert.EqualValues(t, 42, *days[0].Breakfast)

	got, err := svc.GetWithDays(1, plan.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1800, got.DailyKcal)
	require.Len(t, got.Days, 1)
	assert.EqualValues(t, 42, *got.Days[0].Breakfast)
}

func TestPlanDayReplaceIsIdempotent(t *testing.T) {
	svc := NewPlanService(testDB(t))

	plan, err := svc.Create(1, PlanInput{Name: "Week 1"})
	require.NoError(t, err)

	payload := []PlanDayInput{
		{DayIndex: 0, Breakfast: uintPtr(1), Dinner: uintPtr(2)},
		{DayIndex: 1, Lunch: uintPtr(3)},
	}

	first, err := svc.ReplaceDays(1, plan.ID, payload)
	require.NoError(t, err)
	second, err := svc.ReplaceDays(1, plan.ID, payload)
	require.NoError(t, err)

	assert.Len(t, first, 2)
	assert.Len(t, second, 2) // same set, no duplicates
}

func TestPlanDayReplaceOverwritesSlots(t *testing.T) {
	svc := NewPlanService(testDB(t))

	plan, err := svc.Create(1, PlanInput{Name: "Week 1"})
	require.NoError(t, err)

	_, err = svc.ReplaceDays(1, plan.ID, []PlanDayInput{{DayIndex: 0, Breakfast: uintPtr(1)}})
	require.NoError(t, err)

	days, err := svc.ReplaceDays(1, plan.ID, []PlanDayInput{{DayIndex: 0, Lunch: uintPtr(9)}})
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Nil(t, days[0].Breakfast) // re-submitting the index replaces the slots
	require.NotNil(t, days[0].Lunch)
	assert.EqualValues(t, 9, *days[0].Lunch)
}

func TestPlanDayReplaceRequiresOwnership(t *testing.T) {
	svc := NewPlanService(testDB(t))

	plan, err := svc.Create(1, PlanInput{Name: "Week 1", IsPublic: boolPtr(true)})
	require.NoError(t, err)

	_, err = svc.ReplaceDays(2, plan.ID, []PlanDayInput{{DayIndex: 0}})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ReplaceDays(2, 9999, []PlanDayInput{{DayIndex: 0}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanDayReplaceRejectsNegativeIndex(t *testing.T) {
	svc := NewPlanService(testDB(t))

	plan, err := svc.Create(1, PlanInput{Name: "Week 1"})
	require.NoError(t, err)

	_, err = svc.ReplaceDays(1, plan.ID, []PlanDayInput{{DayIndex: -1}})
	assert.True(t, IsValidation(err))
}

func TestPlanDeleteRemovesDays(t *testing.T) {
	db := testDB(t)
	svc := NewPlanService(db)

	plan, err := svc.Create(1, PlanInput{Name: "Week 1"})
	require.NoError(t, err)
	_, err = svc.ReplaceDays(1, plan.ID, []PlanDayInput{{DayIndex: 0}, {DayIndex: 1}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(1, plan.ID))

	_, err = svc.GetWithDays(1, plan.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Table("plan_days").Where("plan_id = ? AND deleted_at IS NULL", plan.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestPlanDaysOrderedByIndex(t *testing.T) {
	svc := NewPlanService(testDB(t))

	plan, err := svc.Create(1, PlanInput{Name: "Week 1"})
	require.NoError(t, err)

	_, err = svc.ReplaceDays(1, plan.ID, []PlanDayInput{
		{DayIndex: 3}, {DayIndex: 0}, {DayIndex: 2},
	})
	require.NoError(t, err)

	got, err := svc.GetWithDays(1, plan.ID)
	require.NoError(t, err)
	require.Len(t, got.Days, 3)
	assert.Equal(t, 0, got.Days[0].DayIndex)
	assert.Equal(t, 2, got.Days[1].DayIndex)
	assert.Equal(t, 3, got.Days[2].DayIndex)
}
