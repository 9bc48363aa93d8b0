package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderGetDefaultsToEmpty(t *testing.T) {
	svc := NewReminderService(testDB(t), nil)

	meal, water, err := svc.Get(1)
	require.NoError(t, err)
	assert.Empty(t, meal)
	assert.Empty(t, water)
	assert.NotNil(t, meal)
	assert.NotNil(t, water)
}

func TestReminderUpsertNormalizes(t *testing.T) {
	svc := NewReminderService(testDB(t), nil)

	meal, water, err := svc.Upsert(1,
		[]string{"12:30", "08:00", "12:30", " 19:00 "},
		[]string{"15:00", "09:00"},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "12:30", "19:00"}, meal)
	assert.Equal(t, []string{"09:00", "15:00"}, water)

	// stored form survives a fresh read
	meal, water, err = svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "12:30", "19:00"}, meal)
	assert.Equal(t, []string{"09:00", "15:00"}, water)
}

func TestReminderUpsertReplacesWholeRecord(t *testing.T) {
	svc := NewReminderService(testDB(t), nil)

	_, _, err := svc.Upsert(1, []string{"08:00"}, []string{"10:00"})
	require.NoError(t, err)
	_, _, err = svc.Upsert(1, []string{"07:30"}, nil)
	require.NoError(t, err)

	meal, water, err := svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"07:30"}, meal)
	assert.Empty(t, water)
}

func TestReminderUpsertRejectsBadTimes(t *testing.T) {
	svc := NewReminderService(testDB(t), nil)

	cases := []string{"24:00", "8:00", "12:60", "noon", "12.30"}
	for _, bad := range cases {
		_, _, err := svc.Upsert(1, []string{bad}, nil)
		assert.Truef(t, IsValidation(err), "expected validation error for %q", bad)
	}

	meal, _, err := svc.Get(1)
	require.NoError(t, err)
	assert.Empty(t, meal) // nothing persisted from rejected payloads
}

func TestReminderSingleRecordPerUser(t *testing.T) {
	db := testDB(t)
	svc := NewReminderService(db, nil)

	_, _, err := svc.Upsert(1, []string{"08:00"}, nil)
	require.NoError(t, err)
	_, _, err = svc.Upsert(1, []string{"09:00"}, nil)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Table("reminders").Where("user_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
