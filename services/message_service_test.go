package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageSendRejectsEmptyText(t *testing.T) {
	svc := NewMessageService(testDB(t), nil, nil)

	_, err := svc.Send(1, "", models.MessageRoleUser, "")
	assert.True(t, IsValidation(err))

	_, err = svc.Send(1, "   ", models.MessageRoleUser, "")
	assert.True(t, IsValidation(err))
}

func TestMessageThreadChronological(t *testing.T) {
	svc := NewMessageService(testDB(t), nil, nil)

	_, err := svc.Send(1, "hello", models.MessageRoleUser, "")
	require.NoError(t, err)
	_, err = svc.Send(1, "hi, how can I help?", models.MessageRoleAssistant, "")
	require.NoError(t, err)
	_, err = svc.Send(1, "my plan looks wrong", models.MessageRoleUser, "")
	require.NoError(t, err)

	msgs, err := svc.ListMine(1)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "hello", msgs[0].Text)
	assert.Equal(t, models.MessageRoleAssistant, msgs[1].Role)
	assert.Equal(t, "my plan looks wrong", msgs[2].Text)
}

func TestMessageThreadsAreIsolated(t *testing.T) {
	svc := NewMessageService(testDB(t), nil, nil)

	_, err := svc.Send(1, "mine", models.MessageRoleUser, "")
	require.NoError(t, err)
	_, err = svc.Send(2, "theirs", models.MessageRoleUser, "")
	require.NoError(t, err)

	msgs, err := svc.ListMine(1)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "mine", msgs[0].Text)
}

func TestMessageClientTagEchoed(t *testing.T) {
	svc := NewMessageService(testDB(t), nil, nil)

	msg, err := svc.Send(1, "hello", models.MessageRoleUser, "tmp-abc123")
	require.NoError(t, err)
	assert.Equal(t, "tmp-abc123", msg.ClientTag)
}

func TestAdminUserListCountsAndPreview(t *testing.T) {
	db := testDB(t)
	profiles := NewProfileService(db)
	svc := NewMessageService(db, nil, nil)

	_, err := profiles.Upsert(1, ProfileUpdate{FullName: strPtr("Jane Doe")})
	require.NoError(t, err)

	_, err = svc.Send(1, "first", models.MessageRoleUser, "")
	require.NoError(t, err)
	_, err = svc.Send(1, "reply", models.MessageRoleAssistant, "")
	require.NoError(t, err)
	_, err = svc.Send(1, "second", models.MessageRoleUser, "")
	require.NoError(t, err)

	rows, err := svc.ListUsersWithLatest()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.EqualValues(t, 1, row.UserID)
	assert.Equal(t, "Jane Doe", row.FullName)
	require.NotNil(t, row.LatestMessage)
	assert.Equal(t, "second", row.LatestMessage.Text)
	// counts user-authored messages only; assistant replies do not clear it
	assert.EqualValues(t, 2, row.UnreadCount)
	assert.False(t, row.IsOnline)
}

func TestAdminUserListSkipsUsersWithoutMessages(t *testing.T) {
	db := testDB(t)
	profiles := NewProfileService(db)
	svc := NewMessageService(db, nil, nil)

	_, err := profiles.Upsert(1, ProfileUpdate{FullName: strPtr("Quiet User")})
	require.NoError(t, err)
	_, err = svc.Send(2, "hello", models.MessageRoleUser, "")
	require.NoError(t, err)

	rows, err := svc.ListUsersWithLatest()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 2, rows[0].UserID)
}

func TestGetThreadRequiresProfile(t *testing.T) {
	db := testDB(t)
	svc := NewMessageService(db, nil, nil)

	_, err := svc.Send(7, "hello", models.MessageRoleUser, "")
	require.NoError(t, err)

	_, err = svc.GetThread(7)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NewProfileService(db).Upsert(7, ProfileUpdate{FullName: strPtr("Sam")})
	require.NoError(t, err)

	thread, err := svc.GetThread(7)
	require.NoError(t, err)
	assert.Equal(t, "Sam", thread.FullName)
	require.Len(t, thread.Messages, 1)
	assert.Equal(t, "hello", thread.Messages[0].Text)
}

func TestAdminReplyLandsInUserThread(t *testing.T) {
	db := testDB(t)
	svc := NewMessageService(db, nil, nil)

	_, err := svc.Send(3, "need help", models.MessageRoleUser, "")
	require.NoError(t, err)
	_, err = svc.Send(3, "on it", models.MessageRoleAssistant, "")
	require.NoError(t, err)

	msgs, err := svc.ListMine(3)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, models.MessageRoleUser, msgs[0].Role)
	assert.Equal(t, models.MessageRoleAssistant, msgs[1].Role)
}
