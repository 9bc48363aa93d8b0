package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService(testDB(t))

	require.NoError(t, svc.Register("jane@example.com", "hunter22!"))

	token, err := svc.Authenticate("jane@example.com", "hunter22!")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Authenticate("jane@example.com", "wrong-password")
	assert.Error(t, err)

	_, err = svc.Authenticate("nobody@example.com", "hunter22!")
	assert.Error(t, err)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := NewAuthService(testDB(t))

	err := svc.Register("jane@example.com", "short")
	assert.True(t, IsValidation(err))
}

func TestDisabledUserCannotAuthenticate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := testDB(t)
	svc := NewAuthService(db)

	require.NoError(t, svc.Register("jane@example.com", "hunter22!"))
	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "jane@example.com").
		Update("disabled", true).Error)

	_, err := svc.Authenticate("jane@example.com", "hunter22!")
	assert.Error(t, err)
}

func TestPasswordResetFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := testDB(t)
	svc := NewAuthService(db)

	require.NoError(t, svc.Register("jane@example.com", "hunter22!"))
	require.NoError(t, svc.StartPasswordReset("jane@example.com"))

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "jane@example.com").Error)
	require.NotEmpty(t, user.ResetToken)
	assert.True(t, user.ResetTokenExp.After(time.Now()))

	require.NoError(t, svc.ResetPassword(user.ResetToken, "new-password-1"))

	_, err := svc.Authenticate("jane@example.com", "new-password-1")
	assert.NoError(t, err)
	_, err = svc.Authenticate("jane@example.com", "hunter22!")
	assert.Error(t, err)

	// token is single use
	err = svc.ResetPassword(user.ResetToken, "another-password")
	assert.True(t, IsValidation(err))
}

func TestPasswordResetSilentOnUnknownEmail(t *testing.T) {
	svc := NewAuthService(testDB(t))
	assert.NoError(t, svc.StartPasswordReset("ghost@example.com"))
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db)

	require.NoError(t, svc.Register("jane@example.com", "hunter22!"))
	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "jane@example.com").
		Updates(map[string]interface{}{
			"reset_token":     "ABC123",
			"reset_token_exp": time.Now().Add(-time.Minute),
		}).Error)

	err := svc.ResetPassword("ABC123", "new-password-1")
	assert.True(t, IsValidation(err))
}
