package services

import (
	"errors"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(email, password string) error {
	if len(password) < 8 {
		return invalid("password must be at least 8 characters")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
	}
	return s.db.Create(&user).Error
}

func (s *AuthService) Authenticate(email, password string) (string, error) {
	var user models.User
	result := s.db.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func (s *AuthService) StartPasswordReset(email string) error {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		// Do not reveal whether the address exists.
		return nil
	}

	code := utils.GenerateRandomToken(6)
	user.ResetToken = code
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(user.Email, code)
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	var user models.User
	result := s.db.Where("reset_token = ?", token).First(&user)
	if result.Error != nil || time.Now().After(user.ResetTokenExp) {
		return invalid("invalid or expired token")
	}

	if len(newPassword) < 8 {
		return invalid("password must be at least 8 characters")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}
