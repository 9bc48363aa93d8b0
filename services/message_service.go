package services

import (
	"strings"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type MessageService struct {
	db   *gorm.DB
	hub  *ChatHub
	push *PushService // optional
}

func NewMessageService(db *gorm.DB, hub *ChatHub, push *PushService) *MessageService {
	return &MessageService{db: db, hub: hub, push: push}
}

type MessagePreview struct {
	Text      string `json:"text"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type UserWithLatestMessage struct {
	UserID        uint            `json:"user_id"`
	FullName      string          `json:"full_name"`
	AvatarURL     string          `json:"avatar_url"`
	LatestMessage *MessagePreview `json:"latest_message,omitempty"`
	UnreadCount   int64           `json:"unread_count"`
	IsOnline      bool            `json:"is_online"`
}

type ChatThread struct {
	UserID    uint             `json:"user_id"`
	FullName  string           `json:"full_name"`
	AvatarURL string           `json:"avatar_url"`
	Messages  []models.Message `json:"messages"`
}

// ListMine returns the caller's full thread, oldest first.
func (s *MessageService) ListMine(userID uint) ([]models.Message, error) {
	var msgs []models.Message
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}

// Send appends to a thread. threadUserID owns the thread; role is forced by
// the caller ("user" on the end-user surface, "assistant" on the admin one).
func (s *MessageService) Send(threadUserID uint, text, role, clientTag string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalid("message text is required")
	}

	msg := models.Message{
		UserID:    threadUserID,
		Text:      text,
		Role:      role,
		ClientTag: clientTag,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastMessage(&msg)
	}
	if s.push != nil && role == models.MessageRoleAssistant {
		s.push.PushToUser(threadUserID, "Parafit support", text, map[string]string{
			"kind": "chat",
		})
	}
	return &msg, nil
}

// ListUsersWithLatest backs the admin console: one row per user with at
// least one message. The unread count is the total of user-authored
// messages — it is not reset when an admin reads the thread.
func (s *MessageService) ListUsersWithLatest() ([]UserWithLatestMessage, error) {
	var userIDs []uint
	err := s.db.Model(&models.Message{}).
		Distinct("user_id").
		Order("user_id").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}

	out := make([]UserWithLatestMessage, 0, len(userIDs))
	for _, uid := range userIDs {
		row := UserWithLatestMessage{UserID: uid}

		var profile models.Profile
		if err := s.db.Where("user_id = ?", uid).First(&profile).Error; err == nil {
			row.FullName = profile.FullName
			row.AvatarURL = profile.AvatarURL
		}

		var latest models.Message
		if err := s.db.
			Where("user_id = ?", uid).
			Order("created_at DESC, id DESC").
			First(&latest).Error; err == nil {
			row.LatestMessage = &MessagePreview{
				Text:      latest.Text,
				Role:      latest.Role,
				CreatedAt: latest.CreatedAt.UTC().Format(time.RFC3339),
			}
		}

		if err := s.db.Model(&models.Message{}).
			Where("user_id = ? AND role = ?", uid, models.MessageRoleUser).
			Count(&row.UnreadCount).Error; err != nil {
			return nil, err
		}

		if s.hub != nil {
			row.IsOnline = s.hub.IsOnline(uid)
		}
		out = append(out, row)
	}
	return out, nil
}

// GetThread returns a user's complete thread for the admin console.
func (s *MessageService) GetThread(targetUserID uint) (*ChatThread, error) {
	thread := ChatThread{UserID: targetUserID}

	var profile models.Profile
	if err := s.db.Where("user_id = ?", targetUserID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	thread.FullName = profile.FullName
	thread.AvatarURL = profile.AvatarURL

	msgs, err := s.ListMine(targetUserID)
	if err != nil {
		return nil, err
	}
	thread.Messages = msgs
	return &thread, nil
}
