package models

import "time"

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// Message is append-only: never edited, never deleted. UserID is the thread
// owner for both roles — admin replies land on the end user's thread.
// ClientTag carries the sender's correlation id so optimistic UIs can match
// the realtime echo against their pending entry.
type Message struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Text      string `gorm:"type:text;not null"`
	Role      string `gorm:"size:16;not null"` // "user" | "assistant"
	ClientTag string `gorm:"size:64"`
	CreatedAt time.Time
}
