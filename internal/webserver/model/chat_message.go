package model

import "time"

// ChatMessage is a single message posted in a session's chat.
type ChatMessage struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	SessionID uint        `gorm:"index; not null"`
	Session   GameSession `gorm:"constraint:OnDelete:CASCADE"`
	UserID    uint        `gorm:"not null"`
	User      User        `gorm:"constraint:OnDelete:CASCADE"`
	Message   string      `gorm:"not null"`
}

// Validate checks the message posted through the session chat form
func (m ChatMessage) Validate() map[string]string {
	errs := map[string]string{}

	if m.Message == "" {
		errs["message"] = "Message cannot be empty"
	}

	if len(m.Message) > 2000 {
		errs["message"] = "Message cannot be longer than 2000 characters"
	}

	return errs
}
