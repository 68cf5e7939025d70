package model

import (
	"log"

	"gorm.io/gorm"
)

type ChatMessageRepository struct {
	DB *gorm.DB
}

func (r *ChatMessageRepository) Create(message *ChatMessage) error {
	if result := r.DB.Create(message); result.Error != nil {
		log.Printf("error creating chat message: %s\n", result.Error)
		return result.Error
	}
	return nil
}

// BySession returns the session's chat history, oldest first.
func (r *ChatMessageRepository) BySession(sessionID uint) ([]ChatMessage, error) {
	var messages []ChatMessage

	result := r.DB.Preload("User").
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&messages)
	if result.Error != nil {
		log.Printf("error listing chat messages: %s\n", result.Error)
		return nil, result.Error
	}
	return messages, nil
}
