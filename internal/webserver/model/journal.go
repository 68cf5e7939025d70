package model

import "time"

type JournalEntry struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Uuid        string          `gorm:"uniqueIndex; not null"`
	CharacterID uint            `gorm:"index; not null"`
	Character   PlayerCharacter `gorm:"constraint:OnDelete:CASCADE"`
	SessionID   *uint
	Session     *GameSession `gorm:"constraint:OnDelete:SET NULL"`
	Title       string       `gorm:"not null"`
	Content     string       `gorm:"not null"`
}

// Validate checks the fields coming from the journal entry forms
func (j JournalEntry) Validate() map[string]string {
	errs := map[string]string{}

	if j.Title == "" {
		errs["title"] = "Title cannot be empty"
	}

	if len(j.Title) > 255 {
		errs["title"] = "Title cannot be longer than 255 characters"
	}

	if j.Content == "" {
		errs["content"] = "Content cannot be empty"
	}

	return errs
}
