package model

import "time"

type PlayerCharacter struct {
	ID         uint `gorm:"primarykey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Uuid       string `gorm:"uniqueIndex; not null"`
	UserID     uint   `gorm:"index; not null"`
	User       User   `gorm:"constraint:OnDelete:CASCADE"`
	CampaignID *uint
	Campaign   *Campaign `gorm:"constraint:OnDelete:SET NULL"`
	Name       string    `gorm:"not null"`
	Race       string
	Class      string
	Level      uint `gorm:"default:1"`
	Bio        string
}

// Validate checks the fields coming from the character forms
func (p PlayerCharacter) Validate() map[string]string {
	errs := map[string]string{}

	if p.Name == "" {
		errs["name"] = "Name cannot be empty"
	}

	if len(p.Name) > 255 {
		errs["name"] = "Name cannot be longer than 255 characters"
	}

	if len(p.Race) > 100 {
		errs["race"] = "Race cannot be longer than 100 characters"
	}

	if len(p.Class) > 100 {
		errs["class"] = "Class cannot be longer than 100 characters"
	}

	if p.Level < 1 || p.Level > 99 {
		errs["level"] = "Level must be between 1 and 99"
	}

	return errs
}
