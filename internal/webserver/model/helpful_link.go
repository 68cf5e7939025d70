package model

import "time"

// MaxHelpfulLinks caps the number of helpful links a campaign may hold.
const MaxHelpfulLinks = 20

type HelpfulLink struct {
	ID         uint `gorm:"primarykey"`
	CreatedAt  time.Time
	CampaignID uint     `gorm:"index; not null"`
	Campaign   Campaign `gorm:"constraint:OnDelete:CASCADE"`
	Name       string   `gorm:"not null"`
	URL        string   `gorm:"not null"`
}

// Validate checks the link fields posted through the add link form
func (l HelpfulLink) Validate() map[string]string {
	errs := map[string]string{}

	if l.Name == "" {
		errs["name"] = "Name cannot be empty"
	}

	if len(l.Name) > 100 {
		errs["name"] = "Name cannot be longer than 100 characters"
	}

	if l.URL == "" || !validOptionalURL(l.URL) {
		errs["url"] = "Incorrect URL"
	}

	return errs
}
