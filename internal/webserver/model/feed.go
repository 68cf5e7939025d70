package model

import (
	"time"

	"github.com/google/uuid"
)

// Feed item categories. Items are only ever produced as side effects of other
// mutations, except announcements, which the dungeon master posts directly.
const (
	CategoryMembership   = "membership"
	CategoryAnnouncement = "announcements"
	CategoryDataUpdate   = "data_updates"
	CategoryJournal      = "journal"
	CategoryRecap        = "recap"
)

type PartyFeedItem struct {
	ID         uint `gorm:"primarykey"`
	CreatedAt  time.Time
	Uuid       string   `gorm:"uniqueIndex; not null"`
	CampaignID uint     `gorm:"index; not null"`
	Campaign   Campaign `gorm:"constraint:OnDelete:CASCADE"`
	Message    string   `gorm:"not null"`
	Category   string   `gorm:"not null; default:announcements"`
}

func NewFeedItem(campaignID uint, message, category string) PartyFeedItem {
	return PartyFeedItem{
		Uuid:       uuid.NewString(),
		CampaignID: campaignID,
		Message:    message,
		Category:   category,
	}
}

// Validate checks the feed item fields posted through the announcement form
func (f PartyFeedItem) Validate() map[string]string {
	errs := map[string]string{}

	if f.Message == "" {
		errs["message"] = "Message cannot be empty"
	}

	if len(f.Message) > 2000 {
		errs["message"] = "Message cannot be longer than 2000 characters"
	}

	return errs
}
