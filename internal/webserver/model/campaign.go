package model

import (
	"net/url"
	"time"
)

const DefaultMaxPlayers = 6

type Campaign struct {
	ID              uint `gorm:"primarykey"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Uuid            string `gorm:"uniqueIndex; not null"`
	Slug            string `gorm:"uniqueIndex; not null"`
	Name            string `gorm:"not null"`
	Description     string
	SystemID        *uint
	System          *TabletopSystem `gorm:"constraint:OnDelete:SET NULL"`
	MaxPlayers      uint
	DungeonMasterID uint `gorm:"index; not null"`
	DungeonMaster   User
	VttLink         string
	VideoLink       string
}

// CampaignPlayer is a row in the campaign membership join table.
type CampaignPlayer struct {
	CampaignID uint `gorm:"primaryKey;autoIncrement:false"`
	Campaign   Campaign `gorm:"constraint:OnDelete:CASCADE"`
	UserID     uint `gorm:"primaryKey;autoIncrement:false"`
	User       User `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
}

// Validate checks all campaign fields to ensure they are in the required format
func (c Campaign) Validate() map[string]string {
	errs := map[string]string{}

	if c.Name == "" {
		errs["name"] = "Name cannot be empty"
	}

	if len(c.Name) > 255 {
		errs["name"] = "Name cannot be longer than 255 characters"
	}

	if c.MaxPlayers < 1 {
		errs["maxplayers"] = "A campaign needs room for at least one player"
	}

	if !validOptionalURL(c.VttLink) {
		errs["vttlink"] = "Incorrect Virtual Tabletop link"
	}

	if !validOptionalURL(c.VideoLink) {
		errs["videolink"] = "Incorrect video conference link"
	}

	return errs
}

func validOptionalURL(candidate string) bool {
	if candidate == "" {
		return true
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
