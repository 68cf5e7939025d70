package model

import (
	"time"
)

// RSVP statuses. A user holds at most one RSVP row per session, so the
// attending and busy sets always partition the responders.
const (
	RSVPAttending = "attending"
	RSVPBusy      = "busy"
)

// GameSession is a proposed or scheduled play meeting within a campaign,
// numbered sequentially per campaign.
type GameSession struct {
	ID            uint `gorm:"primarykey"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CampaignID    uint     `gorm:"uniqueIndex:idx_campaign_session_number; not null"`
	Campaign      Campaign `gorm:"constraint:OnDelete:CASCADE"`
	SessionNumber uint     `gorm:"uniqueIndex:idx_campaign_session_number; not null"`
	ProposerID    *uint
	Proposer      *User `gorm:"constraint:OnDelete:SET NULL"`
	ProposedDate  time.Time
	Duration      uint // hours
	Notes         string
	Recap         string
}

// SessionRSVP is a row in the session attendance join table.
type SessionRSVP struct {
	SessionID uint        `gorm:"primaryKey;autoIncrement:false"`
	Session   GameSession `gorm:"constraint:OnDelete:CASCADE"`
	UserID    uint        `gorm:"primaryKey;autoIncrement:false"`
	User      User        `gorm:"constraint:OnDelete:CASCADE"`
	Status    string      `gorm:"not null"`
	CreatedAt time.Time
}

// Validate checks the fields coming from the session proposal and update forms
func (s GameSession) Validate() map[string]string {
	errs := map[string]string{}

	if s.ProposedDate.IsZero() {
		errs["proposeddate"] = "Proposed date cannot be empty"
	}

	if s.Duration < 1 || s.Duration > 24 {
		errs["duration"] = "Duration must be between 1 and 24 hours"
	}

	return errs
}
