package model

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
)

const invitationTokenBytes = 32

// CampaignInvitation is a shareable, unguessable join link for a campaign.
// The token is set once at creation and never rotated; redemption does not
// consume it, deactivation is a separate action.
type CampaignInvitation struct {
	ID         uint `gorm:"primarykey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Uuid       string   `gorm:"uniqueIndex; not null"`
	CampaignID uint     `gorm:"index; not null"`
	Campaign   Campaign `gorm:"constraint:OnDelete:CASCADE"`
	Token      string   `gorm:"uniqueIndex; not null"`
	IsActive   bool     `gorm:"not null; default:true"`
}

func NewInvitation(campaignID uint) (CampaignInvitation, error) {
	token, err := invitationToken()
	if err != nil {
		return CampaignInvitation{}, err
	}
	return CampaignInvitation{
		Uuid:       uuid.NewString(),
		CampaignID: campaignID,
		Token:      token,
		IsActive:   true,
	}, nil
}

func invitationToken() (string, error) {
	raw := make([]byte, invitationTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
