package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvitationRepository struct {
	DB *gorm.DB
}

// IssueActive returns the campaign's active invitation, minting one only when
// none exists. Re-requesting while an invitation is active is idempotent and
// returns the same token. The campaign row is locked for the duration of the
// get-or-create so that concurrent issues cannot mint two active tokens.
func (r *InvitationRepository) IssueActive(campaignID uint) (*CampaignInvitation, error) {
	var invitation CampaignInvitation

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var campaign Campaign
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&campaign, campaignID).Error; err != nil {
			return err
		}
		result := tx.Where("campaign_id = ? AND is_active = ?", campaignID, true).First(&invitation)
		if result.Error == nil {
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}
		fresh, err := NewInvitation(campaignID)
		if err != nil {
			return err
		}
		if err := tx.Create(&fresh).Error; err != nil {
			log.Printf("error creating invitation: %s\n", err)
			return err
		}
		invitation = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// FindActiveByToken looks an invitation up by token, matching active ones
// only. Wrong and revoked tokens are indistinguishable to the caller.
func (r *InvitationRepository) FindActiveByToken(token string) (*CampaignInvitation, error) {
	var invitation CampaignInvitation

	result := r.DB.Preload("Campaign").Preload("Campaign.DungeonMaster").
		Where("token = ? AND is_active = ?", token, true).
		First(&invitation)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invitation, result.Error
}

func (r *InvitationRepository) ActiveByCampaign(campaignID uint) (*CampaignInvitation, error) {
	var invitation CampaignInvitation

	result := r.DB.Where("campaign_id = ? AND is_active = ?", campaignID, true).First(&invitation)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invitation, result.Error
}

// Deactivate revokes every active invitation of the campaign.
func (r *InvitationRepository) Deactivate(campaignID uint) error {
	result := r.DB.Model(&CampaignInvitation{}).
		Where("campaign_id = ? AND is_active = ?", campaignID, true).
		Update("is_active", false)
	if result.Error != nil {
		log.Printf("error deactivating invitations: %s\n", result.Error)
	}
	return result.Error
}
