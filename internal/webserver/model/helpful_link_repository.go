package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HelpfulLinkRepository struct {
	DB *gorm.DB
}

// Create inserts a new helpful link unless the campaign already holds
// MaxHelpfulLinks of them. The parent campaign row is locked for the duration
// of the count-and-insert so that concurrent insertions for the same campaign
// serialize instead of both observing a count below the cap.
func (r *HelpfulLinkRepository) Create(link *HelpfulLink) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var campaign Campaign
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&campaign, link.CampaignID).Error; err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&HelpfulLink{}).
			Where("campaign_id = ?", link.CampaignID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= MaxHelpfulLinks {
			return ErrMaxLinksReached
		}
		if err := tx.Create(link).Error; err != nil {
			log.Printf("error creating helpful link: %s\n", err)
			return err
		}
		return nil
	})
}

// FindOwnedBy returns the link only when it belongs to a campaign managed by
// the given user.
func (r *HelpfulLinkRepository) FindOwnedBy(linkID, userID uint) (*HelpfulLink, error) {
	var link HelpfulLink

	result := r.DB.
		Joins("JOIN campaigns ON campaigns.id = helpful_links.campaign_id").
		Where("helpful_links.id = ? AND campaigns.dungeon_master_id = ?", linkID, userID).
		First(&link)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &link, result.Error
}

// ByCampaign returns the campaign's links in insertion order.
func (r *HelpfulLinkRepository) ByCampaign(campaignID uint) ([]HelpfulLink, error) {
	var links []HelpfulLink

	result := r.DB.Where("campaign_id = ?", campaignID).Order("id ASC").Find(&links)
	if result.Error != nil {
		log.Printf("error listing helpful links: %s\n", result.Error)
		return nil, result.Error
	}
	return links, nil
}

func (r *HelpfulLinkRepository) Delete(link *HelpfulLink) error {
	if result := r.DB.Delete(link); result.Error != nil {
		log.Printf("error deleting helpful link: %s\n", result.Error)
		return result.Error
	}
	return nil
}
