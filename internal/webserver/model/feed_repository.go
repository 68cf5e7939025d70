package model

import (
	"log"

	"gorm.io/gorm"
)

type FeedRepository struct {
	DB *gorm.DB
}

func (r *FeedRepository) Create(item *PartyFeedItem) error {
	if result := r.DB.Create(item); result.Error != nil {
		log.Printf("error creating feed item: %s\n", result.Error)
		return result.Error
	}
	return nil
}

// Latest returns the campaign's feed, newest first, capped to limit entries.
func (r *FeedRepository) Latest(campaignID uint, limit int) ([]PartyFeedItem, error) {
	var items []PartyFeedItem

	result := r.DB.Where("campaign_id = ?", campaignID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&items)
	if result.Error != nil {
		log.Printf("error listing feed items: %s\n", result.Error)
		return nil, result.Error
	}
	return items, nil
}

func (r *FeedRepository) Total(campaignID uint) int64 {
	var total int64

	r.DB.Model(&PartyFeedItem{}).Where("campaign_id = ?", campaignID).Count(&total)
	return total
}
