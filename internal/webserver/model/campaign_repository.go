package model

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type CampaignRepository struct {
	DB *gorm.DB
}

// Create persists a new campaign, assigning it a unique, human-readable slug.
// The slug is derived from the campaign name; when taken, increasingly longer
// prefixes of the campaign's own identifier are appended until a free one is
// found. The unique constraint on the slug column backstops races between the
// availability check and the insert.
func (r *CampaignRepository) Create(campaign *Campaign) error {
	if campaign.Uuid == "" {
		campaign.Uuid = uuid.NewString()
	}
	if campaign.MaxPlayers == 0 {
		campaign.MaxPlayers = DefaultMaxPlayers
	}

	base := slug.Make(campaign.Name)
	if base == "" {
		base = "campaign"
	}
	hex := strings.ReplaceAll(campaign.Uuid, "-", "")

	candidate := base
	for length := 8; ; length += 4 {
		taken, err := r.slugTaken(candidate)
		if err != nil {
			return err
		}
		if !taken {
			campaign.Slug = candidate
			err = r.DB.Create(campaign).Error
			if err == nil {
				log.Printf("New campaign created: %s (%s)\n", campaign.Name, campaign.Uuid)
				return nil
			}
			if !isUniqueViolation(err) {
				log.Printf("error creating campaign: %s\n", err)
				return err
			}
		}
		if length > len(hex) {
			return fmt.Errorf("could not find a free slug for %q", campaign.Name)
		}
		candidate = fmt.Sprintf("%s-%s", base, hex[:length])
	}
}

// Update saves the campaign and records feed items for every tracked field
// that changed, in a single transaction.
func (r *CampaignRepository) Update(campaign *Campaign) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var old Campaign
		if err := tx.First(&old, campaign.ID).Error; err != nil {
			return err
		}
		// The slug is set once at creation and never recomputed
		campaign.Slug = old.Slug
		if err := tx.Save(campaign).Error; err != nil {
			log.Printf("error updating campaign: %s\n", err)
			return err
		}
		for _, item := range campaignChanges(old, *campaign) {
			if err := tx.Create(&item).Error; err != nil {
				log.Printf("error recording campaign change: %s\n", err)
				return err
			}
		}
		return nil
	})
}

func (r *CampaignRepository) FindBySlug(slug string) (*Campaign, error) {
	var campaign Campaign

	result := r.DB.Preload("DungeonMaster").Preload("System").Where("slug = ?", slug).First(&campaign)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &campaign, result.Error
}

func (r *CampaignRepository) FindByUuid(uuid string) (*Campaign, error) {
	var campaign Campaign

	result := r.DB.Preload("DungeonMaster").Preload("System").Where("uuid = ?", uuid).First(&campaign)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &campaign, result.Error
}

// JoinedBy returns the campaigns where the given user is a player,
// most recently created first.
func (r *CampaignRepository) JoinedBy(userID uint) ([]Campaign, error) {
	var campaigns []Campaign

	result := r.DB.Preload("DungeonMaster").Preload("System").
		Joins("JOIN campaign_players ON campaign_players.campaign_id = campaigns.id").
		Where("campaign_players.user_id = ?", userID).
		Order("campaigns.created_at DESC").
		Find(&campaigns)
	if result.Error != nil {
		log.Printf("error listing joined campaigns: %s\n", result.Error)
		return nil, result.Error
	}
	return campaigns, nil
}

// ManagedBy returns the campaigns where the given user is the dungeon master,
// most recently created first.
func (r *CampaignRepository) ManagedBy(userID uint) ([]Campaign, error) {
	var campaigns []Campaign

	result := r.DB.Preload("DungeonMaster").Preload("System").
		Where("dungeon_master_id = ?", userID).
		Order("created_at DESC").
		Find(&campaigns)
	if result.Error != nil {
		log.Printf("error listing managed campaigns: %s\n", result.Error)
		return nil, result.Error
	}
	return campaigns, nil
}

func (r *CampaignRepository) Players(campaignID uint) ([]User, error) {
	var players []User

	result := r.DB.
		Joins("JOIN campaign_players ON campaign_players.user_id = users.id").
		Where("campaign_players.campaign_id = ?", campaignID).
		Order("users.username ASC").
		Find(&players)
	if result.Error != nil {
		log.Printf("error listing campaign players: %s\n", result.Error)
		return nil, result.Error
	}
	return players, nil
}

func (r *CampaignRepository) IsPlayer(campaignID, userID uint) (bool, error) {
	var count int64

	result := r.DB.Model(&CampaignPlayer{}).
		Where("campaign_id = ? AND user_id = ?", campaignID, userID).
		Count(&count)
	return count > 0, result.Error
}

func (r *CampaignRepository) PlayerCount(campaignID uint) (int64, error) {
	var count int64

	result := r.DB.Model(&CampaignPlayer{}).Where("campaign_id = ?", campaignID).Count(&count)
	return count, result.Error
}

// AddPlayer adds the user to the campaign roster and records the membership
// feed item in the same transaction.
func (r *CampaignRepository) AddPlayer(campaign *Campaign, user *User) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		membership := CampaignPlayer{CampaignID: campaign.ID, UserID: user.ID}
		if err := tx.Create(&membership).Error; err != nil {
			log.Printf("error adding player %s to campaign %s: %s\n", user.Username, campaign.Slug, err)
			return err
		}
		item := NewFeedItem(campaign.ID, fmt.Sprintf("%s joined the party.", user.Username), CategoryMembership)
		return tx.Create(&item).Error
	})
}

// RemovePlayer removes the user from the campaign roster and records the
// membership feed item in the same transaction.
func (r *CampaignRepository) RemovePlayer(campaign *Campaign, user *User) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("campaign_id = ? AND user_id = ?", campaign.ID, user.ID).Delete(&CampaignPlayer{})
		if result.Error != nil {
			log.Printf("error removing player %s from campaign %s: %s\n", user.Username, campaign.Slug, result.Error)
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		item := NewFeedItem(campaign.ID, fmt.Sprintf("%s left the party.", user.Username), CategoryMembership)
		return tx.Create(&item).Error
	})
}

func (r *CampaignRepository) slugTaken(candidate string) (bool, error) {
	var count int64

	result := r.DB.Model(&Campaign{}).Where("slug = ?", candidate).Count(&count)
	if result.Error != nil {
		log.Printf("error checking slug availability: %s\n", result.Error)
		return false, result.Error
	}
	return count > 0, nil
}

// campaignChanges diffs the tracked campaign fields and returns one feed item
// per field whose value changed.
func campaignChanges(old, updated Campaign) []PartyFeedItem {
	var items []PartyFeedItem

	if updated.Description != old.Description {
		items = append(items, NewFeedItem(updated.ID, "The campaign description has been updated.", CategoryDataUpdate))
	}
	if updated.VttLink != old.VttLink {
		message := fmt.Sprintf("The Virtual Tabletop link was %s.", linkAction(old.VttLink, updated.VttLink))
		items = append(items, NewFeedItem(updated.ID, message, CategoryDataUpdate))
	}
	if updated.VideoLink != old.VideoLink {
		message := fmt.Sprintf("The Video Conference link was %s.", linkAction(old.VideoLink, updated.VideoLink))
		items = append(items, NewFeedItem(updated.ID, message, CategoryDataUpdate))
	}
	return items
}

func linkAction(old, updated string) string {
	switch {
	case updated == "":
		return "removed"
	case old == "":
		return "added"
	default:
		return "updated"
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
