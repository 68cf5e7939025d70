package model

import (
	"errors"
	"fmt"
	"log"

	"github.com/quillon/partyfolk/internal/result"
	"gorm.io/gorm"
)

type JournalRepository struct {
	DB *gorm.DB
}

// Create persists the entry and, when the character belongs to a campaign,
// records a journal feed item in the same transaction.
func (r *JournalRepository) Create(entry *JournalEntry, character *PlayerCharacter) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			log.Printf("error creating journal entry: %s\n", err)
			return err
		}
		if character.CampaignID == nil {
			return nil
		}
		item := NewFeedItem(
			*character.CampaignID,
			fmt.Sprintf("%s added a new journal entry: %s.", character.Name, entry.Title),
			CategoryJournal,
		)
		return tx.Create(&item).Error
	})
}

func (r *JournalRepository) Update(entry *JournalEntry) error {
	if result := r.DB.Save(entry); result.Error != nil {
		log.Printf("error updating journal entry: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (r *JournalRepository) Delete(entry *JournalEntry) error {
	if result := r.DB.Delete(entry); result.Error != nil {
		log.Printf("error deleting journal entry: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (r *JournalRepository) FindByUuid(uuid string) (*JournalEntry, error) {
	var entry JournalEntry

	result := r.DB.Preload("Character").Preload("Character.User").Preload("Session").
		Where("uuid = ?", uuid).First(&entry)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entry, result.Error
}

// ByCharacter returns a page of the character's journal, newest entries first.
func (r *JournalRepository) ByCharacter(characterID uint, page int) (result.Paginated[[]JournalEntry], error) {
	var entries []JournalEntry

	res := r.DB.Preload("Session").Scopes(Paginate(page, ResultsPerPage)).
		Where("character_id = ?", characterID).
		Order("created_at DESC").
		Find(&entries)
	if res.Error != nil {
		log.Printf("error listing journal entries: %s\n", res.Error)
		return result.Paginated[[]JournalEntry]{}, res.Error
	}

	return result.NewPaginated(
		ResultsPerPage,
		page,
		int(r.Total(characterID)),
		entries,
	), nil
}

func (r *JournalRepository) Total(characterID uint) int64 {
	var total int64

	r.DB.Model(&JournalEntry{}).Where("character_id = ?", characterID).Count(&total)
	return total
}
