package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type CharacterRepository struct {
	DB *gorm.DB
}

func (r *CharacterRepository) Create(character *PlayerCharacter) error {
	if result := r.DB.Create(character); result.Error != nil {
		log.Printf("error creating character: %s\n", result.Error)
		return result.Error
	}
	log.Printf("New character created: %s (%s)\n", character.Name, character.Uuid)
	return nil
}

func (r *CharacterRepository) Update(character *PlayerCharacter) error {
	if result := r.DB.Save(character); result.Error != nil {
		log.Printf("error updating character: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (r *CharacterRepository) FindByUuid(uuid string) (*PlayerCharacter, error) {
	var character PlayerCharacter

	result := r.DB.Preload("User").Preload("Campaign").Where("uuid = ?", uuid).First(&character)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &character, result.Error
}

// OwnedBy returns the user's characters ordered by name.
func (r *CharacterRepository) OwnedBy(userID uint) ([]PlayerCharacter, error) {
	var characters []PlayerCharacter

	result := r.DB.Preload("Campaign").Where("user_id = ?", userID).Order("name ASC").Find(&characters)
	if result.Error != nil {
		log.Printf("error listing characters: %s\n", result.Error)
		return nil, result.Error
	}
	return characters, nil
}

// ByCampaign returns the characters attached to a campaign, keyed by their
// owner's user ID, to pair roster entries with their character.
func (r *CharacterRepository) ByCampaign(campaignID uint) (map[uint]PlayerCharacter, error) {
	var characters []PlayerCharacter

	result := r.DB.Where("campaign_id = ?", campaignID).Find(&characters)
	if result.Error != nil {
		log.Printf("error listing campaign characters: %s\n", result.Error)
		return nil, result.Error
	}
	byOwner := make(map[uint]PlayerCharacter, len(characters))
	for _, character := range characters {
		byOwner[character.UserID] = character
	}
	return byOwner, nil
}
