package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type TabletopSystemRepository struct {
	DB *gorm.DB
}

func (r *TabletopSystemRepository) List() ([]TabletopSystem, error) {
	var systems []TabletopSystem

	result := r.DB.Order("name ASC").Find(&systems)
	if result.Error != nil {
		log.Printf("error listing tabletop systems: %s\n", result.Error)
		return nil, result.Error
	}
	return systems, nil
}

func (r *TabletopSystemRepository) FindByUuid(uuid string) (*TabletopSystem, error) {
	var system TabletopSystem

	result := r.DB.Where("uuid = ?", uuid).First(&system)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &system, result.Error
}
