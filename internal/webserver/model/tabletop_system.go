package model

import "time"

// TabletopSystem is a roleplaying game system, e.g. D&D 5e or Pathfinder.
type TabletopSystem struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	Uuid        string `gorm:"uniqueIndex; not null"`
	Name        string `gorm:"uniqueIndex; not null"`
	ShortName   string `gorm:"uniqueIndex; not null"`
	Description string
}
