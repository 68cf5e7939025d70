package infrastructure

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/quillon/partyfolk/internal/webserver/model"
	"gorm.io/gorm"
)

func Connect(path string) *gorm.DB {
	if _, err := os.Stat(path); os.IsNotExist(err) && !strings.Contains(path, "memory") {
		if _, err = os.Create(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Created database at %s\n", path)
	}

	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s%s_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)", path, separator)), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.TabletopSystem{},
		&model.Campaign{},
		&model.CampaignPlayer{},
		&model.GameSession{},
		&model.SessionRSVP{},
		&model.HelpfulLink{},
		&model.PartyFeedItem{},
		&model.CampaignInvitation{},
		&model.PlayerCharacter{},
		&model.JournalEntry{},
		&model.ChatMessage{},
	); err != nil {
		log.Fatal(err)
	}
	addDefaultAdmin(db)
	seedTabletopSystems(db)
	return db
}

func addDefaultAdmin(db *gorm.DB) {
	var result int64
	db.Table("users").Count(&result)

	if result == 0 {
		user := &model.User{
			Uuid:     uuid.NewString(),
			Name:     "Admin",
			Username: "admin",
			Email:    "admin@example.com",
			Password: model.Hash("admin"),
			Role:     model.RoleAdmin,
		}
		result := db.Create(&user)
		if result.Error != nil {
			log.Fatal("Couldn't create default admin")
		}
	}
}

func seedTabletopSystems(db *gorm.DB) {
	var result int64
	db.Table("tabletop_systems").Count(&result)

	if result > 0 {
		return
	}

	systems := []model.TabletopSystem{
		{Uuid: uuid.NewString(), Name: "Dungeons & Dragons 5th Edition", ShortName: "D&D 5e"},
		{Uuid: uuid.NewString(), Name: "Pathfinder 2nd Edition", ShortName: "PF2e"},
		{Uuid: uuid.NewString(), Name: "Call of Cthulhu", ShortName: "CoC"},
		{Uuid: uuid.NewString(), Name: "Blades in the Dark", ShortName: "BitD"},
		{Uuid: uuid.NewString(), Name: "Vampire: The Masquerade", ShortName: "VtM"},
	}
	if err := db.Create(&systems).Error; err != nil {
		log.Printf("error seeding tabletop systems: %s\n", err)
	}
}
