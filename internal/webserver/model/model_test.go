package model_test

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/quillon/partyfolk/internal/webserver/infrastructure"
	"github.com/quillon/partyfolk/internal/webserver/model"
	"gorm.io/gorm"
)

func connect(name string) *gorm.DB {
	return infrastructure.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
}

func mustCreateUser(db *gorm.DB, username string) *model.User {
	user := &model.User{
		Uuid:     uuid.NewString(),
		Name:     username,
		Username: username,
		Email:    username + "@example.com",
		Password: model.Hash("longenough"),
		Role:     model.RoleRegular,
	}
	if err := (&model.UserRepository{DB: db}).Create(user); err != nil {
		panic(err)
	}
	return user
}

func mustCreateCampaign(db *gorm.DB, name string, dungeonMasterID uint) *model.Campaign {
	campaign := &model.Campaign{
		Uuid:            uuid.NewString(),
		Name:            name,
		MaxPlayers:      model.DefaultMaxPlayers,
		DungeonMasterID: dungeonMasterID,
	}
	if err := (&model.CampaignRepository{DB: db}).Create(campaign); err != nil {
		panic(err)
	}
	return campaign
}
