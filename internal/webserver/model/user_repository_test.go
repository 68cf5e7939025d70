package model_test

import (
	"errors"
	"testing"

	"github.com/quillon/partyfolk/internal/webserver/model"
)

func TestUserDeletion(t *testing.T) {
	db := connect("userdeletion")
	users := &model.UserRepository{DB: db}
	campaigns := &model.CampaignRepository{DB: db}

	t.Run("Dungeon masters cannot be deleted", func(t *testing.T) {
		dungeonMaster := mustCreateUser(db, "deletiondm")
		mustCreateCampaign(db, "Protected", dungeonMaster.ID)

		if err := users.Delete(dungeonMaster.Uuid); !errors.Is(err, model.ErrOwnsCampaigns) {
			t.Errorf("Expected %v, received %v", model.ErrOwnsCampaigns, err)
		}

		if found, _ := users.FindByUsername("deletiondm"); found == nil {
			t.Error("Expected the dungeon master to still exist")
		}
	})

	t.Run("Deleting a player removes them from their parties", func(t *testing.T) {
		dungeonMaster := mustCreateUser(db, "partydm")
		player := mustCreateUser(db, "leavingplayer")
		campaign := mustCreateCampaign(db, "Party", dungeonMaster.ID)

		if err := campaigns.AddPlayer(campaign, player); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		if err := users.Delete(player.Uuid); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		isPlayer, err := campaigns.IsPlayer(campaign.ID, player.ID)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if isPlayer {
			t.Error("Expected the deleted user to be out of the roster")
		}

		if found, _ := users.FindByUsername("leavingplayer"); found != nil {
			t.Error("Expected the user to be gone")
		}
	})
}
