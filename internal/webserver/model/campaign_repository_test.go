package model_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

func TestCampaignSlugs(t *testing.T) {
	db := connect("campaignslugs")
	repo := &model.CampaignRepository{DB: db}

	dungeonMaster := mustCreateUser(db, "slugdm")

	first := mustCreateCampaign(db, "Lost Mine of Phandelver", dungeonMaster.ID)
	if first.Slug != "lost-mine-of-phandelver" {
		t.Errorf("Expected slug %q, received %q", "lost-mine-of-phandelver", first.Slug)
	}

	t.Run("A repeated name gets a suffixed slug", func(t *testing.T) {
		second := mustCreateCampaign(db, "Lost Mine of Phandelver", dungeonMaster.ID)
		if second.Slug == first.Slug {
			t.Errorf("Expected different slugs, received %q twice", first.Slug)
		}
		if !strings.HasPrefix(second.Slug, first.Slug+"-") {
			t.Errorf("Expected slug based on the name, received %q", second.Slug)
		}
	})

	t.Run("A name without sluggable characters still gets a slug", func(t *testing.T) {
		campaign := &model.Campaign{
			Uuid:            uuid.NewString(),
			Name:            "!!!",
			MaxPlayers:      model.DefaultMaxPlayers,
			DungeonMasterID: dungeonMaster.ID,
		}
		if err := repo.Create(campaign); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if campaign.Slug == "" {
			t.Error("Expected a non-empty slug")
		}
	})

	t.Run("Renaming a campaign keeps its slug", func(t *testing.T) {
		first.Name = "Found Mine of Phandelver"
		if err := repo.Update(first); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		reloaded, err := repo.FindBySlug("lost-mine-of-phandelver")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if reloaded == nil {
			t.Fatal("Expected the campaign to keep its slug")
		}
		if reloaded.Name != "Found Mine of Phandelver" {
			t.Errorf("Expected the new name, received %q", reloaded.Name)
		}
	})
}

func TestInvitationLifecycle(t *testing.T) {
	db := connect("invitationlifecycle")
	repo := &model.InvitationRepository{DB: db}

	dungeonMaster := mustCreateUser(db, "invitedm")
	campaign := mustCreateCampaign(db, "Invitations", dungeonMaster.ID)

	invitation, err := repo.IssueActive(campaign.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	t.Run("Issuing again returns the same invitation", func(t *testing.T) {
		again, err := repo.IssueActive(campaign.ID)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if again.Token != invitation.Token {
			t.Errorf("Expected the same token, received %q and %q", invitation.Token, again.Token)
		}
	})

	t.Run("An active invitation resolves with its campaign", func(t *testing.T) {
		found, err := repo.FindActiveByToken(invitation.Token)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if found == nil {
			t.Fatal("Expected the invitation to resolve")
		}
		if found.Campaign.ID != campaign.ID {
			t.Error("Expected the invitation to carry its campaign")
		}
	})

	t.Run("Deactivated invitations no longer resolve", func(t *testing.T) {
		if err := repo.Deactivate(campaign.ID); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		found, err := repo.FindActiveByToken(invitation.Token)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if found != nil {
			t.Error("Expected the deactivated invitation not to resolve")
		}

		reissued, err := repo.IssueActive(campaign.ID)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if reissued.Token == invitation.Token {
			t.Error("Expected a fresh token after deactivation")
		}
	})
}

func TestConcurrentInvitationIssue(t *testing.T) {
	db := connect("inviterace")
	repo := &model.InvitationRepository{DB: db}

	dungeonMaster := mustCreateUser(db, "inviteracedm")
	campaign := mustCreateCampaign(db, "Invite Race", dungeonMaster.ID)

	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := repo.IssueActive(campaign.ID)
			results <- err
		}()
	}
	for i := 0; i < 2; i++ {
		<-results
	}

	var count int64
	db.Model(&model.CampaignInvitation{}).
		Where("campaign_id = ? AND is_active = ?", campaign.ID, true).
		Count(&count)
	if count > 1 {
		t.Fatalf("Expected at most one active invitation, received %d", count)
	}

	first, err := repo.IssueActive(campaign.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	second, err := repo.IssueActive(campaign.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	if first.Token != second.Token {
		t.Errorf("Expected the same token, received %q and %q", first.Token, second.Token)
	}
}
