package model_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/quillon/partyfolk/internal/webserver/model"
)

func TestHelpfulLinkCapUnderConcurrency(t *testing.T) {
	db := connect("linkrace")
	repo := &model.HelpfulLinkRepository{DB: db}

	dungeonMaster := mustCreateUser(db, "linkracedm")
	campaign := mustCreateCampaign(db, "Link Race", dungeonMaster.ID)

	for i := 1; i < model.MaxHelpfulLinks; i++ {
		link := &model.HelpfulLink{
			CampaignID: campaign.ID,
			Name:       fmt.Sprintf("Link %d", i),
			URL:        fmt.Sprintf("https://example.com/%d", i),
		}
		if err := repo.Create(link); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
	}

	// Race two insertions for the single free slot left.
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func(i int) {
			results <- repo.Create(&model.HelpfulLink{
				CampaignID: campaign.ID,
				Name:       fmt.Sprintf("Racer %d", i),
				URL:        fmt.Sprintf("https://example.com/racer/%d", i),
			})
		}(i)
	}

	successes := 0
	for i := 0; i < 2; i++ {
		if err := <-results; err == nil {
			successes++
		}
	}
	if successes > 1 {
		t.Fatal("Two concurrent insertions claimed the last free slot")
	}

	var count int64
	db.Model(&model.HelpfulLink{}).Where("campaign_id = ?", campaign.ID).Count(&count)
	if count > model.MaxHelpfulLinks {
		t.Fatalf("Expected at most %d links, received %d", model.MaxHelpfulLinks, count)
	}

	t.Run("The last slot can still be filled exactly once", func(t *testing.T) {
		for count < model.MaxHelpfulLinks {
			link := &model.HelpfulLink{
				CampaignID: campaign.ID,
				Name:       "Latecomer",
				URL:        "https://example.com/latecomer",
			}
			if err := repo.Create(link); err != nil {
				t.Fatalf("Unexpected error: %v", err.Error())
			}
			count++
		}

		overflow := &model.HelpfulLink{
			CampaignID: campaign.ID,
			Name:       "One too many",
			URL:        "https://example.com/overflow",
		}
		if err := repo.Create(overflow); !errors.Is(err, model.ErrMaxLinksReached) {
			t.Errorf("Expected %v, received %v", model.ErrMaxLinksReached, err)
		}
	})
}
