package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/quillon/partyfolk/internal/webserver/model"
	"gorm.io/gorm"
)

func TestSessionNumbering(t *testing.T) {
	db := connect("sessionnumbering")
	repo := &model.GameSessionRepository{DB: db}

	dungeonMaster := mustCreateUser(db, "numberingdm")
	campaign := mustCreateCampaign(db, "Numbering", dungeonMaster.ID)

	create := func() *model.GameSession {
		t.Helper()
		session := &model.GameSession{
			CampaignID:   campaign.ID,
			ProposerID:   &dungeonMaster.ID,
			ProposedDate: time.Now().Add(24 * time.Hour),
			Duration:     4,
		}
		if err := repo.Create(session); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		return session
	}

	first := create()
	second := create()
	third := create()

	if first.SessionNumber != 1 || second.SessionNumber != 2 || third.SessionNumber != 3 {
		t.Errorf("Expected sessions numbered 1, 2, 3, received %d, %d, %d",
			first.SessionNumber, second.SessionNumber, third.SessionNumber)
	}

	t.Run("Deleting the last session frees its number", func(t *testing.T) {
		if err := repo.Delete(third); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		replacement := create()
		if replacement.SessionNumber != 3 {
			t.Errorf("Expected session number 3, received %d", replacement.SessionNumber)
		}
	})

	t.Run("Deleting a middle session leaves a gap", func(t *testing.T) {
		if err := repo.Delete(second); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		next := create()
		if next.SessionNumber != 4 {
			t.Errorf("Expected session number 4, received %d", next.SessionNumber)
		}
	})

	t.Run("Each campaign numbers its sessions independently", func(t *testing.T) {
		other := mustCreateCampaign(db, "Other Numbering", dungeonMaster.ID)
		session := &model.GameSession{
			CampaignID:   other.ID,
			ProposerID:   &dungeonMaster.ID,
			ProposedDate: time.Now().Add(24 * time.Hour),
			Duration:     4,
		}
		if err := repo.Create(session); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if session.SessionNumber != 1 {
			t.Errorf("Expected session number 1, received %d", session.SessionNumber)
		}
	})
}

func TestSessionRSVP(t *testing.T) {
	db := connect("sessionrsvp")
	repo := &model.GameSessionRepository{DB: db}

	dungeonMaster := mustCreateUser(db, "rsvpdm")
	player := mustCreateUser(db, "rsvpplayer")
	campaign := mustCreateCampaign(db, "RSVP", dungeonMaster.ID)

	session := &model.GameSession{
		CampaignID:   campaign.ID,
		ProposerID:   &dungeonMaster.ID,
		ProposedDate: time.Now().Add(24 * time.Hour),
		Duration:     4,
	}
	if err := repo.Create(session); err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	t.Run("The proposer starts attending", func(t *testing.T) {
		status, err := repo.RSVPStatus(session.ID, dungeonMaster.ID)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if status != model.RSVPAttending {
			t.Errorf("Expected status %q, received %q", model.RSVPAttending, status)
		}
	})

	t.Run("Switching status moves the user between lists", func(t *testing.T) {
		if err := repo.SetRSVP(session.ID, player.ID, model.RSVPAttending); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if err := repo.SetRSVP(session.ID, player.ID, model.RSVPBusy); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		attending, err := repo.Responders(session.ID, model.RSVPAttending)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		for _, user := range attending {
			if user.ID == player.ID {
				t.Error("Expected the player to no longer be attending")
			}
		}

		status, err := repo.RSVPStatus(session.ID, player.ID)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if status != model.RSVPBusy {
			t.Errorf("Expected status %q, received %q", model.RSVPBusy, status)
		}
	})

	t.Run("Repeating the same status clears the RSVP", func(t *testing.T) {
		if err := repo.SetRSVP(session.ID, player.ID, model.RSVPBusy); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		status, err := repo.RSVPStatus(session.ID, player.ID)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if status != "" {
			t.Errorf("Expected no status, received %q", status)
		}
	})
}

func TestSessionNumberConflict(t *testing.T) {
	db := connect("sessionconflict")
	repo := &model.GameSessionRepository{DB: db}

	dungeonMaster := mustCreateUser(db, "conflictdm")
	campaign := mustCreateCampaign(db, "Conflict", dungeonMaster.ID)

	// Sneak a competing row with the chosen number into the same transaction
	// right before each insert, as a simultaneous proposal for the same
	// campaign would. The competing row rolls back together with the failed
	// attempt, so the next retry races it again.
	competing := 0
	err := db.Callback().Create().Before("gorm:create").Register("competing_proposal", func(tx *gorm.DB) {
		session, ok := tx.Statement.Dest.(*model.GameSession)
		if !ok || competing == 0 {
			return
		}
		competing--
		result := tx.Session(&gorm.Session{NewDB: true}).Exec(
			"INSERT INTO game_sessions (campaign_id, session_number) VALUES (?, ?)",
			session.CampaignID, session.SessionNumber,
		)
		if result.Error != nil {
			t.Fatalf("Unexpected error: %v", result.Error.Error())
		}
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	defer db.Callback().Create().Remove("competing_proposal")

	propose := func() (*model.GameSession, error) {
		session := &model.GameSession{
			CampaignID:   campaign.ID,
			ProposerID:   &dungeonMaster.ID,
			ProposedDate: time.Now().Add(24 * time.Hour),
			Duration:     4,
		}
		return session, repo.Create(session)
	}

	t.Run("A lost race is retried with a fresh attempt", func(t *testing.T) {
		competing = 1
		session, err := propose()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if session.SessionNumber != 1 {
			t.Errorf("Expected session number 1, received %d", session.SessionNumber)
		}
	})

	t.Run("Losing every retry surfaces as a conflict", func(t *testing.T) {
		competing = 3
		_, err := propose()
		if !errors.Is(err, model.ErrSessionNumberConflict) {
			t.Errorf("Expected %v, received %v", model.ErrSessionNumberConflict, err)
		}
	})

	t.Run("Numbering picks up where it left off once the contention is over", func(t *testing.T) {
		session, err := propose()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if session.SessionNumber != 2 {
			t.Errorf("Expected session number 2, received %d", session.SessionNumber)
		}
	})
}
