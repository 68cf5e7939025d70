package model

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
)

const sessionNumberRetries = 3

type GameSessionRepository struct {
	DB *gorm.DB
}

// Create persists a new session, assigning it the next sequential number for
// its campaign and marking the proposer as attending, all in one transaction.
// The unique constraint on (campaign, session number) is the authoritative
// guard against concurrent proposals; when it fires, the insert is retried
// with a freshly computed number.
func (r *GameSessionRepository) Create(session *GameSession) error {
	var err error

	for attempt := 0; attempt < sessionNumberRetries; attempt++ {
		err = r.DB.Transaction(func(tx *gorm.DB) error {
			var current uint
			row := tx.Model(&GameSession{}).
				Where("campaign_id = ?", session.CampaignID).
				Select("COALESCE(MAX(session_number), 0)").
				Row()
			if err := row.Scan(&current); err != nil {
				return err
			}
			session.SessionNumber = current + 1
			if err := tx.Create(session).Error; err != nil {
				return err
			}
			if session.ProposerID == nil {
				return nil
			}
			rsvp := SessionRSVP{SessionID: session.ID, UserID: *session.ProposerID, Status: RSVPAttending}
			return tx.Create(&rsvp).Error
		})
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			log.Printf("error creating session: %s\n", err)
			return err
		}
		session.ID = 0
	}
	log.Printf("session numbering conflict for campaign %d: %s\n", session.CampaignID, err)
	return ErrSessionNumberConflict
}

// Update saves the session and, when a non-empty recap changed, records the
// recap feed item in the same transaction. The session number is never
// reassigned.
func (r *GameSessionRepository) Update(session *GameSession) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var old GameSession
		if err := tx.First(&old, session.ID).Error; err != nil {
			return err
		}
		session.SessionNumber = old.SessionNumber
		session.CampaignID = old.CampaignID
		if err := tx.Save(session).Error; err != nil {
			log.Printf("error updating session: %s\n", err)
			return err
		}
		if session.Recap != old.Recap && session.Recap != "" {
			item := NewFeedItem(
				session.CampaignID,
				fmt.Sprintf("Session %d recap has been posted.", session.SessionNumber),
				CategoryRecap,
			)
			if err := tx.Create(&item).Error; err != nil {
				log.Printf("error recording recap change: %s\n", err)
				return err
			}
		}
		return nil
	})
}

func (r *GameSessionRepository) FindByNumber(campaignID uint, number uint) (*GameSession, error) {
	var session GameSession

	result := r.DB.Preload("Proposer").
		Where("campaign_id = ? AND session_number = ?", campaignID, number).
		First(&session)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, result.Error
}

// ByCampaign returns the campaign's sessions ordered by proposed date.
func (r *GameSessionRepository) ByCampaign(campaignID uint) ([]GameSession, error) {
	var sessions []GameSession

	result := r.DB.Preload("Proposer").
		Where("campaign_id = ?", campaignID).
		Order("proposed_date ASC").
		Find(&sessions)
	if result.Error != nil {
		log.Printf("error listing sessions: %s\n", result.Error)
		return nil, result.Error
	}
	return sessions, nil
}

func (r *GameSessionRepository) Delete(session *GameSession) error {
	if result := r.DB.Delete(session); result.Error != nil {
		log.Printf("error deleting session: %s\n", result.Error)
		return result.Error
	}
	return nil
}

// SetRSVP records the user's attendance status for a session, replacing any
// previous response. Submitting the current status again clears the response.
func (r *GameSessionRepository) SetRSVP(sessionID, userID uint, status string) error {
	if status != RSVPAttending && status != RSVPBusy {
		return fmt.Errorf("unknown RSVP status %q", status)
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var current SessionRSVP
		err := tx.Where("session_id = ? AND user_id = ?", sessionID, userID).First(&current).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			if delErr := tx.Where("session_id = ? AND user_id = ?", sessionID, userID).
				Delete(&SessionRSVP{}).Error; delErr != nil {
				return delErr
			}
			if current.Status == status {
				return nil
			}
		}
		rsvp := SessionRSVP{SessionID: sessionID, UserID: userID, Status: status}
		return tx.Create(&rsvp).Error
	})
}

// Responders returns the users who answered the session proposal with the
// given status, ordered by username.
func (r *GameSessionRepository) Responders(sessionID uint, status string) ([]User, error) {
	var users []User

	result := r.DB.
		Joins("JOIN session_rsvps ON session_rsvps.user_id = users.id").
		Where("session_rsvps.session_id = ? AND session_rsvps.status = ?", sessionID, status).
		Order("users.username ASC").
		Find(&users)
	if result.Error != nil {
		log.Printf("error listing session responders: %s\n", result.Error)
		return nil, result.Error
	}
	return users, nil
}

func (r *GameSessionRepository) RSVPStatus(sessionID, userID uint) (string, error) {
	var rsvp SessionRSVP

	result := r.DB.Where("session_id = ? AND user_id = ?", sessionID, userID).First(&rsvp)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return rsvp.Status, result.Error
}
