package journal

import (
	"github.com/quillon/partyfolk/internal/result"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

type journalRepository interface {
	Create(entry *model.JournalEntry, character *model.PlayerCharacter) error
	Update(entry *model.JournalEntry) error
	Delete(entry *model.JournalEntry) error
	FindByUuid(uuid string) (*model.JournalEntry, error)
	ByCharacter(characterID uint, page int) (result.Paginated[[]model.JournalEntry], error)
}

type charactersRepository interface {
	FindByUuid(uuid string) (*model.PlayerCharacter, error)
}

type sessionsRepository interface {
	ByCampaign(campaignID uint) ([]model.GameSession, error)
}

type Controller struct {
	journal    journalRepository
	characters charactersRepository
	sessions   sessionsRepository
}

func NewController(journal journalRepository, characters charactersRepository, sessions sessionsRepository) *Controller {
	return &Controller{
		journal:    journal,
		characters: characters,
		sessions:   sessions,
	}
}

// ownedCharacter loads the character in the request path, enforcing that it
// belongs to the signed-in user.
func (ctrl *Controller) ownedCharacter(uuid string, session model.Session) (*model.PlayerCharacter, error) {
	character, err := ctrl.characters.FindByUuid(uuid)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, nil
	}
	if character.UserID != session.ID {
		return nil, nil
	}
	return character, nil
}

// campaignSessions lists the sessions a journal entry of this character can
// be linked to.
func (ctrl *Controller) campaignSessions(character *model.PlayerCharacter) ([]model.GameSession, error) {
	if character.CampaignID == nil {
		return nil, nil
	}
	return ctrl.sessions.ByCampaign(*character.CampaignID)
}
