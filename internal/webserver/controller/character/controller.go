package character

import (
	"github.com/quillon/partyfolk/internal/webserver/model"
)

type charactersRepository interface {
	Create(character *model.PlayerCharacter) error
	Update(character *model.PlayerCharacter) error
	FindByUuid(uuid string) (*model.PlayerCharacter, error)
	OwnedBy(userID uint) ([]model.PlayerCharacter, error)
}

type campaignsRepository interface {
	JoinedBy(userID uint) ([]model.Campaign, error)
	FindByUuid(uuid string) (*model.Campaign, error)
}

type Controller struct {
	characters charactersRepository
	campaigns  campaignsRepository
}

func NewController(characters charactersRepository, campaigns campaignsRepository) *Controller {
	return &Controller{
		characters: characters,
		campaigns:  campaigns,
	}
}
