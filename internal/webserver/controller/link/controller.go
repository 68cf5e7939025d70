package link

import (
	"github.com/quillon/partyfolk/internal/webserver/model"
)

type linksRepository interface {
	Create(link *model.HelpfulLink) error
	FindOwnedBy(linkID, userID uint) (*model.HelpfulLink, error)
	Delete(link *model.HelpfulLink) error
}

type campaignsRepository interface {
	FindBySlug(slug string) (*model.Campaign, error)
}

type Controller struct {
	links     linksRepository
	campaigns campaignsRepository
}

func NewController(links linksRepository, campaigns campaignsRepository) *Controller {
	return &Controller{
		links:     links,
		campaigns: campaigns,
	}
}
