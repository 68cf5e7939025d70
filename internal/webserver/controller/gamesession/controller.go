package gamesession

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Format of the proposed date field as posted by datetime-local inputs.
const proposedDateFormat = "2006-01-02T15:04"

type sessionsRepository interface {
	Create(session *model.GameSession) error
	Update(session *model.GameSession) error
	FindByNumber(campaignID uint, number uint) (*model.GameSession, error)
	SetRSVP(sessionID, userID uint, status string) error
	Responders(sessionID uint, status string) ([]model.User, error)
	RSVPStatus(sessionID, userID uint) (string, error)
}

type campaignsRepository interface {
	FindBySlug(slug string) (*model.Campaign, error)
	IsPlayer(campaignID, userID uint) (bool, error)
}

type chatRepository interface {
	Create(message *model.ChatMessage) error
	BySession(sessionID uint) ([]model.ChatMessage, error)
}

type Controller struct {
	sessions  sessionsRepository
	campaigns campaignsRepository
	chat      chatRepository
}

func NewController(sessions sessionsRepository, campaigns campaignsRepository, chat chatRepository) *Controller {
	return &Controller{
		sessions:  sessions,
		campaigns: campaigns,
		chat:      chat,
	}
}

// memberCampaign loads the campaign in the request path and checks that the
// signed-in user belongs to it, either as dungeon master or as player.
func (ctrl *Controller) memberCampaign(c *fiber.Ctx, session model.Session) (*model.Campaign, error) {
	campaign, err := ctrl.campaigns.FindBySlug(c.Params("slug"))
	if err != nil {
		return nil, fiber.ErrInternalServerError
	}
	if campaign == nil {
		return nil, fiber.ErrNotFound
	}

	if campaign.DungeonMasterID == session.ID {
		return campaign, nil
	}

	isPlayer, err := ctrl.campaigns.IsPlayer(campaign.ID, session.ID)
	if err != nil {
		return nil, fiber.ErrInternalServerError
	}
	if !isPlayer {
		return nil, fiber.ErrForbidden
	}

	return campaign, nil
}
