package gamesession

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Detail renders a session's page: schedule, RSVPs, recap and chat.
func (ctrl *Controller) Detail(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	campaign, err := ctrl.memberCampaign(c, session)
	if err != nil {
		return err
	}

	number, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	gameSession, err := ctrl.sessions.FindByNumber(campaign.ID, uint(number))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if gameSession == nil {
		return fiber.ErrNotFound
	}

	attending, err := ctrl.sessions.Responders(gameSession.ID, model.RSVPAttending)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	busy, err := ctrl.sessions.Responders(gameSession.ID, model.RSVPBusy)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	ownStatus, err := ctrl.sessions.RSVPStatus(gameSession.ID, session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	messages, err := ctrl.chat.BySession(gameSession.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("session/detail", fiber.Map{
		"Title":           campaign.Name,
		"Session":         session,
		"Campaign":        campaign,
		"GameSession":     gameSession,
		"IsDungeonMaster": campaign.DungeonMasterID == session.ID,
		"Attending":       attending,
		"Busy":            busy,
		"OwnStatus":       ownStatus,
		"Messages":        messages,
		"Flash":           c.Locals("Flash"),
	}, "layout")
}
