package gamesession

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Edit renders the session update form. Dungeon master only.
func (ctrl *Controller) Edit(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	campaign, err := ctrl.memberCampaign(c, session)
	if err != nil {
		return err
	}
	if campaign.DungeonMasterID != session.ID {
		return fiber.ErrForbidden
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

	return c.Render("session/edit", fiber.Map{
		"Title":       "Edit session",
		"Session":     session,
		"Campaign":    campaign,
		"GameSession": gameSession,
		"Errors":      map[string]string{},
	}, "layout")
}
