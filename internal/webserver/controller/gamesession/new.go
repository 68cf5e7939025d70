package gamesession

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// New renders the propose session form
func (ctrl *Controller) New(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	campaign, err := ctrl.memberCampaign(c, session)
	if err != nil {
		return err
	}

	return c.Render("session/form", fiber.Map{
		"Title":       "Propose a session",
		"Session":     session,
		"Campaign":    campaign,
		"GameSession": model.GameSession{Duration: 4},
		"Errors":      map[string]string{},
	}, "layout")
}
