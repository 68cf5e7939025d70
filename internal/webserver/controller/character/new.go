package character

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// New renders the new character form
func (ctrl *Controller) New(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	campaigns, err := ctrl.campaigns.JoinedBy(session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("character/form", fiber.Map{
		"Title":     "New character",
		"Session":   session,
		"Character": model.PlayerCharacter{Level: 1},
		"Campaigns": campaigns,
		"Errors":    map[string]string{},
	}, "layout")
}
