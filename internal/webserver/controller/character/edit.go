package character

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Edit renders the character update form. Owner only.
func (ctrl *Controller) Edit(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	character, err := ctrl.characters.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if character == nil {
		return fiber.ErrNotFound
	}
	if character.UserID != session.ID {
		return fiber.ErrForbidden
	}

	campaigns, err := ctrl.campaigns.JoinedBy(session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("character/form", fiber.Map{
		"Title":     "Edit character",
		"Session":   session,
		"Character": character,
		"Campaigns": campaigns,
		"Errors":    map[string]string{},
	}, "layout")
}
