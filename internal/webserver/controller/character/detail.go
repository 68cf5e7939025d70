package character

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Detail renders a character sheet. Owner only.
func (ctrl *Controller) Detail(c *fiber.Ctx) error {
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

	return c.Render("character/detail", fiber.Map{
		"Title":     character.Name,
		"Session":   session,
		"Character": character,
		"Flash":     c.Locals("Flash"),
	}, "layout")
}
