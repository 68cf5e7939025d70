package character

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// List shows the signed-in user's characters.
func (ctrl *Controller) List(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	characters, err := ctrl.characters.OwnedBy(session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("character/list", fiber.Map{
		"Title":      "My characters",
		"Session":    session,
		"Characters": characters,
		"Flash":      c.Locals("Flash"),
	}, "layout")
}
