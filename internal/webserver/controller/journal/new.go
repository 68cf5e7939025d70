package journal

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// New renders the new journal entry form
func (ctrl *Controller) New(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	character, err := ctrl.ownedCharacter(c.Params("uuid"), session)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if character == nil {
		return fiber.ErrNotFound
	}

	sessions, err := ctrl.campaignSessions(character)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("journal/form", fiber.Map{
		"Title":     "New journal entry",
		"Session":   session,
		"Character": character,
		"Entry":     model.JournalEntry{},
		"Sessions":  sessions,
		"Errors":    map[string]string{},
	}, "layout")
}
