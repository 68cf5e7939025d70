package journal

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
	"github.com/quillon/partyfolk/internal/webserver/view"
)

// List shows a character's journal, latest entries first.
func (ctrl *Controller) List(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	character, err := ctrl.ownedCharacter(c.Params("uuid"), session)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if character == nil {
		return fiber.ErrNotFound
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	entries, err := ctrl.journal.ByCharacter(character.ID, page)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("journal/list", fiber.Map{
		"Title":     character.Name,
		"Session":   session,
		"Character": character,
		"Entries":   entries,
		"Paginator": view.Pagination(model.MaxPagesNavigator, entries, map[string]string{}),
		"Flash":     c.Locals("Flash"),
	}, "layout")
}
