package journal

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Edit renders the journal entry update form. Owner only.
func (ctrl *Controller) Edit(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	entry, character, err := ctrl.ownedEntry(c.Params("uuid"), session)
	if err != nil {
		return err
	}

	sessions, err := ctrl.campaignSessions(character)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("journal/form", fiber.Map{
		"Title":     "Edit journal entry",
		"Session":   session,
		"Character": character,
		"Entry":     entry,
		"Sessions":  sessions,
		"Errors":    map[string]string{},
	}, "layout")
}

// ownedEntry loads a journal entry by uuid together with its character,
// enforcing that both belong to the signed-in user.
func (ctrl *Controller) ownedEntry(uuid string, session model.Session) (*model.JournalEntry, *model.PlayerCharacter, error) {
	entry, err := ctrl.journal.FindByUuid(uuid)
	if err != nil {
		return nil, nil, fiber.ErrInternalServerError
	}
	if entry == nil {
		return nil, nil, fiber.ErrNotFound
	}

	character, err := ctrl.ownedCharacter(entry.Character.Uuid, session)
	if err != nil {
		return nil, nil, fiber.ErrInternalServerError
	}
	if character == nil {
		return nil, nil, fiber.ErrNotFound
	}

	return entry, character, nil
}
