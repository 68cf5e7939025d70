package journal

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Update applies the journal entry update form. Owner only.
func (ctrl *Controller) Update(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	entry, character, err := ctrl.ownedEntry(c.Params("uuid"), session)
	if err != nil {
		return err
	}

	entry.Title = c.FormValue("title")
	entry.Content = c.FormValue("content")

	entry.SessionID = nil
	entry.Session = nil
	if value, err := strconv.Atoi(c.FormValue("session")); err == nil {
		if linked := ctrl.linkableSession(character, uint(value)); linked != nil {
			entry.SessionID = &linked.ID
		}
	}

	if errs := entry.Validate(); len(errs) > 0 {
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
			"Errors":    errs,
		}, "layout")
	}

	if err := ctrl.journal.Update(entry); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/characters/%s/journal", character.Uuid))
}
