package journal

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/flash"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Delete removes a journal entry. Owner only.
func (ctrl *Controller) Delete(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	entry, character, err := ctrl.ownedEntry(c.Params("uuid"), session)
	if err != nil {
		return err
	}

	if err := ctrl.journal.Delete(entry); err != nil {
		return fiber.ErrInternalServerError
	}

	flash.Set(c, "info", "Journal entry deleted.")
	return c.Redirect(fmt.Sprintf("/characters/%s/journal", character.Uuid))
}
