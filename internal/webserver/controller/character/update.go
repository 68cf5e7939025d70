package character

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Update applies the character update form. Owner only.
func (ctrl *Controller) Update(c *fiber.Ctx) error {
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

	character.Name = c.FormValue("name")
	character.Race = c.FormValue("race")
	character.Class = c.FormValue("class")
	character.Bio = c.FormValue("bio")

	if value, err := strconv.Atoi(c.FormValue("level")); err == nil {
		character.Level = uint(value)
	}

	if err := ctrl.assignCampaign(character, c.FormValue("campaign"), session.ID); err != nil {
		return err
	}

	if errs := character.Validate(); len(errs) > 0 {
		campaigns, err := ctrl.campaigns.JoinedBy(session.ID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		return c.Render("character/form", fiber.Map{
			"Title":     "Edit character",
			"Session":   session,
			"Character": character,
			"Campaigns": campaigns,
			"Errors":    errs,
		}, "layout")
	}

	if err := ctrl.characters.Update(character); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/characters/%s", character.Uuid))
}
