package campaign

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Edit renders the campaign settings form. Dungeon master only.
func (ctrl *Controller) Edit(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	campaign, err := ctrl.campaigns.FindBySlug(c.Params("slug"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if campaign == nil {
		return fiber.ErrNotFound
	}
	if campaign.DungeonMasterID != session.ID {
		return fiber.ErrForbidden
	}

	systems, err := ctrl.systems.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("campaign/form", fiber.Map{
		"Title":    "Edit campaign",
		"Session":  session,
		"Campaign": campaign,
		"Systems":  systems,
		"Errors":   map[string]string{},
	}, "layout")
}
