package campaign

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// List shows the campaigns the signed-in user plays in.
func (ctrl *Controller) List(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	campaigns, err := ctrl.campaigns.JoinedBy(session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("campaign/list", fiber.Map{
		"Title":     "My campaigns",
		"Session":   session,
		"Campaigns": campaigns,
		"Flash":     c.Locals("Flash"),
	}, "layout")
}

// Managed shows the campaigns the signed-in user runs as dungeon master.
func (ctrl *Controller) Managed(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	campaigns, err := ctrl.campaigns.ManagedBy(session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("campaign/managed", fiber.Map{
		"Title":     "Campaigns I run",
		"Session":   session,
		"Campaigns": campaigns,
		"Flash":     c.Locals("Flash"),
	}, "layout")
}
