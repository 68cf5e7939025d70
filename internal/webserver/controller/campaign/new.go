package campaign

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// New renders the new campaign form
func (ctrl *Controller) New(c *fiber.Ctx) error {
	systems, err := ctrl.systems.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("campaign/form", fiber.Map{
		"Title":    "New campaign",
		"Session":  c.Locals("Session"),
		"Campaign": model.Campaign{MaxPlayers: model.DefaultMaxPlayers},
		"Systems":  systems,
		"Errors":   map[string]string{},
	}, "layout")
}
