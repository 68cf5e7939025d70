package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

type Controller struct{}

func NewController() *Controller {
	return &Controller{}
}

// Index renders the landing page, or takes signed-in users straight to
// their campaigns.
func (h *Controller) Index(c *fiber.Ctx) error {
	if session, ok := c.Locals("Session").(model.Session); ok && session.ID > 0 {
		return c.Redirect("/campaigns")
	}

	return c.Render("home/index", fiber.Map{
		"Title": "Welcome",
		"Flash": c.Locals("Flash"),
	}, "layout")
}
