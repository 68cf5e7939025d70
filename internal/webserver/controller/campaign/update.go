package campaign

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Update applies the campaign settings form. The repository records any
// noteworthy change in the campaign's feed.
func (ctrl *Controller) Update(c *fiber.Ctx) error {
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

	campaign.Name = c.FormValue("name")
	campaign.Description = c.FormValue("description")
	campaign.VttLink = c.FormValue("vtt-link")
	campaign.VideoLink = c.FormValue("video-link")

	if value, err := strconv.Atoi(c.FormValue("max-players")); err == nil {
		campaign.MaxPlayers = uint(value)
	}

	campaign.SystemID = nil
	campaign.System = nil
	if systemUuid := c.FormValue("system"); systemUuid != "" {
		system, err := ctrl.systems.FindByUuid(systemUuid)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		if system != nil {
			campaign.SystemID = &system.ID
			campaign.System = system
		}
	}

	if errs := campaign.Validate(); len(errs) > 0 {
		systems, err := ctrl.systems.List()
		if err != nil {
			return fiber.ErrInternalServerError
		}
		return c.Render("campaign/form", fiber.Map{
			"Title":    "Edit campaign",
			"Session":  session,
			"Campaign": campaign,
			"Systems":  systems,
			"Errors":   errs,
		}, "layout")
	}

	if err := ctrl.campaigns.Update(campaign); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/campaigns/%s", campaign.Slug))
}
