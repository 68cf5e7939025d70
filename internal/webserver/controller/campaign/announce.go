package campaign

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/flash"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Announce posts a dungeon master announcement to the campaign's feed.
func (ctrl *Controller) Announce(c *fiber.Ctx) error {
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

	item := model.NewFeedItem(campaign.ID, c.FormValue("message"), model.CategoryAnnouncement)
	if errs := item.Validate(); len(errs) > 0 {
		flash.Set(c, "danger", errs["message"])
		return c.Redirect(fmt.Sprintf("/campaigns/%s", campaign.Slug))
	}

	if err := ctrl.feed.Create(&item); err != nil {
		return fiber.ErrInternalServerError
	}

	flash.Set(c, "success", "Announcement posted.")
	return c.Redirect(fmt.Sprintf("/campaigns/%s", campaign.Slug))
}
