package link

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Create adds a helpful link to a campaign and answers in JSON, as the form
// is submitted without leaving the campaign page. Dungeon master only.
func (ctrl *Controller) Create(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	campaign, err := ctrl.campaigns.FindBySlug(c.Params("slug"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if campaign == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Campaign not found",
		})
	}
	if campaign.DungeonMasterID != session.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Only the dungeon master can add links",
		})
	}

	link := model.HelpfulLink{
		CampaignID: campaign.ID,
		Name:       c.FormValue("name"),
		URL:        c.FormValue("url"),
	}

	if errs := link.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": errs,
		})
	}

	if err := ctrl.links.Create(&link); err != nil {
		// The cap is a form-level rejection, reported under the same key
		// clients already use for non-field errors.
		if errors.Is(err, model.ErrMaxLinksReached) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": fiber.Map{
					"__all__": model.ErrMaxLinksReached.Error(),
				},
			})
		}
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"pk":         link.ID,
		"name":       link.Name,
		"url":        link.URL,
		"delete_url": fmt.Sprintf("/links/%d/delete", link.ID),
	})
}
