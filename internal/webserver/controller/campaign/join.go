package campaign

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/flash"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Join redeems an invite link. Redeeming does not consume the link, so the
// same URL can be shared with the whole party.
func (ctrl *Controller) Join(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	invitation, err := ctrl.invitations.FindActiveByToken(c.Params("token"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if invitation == nil {
		return fiber.ErrNotFound
	}

	campaign := invitation.Campaign

	if campaign.DungeonMasterID == session.ID {
		flash.Set(c, "info", "You run this campaign.")
		return c.Redirect(fmt.Sprintf("/campaigns/%s", campaign.Slug))
	}

	isPlayer, err := ctrl.campaigns.IsPlayer(campaign.ID, session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if isPlayer {
		flash.Set(c, "info", "You are already a member of this party.")
		return c.Redirect(fmt.Sprintf("/campaigns/%s", campaign.Slug))
	}

	count, err := ctrl.campaigns.PlayerCount(campaign.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if count >= int64(campaign.MaxPlayers) {
		flash.Set(c, "danger", "This party is already full.")
		return c.Redirect("/campaigns")
	}

	user, err := ctrl.users.FindByID(session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.ErrNotFound
	}

	if err := ctrl.campaigns.AddPlayer(&campaign, user); err != nil {
		return fiber.ErrInternalServerError
	}

	flash.Set(c, "success", fmt.Sprintf("Welcome to %s!", campaign.Name))
	return c.Redirect(fmt.Sprintf("/campaigns/%s", campaign.Slug))
}

// Leave drops the signed-in user from the party roster.
func (ctrl *Controller) Leave(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	campaign, err := ctrl.campaigns.FindBySlug(c.Params("slug"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if campaign == nil {
		return fiber.ErrNotFound
	}
	if campaign.DungeonMasterID == session.ID {
		return fiber.ErrForbidden
	}

	isPlayer, err := ctrl.campaigns.IsPlayer(campaign.ID, session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if !isPlayer {
		return fiber.ErrForbidden
	}

	user, err := ctrl.users.FindByID(session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.ErrNotFound
	}

	if err := ctrl.campaigns.RemovePlayer(campaign, user); err != nil {
		return fiber.ErrInternalServerError
	}

	flash.Set(c, "info", fmt.Sprintf("You left %s.", campaign.Name))
	return c.Redirect("/campaigns")
}
