package campaign

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/flash"
	"github.com/quillon/partyfolk/internal/webserver/infrastructure"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Invite issues the campaign's shareable join link, creating it if there is
// no active one. If an email address is posted the link is also mailed out.
func (ctrl *Controller) Invite(c *fiber.Ctx) error {
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

	invitation, err := ctrl.invitations.IssueActive(campaign.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	inviteURL := fmt.Sprintf("%s/join/%s", ctrl.config.FQDN, invitation.Token)

	if address := c.FormValue("email"); address != "" {
		if _, ok := ctrl.sender.(*infrastructure.NoEmail); ok {
			flash.Set(c, "warning", "Email sending is not configured, share the invite link yourself.")
			return c.Redirect(fmt.Sprintf("/campaigns/%s", campaign.Slug))
		}

		subject := fmt.Sprintf("You are invited to join %s", campaign.Name)
		body := fmt.Sprintf(
			"%s invites you to join the campaign \"%s\".<br><br>Follow <a href=\"%s\">this link</a> to join the party.",
			session.Name,
			campaign.Name,
			inviteURL,
		)
		if err := ctrl.sender.Send(address, subject, body); err != nil {
			flash.Set(c, "danger", "The invitation email could not be sent.")
			return c.Redirect(fmt.Sprintf("/campaigns/%s", campaign.Slug))
		}
		flash.Set(c, "success", fmt.Sprintf("Invitation sent to %s.", address))
		return c.Redirect(fmt.Sprintf("/campaigns/%s", campaign.Slug))
	}

	flash.Set(c, "success", "Invite link ready to share.")
	return c.Redirect(fmt.Sprintf("/campaigns/%s", campaign.Slug))
}

// DeactivateInvitation revokes the campaign's current join link. Links
// already shared stop working immediately.
func (ctrl *Controller) DeactivateInvitation(c *fiber.Ctx) error {
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

	if err := ctrl.invitations.Deactivate(campaign.ID); err != nil {
		return fiber.ErrInternalServerError
	}

	flash.Set(c, "success", "Invite link deactivated.")
	return c.Redirect(fmt.Sprintf("/campaigns/%s", campaign.Slug))
}
