package campaign

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Detail renders the campaign page: party roster, sessions, helpful links
// and the latest feed activity. Only the dungeon master and the party
// members may see it.
func (ctrl *Controller) Detail(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	campaign, err := ctrl.campaigns.FindBySlug(c.Params("slug"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if campaign == nil {
		return fiber.ErrNotFound
	}

	isDungeonMaster := campaign.DungeonMasterID == session.ID
	if !isDungeonMaster {
		isPlayer, err := ctrl.campaigns.IsPlayer(campaign.ID, session.ID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		if !isPlayer {
			return fiber.ErrForbidden
		}
	}

	players, err := ctrl.campaigns.Players(campaign.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	characters, err := ctrl.characters.ByCampaign(campaign.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	sessions, err := ctrl.sessions.ByCampaign(campaign.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	links, err := ctrl.links.ByCampaign(campaign.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	feed, err := ctrl.feed.Latest(campaign.ID, feedPageSize)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	data := fiber.Map{
		"Title":           campaign.Name,
		"Session":         session,
		"Campaign":        campaign,
		"IsDungeonMaster": isDungeonMaster,
		"Players":         players,
		"Characters":      characters,
		"Sessions":        sessions,
		"Links":           links,
		"MaxLinks":        model.MaxHelpfulLinks,
		"Feed":            feed,
		"Flash":           c.Locals("Flash"),
	}

	if isDungeonMaster {
		invitation, err := ctrl.invitations.ActiveByCampaign(campaign.ID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		if invitation != nil {
			data["InviteURL"] = fmt.Sprintf("%s/join/%s", ctrl.config.FQDN, invitation.Token)
		}
	}

	return c.Render("campaign/detail", data, "layout")
}
