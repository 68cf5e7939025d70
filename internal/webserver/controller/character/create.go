package character

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Create gathers information coming from the new character form and creates
// a new character owned by the signed-in user.
func (ctrl *Controller) Create(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	character := model.PlayerCharacter{
		Uuid:   uuid.NewString(),
		UserID: session.ID,
		Name:   c.FormValue("name"),
		Race:   c.FormValue("race"),
		Class:  c.FormValue("class"),
		Level:  1,
		Bio:    c.FormValue("bio"),
	}

	if value, err := strconv.Atoi(c.FormValue("level")); err == nil {
		character.Level = uint(value)
	}

	if err := ctrl.assignCampaign(&character, c.FormValue("campaign"), session.ID); err != nil {
		return err
	}

	if errs := character.Validate(); len(errs) > 0 {
		campaigns, err := ctrl.campaigns.JoinedBy(session.ID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		return c.Render("character/form", fiber.Map{
			"Title":     "New character",
			"Session":   session,
			"Character": character,
			"Campaigns": campaigns,
			"Errors":    errs,
		}, "layout")
	}

	if err := ctrl.characters.Create(&character); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/characters/%s", character.Uuid))
}

// assignCampaign attaches the character to one of the campaigns the owner
// plays in, or detaches it when no campaign is picked.
func (ctrl *Controller) assignCampaign(character *model.PlayerCharacter, campaignUuid string, userID uint) error {
	character.CampaignID = nil
	character.Campaign = nil

	if campaignUuid == "" {
		return nil
	}

	campaign, err := ctrl.campaigns.FindByUuid(campaignUuid)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if campaign == nil {
		return nil
	}

	joined, err := ctrl.campaigns.JoinedBy(userID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	for _, candidate := range joined {
		if candidate.ID == campaign.ID {
			character.CampaignID = &campaign.ID
			return nil
		}
	}

	return nil
}
