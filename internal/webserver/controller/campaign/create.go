package campaign

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Create gathers information coming from the new campaign form and creates
// a new campaign run by the signed-in user.
func (ctrl *Controller) Create(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	campaign := model.Campaign{
		Uuid:            uuid.NewString(),
		Name:            c.FormValue("name"),
		Description:     c.FormValue("description"),
		MaxPlayers:      model.DefaultMaxPlayers,
		DungeonMasterID: session.ID,
		VttLink:         c.FormValue("vtt-link"),
		VideoLink:       c.FormValue("video-link"),
	}

	if value, err := strconv.Atoi(c.FormValue("max-players")); err == nil {
		campaign.MaxPlayers = uint(value)
	}

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
			"Title":    "New campaign",
			"Session":  session,
			"Campaign": campaign,
			"Systems":  systems,
			"Errors":   errs,
		}, "layout")
	}

	if err := ctrl.campaigns.Create(&campaign); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/campaigns/%s", campaign.Slug))
}
