package gamesession

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// RSVP toggles the signed-in user's attendance for a session. Posting the
// status the user already holds clears it.
func (ctrl *Controller) RSVP(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	campaign, err := ctrl.memberCampaign(c, session)
	if err != nil {
		return err
	}

	number, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	gameSession, err := ctrl.sessions.FindByNumber(campaign.ID, uint(number))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if gameSession == nil {
		return fiber.ErrNotFound
	}

	status := c.FormValue("status")
	if status != model.RSVPAttending && status != model.RSVPBusy {
		return fiber.ErrBadRequest
	}

	if err := ctrl.sessions.SetRSVP(gameSession.ID, session.ID, status); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/campaigns/%s/sessions/%d", campaign.Slug, gameSession.SessionNumber))
}
