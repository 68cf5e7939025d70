package gamesession

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Update applies the session update form. Posting a recap for the first time
// is recorded in the campaign's feed by the repository.
func (ctrl *Controller) Update(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	campaign, err := ctrl.memberCampaign(c, session)
	if err != nil {
		return err
	}
	if campaign.DungeonMasterID != session.ID {
		return fiber.ErrForbidden
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

	if date, err := time.Parse(proposedDateFormat, c.FormValue("proposed-date")); err == nil {
		gameSession.ProposedDate = date
	}

	if value, err := strconv.Atoi(c.FormValue("duration")); err == nil {
		gameSession.Duration = uint(value)
	}

	gameSession.Notes = c.FormValue("notes")
	gameSession.Recap = c.FormValue("recap")

	if errs := gameSession.Validate(); len(errs) > 0 {
		return c.Render("session/edit", fiber.Map{
			"Title":       "Edit session",
			"Session":     session,
			"Campaign":    campaign,
			"GameSession": gameSession,
			"Errors":      errs,
		}, "layout")
	}

	if err := ctrl.sessions.Update(gameSession); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/campaigns/%s/sessions/%d", campaign.Slug, gameSession.SessionNumber))
}
