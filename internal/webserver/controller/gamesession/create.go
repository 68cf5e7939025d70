package gamesession

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/flash"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Create proposes a new session. The proposer is automatically marked as
// attending and the session gets the next free number in the campaign.
func (ctrl *Controller) Create(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	campaign, err := ctrl.memberCampaign(c, session)
	if err != nil {
		return err
	}

	proposerID := session.ID
	gameSession := model.GameSession{
		CampaignID: campaign.ID,
		ProposerID: &proposerID,
		Notes:      c.FormValue("notes"),
	}

	if date, err := time.Parse(proposedDateFormat, c.FormValue("proposed-date")); err == nil {
		gameSession.ProposedDate = date
	}

	if value, err := strconv.Atoi(c.FormValue("duration")); err == nil {
		gameSession.Duration = uint(value)
	}

	if errs := gameSession.Validate(); len(errs) > 0 {
		return c.Render("session/form", fiber.Map{
			"Title":       "Propose a session",
			"Session":     session,
			"Campaign":    campaign,
			"GameSession": gameSession,
			"Errors":      errs,
		}, "layout")
	}

	if err := ctrl.sessions.Create(&gameSession); err != nil {
		if errors.Is(err, model.ErrSessionNumberConflict) {
			flash.Set(c, "danger", "Could not number the session, please try again.")
			return c.Redirect(fmt.Sprintf("/campaigns/%s", campaign.Slug))
		}
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/campaigns/%s/sessions/%d", campaign.Slug, gameSession.SessionNumber))
}
