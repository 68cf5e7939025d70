package gamesession

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/flash"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// PostMessage adds a message to the session's chat.
func (ctrl *Controller) PostMessage(c *fiber.Ctx) error {
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

	message := model.ChatMessage{
		SessionID: gameSession.ID,
		UserID:    session.ID,
		Message:   c.FormValue("message"),
	}

	if errs := message.Validate(); len(errs) > 0 {
		flash.Set(c, "danger", errs["message"])
		return c.Redirect(fmt.Sprintf("/campaigns/%s/sessions/%d", campaign.Slug, gameSession.SessionNumber))
	}

	if err := ctrl.chat.Create(&message); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/campaigns/%s/sessions/%d", campaign.Slug, gameSession.SessionNumber))
}
