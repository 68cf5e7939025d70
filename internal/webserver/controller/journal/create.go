package journal

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Create adds a journal entry to a character. If the character plays in a
// campaign the repository records the new entry in that campaign's feed.
func (ctrl *Controller) Create(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	character, err := ctrl.ownedCharacter(c.Params("uuid"), session)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if character == nil {
		return fiber.ErrNotFound
	}

	entry := model.JournalEntry{
		Uuid:        uuid.NewString(),
		CharacterID: character.ID,
		Title:       c.FormValue("title"),
		Content:     c.FormValue("content"),
	}

	if value, err := strconv.Atoi(c.FormValue("session")); err == nil {
		if linked := ctrl.linkableSession(character, uint(value)); linked != nil {
			entry.SessionID = &linked.ID
		}
	}

	if errs := entry.Validate(); len(errs) > 0 {
		sessions, err := ctrl.campaignSessions(character)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		return c.Render("journal/form", fiber.Map{
			"Title":     "New journal entry",
			"Session":   session,
			"Character": character,
			"Entry":     entry,
			"Sessions":  sessions,
			"Errors":    errs,
		}, "layout")
	}

	if err := ctrl.journal.Create(&entry, character); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/characters/%s/journal", character.Uuid))
}

// linkableSession resolves a posted session ID against the sessions of the
// character's campaign, ignoring anything outside it.
func (ctrl *Controller) linkableSession(character *model.PlayerCharacter, sessionID uint) *model.GameSession {
	sessions, err := ctrl.campaignSessions(character)
	if err != nil {
		return nil
	}
	for i := range sessions {
		if sessions[i].ID == sessionID {
			return &sessions[i]
		}
	}
	return nil
}
