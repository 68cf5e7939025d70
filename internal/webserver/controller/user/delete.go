package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/flash"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Delete removes the signed-in user's account. Dungeon masters have to
// transfer or remove their campaigns first.
func (u *Controller) Delete(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	if err := u.repository.Delete(session.Uuid); err != nil {
		if errors.Is(err, model.ErrOwnsCampaigns) {
			flash.Set(c, "danger", "You cannot delete your account while you are running campaigns.")
			return c.Redirect("/campaigns/managed")
		}
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{
		Name:     u.config.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   false,
		HTTPOnly: true,
	})

	return c.Redirect("/")
}
