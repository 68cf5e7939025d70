package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// New renders the sign up form
func (u *Controller) New(c *fiber.Ctx) error {
	return c.Render("user/signup", fiber.Map{
		"Title":             "Sign up",
		"MinPasswordLength": u.config.MinPasswordLength,
		"UsernamePattern":   model.UsernamePattern,
		"User":              model.User{},
		"Errors":            map[string]string{},
	}, "layout")
}
