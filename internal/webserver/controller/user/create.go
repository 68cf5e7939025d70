package user

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/quillon/partyfolk/internal/webserver/controller/auth"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Create gathers information coming from the sign up form, creates the user
// and signs them in right away.
func (u *Controller) Create(c *fiber.Ctx) error {
	user := model.User{
		Name:     c.FormValue("name"),
		Username: strings.ToLower(c.FormValue("username")),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Role:     model.RoleRegular,
		Uuid:     uuid.NewString(),
	}

	errs := user.Validate(u.config.MinPasswordLength)
	if exist, _ := u.repository.FindByEmail(user.Email); exist != nil {
		errs["email"] = "A user with this email address already exists"
	}

	if exist, _ := u.repository.FindByUsername(user.Username); exist != nil {
		errs["username"] = "A user with this username already exists"
	}

	if errs = user.ConfirmPassword(c.FormValue("confirm-password"), u.config.MinPasswordLength, errs); len(errs) > 0 {
		return c.Render("user/signup", fiber.Map{
			"Title":             "Sign up",
			"MinPasswordLength": u.config.MinPasswordLength,
			"UsernamePattern":   model.UsernamePattern,
			"Errors":            errs,
			"User":              user,
		}, "layout")
	}

	user.Password = model.Hash(user.Password)
	if err := u.repository.Create(&user); err != nil {
		return fiber.ErrInternalServerError
	}

	expiration := time.Now().Add(u.config.SessionTimeout)
	signedToken, err := auth.GenerateToken(&user, expiration, u.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{
		Name:     u.config.CookieName,
		Value:    signedToken,
		Path:     "/",
		Expires:  expiration,
		Secure:   false,
		HTTPOnly: true,
	})

	return c.Redirect("/campaigns")
}
