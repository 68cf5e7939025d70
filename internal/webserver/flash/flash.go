// Package flash implements one-shot messages shown on the next rendered page
// after a redirect, stored in a short-lived cookie.
package flash

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const cookieName = "partyfolk_flash"

// Message is a pending notice with an alert level. Levels follow the usual
// alert naming: success, info, warning, danger.
type Message struct {
	Level   string
	Content string
}

// Set stores a one-shot message to be picked up by Read on the next request.
func Set(c *fiber.Ctx, level, content string) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(level + "|" + content),
		Path:     "/",
		Expires:  time.Now().Add(time.Minute),
		HTTPOnly: true,
	})
}

// Read consumes the flash cookie, if any, and exposes its content to
// templates through the request's locals.
func Read(c *fiber.Ctx) error {
	raw := c.Cookies(cookieName)
	if raw == "" {
		return c.Next()
	}
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return c.Next()
	}
	level, content, found := strings.Cut(decoded, "|")
	if !found {
		return c.Next()
	}
	c.Locals("Flash", Message{Level: level, Content: content})
	return c.Next()
}
