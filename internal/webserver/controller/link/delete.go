package link

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/quillon/partyfolk/internal/webserver/model"
)

// Delete removes a helpful link. Only links belonging to a campaign run by
// the signed-in user can be deleted; anything else answers not found.
func (ctrl *Controller) Delete(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	link, err := ctrl.links.FindOwnedBy(uint(id), session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if link == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Link not found",
		})
	}

	if err := ctrl.links.Delete(link); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"message": "Link deleted successfully.",
	})
}
