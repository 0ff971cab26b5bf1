package api

import (
	"github.com/fitlogue/fitlogue/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

func getCreatorView(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("userId")
	if err != nil || targetID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "creator id must be a positive number")
	}

	view, err := srv.Composer.CreatorView(c.UserContext(), uint(targetID))
	if err != nil {
		return err
	}
	return exts.Respond(c, view)
}

func getCreatorMyPage(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	view, err := srv.Composer.CreatorMyPage(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return exts.Respond(c, view)
}
