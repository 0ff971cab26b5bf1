package api

import (
	"strings"

	"github.com/fitlogue/fitlogue/pkg/internal/security"
	"github.com/gofiber/fiber/v2"
)

// authRequired resolves the caller's identity from the bearer token before
// any service runs. Everything downstream receives the user id explicitly;
// no session state is kept.
func authRequired(c *fiber.Ctx) error {
	token := c.Cookies("auth_token")
	if header := c.Get(fiber.HeaderAuthorization); len(header) > 0 {
		token = strings.TrimPrefix(header, "Bearer ")
	}
	if len(token) == 0 {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	userID, err := security.ParseToken(token)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	c.Locals("userId", userID)
	return c.Next()
}
