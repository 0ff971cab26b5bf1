package api

import (
	"github.com/fitlogue/fitlogue/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

// searchCatalog is public. An absent or empty keyword means the full
// catalog, not an empty filter.
func searchCatalog(c *fiber.Ctx) error {
	keyword := c.Query("keyword")

	view, err := srv.Composer.SearchPage(c.UserContext(), keyword)
	if err != nil {
		return err
	}
	return exts.Respond(c, view)
}
