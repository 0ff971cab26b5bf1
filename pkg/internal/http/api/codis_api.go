package api

import (
	"github.com/fitlogue/fitlogue/pkg/internal/http/exts"
	"github.com/fitlogue/fitlogue/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func getCodi(c *fiber.Ctx) error {
	codiID, err := c.ParamsInt("codiId")
	if err != nil || codiID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "codi id must be a positive number")
	}

	codi, err := srv.Codis.Get(c.UserContext(), uint(codiID))
	if err != nil {
		return err
	}
	return exts.Respond(c, codi)
}

type codiLinkData struct {
	ItemsID      uint `json:"items_id" validate:"required"`
	DisplayOrder int  `json:"display_order"`
}

func createCodi(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var data struct {
		Title       string         `json:"title" validate:"required,max=256"`
		Description string         `json:"description" validate:"max=4096"`
		Photos      []string       `json:"photos" validate:"required,min=1"`
		Links       []codiLinkData `json:"links"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	codi, err := srv.Codis.Create(c.UserContext(), userID, services.CodiDraft{
		Title:       data.Title,
		Description: data.Description,
		Photos:      data.Photos,
		Links: lo.Map(data.Links, func(link codiLinkData, index int) services.CodiItemLink {
			return services.CodiItemLink{
				ItemsID:      link.ItemsID,
				DisplayOrder: link.DisplayOrder,
			}
		}),
	})
	if err != nil {
		return err
	}

	return exts.Respond(c, codi)
}
