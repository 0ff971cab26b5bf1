package api

import (
	"github.com/fitlogue/fitlogue/pkg/internal/http/exts"
	"github.com/fitlogue/fitlogue/pkg/internal/models"
	"github.com/fitlogue/fitlogue/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func getOrderPage(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	lines, err := srv.Orders.ListHistory(c.UserContext(), userID)
	if err != nil {
		return err
	}
	total, err := srv.Orders.TotalOrderedQuantity(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return exts.Respond(c, fiber.Map{
		"lines":                  lines,
		"total_ordered_quantity": total,
	})
}

type orderLineData struct {
	ItemsID  uint `json:"items_id" validate:"required"`
	Quantity int  `json:"quantity" validate:"required,gt=0"`
}

func placeOrder(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var data struct {
		Lines   []orderLineData `json:"lines" validate:"required,min=1,dive"`
		Address struct {
			Receiver      string `json:"receiver" validate:"required,max=64"`
			Phone         string `json:"phone" validate:"required,max=32"`
			Address       string `json:"address" validate:"required,max=256"`
			AddressDetail string `json:"address_detail" validate:"max=256"`
			ZipCode       string `json:"zip_code" validate:"required,max=16"`
			Message       string `json:"message" validate:"max=256"`
		} `json:"address"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	order, err := srv.Orders.PlaceOrder(c.UserContext(), userID, services.PlaceOrderRequest{
		Lines: lo.Map(data.Lines, func(line orderLineData, index int) services.OrderLine {
			return services.OrderLine{
				ItemsID:  line.ItemsID,
				Quantity: line.Quantity,
			}
		}),
		Address: models.ShippingAddress{
			Receiver:      data.Address.Receiver,
			Phone:         data.Address.Phone,
			Address:       data.Address.Address,
			AddressDetail: data.Address.AddressDetail,
			ZipCode:       data.Address.ZipCode,
			Message:       data.Address.Message,
		},
	})
	if err != nil {
		return err
	}

	return exts.Respond(c, order)
}
