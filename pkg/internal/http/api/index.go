package api

import (
	"github.com/fitlogue/fitlogue/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

var srv *services.Set

func MapAPIs(app *fiber.App, baseURL string, set *services.Set) {
	srv = set

	api := app.Group(baseURL)
	{
		accounts := api.Group("/accounts")
		{
			accounts.Post("/", doJoin)
			accounts.Post("/token", doLogin)

			me := accounts.Group("/me", authRequired)
			{
				me.Get("/", getProfilePage)
				me.Get("/settings", getSettingPage)
				me.Get("/apply", getCreatorApplyPage)
				me.Post("/apply", submitCreatorApplication)
				me.Get("/my-page", getUserMyPage)
			}
		}

		creators := api.Group("/creators")
		{
			creators.Get("/me", authRequired, getCreatorMyPage)
			creators.Get("/:userId", getCreatorView)
		}

		codis := api.Group("/codis")
		{
			codis.Get("/:codiId", getCodi)
			codis.Post("/", authRequired, createCodi)
		}

		api.Get("/search", searchCatalog)

		orders := api.Group("/orders", authRequired)
		{
			orders.Get("/", getOrderPage)
			orders.Post("/", placeOrder)
		}
	}
}
