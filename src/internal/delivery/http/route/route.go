package route

import (
	"payout-service/src/internal/delivery/http"
	"payout-service/src/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App              *fiber.App
	PayoutController *http.PayoutController
	AuthMiddleware   fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupPayoutRoute()
}

func (c *RouteConfig) SetupPayoutRoute() {
	c.App.Use(c.AuthMiddleware)
	c.App.Post("/payouts/v1/:orderId/process", c.PayoutController.ProcessPayout)
	c.App.Post("/payouts/v1/:orderId/test", c.PayoutController.TestPayout)
	c.App.Post("/payouts/v1/:orderId/enqueue", c.PayoutController.EnqueuePayout)
	c.App.Get("/payouts/v1/:orderId/transactions", c.PayoutController.ListTransactions)
}
