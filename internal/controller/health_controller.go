package controller

import (
	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(app *fiber.App)
	Check(ctx *fiber.Ctx) error
}

type healthController struct{}

func NewHealthController() IHealthController {
	return &healthController{}
}

func (c *healthController) RegisterRoutes(app *fiber.App) {
	app.Get("/health", c.Check)
}

// Check reports process liveness only. It must stay independent of the
// upstream services so the platform health monitor never flaps with them.
func (c *healthController) Check(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status": "healthy",
	})
}
