package routes

import (
	"racetrack-licensing-api/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App, fc *controllers.FormController) {
	formRoutes(app, fc)

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})
}
