package routes

import (
	"racetrack-licensing-api/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// formRoutes wires the form lifecycle endpoints.
func formRoutes(router fiber.Router, fc *controllers.FormController) {
	forms := router.Group("/forms")

	forms.Post("/", fc.CreateForm)
	forms.Get("/", fc.GetAllForms)
	forms.Get("/:id", fc.GetFormByID)
	forms.Put("/:id", fc.UpdateForm)
	forms.Patch("/:id", fc.UpdateForm)
	forms.Post("/:id/submit", fc.SubmitForm)
	forms.Delete("/:id", fc.DeleteForm)
}
