package routes

import (
	"Evaluation-System/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App, evaluation *controllers.EvaluationController) {
	api := app.Group("/api")
	evaluationRoutes(api, evaluation)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
