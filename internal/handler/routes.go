package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the quiz API under basePath and the health probe at
// the root.
func RegisterRoutes(app *fiber.App, basePath string, h *QuizHandler) {
	app.Get("/healthz", h.Health)

	api := app.Group(basePath)
	api.Post("/generate-quiz", h.GenerateQuiz)
	api.Post("/export-docx", h.ExportDocx)
	api.Get("/stats", h.Stats)
}
