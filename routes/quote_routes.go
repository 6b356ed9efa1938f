package routes

import (
	"painel-app/config"
	"painel-app/controllers"
	"painel-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupQuoteRoutes(app *fiber.App, db *gorm.DB) {
	quoteController := controllers.NewQuoteController(db)

	api := app.Group(config.MAIN_ROUTES+"/quotes", middleware.AuthMiddleware)
	api.Post("/upload-excel", quoteController.CreateQuotesFromExcel)
	api.Post("/export", quoteController.ExportQuotes)
	api.Post("/", quoteController.CreateQuote)
	api.Get("/", quoteController.GetQuotes)
	api.Get("/:id", quoteController.GetQuoteByID)
	api.Put("/:id/select", quoteController.ToggleSelected)
	api.Put("/:id/container", quoteController.AssignContainer)
	api.Put("/:id", quoteController.UpdateQuote)
	api.Delete("/:id", quoteController.DeleteQuote)
}
