package routes

import (
	"painel-app/config"
	"painel-app/controllers"
	"painel-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupImportRoutes(app *fiber.App, db *gorm.DB) {
	importController := controllers.NewImportController(db)

	api := app.Group(config.MAIN_ROUTES+"/imports", middleware.AuthMiddleware)
	api.Get("/", importController.GetImports)
	api.Put("/:key", importController.UpsertImportMeta)
}
