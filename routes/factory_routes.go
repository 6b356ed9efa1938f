package routes

import (
	"painel-app/config"
	"painel-app/controllers"
	"painel-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupFactoryRoutes(app *fiber.App, db *gorm.DB) {
	factoryController := controllers.NewFactoryController(db)

	api := app.Group(config.MAIN_ROUTES+"/factories", middleware.AuthMiddleware)
	api.Post("/", factoryController.CreateFactory)
	api.Get("/", factoryController.GetAllFactories)
	api.Get("/:id", factoryController.GetFactoryByID)
	api.Put("/:id", factoryController.UpdateFactory)
	api.Delete("/:id", factoryController.DeleteFactory)
}
