package routes

import (
	"painel-app/config"
	"painel-app/controllers"
	"painel-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupContainerRoutes(app *fiber.App, db *gorm.DB) {
	containerController := controllers.NewContainerController(db)

	api := app.Group(config.MAIN_ROUTES+"/containers", middleware.AuthMiddleware)
	api.Post("/", containerController.CreateContainer)
	api.Get("/", containerController.GetAllContainers)
	api.Get("/:id/load", containerController.GetContainerLoad)
	api.Get("/:id", containerController.GetContainerByID)
	api.Put("/:id/status", containerController.UpdateStatus)
	api.Put("/:id", containerController.UpdateContainer)
	api.Delete("/:id", containerController.DeleteContainer)
}
