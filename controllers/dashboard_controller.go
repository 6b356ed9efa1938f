package controllers

import (
	"painel-app/models"
	"painel-app/repositories"
	"painel-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {

	summary, err := repositories.NewDashboardRepository(c.DB).GetSummary()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Containers com overbooking aparecem destacados no painel
	var containers []models.Container
	if err := c.DB.Find(&containers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	quoteRepo := repositories.NewQuoteRepository(c.DB)

	type containerStatus struct {
		Container models.Container       `json:"container"`
		Load      services.ContainerLoad `json:"load"`
	}

	overbooked := []containerStatus{}
	for _, container := range containers {
		quotes, err := quoteRepo.ListByContainer(container.ID)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		load := services.ComputeContainerLoad(container, quotes)
		if load.OverCapacity {
			overbooked = append(overbooked, containerStatus{Container: container, Load: load})
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Dashboard found", "data": fiber.Map{
		"summary":    summary,
		"overbooked": overbooked,
	}})
}
