package controllers

import (
	"errors"
	"fmt"
	"painel-app/models"
	"painel-app/repositories"
	"painel-app/services"
	"painel-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ContainerController struct {
	DB *gorm.DB
}

func NewContainerController(DB *gorm.DB) *ContainerController {
	return &ContainerController{DB: DB}
}

type ContainerInput struct {
	Nome          string  `json:"nome" validate:"required,min=2"`
	Numero        string  `json:"numero"`
	RefContainer  string  `json:"refContainer"`
	CapacidadeCBM float64 `json:"capacidadeCBM" validate:"gte=0"`
	Status        string  `json:"status" validate:"omitempty,oneof=fabricacao embarcado em_liberacao nacionalizado"`
}

func (c *ContainerController) CreateContainer(ctx *fiber.Ctx) error {
	var input ContainerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Status == "" {
		input.Status = models.ContainerStatusFabricacao
	}

	container := models.Container{
		Nome:          input.Nome,
		Numero:        input.Numero,
		RefContainer:  input.RefContainer,
		CapacidadeCBM: input.CapacidadeCBM,
		Status:        input.Status,
		CreatedBy:     int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&container).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Container created successfully", "data": container})
}

func (c *ContainerController) GetAllContainers(ctx *fiber.Ctx) error {
	var containers []models.Container
	query := c.DB.Model(&models.Container{})

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("created_at DESC").Find(&containers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Containers found", "data": containers})
}

func (c *ContainerController) GetContainerByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var container models.Container
	if err := c.DB.First(&container, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Container not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Container found", "data": container})
}

// GetContainerLoad calcula a ocupação do container sobre todas as cotações
// associadas. Capacidade restante negativa volta como dado + flag, nunca
// como erro; o alerta por email é melhor esforço.
func (c *ContainerController) GetContainerLoad(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var container models.Container
	if err := c.DB.First(&container, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Container not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	quoteRepo := repositories.NewQuoteRepository(c.DB)
	quotes, err := quoteRepo.ListByContainer(container.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	load := services.ComputeContainerLoad(container, quotes)

	if load.OverCapacity {
		go func(container models.Container, load services.ContainerLoad) {
			if err := utils.SendCapacityAlert(container, load); err != nil {
				fmt.Println("Warning: failed to send capacity alert:", err)
			}
		}(container, load)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Container load computed", "data": fiber.Map{
		"container": container,
		"load":      load,
		"quotes":    quotes,
	}})
}

func (c *ContainerController) UpdateContainer(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input ContainerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var container models.Container
	if err := c.DB.First(&container, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Container not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	container.Nome = input.Nome
	container.Numero = input.Numero
	container.RefContainer = input.RefContainer
	container.CapacidadeCBM = input.CapacidadeCBM
	if input.Status != "" {
		container.Status = input.Status
	}
	container.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&container).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Container updated successfully", "data": container})
}

// UpdateStatus troca o rótulo de status. Qualquer transição é válida.
func (c *ContainerController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Status string `json:"status" validate:"required,oneof=fabricacao embarcado em_liberacao nacionalizado"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var container models.Container
	if err := c.DB.First(&container, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Container not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	container.Status = input.Status
	container.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&container).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Container status updated", "data": container})
}

func (c *ContainerController) DeleteContainer(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var container models.Container
	if err := c.DB.First(&container, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Container not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	// Sem cascade: as cotações sobrevivem com containerId limpo
	if err := c.DB.Model(&models.Quote{}).Where("container_id = ?", container.ID).Updates(map[string]interface{}{
		"container_id": nil,
		"updated_by":   userID,
	}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	container.DeletedBy = userID

	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&container).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&container).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Container deleted successfully", "data": container})
}
