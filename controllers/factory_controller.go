package controllers

import (
	"errors"
	"painel-app/models"
	"painel-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FactoryController struct {
	DB *gorm.DB
}

func NewFactoryController(DB *gorm.DB) *FactoryController {
	return &FactoryController{DB: DB}
}

type FactoryInput struct {
	NomeFabrica string `json:"nomeFabrica" validate:"required,min=2"`
	Localizacao string `json:"localizacao"`
	Segmento    string `json:"segmento"`
	Contato     string `json:"contato"`
	Email       string `json:"email" validate:"omitempty,email"`
	Telefone    string `json:"telefone"`
	Status      string `json:"status" validate:"omitempty,oneof=ativa inativa manutencao"`
}

func (c *FactoryController) CreateFactory(ctx *fiber.Ctx) error {
	var input FactoryInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Status == "" {
		input.Status = models.FactoryStatusAtiva
	}

	factory := models.Factory{
		NomeFabrica: input.NomeFabrica,
		Localizacao: input.Localizacao,
		Segmento:    input.Segmento,
		Contato:     input.Contato,
		Email:       input.Email,
		Telefone:    input.Telefone,
		Status:      input.Status,
		CreatedBy:   int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&factory).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Factory created successfully", "data": factory})
}

func (c *FactoryController) GetAllFactories(ctx *fiber.Ctx) error {
	var factories []models.Factory
	query := c.DB.Model(&models.Factory{})

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("nome_fabrica ASC").Find(&factories).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Factories found", "data": factories})
}

func (c *FactoryController) GetFactoryByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var factory models.Factory
	if err := c.DB.First(&factory, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Factory not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Totais brutos da fábrica acompanham o detalhe
	totals, err := repositories.NewQuoteRepository(c.DB).GetFactoryTotals(factory.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Factory found", "data": fiber.Map{
		"factory": factory,
		"totals":  totals,
	}})
}

func (c *FactoryController) UpdateFactory(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input FactoryInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var factory models.Factory
	if err := c.DB.First(&factory, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Factory not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	factory.NomeFabrica = input.NomeFabrica
	factory.Localizacao = input.Localizacao
	factory.Segmento = input.Segmento
	factory.Contato = input.Contato
	factory.Email = input.Email
	factory.Telefone = input.Telefone
	if input.Status != "" {
		factory.Status = input.Status
	}
	factory.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&factory).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Factory updated successfully", "data": factory})
}

func (c *FactoryController) DeleteFactory(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var factory models.Factory
	if err := c.DB.First(&factory, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Factory not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	factory.DeletedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&factory).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// As cotações sobrevivem: referência fraca, sem cascade
	if err := c.DB.Delete(&factory).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Factory deleted successfully", "data": factory})
}
