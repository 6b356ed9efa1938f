package controllers

import (
	"errors"
	"painel-app/models"
	"painel-app/repositories"
	"painel-app/services"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ImportController lista os lotes de importação derivados (cotações
// agrupadas por minuto de criação) e mantém os metadados editáveis.
type ImportController struct {
	DB *gorm.DB
}

func NewImportController(DB *gorm.DB) *ImportController {
	return &ImportController{DB: DB}
}

type ImportBatch struct {
	ID            string         `json:"id"`
	ImportName    string         `json:"importName"`
	DataPedido    string         `json:"dataPedido"`
	LotePedido    string         `json:"lotePedido"`
	Count         int            `json:"count"`
	TotalAmount   float64        `json:"totalAmount"`
	SelectedCount int            `json:"selectedCount"`
	TotalCBM      float64        `json:"totalCBM"`
	Quotes        []models.Quote `json:"quotes"`
}

// GetImports devolve os lotes de uma fábrica, do mais recente para o mais
// antigo, já com metadados e rollup de cada lote.
func (c *ImportController) GetImports(ctx *fiber.Ctx) error {
	factoryID := ctx.QueryInt("factory_id")
	if factoryID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "factory_id is required"})
	}

	quoteRepo := repositories.NewQuoteRepository(c.DB)
	quotes, err := quoteRepo.ListByFactory(uint(factoryID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	groups := services.GroupByImportBatch(quotes)

	// Metadados persistidos na tabela lateral, casados pela chave
	var metas []models.ImportMeta
	if err := c.DB.Where("factory_id = ?", factoryID).Find(&metas).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	metaByKey := make(map[string]models.ImportMeta, len(metas))
	for _, m := range metas {
		metaByKey[m.ImportKey] = m
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	// Chave é prefixo ISO-8601, ordena cronologicamente; mais recente primeiro
	slices.SortFunc(keys, func(a, b string) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})

	batches := make([]ImportBatch, 0, len(keys))
	for _, key := range keys {
		members := groups[key]
		rollup := services.ComputeImportRollup(members, services.SelectedIDs(members))

		batch := ImportBatch{
			ID:            key,
			Count:         len(members),
			TotalAmount:   rollup.TotalAmount,
			SelectedCount: rollup.SelectedCount,
			TotalCBM:      rollup.TotalCBM,
			Quotes:        members,
		}
		if meta, ok := metaByKey[key]; ok {
			batch.ImportName = meta.ImportName
			batch.DataPedido = meta.DataPedido
			batch.LotePedido = meta.LotePedido
		}
		batches = append(batches, batch)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Imports found", "data": batches})
}

type ImportMetaInput struct {
	FactoryID  uint   `json:"factoryId"`
	ImportName string `json:"importName"`
	DataPedido string `json:"dataPedido"`
	LotePedido string `json:"lotePedido"`
}

// UpsertImportMeta renomeia um lote: grava os metadados na tabela lateral
// sob a chave fábrica + import_key. O lote derivado em si não muda.
func (c *ImportController) UpsertImportMeta(ctx *fiber.Ctx) error {
	importKey := ctx.Params("key")
	if importKey == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid import key"})
	}

	var input ImportMetaInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.FactoryID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "factoryId is required"})
	}

	userID := int(ctx.Locals("userID").(float64))

	var meta models.ImportMeta
	err := c.DB.Where("factory_id = ? AND import_key = ?", input.FactoryID, importKey).First(&meta).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		meta = models.ImportMeta{
			FactoryID: input.FactoryID,
			ImportKey: importKey,
		}
	}

	meta.ImportName = input.ImportName
	meta.DataPedido = input.DataPedido
	meta.LotePedido = input.LotePedido
	meta.UpdatedBy = userID

	if err := c.DB.Save(&meta).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Import metadata saved", "data": meta})
}
