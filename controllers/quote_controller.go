package controllers

import (
	"errors"
	"fmt"
	"painel-app/models"
	"painel-app/services"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type QuoteController struct {
	DB *gorm.DB
}

func NewQuoteController(DB *gorm.DB) *QuoteController {
	return &QuoteController{DB: DB}
}

type QuoteInput struct {
	FactoryID   uint    `json:"factoryId" validate:"required"`
	Ref         string  `json:"ref"`
	Description string  `json:"description"`
	Name        string  `json:"name"`
	Ncm         string  `json:"ncm"`
	Ctns        float64 `json:"ctns" validate:"gte=0"`
	UnitCtn     float64 `json:"unitCtn" validate:"gte=0"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
	Cbm         float64 `json:"cbm" validate:"gte=0"`
	GrossWeight float64 `json:"grossWeight" validate:"gte=0"`
	NetWeight   float64 `json:"netWeight" validate:"gte=0"`
}

func (c *QuoteController) CreateQuote(ctx *fiber.Ctx) error {
	var input QuoteInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var factory models.Factory
	if err := c.DB.First(&factory, input.FactoryID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Factory not found"})
	}

	quote := models.Quote{
		FactoryID:   input.FactoryID,
		Ref:         input.Ref,
		Description: input.Description,
		Name:        input.Name,
		Ncm:         input.Ncm,
		Ctns:        input.Ctns,
		UnitCtn:     input.UnitCtn,
		UnitPrice:   input.UnitPrice,
		Cbm:         input.Cbm,
		GrossWeight: input.GrossWeight,
		NetWeight:   input.NetWeight,
		CreatedBy:   int(ctx.Locals("userID").(float64)),
	}

	// qty, amount e cbmTotal nunca vêm do cliente
	services.RecomputeDerivedFields(&quote)

	if err := c.DB.Create(&quote).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Quote created successfully", "data": quote})
}

func (c *QuoteController) GetQuotes(ctx *fiber.Ctx) error {
	var quotes []models.Quote
	query := c.DB.Model(&models.Quote{})

	if factoryID := ctx.QueryInt("factory_id"); factoryID > 0 {
		query = query.Where("factory_id = ?", factoryID)
	}
	if containerID := ctx.QueryInt("container_id"); containerID > 0 {
		query = query.Where("container_id = ?", containerID)
	}
	if ctx.Query("selected") == "true" {
		query = query.Where("selected_for_order = ?", true)
	}

	if err := query.Order("created_at DESC").Find(&quotes).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Quotes found", "data": quotes})
}

func (c *QuoteController) GetQuoteByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var quote models.Quote
	if err := c.DB.First(&quote, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quote not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Quote found", "data": quote})
}

func (c *QuoteController) UpdateQuote(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input QuoteInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var quote models.Quote
	if err := c.DB.First(&quote, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quote not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	quote.FactoryID = input.FactoryID
	quote.Ref = input.Ref
	quote.Description = input.Description
	quote.Name = input.Name
	quote.Ncm = input.Ncm
	quote.Ctns = input.Ctns
	quote.UnitCtn = input.UnitCtn
	quote.UnitPrice = input.UnitPrice
	quote.Cbm = input.Cbm
	quote.GrossWeight = input.GrossWeight
	quote.NetWeight = input.NetWeight
	quote.UpdatedBy = int(ctx.Locals("userID").(float64))

	// Todo edit de ctns/unitCtn/unitPrice/cbm recalcula os derivados
	services.RecomputeDerivedFields(&quote)

	if err := c.DB.Save(&quote).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Quote updated successfully", "data": quote})
}

func (c *QuoteController) DeleteQuote(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var quote models.Quote
	if err := c.DB.First(&quote, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quote not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	quote.DeletedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&quote).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&quote).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Quote deleted successfully", "data": quote})
}

// ToggleSelected marca/desmarca a cotação para o pedido corrente.
func (c *QuoteController) ToggleSelected(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		SelectedForOrder bool `json:"selectedForOrder"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var quote models.Quote
	if err := c.DB.First(&quote, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quote not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	quote.SelectedForOrder = input.SelectedForOrder
	quote.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&quote).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Quote selection updated", "data": quote})
}

// AssignContainer vincula (ou desvincula, com containerId null) a cotação a
// um container. Overbooking não é bloqueado aqui; o endpoint de load sinaliza.
func (c *QuoteController) AssignContainer(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		ContainerID *uint `json:"containerId"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var quote models.Quote
	if err := c.DB.First(&quote, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quote not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if input.ContainerID != nil {
		var container models.Container
		if err := c.DB.First(&container, *input.ContainerID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Container not found"})
		}
	}

	quote.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Model(&quote).Select("container_id", "updated_by").Updates(map[string]interface{}{
		"container_id": input.ContainerID,
		"updated_by":   quote.UpdatedBy,
	}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	quote.ContainerID = input.ContainerID

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Quote container updated", "data": quote})
}

// upload de planilha de cotação do fornecedor

type QuoteUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	ErrorCount    int      `json:"error_count"`
	ImportKey     string   `json:"import_key"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateQuotesFromExcel processa uma planilha de preços. Todas as linhas do
// upload recebem o mesmo createdAt, então viram um único lote de importação.
// Colunas esperadas: REF, DESCRIPTION, NAME, NCM, CTNS, UNIT/CTN, U.PRICE,
// CBM, G.W., N.W.
func (c *QuoteController) CreateQuotesFromExcel(ctx *fiber.Ctx) error {
	factoryID := ctx.QueryInt("factory_id")
	if factoryID <= 0 {
		// também aceito como campo do form
		factoryID = services.CoerceNumericInt(ctx.FormValue("factory_id"), 0)
	}
	if factoryID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "factory_id is required",
		})
	}

	var factory models.Factory
	if err := c.DB.First(&factory, factoryID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Factory not found",
		})
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	// Um upload = um lote: todas as linhas compartilham o mesmo instante
	importedAt := time.Now()

	result := QuoteUploadResult{
		TotalRows:     len(rows) - 1,
		ImportKey:     services.ImportKey(importedAt),
		ErrorMessages: []string{},
	}

	userID := int(ctx.Locals("userID").(float64))

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for i, row := range rows[1:] {
		rowNum := i + 2 // linha no Excel (header é a linha 1)

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		if len(row) < 7 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Insufficient columns (expected at least 7)", rowNum))
			continue
		}

		cell := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		quote := models.Quote{
			FactoryID:   uint(factoryID),
			Ref:         strings.ToUpper(cell(0)),
			Description: cell(1),
			Name:        cell(2),
			Ncm:         cell(3),
			Ctns:        services.CoerceNumeric(cell(4), 0),
			UnitCtn:     services.CoerceNumeric(cell(5), 0),
			UnitPrice:   services.CoerceNumeric(cell(6), 0),
			Cbm:         services.CoerceNumeric(cell(7), 0),
			GrossWeight: services.CoerceNumeric(cell(8), 0),
			NetWeight:   services.CoerceNumeric(cell(9), 0),
			CreatedAt:   importedAt,
			CreatedBy:   userID,
		}

		services.RecomputeDerivedFields(&quote)

		if err := tx.Create(&quote).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Failed to create quote - %s", rowNum, err.Error()))
			continue
		}

		result.SuccessCount++
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to commit transaction",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Upload completed: %d success, %d errors",
			result.SuccessCount, result.ErrorCount),
		"data": result,
	})
}

// ExportQuotes gera um xlsx com as cotações de uma fábrica.
func (c *QuoteController) ExportQuotes(ctx *fiber.Ctx) error {
	type ExportRequest struct {
		FactoryID    uint `json:"factory_id"`
		OnlySelected bool `json:"only_selected"`
	}

	var req ExportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	var quotes []models.Quote
	query := c.DB.Model(&models.Quote{})
	if req.FactoryID > 0 {
		query = query.Where("factory_id = ?", req.FactoryID)
	}
	if req.OnlySelected {
		query = query.Where("selected_for_order = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&quotes).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "REF")
	f.SetCellValue(sheet, "B1", "DESCRIPTION")
	f.SetCellValue(sheet, "C1", "NAME")
	f.SetCellValue(sheet, "D1", "NCM")
	f.SetCellValue(sheet, "E1", "CTNS")
	f.SetCellValue(sheet, "F1", "UNIT/CTN")
	f.SetCellValue(sheet, "G1", "QTY")
	f.SetCellValue(sheet, "H1", "U.PRICE")
	f.SetCellValue(sheet, "I1", "AMOUNT")
	f.SetCellValue(sheet, "J1", "CBM")
	f.SetCellValue(sheet, "K1", "CBM TOTAL")
	f.SetCellValue(sheet, "L1", "G.W.")
	f.SetCellValue(sheet, "M1", "N.W.")

	for i, q := range quotes {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), q.Ref)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), q.Description)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), q.Name)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), q.Ncm)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), q.Ctns)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), q.UnitCtn)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), q.Qty)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", i+2), q.UnitPrice)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", i+2), q.Amount)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", i+2), q.Cbm)
		f.SetCellValue(sheet, fmt.Sprintf("K%d", i+2), q.CbmTotal)
		f.SetCellValue(sheet, fmt.Sprintf("L%d", i+2), q.TotalGrossWeight)
		f.SetCellValue(sheet, fmt.Sprintf("M%d", i+2), q.TotalNetWeight)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="cotacoes.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
