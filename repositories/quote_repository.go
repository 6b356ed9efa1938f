package repositories

import (
	"painel-app/models"

	"gorm.io/gorm"
)

type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db}
}

func (r *QuoteRepository) ListByFactory(factoryID uint) ([]models.Quote, error) {
	var quotes []models.Quote
	if err := r.db.Where("factory_id = ?", factoryID).Order("created_at DESC").Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *QuoteRepository) ListByContainer(containerID uint) ([]models.Quote, error) {
	var quotes []models.Quote
	if err := r.db.Where("container_id = ?", containerID).Order("created_at DESC").Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

type FactoryTotals struct {
	FactoryID   uint    `json:"factory_id"`
	TotalQuotes int     `json:"total_quotes"`
	TotalCtns   float64 `json:"total_ctns"`
	TotalCBM    float64 `json:"total_cbm"`
	TotalAmount float64 `json:"total_amount"`
}

// GetFactoryTotals agrega os totais brutos de uma fábrica direto no banco.
// Serve o dashboard; os rollups por lote/container passam pelo motor puro.
func (r *QuoteRepository) GetFactoryTotals(factoryID uint) (FactoryTotals, error) {

	sqlTotals := `select factory_id, count(id) as total_quotes, sum(ctns) as total_ctns,
	sum(cbm_total) as total_cbm, sum(amount) as total_amount
	from quotes
	where factory_id = ? and deleted_at is null
	group by factory_id
	`

	var totals FactoryTotals
	if err := r.db.Raw(sqlTotals, factoryID).Scan(&totals).Error; err != nil {
		return FactoryTotals{}, err
	}
	totals.FactoryID = factoryID

	return totals, nil
}
