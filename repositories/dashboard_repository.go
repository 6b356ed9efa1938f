package repositories

import (
	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db}
}

type DashboardSummary struct {
	TotalFabricas   int64   `json:"total_fabricas"`
	TotalCotacoes   int64   `json:"total_cotacoes"`
	TotalContainers int64   `json:"total_containers"`
	TotalCBM        float64 `json:"total_cbm"`
	TotalAmount     float64 `json:"total_amount"`
	CBMSelecionado  float64 `json:"cbm_selecionado"`
}

func (r *DashboardRepository) GetSummary() (DashboardSummary, error) {

	sqlSummary := `select
	(select count(id) from factories where deleted_at is null) as total_fabricas,
	(select count(id) from quotes where deleted_at is null) as total_cotacoes,
	(select count(id) from containers where deleted_at is null) as total_containers,
	(select coalesce(sum(cbm_total), 0) from quotes where deleted_at is null) as total_cbm,
	(select coalesce(sum(amount), 0) from quotes where deleted_at is null) as total_amount,
	(select coalesce(sum(cbm_total), 0) from quotes where deleted_at is null and selected_for_order = ?) as cbm_selecionado
	`

	var summary DashboardSummary
	if err := r.db.Raw(sqlSummary, true).Scan(&summary).Error; err != nil {
		return DashboardSummary{}, err
	}

	return summary, nil
}
