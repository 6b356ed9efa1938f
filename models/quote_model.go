package models

import (
	"painel-app/controllers/idgen"
	"painel-app/types"
	"time"

	"gorm.io/gorm"
)

// Quote é um item de linha importado da planilha de cotação do fornecedor.
// Os campos derivados (qty, amount, cbmTotal, totais de peso) são sempre
// recalculados antes de persistir; ver services.RecomputeDerivedFields.
type Quote struct {
	ID               types.SnowflakeID `gorm:"primaryKey;autoIncrement:false" json:"id"`
	FactoryID        uint              `gorm:"index" json:"factoryId"`
	Ref              string            `json:"ref"`
	Description      string            `json:"description"`
	Name             string            `json:"name"`
	Ncm              string            `json:"ncm"`
	Ctns             float64           `gorm:"default:0" json:"ctns"`
	UnitCtn          float64           `gorm:"default:0" json:"unitCtn"`
	UnitPrice        float64           `gorm:"default:0" json:"unitPrice"`
	Qty              float64           `gorm:"default:0" json:"qty"`
	Amount           float64           `gorm:"default:0" json:"amount"`
	Cbm              float64           `gorm:"default:0" json:"cbm"`
	CbmTotal         float64           `gorm:"default:0" json:"cbmTotal"`
	GrossWeight      float64           `gorm:"default:0" json:"grossWeight"`
	NetWeight        float64           `gorm:"default:0" json:"netWeight"`
	TotalGrossWeight float64           `gorm:"default:0" json:"totalGrossWeight"`
	TotalNetWeight   float64           `gorm:"default:0" json:"totalNetWeight"`
	ContainerID      *uint             `gorm:"index" json:"containerId"`
	SelectedForOrder bool              `gorm:"default:false" json:"selectedForOrder"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt    `gorm:"index" json:"-"`
	CreatedBy        int               `json:"-"`
	UpdatedBy        int               `json:"-"`
	DeletedBy        int               `json:"-"`
}

func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == 0 {
		q.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return nil
}
