package models

import (
	"time"
)

// ImportMeta guarda os metadados editáveis de um lote de importação.
// O lote em si é derivado (cotações agrupadas por minuto de criação);
// esta tabela lateral só carrega nome/data/lote e é casada de volta
// pela chave fábrica + import_key.
type ImportMeta struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FactoryID  uint      `gorm:"uniqueIndex:idx_import_meta_factory_key" json:"factoryId"`
	ImportKey  string    `gorm:"size:16;uniqueIndex:idx_import_meta_factory_key" json:"importKey"`
	ImportName string    `json:"importName"`
	DataPedido string    `json:"dataPedido"`
	LotePedido string    `json:"lotePedido"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	UpdatedBy  int       `json:"-"`
}

func (ImportMeta) TableName() string {
	return "import_metadata"
}
