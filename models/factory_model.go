package models

import (
	"time"

	"gorm.io/gorm"
)

// Status possíveis de uma fábrica. Rótulo livre, sem workflow.
const (
	FactoryStatusAtiva      = "ativa"
	FactoryStatusInativa    = "inativa"
	FactoryStatusManutencao = "manutencao"
)

type Factory struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	NomeFabrica string         `gorm:"not null" json:"nomeFabrica"`
	Localizacao string         `json:"localizacao"`
	Segmento    string         `json:"segmento"`
	Contato     string         `json:"contato"`
	Email       string         `json:"email"`
	Telefone    string         `json:"telefone"`
	Status      string         `gorm:"size:20;default:'ativa'" json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	CreatedBy   int            `json:"-"`
	UpdatedBy   int            `json:"-"`
	DeletedBy   int            `json:"-"`
}
