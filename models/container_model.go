package models

import (
	"time"

	"gorm.io/gorm"
)

// Status possíveis de um container. Rótulo livre, qualquer transição vale.
const (
	ContainerStatusFabricacao    = "fabricacao"
	ContainerStatusEmbarcado     = "embarcado"
	ContainerStatusEmLiberacao   = "em_liberacao"
	ContainerStatusNacionalizado = "nacionalizado"
)

// Container é uma unidade de embarque com teto de capacidade em CBM.
// As cotações apontam para ele via containerId (referência fraca, sem cascade).
type Container struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Nome          string         `gorm:"not null" json:"nome"`
	Numero        string         `json:"numero"`
	RefContainer  string         `json:"refContainer"`
	CapacidadeCBM float64        `gorm:"default:0" json:"capacidadeCBM"`
	Status        string         `gorm:"size:20;default:'fabricacao'" json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	CreatedBy     int            `json:"-"`
	UpdatedBy     int            `json:"-"`
	DeletedBy     int            `json:"-"`
}
