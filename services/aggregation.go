// services/aggregation.go
//
// Motor de agregação de cotações: funções puras, sem I/O. Quem chama busca
// os dados no banco (repositories) e renderiza o resultado (controllers).
package services

import (
	"painel-app/models"
	"painel-app/types"
	"time"
)

// Rollup é o agregado de um lote de importação sobre as cotações selecionadas.
type Rollup struct {
	TotalAmount   float64 `json:"totalAmount"`
	SelectedCount int     `json:"selectedCount"`
	TotalCBM      float64 `json:"totalCBM"`
}

// ContainerLoad é a ocupação calculada de um container.
// RemainingCapacity pode ficar negativa: overbooking é permitido e apenas
// sinalizado via OverCapacity, nunca rejeitado.
type ContainerLoad struct {
	TotalCBM          float64 `json:"totalCBM"`
	RemainingCapacity float64 `json:"remainingCapacity"`
	TotalValue        float64 `json:"totalValue"`
	OverCapacity      bool    `json:"overCapacity"`
}

const importKeyLayout = "2006-01-02T15:04"

// ImportKey trunca o instante de criação para o minuto, em UTC.
// Duas cotações criadas no mesmo minuto pertencem ao mesmo lote.
//
// Heurística herdada do sistema original: dois uploads dentro da mesma
// janela de 60s colidem num lote só. A tabela import_metadata já carrega a
// chave persistida, então dá para trocar por um importBatchId explícito sem
// mexer no schema.
func ImportKey(t time.Time) string {
	return t.UTC().Format(importKeyLayout)
}

// GroupByImportBatch particiona as cotações por lote de importação.
// Cotações sem createdAt ficam fora de todos os grupos (não é erro).
// O resultado independe da ordem do slice de entrada.
func GroupByImportBatch(quotes []models.Quote) map[string][]models.Quote {
	groups := make(map[string][]models.Quote)
	for _, q := range quotes {
		if q.CreatedAt.IsZero() {
			continue
		}
		key := ImportKey(q.CreatedAt)
		groups[key] = append(groups[key], q)
	}
	return groups
}

// effectiveAmount prefere o amount armazenado só quando é positivo;
// senão recalcula dos campos primitivos. Registros antigos ou editados
// pela metade podem carregar amount zerado/stale.
func effectiveAmount(q models.Quote) float64 {
	if q.Amount > 0 {
		return q.Amount
	}
	return q.Ctns * q.UnitCtn * q.UnitPrice
}

// effectiveCBM idem para o cbmTotal.
func effectiveCBM(q models.Quote) float64 {
	if q.CbmTotal > 0 {
		return q.CbmTotal
	}
	return q.Cbm * q.Ctns
}

// ComputeImportRollup soma amount e CBM das cotações cujo id está em
// selected. Acumulação em float64, arredondamento é problema de quem exibe.
func ComputeImportRollup(quotes []models.Quote, selected map[types.SnowflakeID]bool) Rollup {
	var r Rollup
	for _, q := range quotes {
		if !selected[q.ID] {
			continue
		}
		r.SelectedCount++
		r.TotalAmount += effectiveAmount(q)
		r.TotalCBM += effectiveCBM(q)
	}
	return r
}

// SelectedIDs extrai o conjunto de ids marcados selectedForOrder.
func SelectedIDs(quotes []models.Quote) map[types.SnowflakeID]bool {
	selected := make(map[types.SnowflakeID]bool)
	for _, q := range quotes {
		if q.SelectedForOrder {
			selected[q.ID] = true
		}
	}
	return selected
}

// ComputeContainerLoad soma CBM e valor de todas as cotações associadas ao
// container. Capacidade restante negativa é estado válido e vira flag.
func ComputeContainerLoad(container models.Container, quotes []models.Quote) ContainerLoad {
	var load ContainerLoad
	for _, q := range quotes {
		load.TotalCBM += effectiveCBM(q)
		load.TotalValue += effectiveAmount(q)
	}
	load.RemainingCapacity = container.CapacidadeCBM - load.TotalCBM
	load.OverCapacity = load.RemainingCapacity < 0
	return load
}

// RecomputeDerivedFields sobrescreve qty, amount, cbmTotal e os totais de
// peso a partir dos campos base. unitCtn ausente vale 1, nunca 0, para um
// edit só de ctns não zerar o qty. Idempotente.
func RecomputeDerivedFields(q *models.Quote) {
	unitCtn := q.UnitCtn
	if unitCtn == 0 {
		unitCtn = 1
	}
	q.Qty = q.Ctns * unitCtn
	q.Amount = q.Qty * q.UnitPrice
	q.CbmTotal = q.Cbm * q.Ctns
	q.TotalGrossWeight = q.GrossWeight * q.Ctns
	q.TotalNetWeight = q.NetWeight * q.Ctns
}
