package services

import (
	"painel-app/models"
	"painel-app/types"
	"testing"
	"time"
)

func TestRecomputeDerivedFields(t *testing.T) {
	t.Run("derived fields match their inputs", func(t *testing.T) {
		q := models.Quote{Ctns: 10, UnitCtn: 12, UnitPrice: 2.5, Cbm: 0.02}
		RecomputeDerivedFields(&q)

		if q.Qty != 120 {
			t.Fatalf("expected qty 120, got %v", q.Qty)
		}
		if q.Amount != 300 {
			t.Fatalf("expected amount 300, got %v", q.Amount)
		}
		if q.CbmTotal != 0.2 {
			t.Fatalf("expected cbmTotal 0.2, got %v", q.CbmTotal)
		}
	})

	t.Run("weight totals scale with cartons", func(t *testing.T) {
		q := models.Quote{Ctns: 4, UnitCtn: 6, GrossWeight: 12.5, NetWeight: 11}
		RecomputeDerivedFields(&q)

		if q.TotalGrossWeight != 50 {
			t.Fatalf("expected totalGrossWeight 50, got %v", q.TotalGrossWeight)
		}
		if q.TotalNetWeight != 44 {
			t.Fatalf("expected totalNetWeight 44, got %v", q.TotalNetWeight)
		}
	})

	t.Run("missing unitCtn defaults to 1, not 0", func(t *testing.T) {
		q := models.Quote{Ctns: 7, UnitPrice: 3}
		RecomputeDerivedFields(&q)

		if q.Qty != 7 {
			t.Fatalf("expected qty 7 with default unitCtn, got %v", q.Qty)
		}
		if q.Amount != 21 {
			t.Fatalf("expected amount 21, got %v", q.Amount)
		}
	})

	t.Run("stale derived values are overwritten", func(t *testing.T) {
		q := models.Quote{Ctns: 2, UnitCtn: 3, UnitPrice: 10, Cbm: 0.5, Qty: 999, Amount: 999, CbmTotal: 999}
		RecomputeDerivedFields(&q)

		if q.Qty != 6 || q.Amount != 60 || q.CbmTotal != 1 {
			t.Fatalf("expected recomputed 6/60/1, got %v/%v/%v", q.Qty, q.Amount, q.CbmTotal)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		q := models.Quote{Ctns: 10, UnitCtn: 12, UnitPrice: 2.5, Cbm: 0.02, GrossWeight: 1.5, NetWeight: 1.2}
		RecomputeDerivedFields(&q)
		first := q
		RecomputeDerivedFields(&q)

		if q != first {
			t.Fatalf("second pass changed the record: %+v vs %+v", first, q)
		}
	})
}

func quoteAt(id int64, created time.Time) models.Quote {
	return models.Quote{ID: types.SnowflakeID(id), CreatedAt: created}
}

func TestGroupByImportBatch(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 15, 2, 0, time.UTC)

	t.Run("same minute lands in the same batch", func(t *testing.T) {
		quotes := []models.Quote{
			quoteAt(1, base),                                          // 10:15:02
			quoteAt(2, base.Add(45*time.Second)),                      // 10:15:47
			quoteAt(3, time.Date(2024, 3, 1, 10, 16, 1, 0, time.UTC)), // 10:16:01
		}

		groups := GroupByImportBatch(quotes)

		if len(groups) != 2 {
			t.Fatalf("expected 2 batches, got %d", len(groups))
		}
		if len(groups["2024-03-01T10:15"]) != 2 {
			t.Fatalf("expected 2 quotes in 10:15 batch, got %d", len(groups["2024-03-01T10:15"]))
		}
		if len(groups["2024-03-01T10:16"]) != 1 {
			t.Fatalf("expected 1 quote in 10:16 batch, got %d", len(groups["2024-03-01T10:16"]))
		}
	})

	t.Run("groups partition the input", func(t *testing.T) {
		quotes := []models.Quote{
			quoteAt(1, base),
			quoteAt(2, base.Add(30*time.Second)),
			quoteAt(3, base.Add(2*time.Minute)),
			quoteAt(4, base.Add(26*time.Hour)),
		}

		groups := GroupByImportBatch(quotes)

		seen := map[types.SnowflakeID]int{}
		total := 0
		for _, members := range groups {
			for _, q := range members {
				seen[q.ID]++
				total++
			}
		}
		if total != len(quotes) {
			t.Fatalf("expected %d grouped quotes, got %d", len(quotes), total)
		}
		for _, q := range quotes {
			if seen[q.ID] != 1 {
				t.Fatalf("quote %d appears %d times", q.ID, seen[q.ID])
			}
		}
	})

	t.Run("grouping ignores input order", func(t *testing.T) {
		a := []models.Quote{quoteAt(1, base), quoteAt(2, base.Add(10*time.Second)), quoteAt(3, base.Add(3*time.Minute))}
		b := []models.Quote{a[2], a[0], a[1]}

		ga := GroupByImportBatch(a)
		gb := GroupByImportBatch(b)

		if len(ga) != len(gb) {
			t.Fatalf("different batch counts: %d vs %d", len(ga), len(gb))
		}
		for key := range ga {
			if len(ga[key]) != len(gb[key]) {
				t.Fatalf("batch %s sizes differ: %d vs %d", key, len(ga[key]), len(gb[key]))
			}
		}
	})

	t.Run("missing createdAt is silently dropped", func(t *testing.T) {
		quotes := []models.Quote{
			quoteAt(1, base),
			{ID: 2}, // zero CreatedAt
		}

		groups := GroupByImportBatch(quotes)

		if len(groups) != 1 || len(groups["2024-03-01T10:15"]) != 1 {
			t.Fatalf("expected only the dated quote grouped, got %+v", groups)
		}
	})

	t.Run("empty and single inputs", func(t *testing.T) {
		if groups := GroupByImportBatch(nil); len(groups) != 0 {
			t.Fatalf("expected no batches for nil input, got %d", len(groups))
		}
		groups := GroupByImportBatch([]models.Quote{quoteAt(1, base)})
		if len(groups) != 1 {
			t.Fatalf("expected one batch, got %d", len(groups))
		}
	})
}

func TestImportKey(t *testing.T) {
	t.Run("truncates to the minute in UTC", func(t *testing.T) {
		key := ImportKey(time.Date(2024, 3, 1, 10, 15, 47, 999, time.UTC))
		if key != "2024-03-01T10:15" {
			t.Fatalf("expected 2024-03-01T10:15, got %s", key)
		}
		if len(key) != 16 {
			t.Fatalf("expected 16-char key, got %d", len(key))
		}
	})

	t.Run("normalizes timezone before truncating", func(t *testing.T) {
		loc := time.FixedZone("BRT", -3*3600)
		key := ImportKey(time.Date(2024, 3, 1, 7, 15, 2, 0, loc))
		if key != "2024-03-01T10:15" {
			t.Fatalf("expected UTC key 2024-03-01T10:15, got %s", key)
		}
	})
}

func TestComputeImportRollup(t *testing.T) {
	t.Run("sums only selected quotes", func(t *testing.T) {
		quotes := []models.Quote{
			{ID: 1, Amount: 100, CbmTotal: 1.5},
			{ID: 2, Amount: 50, CbmTotal: 0.5},
			{ID: 3, Amount: 999, CbmTotal: 9},
		}
		selected := map[types.SnowflakeID]bool{1: true, 2: true}

		r := ComputeImportRollup(quotes, selected)

		if r.SelectedCount != 2 {
			t.Fatalf("expected 2 selected, got %d", r.SelectedCount)
		}
		if r.TotalAmount != 150 {
			t.Fatalf("expected totalAmount 150, got %v", r.TotalAmount)
		}
		if r.TotalCBM != 2 {
			t.Fatalf("expected totalCBM 2, got %v", r.TotalCBM)
		}
	})

	t.Run("zero stored amount falls back to recomputation", func(t *testing.T) {
		quotes := []models.Quote{
			{ID: 1, Amount: 0, Ctns: 5, UnitCtn: 4, UnitPrice: 3},
		}

		r := ComputeImportRollup(quotes, map[types.SnowflakeID]bool{1: true})

		if r.TotalAmount != 60 {
			t.Fatalf("expected fallback amount 60, got %v", r.TotalAmount)
		}
	})

	t.Run("missing cbmTotal falls back to cbm times ctns", func(t *testing.T) {
		quotes := []models.Quote{
			{ID: 1, Amount: 10, Ctns: 10, Cbm: 0.3},
		}

		r := ComputeImportRollup(quotes, map[types.SnowflakeID]bool{1: true})

		if r.TotalCBM != 3 {
			t.Fatalf("expected fallback cbm 3, got %v", r.TotalCBM)
		}
	})

	t.Run("additive over disjoint sets", func(t *testing.T) {
		a := []models.Quote{
			{ID: 1, Amount: 100, CbmTotal: 1},
			{ID: 2, Amount: 40, CbmTotal: 0.5},
		}
		b := []models.Quote{
			{ID: 3, Amount: 60, CbmTotal: 2.5},
		}
		selected := map[types.SnowflakeID]bool{1: true, 2: true, 3: true}

		ra := ComputeImportRollup(a, selected)
		rb := ComputeImportRollup(b, selected)
		runion := ComputeImportRollup(append(append([]models.Quote{}, a...), b...), selected)

		if runion.TotalAmount != ra.TotalAmount+rb.TotalAmount {
			t.Fatalf("amount not additive: %v vs %v", runion.TotalAmount, ra.TotalAmount+rb.TotalAmount)
		}
		if runion.TotalCBM != ra.TotalCBM+rb.TotalCBM {
			t.Fatalf("cbm not additive: %v vs %v", runion.TotalCBM, ra.TotalCBM+rb.TotalCBM)
		}
		if runion.SelectedCount != ra.SelectedCount+rb.SelectedCount {
			t.Fatalf("count not additive: %d vs %d", runion.SelectedCount, ra.SelectedCount+rb.SelectedCount)
		}
	})

	t.Run("empty selection yields zero rollup", func(t *testing.T) {
		quotes := []models.Quote{{ID: 1, Amount: 100, CbmTotal: 1}}
		r := ComputeImportRollup(quotes, nil)
		if r.TotalAmount != 0 || r.TotalCBM != 0 || r.SelectedCount != 0 {
			t.Fatalf("expected zero rollup, got %+v", r)
		}
	})
}

func TestSelectedIDs(t *testing.T) {
	quotes := []models.Quote{
		{ID: 1, SelectedForOrder: true},
		{ID: 2},
		{ID: 3, SelectedForOrder: true},
	}

	selected := SelectedIDs(quotes)

	if len(selected) != 2 || !selected[1] || !selected[3] || selected[2] {
		t.Fatalf("unexpected selected set: %+v", selected)
	}
}

func TestComputeContainerLoad(t *testing.T) {
	t.Run("sums all associated quotes", func(t *testing.T) {
		container := models.Container{CapacidadeCBM: 60}
		quotes := []models.Quote{
			{ID: 1, CbmTotal: 10, Amount: 1000},
			{ID: 2, CbmTotal: 20, Amount: 500, SelectedForOrder: true},
			{ID: 3, Ctns: 10, Cbm: 0.5, UnitCtn: 2, UnitPrice: 5}, // fallbacks: 5 cbm, 100 amount
		}

		load := ComputeContainerLoad(container, quotes)

		if load.TotalCBM != 35 {
			t.Fatalf("expected totalCBM 35, got %v", load.TotalCBM)
		}
		if load.TotalValue != 1600 {
			t.Fatalf("expected totalValue 1600, got %v", load.TotalValue)
		}
		if load.RemainingCapacity != 25 {
			t.Fatalf("expected remaining 25, got %v", load.RemainingCapacity)
		}
		if load.OverCapacity {
			t.Fatalf("expected no overbooking flag")
		}
	})

	t.Run("overbooking goes negative, never clamps", func(t *testing.T) {
		container := models.Container{CapacidadeCBM: 10}
		quotes := []models.Quote{
			{ID: 1, CbmTotal: 12},
		}

		load := ComputeContainerLoad(container, quotes)

		if load.RemainingCapacity != -2 {
			t.Fatalf("expected remaining -2, got %v", load.RemainingCapacity)
		}
		if !load.OverCapacity {
			t.Fatalf("expected overbooking flag")
		}
	})

	t.Run("empty container", func(t *testing.T) {
		load := ComputeContainerLoad(models.Container{CapacidadeCBM: 28}, nil)
		if load.TotalCBM != 0 || load.RemainingCapacity != 28 || load.OverCapacity {
			t.Fatalf("unexpected load: %+v", load)
		}
	})
}
