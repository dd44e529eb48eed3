package analytics_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/stock-insights/internal/domain/entity"
	"github.com/jhoicas/stock-insights/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeSalesRepo struct {
	mu      sync.Mutex
	records []entity.SaleRecord
	err     error

	gotFrom, gotTo time.Time
	gotFilter      repository.RecordFilter
}

func (f *fakeSalesRepo) ListSales(_ context.Context, _ string, from, to time.Time, flt repository.RecordFilter) ([]entity.SaleRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotFrom, f.gotTo, f.gotFilter = from, to, flt
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.SaleRecord
	for _, r := range f.records {
		if flt.Product != "" && r.ProductName != flt.Product {
			continue
		}
		d := r.Date.Format("2006-01-02")
		if d < from.Format("2006-01-02") || d > to.Format("2006-01-02") {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeInventoryRepo struct {
	records []entity.InventoryRecord
	err     error
}

func (f *fakeInventoryRepo) ListInventory(_ context.Context, _ string, flt repository.RecordFilter) ([]entity.InventoryRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.InventoryRecord
	for _, r := range f.records {
		if flt.Product != "" && r.ProductName != flt.Product {
			continue
		}
		if flt.Warehouse != "" && r.Warehouse != flt.Warehouse {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type recorderSpy struct {
	calls  int
	counts map[string]int
}

func (r *recorderSpy) ObserveAlerts(counts map[string]int) {
	r.calls++
	r.counts = counts
}

const companyID = "00000000-0000-0000-0000-000000000002"

func on(day int) time.Time {
	return time.Date(2024, time.August, day, 15, 0, 0, 0, time.Local)
}

func sold(day int, product, color, size string, qty int) entity.SaleRecord {
	return entity.SaleRecord{Date: on(day), ProductName: product, Color: color, Size: size, Quantity: qty}
}

func stocked(product, color, size, warehouse string, available, onHand int) entity.InventoryRecord {
	return entity.InventoryRecord{
		ProductName: product, Color: color, Size: size, Warehouse: warehouse,
		Available: available, OnHand: onHand,
	}
}
