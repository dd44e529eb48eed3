package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-insights/internal/domain/entity"
	"github.com/jhoicas/stock-insights/internal/domain/repository"
	"github.com/jhoicas/stock-insights/pkg/labels"
)

var _ repository.InventoryRecordRepository = (*InventoryRecordRepo)(nil)

// InventoryRecordRepo lectura de existencias por SKU y bodega sobre PostgreSQL.
type InventoryRecordRepo struct {
	q Querier
}

// NewInventoryRecordRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryRecordRepository(q Querier) *InventoryRecordRepo {
	return &InventoryRecordRepo{q: q}
}

const listInventoryQuery = `
	SELECT product_name, COALESCE(color, ''), COALESCE(size, ''), warehouse_name, available, on_hand
	FROM inventory_snapshots
	WHERE company_id = $1
	ORDER BY product_name, warehouse_name`

// ListInventory devuelve las existencias actuales. Producto y bodega se filtran
// sobre las etiquetas normalizadas. No valida available <= on_hand: las
// integraciones a veces lo invierten y la analítica lo tolera.
func (r *InventoryRecordRepo) ListInventory(
	ctx context.Context,
	companyID string,
	f repository.RecordFilter,
) ([]entity.InventoryRecord, error) {
	product, warehouse := labels.Normalize(f.Product), labels.Normalize(f.Warehouse)
	rows, err := r.q.Query(ctx, listInventoryQuery, companyID)
	if err != nil {
		return nil, fmt.Errorf("inventory.ListInventory: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryRecord
	for rows.Next() {
		var (
			rec               entity.InventoryRecord
			available, onHand decimal.Decimal
		)
		if err := rows.Scan(&rec.ProductName, &rec.Color, &rec.Size, &rec.Warehouse, &available, &onHand); err != nil {
			return nil, fmt.Errorf("inventory.ListInventory scan: %w", err)
		}
		rec.ProductName = labels.Normalize(rec.ProductName)
		rec.Color = labels.Normalize(rec.Color)
		rec.Size = labels.Normalize(rec.Size)
		rec.Warehouse = labels.Normalize(rec.Warehouse)
		if (product != "" && rec.ProductName != product) || (warehouse != "" && rec.Warehouse != warehouse) {
			continue
		}
		rec.Available = units(available)
		rec.OnHand = units(onHand)
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("inventory.ListInventory rows: %w", err)
	}
	return list, nil
}
