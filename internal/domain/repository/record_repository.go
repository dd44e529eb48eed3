package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stock-insights/internal/domain/entity"
)

// RecordFilter filtros opcionales; los campos vacíos no filtran.
type RecordFilter struct {
	Product   string
	Warehouse string
}

// SalesRecordRepository puerto de lectura de ventas ya parseadas (DIP).
// Las implementaciones son read-only.
type SalesRecordRepository interface {
	// ListSales devuelve las líneas de venta de la empresa con fecha en [from, to] (días inclusivos).
	// Warehouse en el filtro se ignora: las ventas no se atribuyen a bodega.
	ListSales(ctx context.Context, companyID string, from, to time.Time, f RecordFilter) ([]entity.SaleRecord, error)
}

// InventoryRecordRepository puerto de lectura de existencias por SKU y bodega.
type InventoryRecordRepository interface {
	ListInventory(ctx context.Context, companyID string, f RecordFilter) ([]entity.InventoryRecord, error)
}
