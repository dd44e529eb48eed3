package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-insights/internal/domain/entity"
	"github.com/jhoicas/stock-insights/internal/domain/repository"
	"github.com/jhoicas/stock-insights/pkg/labels"
)

var _ repository.SalesRecordRepository = (*SalesRecordRepo)(nil)

// SalesRecordRepo lectura de líneas de venta sobre PostgreSQL.
type SalesRecordRepo struct {
	q Querier
}

// NewSalesRecordRepository construye el adaptador. Acepta pool o tx (Querier).
func NewSalesRecordRepository(q Querier) *SalesRecordRepo {
	return &SalesRecordRepo{q: q}
}

const listSalesQuery = `
	SELECT sold_on, product_name, COALESCE(size, ''), COALESCE(color, ''), quantity
	FROM sale_lines
	WHERE company_id = $1
	  AND sold_on BETWEEN $2::date AND $3::date
	ORDER BY sold_on`

// ListSales devuelve las ventas del rango con etiquetas normalizadas (NULL → "").
// El filtro de producto se compara ya normalizado: las integraciones guardan
// etiquetas con espacios o ancho completo.
func (r *SalesRecordRepo) ListSales(
	ctx context.Context,
	companyID string,
	from, to time.Time,
	f repository.RecordFilter,
) ([]entity.SaleRecord, error) {
	product := labels.Normalize(f.Product)
	rows, err := r.q.Query(ctx, listSalesQuery, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("sales.ListSales: %w", err)
	}
	defer rows.Close()

	var list []entity.SaleRecord
	for rows.Next() {
		var (
			rec entity.SaleRecord
			qty decimal.Decimal
		)
		if err := rows.Scan(&rec.Date, &rec.ProductName, &rec.Size, &rec.Color, &qty); err != nil {
			return nil, fmt.Errorf("sales.ListSales scan: %w", err)
		}
		rec.ProductName = labels.Normalize(rec.ProductName)
		if product != "" && rec.ProductName != product {
			continue
		}
		rec.Size = labels.Normalize(rec.Size)
		rec.Color = labels.Normalize(rec.Color)
		rec.Quantity = units(qty)
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sales.ListSales rows: %w", err)
	}
	return list, nil
}
