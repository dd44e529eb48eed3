package sales

import (
	"github.com/jhoicas/stock-insights/internal/domain/aggregate"
	"github.com/jhoicas/stock-insights/internal/domain/entity"
)

func saleSize(r entity.SaleRecord) string  { return r.Size }
func saleColor(r entity.SaleRecord) string { return r.Color }
func saleQty(r entity.SaleRecord) int      { return r.Quantity }

// BySize unidades vendidas por talla, de mayor a menor.
func BySize(records []entity.SaleRecord) []aggregate.Category {
	return aggregate.Rank(records, saleSize, saleQty)
}

// ByColor unidades vendidas por color, de mayor a menor.
func ByColor(records []entity.SaleRecord) []aggregate.Category {
	return aggregate.Rank(records, saleColor, saleQty)
}
