package stock

import (
	"github.com/jhoicas/stock-insights/internal/domain/aggregate"
	"github.com/jhoicas/stock-insights/internal/domain/entity"
)

func invColor(r entity.InventoryRecord) string  { return r.Color }
func invSize(r entity.InventoryRecord) string   { return r.Size }
func invAvailable(r entity.InventoryRecord) int { return r.Available }

// AvailableByColor disponible sumado por color.
func AvailableByColor(records []entity.InventoryRecord) map[string]int {
	return aggregate.Sum(records, invColor, invAvailable)
}

// AvailableBySize disponible sumado por talla.
func AvailableBySize(records []entity.InventoryRecord) map[string]int {
	return aggregate.Sum(records, invSize, invAvailable)
}
