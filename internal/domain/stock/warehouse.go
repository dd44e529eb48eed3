package stock

import (
	"sort"

	"github.com/jhoicas/stock-insights/internal/domain/entity"
)

// WarehouseGroup registros de una bodega con su disponible total (para el detalle).
type WarehouseGroup struct {
	Warehouse string
	Available int
	Records   []entity.InventoryRecord
}

// GroupByWarehouse agrupa por bodega y ordena de mayor a menor disponible.
// Empates: orden de primera aparición.
func GroupByWarehouse(records []entity.InventoryRecord) []WarehouseGroup {
	index := make(map[string]int)
	groups := make([]WarehouseGroup, 0)
	for _, r := range records {
		i, ok := index[r.Warehouse]
		if !ok {
			i = len(groups)
			index[r.Warehouse] = i
			groups = append(groups, WarehouseGroup{Warehouse: r.Warehouse})
		}
		groups[i].Available += r.Available
		groups[i].Records = append(groups[i].Records, r)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Available > groups[j].Available
	})
	return groups
}
