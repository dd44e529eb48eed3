package stock

import "github.com/jhoicas/stock-insights/internal/domain/entity"

// SKU identifica una variante vendible: producto + color + talla (sin bodega).
type SKU struct {
	Product string
	Color   string
	Size    string
}

// SKUStock existencias de un SKU sumadas entre bodegas.
type SKUStock struct {
	SKU
	Available int
	OnHand    int
}

// GroupBySKU suma existencias por SKU conservando el orden de primera aparición.
func GroupBySKU(records []entity.InventoryRecord) []SKUStock {
	index := make(map[SKU]int)
	out := make([]SKUStock, 0)
	for _, r := range records {
		k := SKU{Product: r.ProductName, Color: r.Color, Size: r.Size}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, SKUStock{SKU: k})
		}
		out[i].Available += r.Available
		out[i].OnHand += r.OnHand
	}
	return out
}

// SalesBySKU reparte las ventas por SKU para calcular la velocidad de cada uno.
func SalesBySKU(records []entity.SaleRecord) map[SKU][]entity.SaleRecord {
	out := make(map[SKU][]entity.SaleRecord)
	for _, r := range records {
		k := SKU{Product: r.ProductName, Color: r.Color, Size: r.Size}
		out[k] = append(out[k], r)
	}
	return out
}
