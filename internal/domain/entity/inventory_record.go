package entity

// InventoryRecord existencia de un SKU (producto + color + talla) en una bodega.
// Available normalmente es <= OnHand, pero no se exige: los datos de origen a veces
// reportan más disponible que físico y el sistema debe tolerarlo.
type InventoryRecord struct {
	ProductName string
	Color       string
	Size        string
	Warehouse   string
	Available   int // unidades disponibles para venta
	OnHand      int // unidades físicas en bodega
}
