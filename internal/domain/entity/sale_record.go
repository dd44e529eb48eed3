package entity

import "time"

// SaleRecord representa una línea de venta ya parseada de un SKU de ropa.
// Date es un día calendario: la hora se ignora en todas las agregaciones.
// Size y Color vacíos significan "sin etiqueta" y son una categoría válida.
type SaleRecord struct {
	Date        time.Time
	ProductName string
	Size        string
	Color       string
	Quantity    int // unidades vendidas (no negativo)
}
