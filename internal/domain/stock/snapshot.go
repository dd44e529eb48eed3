// Package stock agrega existencias de inventario: foto consolidada entre bodegas,
// agrupación por bodega, clasificación de riesgo de quiebre (días de cobertura)
// y la escala de color del mapa de calor color×talla.
package stock

import (
	"sort"

	"github.com/jhoicas/stock-insights/internal/domain/entity"
)

// ColorSize celda de la matriz color×talla.
type ColorSize struct {
	Color string
	Size  string
}

// Snapshot foto derivada del inventario. Se recalcula en cada llamada; no se muta.
//
// ByColorSize solo contiene las combinaciones presentes en la entrada: una celda
// ausente no es cero explícito, quien pinte la grilla debe usar Cell.
type Snapshot struct {
	TotalAvailable int
	TotalOnHand    int
	Sizes          []string // tallas distintas, orden lexicográfico ("" primero)
	Colors         []string // colores distintos, orden lexicográfico ("" primero)
	ByWarehouse    map[string]int
	ByColorSize    map[ColorSize]int
}

// BuildSnapshot recorre los registros una vez y acumula totales, etiquetas distintas,
// disponible por bodega y disponible por (color, talla).
func BuildSnapshot(records []entity.InventoryRecord) Snapshot {
	s := Snapshot{
		ByWarehouse: make(map[string]int),
		ByColorSize: make(map[ColorSize]int),
	}
	sizes := make(map[string]struct{})
	colors := make(map[string]struct{})

	for _, r := range records {
		s.TotalAvailable += r.Available
		s.TotalOnHand += r.OnHand
		sizes[r.Size] = struct{}{}
		colors[r.Color] = struct{}{}
		s.ByWarehouse[r.Warehouse] += r.Available
		s.ByColorSize[ColorSize{Color: r.Color, Size: r.Size}] += r.Available
	}

	s.Sizes = sortedLabels(sizes)
	s.Colors = sortedLabels(colors)
	return s
}

// Cell disponible para (color, talla); 0 si la combinación no existe.
func (s Snapshot) Cell(color, size string) int {
	return s.ByColorSize[ColorSize{Color: color, Size: size}]
}

// MaxCell mayor valor de la matriz color×talla (0 si está vacía).
func (s Snapshot) MaxCell() int {
	maxV := 0
	for _, v := range s.ByColorSize {
		if v > maxV {
			maxV = v
		}
	}
	return maxV
}

func sortedLabels(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
