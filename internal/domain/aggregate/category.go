// Package aggregate contiene el patrón "agrupar por etiqueta y sumar" que comparten
// las analíticas de ventas (por talla/color) y de inventario (disponible por talla/color).
package aggregate

import "sort"

// Category total de unidades agrupadas por una etiqueta categórica.
// Key vacío es válido y significa "sin etiqueta".
type Category struct {
	Key      string
	Quantity int
}

// Rank agrupa items por la etiqueta que devuelve key, suma qty por grupo y devuelve
// los grupos ordenados de mayor a menor cantidad. Los empates conservan el orden de
// primera aparición (orden estable).
func Rank[T any](items []T, key func(T) string, qty func(T) int) []Category {
	index := make(map[string]int, len(items))
	groups := make([]Category, 0)
	for _, it := range items {
		k := key(it)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Category{Key: k})
		}
		groups[i].Quantity += qty(it)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Quantity > groups[j].Quantity
	})
	return groups
}

// Sum agrupa igual que Rank pero devuelve un mapa etiqueta → cantidad, sin orden.
// Quien necesite el resultado ordenado debe reordenarlo explícitamente (ver Sorted).
func Sum[T any](items []T, key func(T) string, qty func(T) int) map[string]int {
	out := make(map[string]int)
	for _, it := range items {
		out[key(it)] += qty(it)
	}
	return out
}

// Sorted convierte un mapa de Sum en agregados de mayor a menor cantidad.
// Como el mapa no conserva orden de aparición, los empates se resuelven por etiqueta.
func Sorted(m map[string]int) []Category {
	out := make([]Category, 0, len(m))
	for k, q := range m {
		out = append(out, Category{Key: k, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Total suma las cantidades de una lista de agregados.
func Total(cats []Category) int {
	n := 0
	for _, c := range cats {
		n += c.Quantity
	}
	return n
}
