// Package analytics contiene los casos de uso de analítica de ventas e inventario:
// serie diaria con media móvil, desgloses por talla/color, foto de inventario,
// agrupación por bodega, semáforo de cobertura, resumen y reportes exportables.
//
// Los casos de uso solo leen registros de los repositorios y delegan todo el cálculo
// en los paquetes de dominio sales y stock; no guardan estado entre llamadas.
package analytics

import (
	"fmt"
	"time"

	"github.com/jhoicas/stock-insights/internal/application/dto"
	"github.com/jhoicas/stock-insights/internal/domain"
	"github.com/jhoicas/stock-insights/internal/domain/aggregate"
)

const dateLayout = "2006-01-02"

// parseDay convierte YYYY-MM-DD en fecha local. Vacío devuelve el tiempo cero
// (los constructores de series lo interpretan como hoy).
func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q, formato esperado YYYY-MM-DD", domain.ErrInvalidInput, s)
	}
	return t, nil
}

func categoryDTOs(cats []aggregate.Category) []dto.CategoryDTO {
	out := make([]dto.CategoryDTO, len(cats))
	for i, c := range cats {
		out[i] = dto.CategoryDTO{Key: c.Key, Quantity: c.Quantity}
	}
	return out
}

func topN(cats []dto.CategoryDTO, n int) []dto.CategoryDTO {
	if len(cats) > n {
		return cats[:n]
	}
	return cats
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
