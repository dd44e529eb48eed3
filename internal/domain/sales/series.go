// Package sales construye las series diarias de ventas, su suavizado por media móvil
// y los desgloses por talla y color. Todas las funciones son puras: no guardan estado
// y se pueden invocar concurrentemente.
package sales

import (
	"fmt"
	"time"

	"github.com/jhoicas/stock-insights/internal/domain"
	"github.com/jhoicas/stock-insights/internal/domain/entity"
)

// DailyPoint unidades vendidas en un día calendario.
type DailyPoint struct {
	Day      time.Time // medianoche del día, en la zona horaria de la fecha final
	Quantity int
}

// civilDate identifica un día calendario sin hora ni zona.
type civilDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) civilDate {
	y, m, d := t.Date()
	return civilDate{y, m, d}
}

// Day trunca t a la medianoche de su día calendario.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Range devuelve el rango inclusivo [start, end] de exactamente windowDays días
// calendario que termina en end. Un end cero significa hoy.
func Range(windowDays int, end time.Time) (start, last time.Time, err error) {
	if windowDays <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %d", domain.ErrInvalidWindow, windowDays)
	}
	if end.IsZero() {
		end = time.Now()
	}
	last = Day(end)
	start = last.AddDate(0, 0, -(windowDays - 1))
	return start, last, nil
}

// BuildDailySeries agrupa las ventas por día calendario (ignorando la hora) y devuelve
// una serie ascendente con exactamente windowDays puntos terminando en end.
// Los días sin ventas valen 0; los registros fuera del rango se ignoran y las
// ventas repetidas en un mismo día se suman.
func BuildDailySeries(records []entity.SaleRecord, windowDays int, end time.Time) ([]DailyPoint, error) {
	start, _, err := Range(windowDays, end)
	if err != nil {
		return nil, err
	}

	perDay := make(map[civilDate]int, len(records))
	for _, r := range records {
		perDay[dateOf(r.Date)] += r.Quantity
	}

	series := make([]DailyPoint, windowDays)
	for i := range series {
		day := start.AddDate(0, 0, i)
		series[i] = DailyPoint{Day: day, Quantity: perDay[dateOf(day)]}
	}
	return series, nil
}

// Quantities extrae las cantidades de la serie en orden cronológico.
func Quantities(series []DailyPoint) []int {
	out := make([]int, len(series))
	for i, p := range series {
		out[i] = p.Quantity
	}
	return out
}

// SeriesTotal suma todas las unidades de la serie.
func SeriesTotal(series []DailyPoint) int {
	n := 0
	for _, p := range series {
		n += p.Quantity
	}
	return n
}
