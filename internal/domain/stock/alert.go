package stock

import (
	"math"
	"time"

	"github.com/jhoicas/stock-insights/internal/domain/entity"
	"github.com/jhoicas/stock-insights/internal/domain/sales"
)

// AlertLevel semáforo de riesgo de quiebre de stock.
// AlertUnknown no es "sano": indica que no hay velocidad de venta para estimar cobertura.
type AlertLevel int

const (
	AlertUnknown AlertLevel = iota
	AlertGreen
	AlertYellow
	AlertRed
)

// String devuelve el nombre usado en la API y en las métricas.
func (l AlertLevel) String() string {
	switch l {
	case AlertGreen:
		return "green"
	case AlertYellow:
		return "yellow"
	case AlertRed:
		return "red"
	default:
		return "unknown"
	}
}

// MarshalText serializa el nivel como texto en JSON.
func (l AlertLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Severity orden de urgencia para listados: rojo, amarillo, desconocido, verde.
func (l AlertLevel) Severity() int {
	switch l {
	case AlertRed:
		return 3
	case AlertYellow:
		return 2
	case AlertUnknown:
		return 1
	default:
		return 0
	}
}

const (
	// VelocityWindowDays ventana de la velocidad diaria promedio.
	VelocityWindowDays = 7
	// MinVelocity piso de la velocidad diaria promedio: evita dividir por cero.
	MinVelocity = 0.01
	// InfiniteCover centinela de cobertura "infinita" (sin ventas, sin riesgo calculable).
	InfiniteCover = math.MaxInt
)

// Thresholds umbrales del semáforo (configuración, no estado derivado).
type Thresholds struct {
	RedDays            int
	YellowDays         int
	MinSalesWindowDays int
}

// DefaultThresholds rojo < 3 días, amarillo < 7 días, velocidad sobre 7 días.
func DefaultThresholds() Thresholds {
	return Thresholds{RedDays: 3, YellowDays: 7, MinSalesWindowDays: VelocityWindowDays}
}

// SalesVelocity unidades vendidas por día en los últimos days días calendario
// terminando en today (inclusive), sin piso. today cero significa hoy.
func SalesVelocity(records []entity.SaleRecord, today time.Time, days int) float64 {
	series, err := sales.BuildDailySeries(records, days, today)
	if err != nil {
		return 0
	}
	return float64(sales.SeriesTotal(series)) / float64(days)
}

// DailyAverageVelocity ventas de today-6 a today divididas por 7, con piso MinVelocity.
func DailyAverageVelocity(records []entity.SaleRecord, today time.Time) float64 {
	return math.Max(SalesVelocity(records, today, VelocityWindowDays), MinVelocity)
}

// DaysOfCover días que alcanza el disponible a la velocidad dada, redondeado hacia arriba.
// Con velocidad <= 0 devuelve InfiniteCover.
func DaysOfCover(available int, dailyVelocity float64) int {
	if dailyVelocity <= 0 {
		return InfiniteCover
	}
	doc := math.Ceil(float64(available) / dailyVelocity)
	if doc >= float64(InfiniteCover) {
		// saturar sin confundirse con el centinela
		return InfiniteCover - 1
	}
	return int(doc)
}

// LevelFromDaysOfCover clasifica la cobertura. Los bordes van al nivel menos severo:
// doc == RedDays es amarillo y doc == YellowDays es verde.
func LevelFromDaysOfCover(doc int, t Thresholds) AlertLevel {
	switch {
	case doc == InfiniteCover:
		return AlertUnknown
	case doc < t.RedDays:
		return AlertRed
	case doc < t.YellowDays:
		return AlertYellow
	default:
		return AlertGreen
	}
}

// Assessment resultado de evaluar un SKU.
type Assessment struct {
	Available   int
	Velocity    float64 // 0 si no hubo ventas en la ventana
	DaysOfCover int
	Level       AlertLevel
}

// Assess evalúa el riesgo de quiebre de un SKU con sus ventas recientes.
// La ventana de velocidad es t.MinSalesWindowDays (7 si no es positiva). Sin ventas en la
// ventana el nivel es AlertUnknown; con ventas, la velocidad se acota por MinVelocity.
func Assess(available int, records []entity.SaleRecord, today time.Time, t Thresholds) Assessment {
	window := t.MinSalesWindowDays
	if window <= 0 {
		window = VelocityWindowDays
	}
	velocity := SalesVelocity(records, today, window)
	if velocity > 0 {
		velocity = math.Max(velocity, MinVelocity)
	} else {
		velocity = 0
	}
	doc := DaysOfCover(available, velocity)
	return Assessment{
		Available:   available,
		Velocity:    velocity,
		DaysOfCover: doc,
		Level:       LevelFromDaysOfCover(doc, t),
	}
}
