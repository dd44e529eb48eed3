package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-insights/internal/domain/entity"
	"github.com/jhoicas/stock-insights/internal/domain/stock"
)

var today = time.Date(2024, time.August, 20, 18, 30, 0, 0, time.UTC)

func soldDaysAgo(days, qty int) entity.SaleRecord {
	return entity.SaleRecord{Date: today.AddDate(0, 0, -days), Quantity: qty}
}

func TestDaysOfCover_VelocidadCeroEsInfinita(t *testing.T) {
	doc := stock.DaysOfCover(10, 0)
	assert.Equal(t, stock.InfiniteCover, doc)
	assert.Equal(t, stock.AlertUnknown, stock.LevelFromDaysOfCover(doc, stock.DefaultThresholds()))

	assert.Equal(t, stock.InfiniteCover, stock.DaysOfCover(10, -1))
}

func TestDaysOfCover_RedondeaHaciaArriba(t *testing.T) {
	assert.Equal(t, 4, stock.DaysOfCover(10, 3))
	assert.Equal(t, 5, stock.DaysOfCover(10, 2))
	assert.Equal(t, 0, stock.DaysOfCover(0, 2))
	assert.Equal(t, 1000, stock.DaysOfCover(10, stock.MinVelocity))
}

func TestLevelFromDaysOfCover_BordesVanAlNivelMenosSevero(t *testing.T) {
	th := stock.Thresholds{RedDays: 3, YellowDays: 7}

	cases := []struct {
		doc  int
		want stock.AlertLevel
	}{
		{0, stock.AlertRed},
		{2, stock.AlertRed},
		{3, stock.AlertYellow}, // doc == RedDays
		{6, stock.AlertYellow},
		{7, stock.AlertGreen}, // doc == YellowDays
		{365, stock.AlertGreen},
		{stock.InfiniteCover, stock.AlertUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stock.LevelFromDaysOfCover(tc.doc, th), "doc=%d", tc.doc)
	}
}

func TestDailyAverageVelocity(t *testing.T) {
	records := []entity.SaleRecord{
		soldDaysAgo(0, 4),
		soldDaysAgo(3, 6),
		soldDaysAgo(6, 4),
		soldDaysAgo(7, 100), // fuera de la ventana de 7 días
	}
	assert.InDelta(t, 2.0, stock.DailyAverageVelocity(records, today), 1e-9)
}

func TestDailyAverageVelocity_PisoSinVentas(t *testing.T) {
	assert.Equal(t, stock.MinVelocity, stock.DailyAverageVelocity(nil, today))
	assert.Equal(t, stock.MinVelocity, stock.DailyAverageVelocity([]entity.SaleRecord{soldDaysAgo(30, 9)}, today))
}

func TestAssess(t *testing.T) {
	th := stock.DefaultThresholds()

	sinVentas := stock.Assess(10, nil, today, th)
	assert.Equal(t, stock.AlertUnknown, sinVentas.Level, "sin ventas no se puede estimar cobertura")
	assert.Equal(t, stock.InfiniteCover, sinVentas.DaysOfCover)
	assert.Zero(t, sinVentas.Velocity)

	// 7 unidades en la semana → 1/día; 2 disponibles → 2 días → rojo
	week := []entity.SaleRecord{soldDaysAgo(1, 3), soldDaysAgo(2, 4)}
	rojo := stock.Assess(2, week, today, th)
	assert.InDelta(t, 1.0, rojo.Velocity, 1e-9)
	assert.Equal(t, 2, rojo.DaysOfCover)
	assert.Equal(t, stock.AlertRed, rojo.Level)

	assert.Equal(t, stock.AlertYellow, stock.Assess(3, week, today, th).Level)
	assert.Equal(t, stock.AlertGreen, stock.Assess(7, week, today, th).Level)
}

func TestAssess_VentanaConfigurable(t *testing.T) {
	th := stock.Thresholds{RedDays: 3, YellowDays: 7, MinSalesWindowDays: 14}
	records := []entity.SaleRecord{soldDaysAgo(10, 14)}

	a := stock.Assess(5, records, today, th)
	assert.InDelta(t, 1.0, a.Velocity, 1e-9)
	assert.Equal(t, stock.AlertYellow, a.Level)
}

func TestAlertLevel_TextoYSeveridad(t *testing.T) {
	assert.Equal(t, "red", stock.AlertRed.String())
	assert.Equal(t, "unknown", stock.AlertUnknown.String())
	b, err := stock.AlertYellow.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "yellow", string(b))

	assert.Greater(t, stock.AlertRed.Severity(), stock.AlertYellow.Severity())
	assert.Greater(t, stock.AlertYellow.Severity(), stock.AlertUnknown.Severity())
	assert.Greater(t, stock.AlertUnknown.Severity(), stock.AlertGreen.Severity())
}
