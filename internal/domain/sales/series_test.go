package sales_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-insights/internal/domain"
	"github.com/jhoicas/stock-insights/internal/domain/entity"
	"github.com/jhoicas/stock-insights/internal/domain/sales"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sale(t time.Time, qty int) entity.SaleRecord {
	return entity.SaleRecord{Date: t, Size: "M", Color: "negro", Quantity: qty}
}

func TestBuildDailySeries_LongitudYDiasConsecutivos(t *testing.T) {
	end := day(2024, time.March, 2)

	for _, window := range []int{1, 2, 7, 30, 31} {
		series, err := sales.BuildDailySeries(nil, window, end)
		require.NoError(t, err)
		require.Len(t, series, window)

		assert.Equal(t, end, series[len(series)-1].Day, "la serie termina en la fecha final")
		for i := 1; i < len(series); i++ {
			assert.Equal(t, series[i-1].Day.AddDate(0, 0, 1), series[i].Day, "días consecutivos")
		}
	}
}

func TestBuildDailySeries_RellenaCerosYSumaDuplicados(t *testing.T) {
	end := day(2024, time.January, 10)
	records := []entity.SaleRecord{
		sale(day(2024, time.January, 8), 2),
		sale(day(2024, time.January, 8).Add(15*time.Hour), 3), // misma fecha, otra hora
		sale(day(2024, time.January, 10), 1),
	}

	series, err := sales.BuildDailySeries(records, 4, end)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 5, 0, 1}, sales.Quantities(series))
	assert.Equal(t, day(2024, time.January, 7), series[0].Day)
}

func TestBuildDailySeries_IgnoraFueraDeRango(t *testing.T) {
	end := day(2024, time.January, 10)
	inside := []entity.SaleRecord{
		sale(day(2024, time.January, 4), 4),
		sale(day(2024, time.January, 10), 6),
	}
	outside := []entity.SaleRecord{
		sale(day(2024, time.January, 3), 100),
		sale(day(2024, time.January, 11), 50),
	}
	all := append(append([]entity.SaleRecord{}, inside...), outside...)

	series, err := sales.BuildDailySeries(all, 7, end)
	require.NoError(t, err)

	total := 0
	for _, r := range all {
		total += r.Quantity
	}
	outsideSum := 150
	assert.Equal(t, 10, sales.SeriesTotal(series))
	assert.Equal(t, total, sales.SeriesTotal(series)+outsideSum, "ningún registro se pierde ni se cuenta dos veces")
}

func TestBuildDailySeries_VentanaDeUnDia(t *testing.T) {
	end := day(2024, time.May, 5)
	records := []entity.SaleRecord{sale(end, 3), sale(end, 4), sale(end.AddDate(0, 0, -1), 9)}

	series, err := sales.BuildDailySeries(records, 1, end.Add(20*time.Hour))
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, 7, series[0].Quantity)
}

func TestBuildDailySeries_VentanaNoPositiva(t *testing.T) {
	for _, window := range []int{0, -3} {
		_, err := sales.BuildDailySeries(nil, window, day(2024, time.May, 5))
		assert.ErrorIs(t, err, domain.ErrInvalidWindow)
	}
}

func TestBuildDailySeries_FechaFinalPorDefectoEsHoy(t *testing.T) {
	series, err := sales.BuildDailySeries(nil, 3, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, sales.Day(time.Now()), series[2].Day)
}

func TestRange(t *testing.T) {
	start, end, err := sales.Range(30, day(2024, time.March, 1).Add(10*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.February, 1), start) // 2024 es bisiesto
	assert.Equal(t, day(2024, time.March, 1), end)
}
