package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-insights/internal/domain/stock"
)

func TestHeatColor_Extremos(t *testing.T) {
	assert.Equal(t, stock.HeatLow, stock.HeatColor(0, 100))
	assert.Equal(t, stock.HeatHigh, stock.HeatColor(100, 100))
	assert.Equal(t, stock.HeatHigh, stock.HeatColor(500, 100), "ratio acotado a 1")
	assert.Equal(t, stock.HeatLow, stock.HeatColor(-5, 100), "ratio acotado a 0")
}

func TestHeatColor_MaximoAcotadoAUno(t *testing.T) {
	assert.Equal(t, stock.HeatHigh, stock.HeatColor(1, 0))
	assert.Equal(t, stock.HeatLow, stock.HeatColor(0, -10))
}

func TestHeatColor_MonotonoYOpaco(t *testing.T) {
	prev := stock.HeatColor(0, 250)
	for v := 1; v <= 250; v++ {
		c := stock.HeatColor(v, 250)
		assert.Equal(t, uint8(255), c.A)
		assert.LessOrEqual(t, c.R, prev.R)
		assert.LessOrEqual(t, c.G, prev.G)
		assert.LessOrEqual(t, c.B, prev.B)
		prev = c
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ffffff", stock.Hex(stock.HeatLow))
	assert.Equal(t, "#2ea043", stock.Hex(stock.HeatHigh))
}
