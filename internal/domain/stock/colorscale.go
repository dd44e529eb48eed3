package stock

import (
	"fmt"
	"image/color"
	"math"
)

// Extremos del mapa de calor: blanco para 0, verde para el máximo.
var (
	HeatLow  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	HeatHigh = color.RGBA{R: 46, G: 160, B: 67, A: 255}
)

// HeatColor interpola linealmente entre HeatLow y HeatHigh según value/max,
// acotado a [0, 1]. max se acota a 1 como mínimo. El color siempre es opaco.
func HeatColor(value, max int) color.RGBA {
	if max < 1 {
		max = 1
	}
	ratio := math.Min(math.Max(float64(value)/float64(max), 0), 1)
	return color.RGBA{
		R: lerp(HeatLow.R, HeatHigh.R, ratio),
		G: lerp(HeatLow.G, HeatHigh.G, ratio),
		B: lerp(HeatLow.B, HeatHigh.B, ratio),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Hex formato #rrggbb para el frontend.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
