package postgres

import "github.com/shopspring/decimal"

// units convierte una cantidad NUMERIC a unidades enteras, fila por fila
// (redondeo a la unidad más cercana, medio se aleja de cero). Los totales se
// suman sobre filas ya redondeadas.
func units(d decimal.Decimal) int {
	return int(d.Round(0).IntPart())
}
