package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUnits_RedondeaCadaFila(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"2.4", 2},
		{"2.5", 3},
		{"2.6", 3},
		{"14.00", 14},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, units(decimal.RequireFromString(tc.in)), tc.in)
	}

	// Dos líneas de 2.6 suman 6 unidades (3 + 3), no round(5.2) = 5.
	assert.Equal(t, 6, units(decimal.RequireFromString("2.6"))+units(decimal.RequireFromString("2.6")))
}
