package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

var testCompany = uuid.MustParse("00000000-0000-0000-0000-000000000002")

func latin1(t *testing.T, s string) []byte {
	t.Helper()
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestReadCSV_Latin1ConPuntoYComa(t *testing.T) {
	data := latin1(t, "fecha;producto;talla;color;cantidad\n2024-08-20;Camisón;M;Marrón;3\n")

	records, err := readCSV(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"2024-08-20", "Camisón", "M", "Marrón", "3"}, records[0])
}

func TestReadCSV_UTF8ConComas(t *testing.T) {
	records, err := readCSV(strings.NewReader("\ufeffproducto,color,talla,bodega,disponible,en_bodega\nJean,Azul,32,Norte,5,6\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Jean", records[0][0])
}

func TestParseSales(t *testing.T) {
	rows, err := parseSales([][]string{
		{"20/08/2024", " Camiseta ", "", "Rojo", "2,5"},
		{"", "", "", "", ""},
		{"2024-08-21", "Camiseta", "M", "Rojo", "1"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-08-20", rows[0].day.Format("2006-01-02"))
	assert.Equal(t, "Camiseta", rows[0].product)
	assert.Equal(t, "", rows[0].size)
	assert.Equal(t, "2.5", rows[0].quantity.String())
}

func TestParseSales_Errores(t *testing.T) {
	_, err := parseSales([][]string{{"ayer", "Camiseta", "M", "Rojo", "1"}})
	assert.ErrorContains(t, err, "línea 2")

	_, err = parseSales([][]string{{"2024-08-20", "Camiseta", "M", "Rojo", "-1"}})
	assert.ErrorContains(t, err, "negativa")

	_, err = parseSales([][]string{{"2024-08-20", "Camiseta"}})
	assert.ErrorContains(t, err, "5 columnas")
}

func TestWriteSalesSQL_IDsEstablesYNulos(t *testing.T) {
	rows, err := parseSales([][]string{{"2024-08-20", "O'Neill", "", "Rojo", "2"}})
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, writeSalesSQL(&a, testCompany, rows))
	require.NoError(t, writeSalesSQL(&b, testCompany, rows))

	assert.Equal(t, a.String(), b.String(), "misma entrada, mismos IDs")
	assert.Contains(t, a.String(), "'O''Neill', NULL, 'Rojo', 2)")
	assert.Contains(t, a.String(), "ON CONFLICT (id) DO NOTHING")
}

func TestSaleIDs_NoDependenDeLaPosicion(t *testing.T) {
	original, err := parseSales([][]string{
		{"2024-08-20", "Camiseta", "M", "Rojo", "1"},
		{"2024-08-20", "Camiseta", "M", "Rojo", "1"},
	})
	require.NoError(t, err)
	editado, err := parseSales([][]string{
		{"2024-08-19", "Jean", "32", "Azul", "4"},
		{"2024-08-20", "Camiseta", "M", "Rojo", "1"},
		{"2024-08-20", "Camiseta", "M", "Rojo", "1"},
	})
	require.NoError(t, err)

	antes := saleIDs(testCompany, original)
	despues := saleIDs(testCompany, editado)

	assert.NotEqual(t, antes[0], antes[1], "líneas repetidas son ventas distintas")
	assert.Equal(t, antes, despues[1:], "una línea nueva al inicio no cambia los IDs existentes")
}

func TestWriteInventorySQL(t *testing.T) {
	rows, err := parseInventory([][]string{{"Jean", "Azul", "32", "Norte", "5", "6"}})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, writeInventorySQL(&out, testCompany, rows))
	assert.Contains(t, out.String(), "'Jean', 'Azul', '32', 'Norte', 5, 6)")
	assert.Contains(t, out.String(), "DO UPDATE SET available = EXCLUDED.available")
}
