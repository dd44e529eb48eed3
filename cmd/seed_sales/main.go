// seed_sales genera scripts SQL para poblar sale_lines o inventory_snapshots a partir de
// exportaciones CSV del sistema de caja anterior (ISO-8859-1, separador ';' o ',').
//
// Uso: go run ./cmd/seed_sales <sales|inventory> <company_id> [ruta/archivo.csv]
//
// Columnas esperadas (con fila de encabezado):
//
//	sales:     fecha;producto;talla;color;cantidad
//	inventory: producto;color;talla;bodega;disponible;en_bodega
//
// Las fechas aceptan YYYY-MM-DD o DD/MM/YYYY. Los IDs se derivan del contenido de la fila,
// así que volver a correr el script sobre el mismo archivo no duplica registros.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_sales.sql (o 003_seed_inventory.sql)
package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/stock-insights/pkg/labels"
)

// seedNamespace espacio de nombres de los UUID v5 de las filas sembradas.
var seedNamespace = uuid.MustParse("6f1c1e2a-4d0b-5c47-9a53-2b7f0c8e91d4")

type saleRow struct {
	day      time.Time
	product  string
	size     string
	color    string
	quantity decimal.Decimal
}

type inventoryRow struct {
	product   string
	color     string
	size      string
	warehouse string
	available decimal.Decimal
	onHand    decimal.Decimal
}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Uso: seed_sales <sales|inventory> <company_id> [archivo.csv]")
		os.Exit(2)
	}
	kind, companyArg := os.Args[1], os.Args[2]
	companyID, err := uuid.Parse(companyArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "company_id inválido: %v\n", err)
		os.Exit(2)
	}
	csvPath := kind + ".csv"
	if len(os.Args) > 3 {
		csvPath = os.Args[3]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	records, err := readCSV(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	migrations := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations")

	var (
		outName string
		write   func(io.Writer) (int, error)
	)
	switch kind {
	case "sales":
		rows, err := parseSales(records)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Ventas: %v\n", err)
			os.Exit(1)
		}
		outName = "002_seed_sales.sql"
		write = func(w io.Writer) (int, error) { return len(rows), writeSalesSQL(w, companyID, rows) }
	case "inventory":
		rows, err := parseInventory(records)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Inventario: %v\n", err)
			os.Exit(1)
		}
		outName = "003_seed_inventory.sql"
		write = func(w io.Writer) (int, error) { return len(rows), writeInventorySQL(w, companyID, rows) }
	default:
		fmt.Fprintf(os.Stderr, "tipo desconocido %q (sales|inventory)\n", kind)
		os.Exit(2)
	}

	outPath := filepath.Join(migrations, outName)
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	bw := bufio.NewWriter(out)
	n, err := write(bw)
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d filas\n", outPath, n)
}

// readCSV decodifica el archivo como UTF-8 si es válido y, si no, como ISO-8859-1.
// Detecta el separador por la primera línea y descarta el encabezado.
func readCSV(r io.Reader) ([][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		raw, _, err = transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
		if err != nil {
			return nil, fmt.Errorf("decodificar ISO-8859-1: %w", err)
		}
	}
	text := strings.TrimPrefix(string(raw), "\ufeff")

	header, _, _ := strings.Cut(text, "\n")
	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = ','
	if strings.Count(header, ";") > strings.Count(header, ",") {
		cr.Comma = ';'
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("archivo vacío")
	}
	return records[1:], nil
}

func parseSales(records [][]string) ([]saleRow, error) {
	rows := make([]saleRow, 0, len(records))
	for i, rec := range records {
		line := i + 2 // 1-based, contando el encabezado
		if blank(rec) {
			continue
		}
		if len(rec) < 5 {
			return nil, fmt.Errorf("línea %d: se esperaban 5 columnas, hay %d", line, len(rec))
		}
		day, err := parseDate(rec[0])
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		qty, err := parseQuantity(rec[4])
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		rows = append(rows, saleRow{
			day:      day,
			product:  labels.Normalize(rec[1]),
			size:     labels.Normalize(rec[2]),
			color:    labels.Normalize(rec[3]),
			quantity: qty,
		})
	}
	return rows, nil
}

func parseInventory(records [][]string) ([]inventoryRow, error) {
	rows := make([]inventoryRow, 0, len(records))
	for i, rec := range records {
		line := i + 2
		if blank(rec) {
			continue
		}
		if len(rec) < 6 {
			return nil, fmt.Errorf("línea %d: se esperaban 6 columnas, hay %d", line, len(rec))
		}
		available, err := parseQuantity(rec[4])
		if err != nil {
			return nil, fmt.Errorf("línea %d: disponible: %w", line, err)
		}
		onHand, err := parseQuantity(rec[5])
		if err != nil {
			return nil, fmt.Errorf("línea %d: en bodega: %w", line, err)
		}
		rows = append(rows, inventoryRow{
			product:   labels.Normalize(rec[0]),
			color:     labels.Normalize(rec[1]),
			size:      labels.Normalize(rec[2]),
			warehouse: labels.Normalize(rec[3]),
			available: available,
			onHand:    onHand,
		})
	}
	return rows, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha %q no reconocida", s)
}

// parseQuantity acepta coma decimal ("3,5") y rechaza cantidades negativas.
func parseQuantity(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cantidad %q inválida", s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("cantidad negativa %s", d)
	}
	return d, nil
}

func writeSalesSQL(w io.Writer, companyID uuid.UUID, rows []saleRow) error {
	fmt.Fprintf(w, "-- Líneas de venta importadas del CSV legado (%d filas)\n\n", len(rows))
	ids := saleIDs(companyID, rows)
	for i, r := range rows {
		id := ids[i]
		if _, err := fmt.Fprintf(w,
			"INSERT INTO sale_lines (id, company_id, sold_on, product_name, size, color, quantity)\n"+
				"VALUES ('%s', '%s', '%s', '%s', %s, %s, %s)\nON CONFLICT (id) DO NOTHING;\n",
			id, companyID, r.day.Format("2006-01-02"), escapeSQL(r.product),
			nullable(r.size), nullable(r.color), r.quantity.String()); err != nil {
			return err
		}
	}
	return nil
}

// saleIDs deriva un ID estable por línea a partir de su contenido y del número de
// aparición de ese mismo contenido, no de la posición en el archivo: agregar o
// quitar otras líneas no cambia los IDs ya importados.
func saleIDs(companyID uuid.UUID, rows []saleRow) []uuid.UUID {
	seen := make(map[string]int, len(rows))
	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		content := fmt.Sprintf("sale|%s|%s|%s|%s|%s|%s",
			companyID, r.day.Format("2006-01-02"), r.product, r.size, r.color, r.quantity)
		n := seen[content]
		seen[content] = n + 1
		ids[i] = uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("%s|%d", content, n)))
	}
	return ids
}

func writeInventorySQL(w io.Writer, companyID uuid.UUID, rows []inventoryRow) error {
	fmt.Fprintf(w, "-- Existencias importadas del CSV legado (%d filas)\n\n", len(rows))
	for _, r := range rows {
		key := fmt.Sprintf("inventory|%s|%s|%s|%s|%s", companyID, r.product, r.color, r.size, r.warehouse)
		id := uuid.NewSHA1(seedNamespace, []byte(key))
		if _, err := fmt.Fprintf(w,
			"INSERT INTO inventory_snapshots (id, company_id, product_name, color, size, warehouse_name, available, on_hand)\n"+
				"VALUES ('%s', '%s', '%s', %s, %s, '%s', %s, %s)\n"+
				"ON CONFLICT (id) DO UPDATE SET available = EXCLUDED.available, on_hand = EXCLUDED.on_hand, updated_at = now();\n",
			id, companyID, escapeSQL(r.product), nullable(r.color), nullable(r.size),
			escapeSQL(r.warehouse), r.available.String(), r.onHand.String()); err != nil {
			return err
		}
	}
	return nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// nullable etiqueta vacía → NULL (la lectura la devuelve como "").
func nullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
