// Package pdf implementa el reporte PDF de existencias.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de existencias │ Fecha + N° de reporte      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Disponible / En bodega / SKUs en rojo              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MAPA DE CALOR: filas = colores, columnas = tallas           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BODEGAS: Bodega | Disponible                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SEMÁFORO: Producto | Color | Talla | Disp. | Vel. | Días    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stock-insights/internal/application/analytics"
	"github.com/jhoicas/stock-insights/internal/application/dto"
	"github.com/jhoicas/stock-insights/internal/domain/stock"
)

// heatColumns tallas por bloque del mapa de calor (2 columnas de etiqueta + 10 = grilla de 12).
const heatColumns = 10

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorRed     = &props.Color{Red: 200, Green: 30, Blue: 30}
	colorYellow  = &props.Color{Red: 190, Green: 140, Blue: 0}
	colorGreen   = &props.Color{Red: 30, Green: 130, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// StockReportGenerator implementa analytics.StockReportRenderer usando Maroto v2.
type StockReportGenerator struct{}

var _ analytics.StockReportRenderer = (*StockReportGenerator)(nil)

// NewStockReportGenerator construye el generador.
func NewStockReportGenerator() *StockReportGenerator { return &StockReportGenerator{} }

// RenderStockReport genera el PDF y devuelve sus bytes.
func (g *StockReportGenerator) RenderStockReport(_ context.Context, report analytics.StockReport) ([]byte, error) {
	if report.Snapshot == nil || report.Alerts == nil {
		return nil, fmt.Errorf("pdf: reporte incompleto")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de existencias", true).
		WithAuthor(report.CompanyID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("MAPA DE CALOR COLOR × TALLA (disponible)"))
	m.AddRows(heatMapRows(report.Snapshot)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionRow("DISPONIBLE POR BODEGA"))
	m.AddRows(warehouseRows(report.Warehouses)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionRow(fmt.Sprintf("SEMÁFORO DE COBERTURA (rojo < %d días, amarillo < %d días)",
		report.Alerts.Thresholds.RedDays, report.Alerts.Thresholds.YellowDays)))
	m.AddRows(alertHeaderRow())
	m.AddRows(alertRows(report.Alerts.Alerts)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha + identificador del reporte (der).
func headerRow(report analytics.StockReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("REPORTE DE EXISTENCIAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Corte: "+report.Alerts.AsOf, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("N° "+report.ID.String(), props.Text{
				Size: 6.5, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// totalsRow: disponible, en bodega y SKUs en rojo.
func totalsRow(report analytics.StockReport) core.Row {
	kpi := func(label, value string, color *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: color, Top: 6,
			}),
		)
	}
	red := report.Alerts.Counts[stock.AlertRed.String()]
	return row.New(16).Add(
		kpi("Disponible", formatUnits(report.Snapshot.TotalAvailable), colorPrimary),
		kpi("En bodega", formatUnits(report.Snapshot.TotalOnHand), colorPrimary),
		kpi("SKUs en rojo", strconv.Itoa(red), colorRed),
	)
}

func sectionRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
	))
}

// heatMapRows: la matriz se parte en bloques de heatColumns tallas para no exceder la grilla.
func heatMapRows(snap *dto.InventorySnapshotDTO) []core.Row {
	if len(snap.Grid) == 0 {
		return []core.Row{emptyRow("Sin existencias")}
	}
	var rows []core.Row
	for from := 0; from < len(snap.Sizes); from += heatColumns {
		to := min(from+heatColumns, len(snap.Sizes))

		header := row.New(6).Add(col.New(2))
		for _, s := range snap.Sizes[from:to] {
			header.Add(col.New(1).Add(text.New(label(s), props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 1,
			})))
		}
		rows = append(rows, header)

		for _, cells := range snap.Grid {
			r := row.New(6).Add(col.New(2).Add(text.New(label(cells[0].Color), props.Text{
				Size: 7, Top: 1, Left: 1,
			})))
			for _, cell := range cells[from:to] {
				r.Add(heatCell(cell.Available, snap.MaxCell))
			}
			rows = append(rows, r)
		}
		rows = append(rows, row.New(2))
	}
	return rows
}

// heatCell celda con fondo según la escala de calor.
func heatCell(value, maxValue int) core.Col {
	c := stock.HeatColor(value, maxValue)
	fill := &props.Color{Red: int(c.R), Green: int(c.G), Blue: int(c.B)}
	return col.New(1).
		Add(text.New(strconv.Itoa(value), props.Text{Size: 7, Align: align.Center, Top: 1})).
		WithStyle(&props.Cell{BackgroundColor: fill})
}

func warehouseRows(groups []dto.WarehouseGroupDTO) []core.Row {
	if len(groups) == 0 {
		return []core.Row{emptyRow("Sin bodegas")}
	}
	rows := make([]core.Row, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(text.New(label(g.Warehouse), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(formatUnits(g.Available), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}

// alertHeaderRow: cabecera de la tabla del semáforo con fondo azul.
func alertHeaderRow() core.Row {
	h := func(lbl string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(lbl, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Color", 2, align.Left),
		h("Talla", 1, align.Center),
		h("Disp.", 1, align.Right),
		h("Vel./día", 1, align.Right),
		h("Días", 1, align.Right),
		h("Nivel", 2, align.Center),
	)
}

// alertRows: una fila por SKU, en el orden del semáforo.
func alertRows(alerts []dto.StockAlertDTO) []core.Row {
	if len(alerts) == 0 {
		return []core.Row{emptyRow("Sin SKUs para evaluar")}
	}
	rows := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		days := "—"
		if a.DaysOfCover != nil {
			days = strconv.Itoa(*a.DaysOfCover)
		}
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(label(a.ProductName), props.Text{Size: 7.5, Top: 1, Left: 1})),
			col.New(2).Add(text.New(label(a.Color), props.Text{Size: 7.5, Top: 1, Left: 1})),
			col.New(1).Add(text.New(label(a.Size), props.Text{Size: 7.5, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(strconv.Itoa(a.Available), props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(strconv.FormatFloat(a.DailyVelocity, 'f', 2, 64), props.Text{
				Size: 7.5, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(1).Add(text.New(days, props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(levelLabel(a.Level), props.Text{
				Style: fontstyle.Bold, Size: 7.5, Align: align.Center, Top: 1, Color: levelColor(a.Level),
			})),
		))
	}
	return rows
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func levelLabel(level string) string {
	switch level {
	case "red":
		return "ROJO"
	case "yellow":
		return "AMARILLO"
	case "green":
		return "VERDE"
	default:
		return "SIN VENTAS"
	}
}

func levelColor(level string) *props.Color {
	switch level {
	case "red":
		return colorRed
	case "yellow":
		return colorYellow
	case "green":
		return colorGreen
	default:
		return colorGray
	}
}

// label muestra las etiquetas vacías de forma legible.
func label(s string) string {
	if s != "" {
		return s
	}
	return "—"
}

// formatUnits inserta puntos de miles. Ej: 25000 → "25.000", -1500 → "-1.500".
func formatUnits(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}
	l := len(s)
	if l <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, l+l/3)
	for i, c := range []byte(s) {
		if i > 0 && (l-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
