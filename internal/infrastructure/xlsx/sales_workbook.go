// Package xlsx exporta la tendencia de ventas a un libro de Excel.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stock-insights/internal/application/analytics"
	"github.com/jhoicas/stock-insights/internal/application/dto"
)

// Hojas del libro.
const (
	SheetSummary = "Resumen"
	SheetSeries  = "Serie diaria"
	SheetBySize  = "Por talla"
	SheetByColor = "Por color"
)

// SalesWorkbook implementa analytics.SalesWorkbookExporter con excelize.
type SalesWorkbook struct{}

var _ analytics.SalesWorkbookExporter = (*SalesWorkbook)(nil)

// NewSalesWorkbook construye el exportador.
func NewSalesWorkbook() *SalesWorkbook { return &SalesWorkbook{} }

// ExportSalesTrend escribe resumen, serie diaria con media móvil y desgloses por talla y color.
func (w *SalesWorkbook) ExportSalesTrend(_ context.Context, trend *dto.SalesTrendDTO) ([]byte, error) {
	if trend == nil {
		return nil, fmt.Errorf("xlsx: tendencia vacía")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return nil, fmt.Errorf("xlsx: hoja resumen: %w", err)
	}
	for _, name := range []string{SheetSeries, SheetBySize, SheetByColor} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("xlsx: hoja %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	avgStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	// ── Resumen ────────────────────────────────────────────────────────────────
	summary := [][]interface{}{
		{"Desde", trend.Period.StartDate},
		{"Hasta", trend.Period.EndDate},
		{"Días", trend.WindowDays},
		{"Media móvil (días)", trend.Span},
		{"Unidades vendidas", trend.Total},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", fmt.Sprintf("A%d", len(summary)), bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo resumen: %w", err)
	}

	// ── Serie diaria ───────────────────────────────────────────────────────────
	series := make([][]interface{}, 0, len(trend.Series)+1)
	series = append(series, []interface{}{"Fecha", "Unidades", "Media móvil"})
	for _, p := range trend.Series {
		series = append(series, []interface{}{p.Date, p.Quantity, p.MovingAvg})
	}
	if err := writeRows(f, SheetSeries, series); err != nil {
		return nil, err
	}
	if len(trend.Series) > 0 {
		if err := f.SetCellStyle(SheetSeries, "C2", fmt.Sprintf("C%d", len(series)), avgStyle); err != nil {
			return nil, fmt.Errorf("xlsx: estilo serie: %w", err)
		}
	}

	// ── Desgloses ──────────────────────────────────────────────────────────────
	if err := writeRows(f, SheetBySize, categoryRows("Talla", trend.BySize)); err != nil {
		return nil, err
	}
	if err := writeRows(f, SheetByColor, categoryRows("Color", trend.ByColor)); err != nil {
		return nil, err
	}

	for _, name := range []string{SheetSeries, SheetBySize, SheetByColor} {
		if err := f.SetCellStyle(name, "A1", "C1", bold); err != nil {
			return nil, fmt.Errorf("xlsx: encabezado %s: %w", name, err)
		}
		if err := f.SetColWidth(name, "A", "C", 16); err != nil {
			return nil, fmt.Errorf("xlsx: ancho %s: %w", name, err)
		}
	}
	if err := f.SetColWidth(SheetSummary, "A", "A", 22); err != nil {
		return nil, fmt.Errorf("xlsx: ancho resumen: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func categoryRows(header string, cats []dto.CategoryDTO) [][]interface{} {
	rows := make([][]interface{}, 0, len(cats)+1)
	rows = append(rows, []interface{}{header, "Unidades"})
	for _, c := range cats {
		key := c.Key
		if key == "" {
			key = "(sin etiqueta)"
		}
		rows = append(rows, []interface{}{key, c.Quantity})
	}
	return rows
}

// writeRows escribe las filas desde A1.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("xlsx: celda: %w", err)
		}
		values := r
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("xlsx: fila %d de %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
