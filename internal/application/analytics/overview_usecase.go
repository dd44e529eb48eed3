package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-insights/internal/application/dto"
	"github.com/jhoicas/stock-insights/internal/domain/repository"
	"github.com/jhoicas/stock-insights/internal/domain/sales"
	"github.com/jhoicas/stock-insights/internal/domain/stock"
)

const overviewTop = 3 // tallas y colores en el widget del resumen

// OverviewUseCase genera el resumen del día y de la semana para el tablero.
//
// Fuente de datos: los mismos repositorios de registros (consultas read-only).
// Existencias y ventas de la semana se leen en paralelo.
type OverviewUseCase struct {
	salesRepo  repository.SalesRecordRepository
	invRepo    repository.InventoryRecordRepository
	thresholds stock.Thresholds
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(
	salesRepo repository.SalesRecordRepository,
	invRepo repository.InventoryRecordRepository,
	thresholds stock.Thresholds,
) *OverviewUseCase {
	return &OverviewUseCase{salesRepo: salesRepo, invRepo: invRepo, thresholds: thresholds}
}

// GetOverview construye el OverviewDTO para la empresa indicada a la fecha asOf
// (YYYY-MM-DD; vacío = hoy).
//
//  1. Ventas de los últimos 7 días → hoy, semana, velocidad, top tallas/colores
//  2. Existencias                  → totales y conteo del semáforo
func (uc *OverviewUseCase) GetOverview(
	ctx context.Context,
	companyID string,
	asOf string,
) (*dto.OverviewDTO, error) {
	now, err := parseDay(asOf)
	if err != nil {
		return nil, err
	}
	if now.IsZero() {
		now = time.Now()
	}

	window := stock.VelocityWindowDays
	if uc.thresholds.MinSalesWindowDays > window {
		window = uc.thresholds.MinSalesWindowDays
	}
	inv, sold, err := fetchStockAndSales(ctx, uc.invRepo, uc.salesRepo, companyID,
		repository.RecordFilter{}, window, now)
	if err != nil {
		return nil, fmt.Errorf("resumen: %w", err)
	}

	// ── Ventas de la semana ────────────────────────────────────────────────────
	week, err := sales.BuildDailySeries(sold, stock.VelocityWindowDays, now)
	if err != nil {
		return nil, err
	}
	weekStart := week[0].Day.Format(dateLayout)
	weekSales := sold[:0:0]
	for _, r := range sold {
		if r.Date.Format(dateLayout) >= weekStart {
			weekSales = append(weekSales, r)
		}
	}

	// ── Existencias y semáforo ─────────────────────────────────────────────────
	snap := stock.BuildSnapshot(inv)
	_, counts := evaluateAlerts(inv, sold, now, uc.thresholds)

	return &dto.OverviewDTO{
		AsOf:           sales.Day(now).Format(dateLayout),
		TodayUnits:     week[len(week)-1].Quantity,
		WeekUnits:      sales.SeriesTotal(week),
		DailyVelocity:  stock.DailyAverageVelocity(sold, now),
		TotalAvailable: snap.TotalAvailable,
		TotalOnHand:    snap.TotalOnHand,
		AlertCounts:    counts,
		TopSizes:       topN(categoryDTOs(sales.BySize(weekSales)), overviewTop),
		TopColors:      topN(categoryDTOs(sales.ByColor(weekSales)), overviewTop),
		DateLabel:      monthLabel(now),
	}, nil
}
