package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/stock-insights/internal/application/dto"
	"github.com/jhoicas/stock-insights/internal/domain/entity"
	"github.com/jhoicas/stock-insights/internal/domain/repository"
	"github.com/jhoicas/stock-insights/internal/domain/sales"
	"github.com/jhoicas/stock-insights/internal/domain/stock"
	"github.com/jhoicas/stock-insights/pkg/logger"
)

// AlertUseCase semáforo de riesgo de quiebre por SKU (producto + color + talla).
//
// Existencias y ventas se leen en paralelo. La velocidad de cada SKU usa las ventas de
// los últimos MinSalesWindowDays días hasta as_of, de todas las bodegas.
type AlertUseCase struct {
	salesRepo  repository.SalesRecordRepository
	invRepo    repository.InventoryRecordRepository
	thresholds stock.Thresholds
	recorder   AlertRecorder
	log        *logger.Logger
}

// NewAlertUseCase construye el caso de uso. recorder puede ser nil.
func NewAlertUseCase(
	salesRepo repository.SalesRecordRepository,
	invRepo repository.InventoryRecordRepository,
	thresholds stock.Thresholds,
	recorder AlertRecorder,
	log *logger.Logger,
) *AlertUseCase {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &AlertUseCase{
		salesRepo:  salesRepo,
		invRepo:    invRepo,
		thresholds: thresholds,
		recorder:   recorder,
		log:        log.Component("stock_alerts"),
	}
}

// Thresholds umbrales con los que se clasifica.
func (uc *AlertUseCase) Thresholds() stock.Thresholds {
	return uc.thresholds
}

// GetStockAlerts evalúa cada SKU y ordena: rojo, amarillo, desconocido, verde;
// dentro de cada nivel por días de cobertura ascendente.
func (uc *AlertUseCase) GetStockAlerts(
	ctx context.Context,
	companyID string,
	req dto.AlertsRequest,
) (*dto.StockAlertsDTO, error) {
	asOf, err := parseDay(req.AsOf)
	if err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}

	inv, sold, err := fetchStockAndSales(ctx, uc.invRepo, uc.salesRepo, companyID,
		repository.RecordFilter{Product: req.Product, Warehouse: req.Warehouse},
		uc.velocityWindow(), asOf)
	if err != nil {
		return nil, fmt.Errorf("alertas: %w", err)
	}

	alerts, counts := evaluateAlerts(inv, sold, asOf, uc.thresholds)
	uc.recorder.ObserveAlerts(counts)

	uc.log.Info().
		Str("company_id", companyID).
		Int("skus", len(alerts)).
		Int("red", counts[stock.AlertRed.String()]).
		Int("yellow", counts[stock.AlertYellow.String()]).
		Msg("semáforo de cobertura calculado")

	return &dto.StockAlertsDTO{
		AsOf: sales.Day(asOf).Format(dateLayout),
		Thresholds: dto.ThresholdsDTO{
			RedDays:            uc.thresholds.RedDays,
			YellowDays:         uc.thresholds.YellowDays,
			MinSalesWindowDays: uc.velocityWindow(),
		},
		Counts: counts,
		Alerts: alerts,
	}, nil
}

func (uc *AlertUseCase) velocityWindow() int {
	if uc.thresholds.MinSalesWindowDays > 0 {
		return uc.thresholds.MinSalesWindowDays
	}
	return stock.VelocityWindowDays
}

// fetchStockAndSales lee existencias y las ventas de la ventana [asOf-window+1, asOf]
// en paralelo. El filtro de bodega no aplica a las ventas.
func fetchStockAndSales(
	ctx context.Context,
	invRepo repository.InventoryRecordRepository,
	salesRepo repository.SalesRecordRepository,
	companyID string,
	filter repository.RecordFilter,
	window int,
	asOf time.Time,
) ([]entity.InventoryRecord, []entity.SaleRecord, error) {
	start, last, err := sales.Range(window, asOf)
	if err != nil {
		return nil, nil, err
	}

	type invResult struct {
		records []entity.InventoryRecord
		err     error
	}
	type salesResult struct {
		records []entity.SaleRecord
		err     error
	}

	invCh := make(chan invResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		r, err := invRepo.ListInventory(ctx, companyID, filter)
		invCh <- invResult{r, err}
	}()
	go func() {
		r, err := salesRepo.ListSales(ctx, companyID, start, last, repository.RecordFilter{Product: filter.Product})
		salesCh <- salesResult{r, err}
	}()

	inv := <-invCh
	sold := <-salesCh

	if inv.err != nil {
		return nil, nil, fmt.Errorf("existencias: %w", inv.err)
	}
	if sold.err != nil {
		return nil, nil, fmt.Errorf("ventas: %w", sold.err)
	}
	return inv.records, sold.records, nil
}

// evaluateAlerts clasifica cada SKU del inventario y devuelve las alertas ordenadas
// junto con el conteo por nivel (todos los niveles presentes, aunque sea en 0).
func evaluateAlerts(
	inv []entity.InventoryRecord,
	sold []entity.SaleRecord,
	asOf time.Time,
	t stock.Thresholds,
) ([]dto.StockAlertDTO, map[string]int) {
	bySKU := stock.SalesBySKU(sold)
	skus := stock.GroupBySKU(inv)

	type scored struct {
		alert    dto.StockAlertDTO
		severity int
		doc      int
	}
	rows := make([]scored, len(skus))
	counts := map[string]int{
		stock.AlertRed.String():     0,
		stock.AlertYellow.String():  0,
		stock.AlertGreen.String():   0,
		stock.AlertUnknown.String(): 0,
	}

	for i, s := range skus {
		a := stock.Assess(s.Available, bySKU[s.SKU], asOf, t)
		var doc *int
		if a.DaysOfCover != stock.InfiniteCover {
			d := a.DaysOfCover
			doc = &d
		}
		level := a.Level.String()
		counts[level]++
		rows[i] = scored{
			alert: dto.StockAlertDTO{
				ProductName:   s.Product,
				Color:         s.Color,
				Size:          s.Size,
				Available:     a.Available,
				DailyVelocity: a.Velocity,
				DaysOfCover:   doc,
				Level:         level,
			},
			severity: a.Level.Severity(),
			doc:      a.DaysOfCover,
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].severity != rows[j].severity {
			return rows[i].severity > rows[j].severity
		}
		return rows[i].doc < rows[j].doc
	})

	alerts := make([]dto.StockAlertDTO, len(rows))
	for i, r := range rows {
		alerts[i] = r.alert
	}
	return alerts, counts
}
