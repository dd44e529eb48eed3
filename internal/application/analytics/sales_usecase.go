package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-insights/internal/application/dto"
	"github.com/jhoicas/stock-insights/internal/domain/repository"
	"github.com/jhoicas/stock-insights/internal/domain/sales"
	"github.com/jhoicas/stock-insights/pkg/logger"
)

// SalesDefaults ventanas por defecto cuando la petición no las indica.
type SalesDefaults struct {
	WindowDays int
	Span       int
}

// SalesUseCase arma la tendencia de ventas de un período:
//   - Serie diaria con ceros en los días sin ventas.
//   - Media móvil hacia atrás sobre la serie.
//   - Unidades por talla y por color (de mayor a menor).
type SalesUseCase struct {
	salesRepo repository.SalesRecordRepository
	defaults  SalesDefaults
	log       *logger.Logger
}

// NewSalesUseCase construye el caso de uso. Ventanas no positivas caen a 30 días / 7 días.
func NewSalesUseCase(salesRepo repository.SalesRecordRepository, defaults SalesDefaults, log *logger.Logger) *SalesUseCase {
	if defaults.WindowDays <= 0 {
		defaults.WindowDays = 30
	}
	if defaults.Span <= 0 {
		defaults.Span = sales.DefaultSpan
	}
	return &SalesUseCase{salesRepo: salesRepo, defaults: defaults, log: log.Component("sales_trend")}
}

// GetSalesTrend devuelve la serie de window_days días que termina en end_date.
func (uc *SalesUseCase) GetSalesTrend(
	ctx context.Context,
	companyID string,
	req dto.SalesTrendRequest,
) (*dto.SalesTrendDTO, error) {
	window := req.WindowDays
	if window <= 0 {
		window = uc.defaults.WindowDays
	}
	span := req.Span
	if span <= 0 {
		span = uc.defaults.Span
	}
	end, err := parseDay(req.EndDate)
	if err != nil {
		return nil, err
	}
	start, last, err := sales.Range(window, end)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	records, err := uc.salesRepo.ListSales(ctx, companyID, start, last, repository.RecordFilter{Product: req.Product})
	if err != nil {
		return nil, fmt.Errorf("sales trend: ventas: %w", err)
	}

	series, err := sales.BuildDailySeries(records, window, last)
	if err != nil {
		return nil, err
	}
	smoothed := sales.MovingAverage(sales.Quantities(series), span)

	points := make([]dto.DailySalesDTO, len(series))
	for i, p := range series {
		points[i] = dto.DailySalesDTO{
			Date:      p.Day.Format(dateLayout),
			Quantity:  p.Quantity,
			MovingAvg: smoothed[i],
		}
	}

	uc.log.Debug().
		Str("company_id", companyID).
		Int("records", len(records)).
		Int("window_days", window).
		Dur("elapsed", time.Since(began)).
		Msg("tendencia de ventas calculada")

	return &dto.SalesTrendDTO{
		Period: dto.PeriodDTO{
			StartDate: start.Format(dateLayout),
			EndDate:   last.Format(dateLayout),
		},
		WindowDays: window,
		Span:       span,
		Total:      sales.SeriesTotal(series),
		Series:     points,
		BySize:     categoryDTOs(sales.BySize(records)),
		ByColor:    categoryDTOs(sales.ByColor(records)),
	}, nil
}
