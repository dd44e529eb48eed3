package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-insights/internal/application/dto"
	"github.com/jhoicas/stock-insights/pkg/logger"
)

// ReportUseCase orquesta los reportes descargables. Recalcula los datos con los demás
// casos de uso y delega el formato en los puertos de renderizado.
type ReportUseCase struct {
	salesUC  *SalesUseCase
	invUC    *InventoryUseCase
	alertUC  *AlertUseCase
	pdf      StockReportRenderer
	workbook SalesWorkbookExporter
	log      *logger.Logger
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	salesUC *SalesUseCase,
	invUC *InventoryUseCase,
	alertUC *AlertUseCase,
	pdf StockReportRenderer,
	workbook SalesWorkbookExporter,
	log *logger.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		salesUC:  salesUC,
		invUC:    invUC,
		alertUC:  alertUC,
		pdf:      pdf,
		workbook: workbook,
		log:      log.Component("reports"),
	}
}

// StockReportPDF reporte de existencias: totales, mapa de calor color×talla,
// bodegas y semáforo de cobertura.
func (uc *ReportUseCase) StockReportPDF(ctx context.Context, companyID string, req dto.AlertsRequest) ([]byte, error) {
	filter := dto.InventoryRequest{Product: req.Product, Warehouse: req.Warehouse}

	snap, err := uc.invUC.GetSnapshot(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	warehouses, err := uc.invUC.GetWarehouses(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	alerts, err := uc.alertUC.GetStockAlerts(ctx, companyID, req)
	if err != nil {
		return nil, err
	}

	report := StockReport{
		ID:          uuid.New(),
		CompanyID:   companyID,
		GeneratedAt: time.Now(),
		Snapshot:    snap,
		Warehouses:  warehouses,
		Alerts:      alerts,
	}
	out, err := uc.pdf.RenderStockReport(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("reporte de existencias: %w", err)
	}
	uc.log.Info().
		Str("report_id", report.ID.String()).
		Str("company_id", companyID).
		Int("bytes", len(out)).
		Msg("reporte PDF generado")
	return out, nil
}

// SalesTrendXLSX libro con la serie diaria y los desgloses por talla y color.
func (uc *ReportUseCase) SalesTrendXLSX(ctx context.Context, companyID string, req dto.SalesTrendRequest) ([]byte, error) {
	trend, err := uc.salesUC.GetSalesTrend(ctx, companyID, req)
	if err != nil {
		return nil, err
	}
	out, err := uc.workbook.ExportSalesTrend(ctx, trend)
	if err != nil {
		return nil, fmt.Errorf("libro de ventas: %w", err)
	}
	return out, nil
}
