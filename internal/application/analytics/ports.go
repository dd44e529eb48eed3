package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-insights/internal/application/dto"
)

// AlertRecorder registra cuántos SKUs quedaron en cada nivel del semáforo (métricas).
type AlertRecorder interface {
	ObserveAlerts(counts map[string]int)
}

type noopRecorder struct{}

func (noopRecorder) ObserveAlerts(map[string]int) {}

// StockReport datos del reporte PDF de existencias.
type StockReport struct {
	ID          uuid.UUID
	CompanyID   string
	GeneratedAt time.Time
	Snapshot    *dto.InventorySnapshotDTO
	Warehouses  []dto.WarehouseGroupDTO
	Alerts      *dto.StockAlertsDTO
}

// StockReportRenderer genera el PDF del reporte de existencias.
type StockReportRenderer interface {
	RenderStockReport(ctx context.Context, report StockReport) ([]byte, error)
}

// SalesWorkbookExporter genera el libro XLSX de la tendencia de ventas.
type SalesWorkbookExporter interface {
	ExportSalesTrend(ctx context.Context, trend *dto.SalesTrendDTO) ([]byte, error)
}
