package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-insights/internal/application/analytics"
	"github.com/jhoicas/stock-insights/internal/application/dto"
	"github.com/jhoicas/stock-insights/internal/infrastructure/pdf"
)

func sampleReport(sizes int) analytics.StockReport {
	snap := &dto.InventorySnapshotDTO{TotalAvailable: 1234, TotalOnHand: 1500, Colors: []string{"", "Rojo"}, MaxCell: 40}
	for i := 0; i < sizes; i++ {
		snap.Sizes = append(snap.Sizes, string(rune('A'+i)))
	}
	for _, c := range snap.Colors {
		row := make([]dto.HeatCellDTO, sizes)
		for j, s := range snap.Sizes {
			row[j] = dto.HeatCellDTO{Color: c, Size: s, Available: j * 3}
		}
		snap.Grid = append(snap.Grid, row)
	}
	days := 2
	return analytics.StockReport{
		ID:          uuid.New(),
		CompanyID:   "empresa-demo",
		GeneratedAt: time.Date(2024, 8, 20, 10, 0, 0, 0, time.UTC),
		Snapshot:    snap,
		Warehouses:  []dto.WarehouseGroupDTO{{Warehouse: "Norte", Available: 1000}, {Warehouse: "", Available: 234}},
		Alerts: &dto.StockAlertsDTO{
			AsOf:       "2024-08-20",
			Thresholds: dto.ThresholdsDTO{RedDays: 3, YellowDays: 7, MinSalesWindowDays: 7},
			Counts:     map[string]int{"red": 1, "unknown": 1},
			Alerts: []dto.StockAlertDTO{
				{ProductName: "Camiseta", Color: "Rojo", Size: "M", Available: 4, DailyVelocity: 2, DaysOfCover: &days, Level: "red"},
				{ProductName: "Pantalón", Color: "Azul", Size: "S", Available: 9, Level: "unknown"},
			},
		},
	}
}

func TestRenderStockReport_GeneraPDF(t *testing.T) {
	out, err := pdf.NewStockReportGenerator().RenderStockReport(context.Background(), sampleReport(3))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}

func TestRenderStockReport_MuchasTallasSePartenEnBloques(t *testing.T) {
	out, err := pdf.NewStockReportGenerator().RenderStockReport(context.Background(), sampleReport(23))
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRenderStockReport_ReporteIncompleto(t *testing.T) {
	_, err := pdf.NewStockReportGenerator().RenderStockReport(context.Background(), analytics.StockReport{})
	assert.Error(t, err)
}
