package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-insights/internal/application/analytics"
	"github.com/jhoicas/stock-insights/pkg/jwt"
	"github.com/jhoicas/stock-insights/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SalesUC     *analytics.SalesUseCase
	InventoryUC *analytics.InventoryUseCase
	AlertUC     *analytics.AlertUseCase
	OverviewUC  *analytics.OverviewUseCase
	ReportUC    *analytics.ReportUseCase
	JWTSecret   string
	JWTIssuer   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
//
// Acceso por rol:
//   - admin y analista: todo /api/analytics.
//   - bodeguero: solo existencias, bodegas, semáforo y el PDF de existencias.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/analytics", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	analyticsHandler := NewAnalyticsHandler(deps.SalesUC, deps.InventoryUC, deps.AlertUC, deps.OverviewUC, deps.Log)
	reportHandler := NewReportHandler(deps.ReportUC, deps.Log)

	analysts := RequireRole(jwt.RoleAdmin, jwt.RoleAnalyst)
	stockRoles := RequireRole(jwt.RoleAdmin, jwt.RoleAnalyst, jwt.RoleWarehouse)

	protected.Get("/overview", analysts, analyticsHandler.GetOverview)
	protected.Get("/sales/trend", analysts, analyticsHandler.GetSalesTrend)

	inv := protected.Group("/inventory", stockRoles)
	inv.Get("/snapshot", analyticsHandler.GetInventorySnapshot)
	inv.Get("/warehouses", analyticsHandler.GetWarehouses)
	inv.Get("/alerts", analyticsHandler.GetStockAlerts)

	reports := protected.Group("/reports")
	reports.Get("/stock.pdf", stockRoles, reportHandler.StockPDF)
	reports.Get("/sales.xlsx", analysts, reportHandler.SalesXLSX)
}
