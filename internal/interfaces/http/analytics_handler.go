package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-insights/internal/application/analytics"
	"github.com/jhoicas/stock-insights/internal/application/dto"
	"github.com/jhoicas/stock-insights/pkg/logger"
)

// AnalyticsHandler maneja los endpoints de analítica de ventas e inventario.
type AnalyticsHandler struct {
	salesUC    *analytics.SalesUseCase
	invUC      *analytics.InventoryUseCase
	alertUC    *analytics.AlertUseCase
	overviewUC *analytics.OverviewUseCase
	qv         *queryValidator
	log        *logger.Logger
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(
	salesUC *analytics.SalesUseCase,
	invUC *analytics.InventoryUseCase,
	alertUC *analytics.AlertUseCase,
	overviewUC *analytics.OverviewUseCase,
	log *logger.Logger,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		salesUC:    salesUC,
		invUC:      invUC,
		alertUC:    alertUC,
		overviewUC: overviewUC,
		qv:         newQueryValidator(),
		log:        log.Component("http_analytics"),
	}
}

// GetSalesTrend godoc
// @Summary      Serie diaria de ventas con media móvil
// @Description  Unidades vendidas por día (días sin ventas en 0), media móvil hacia atrás
//               y totales por talla y por color del período.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        window_days  query  int     false  "Días de la serie (default 30, max 366)."
// @Param        end_date     query  string  false  "Último día (YYYY-MM-DD). Default: hoy."
// @Param        span         query  int     false  "Ventana de la media móvil (default 7)."
// @Param        product      query  string  false  "Filtra por nombre de producto."
// @Success      200  {object}  dto.SalesTrendDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/sales/trend [get]
func (h *AnalyticsHandler) GetSalesTrend(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var req dto.SalesTrendRequest
	if ok, err := h.qv.parseQuery(c, &req); !ok {
		return err
	}

	trend, err := h.salesUC.GetSalesTrend(c.Context(), companyID, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(trend)
}

// GetInventorySnapshot godoc
// @Summary      Foto de inventario consolidada
// @Description  Totales disponible / en bodega, tallas y colores distintos, disponible por
//               bodega y la matriz color×talla con el color del mapa de calor de cada celda.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        product    query  string  false  "Filtra por nombre de producto."
// @Param        warehouse  query  string  false  "Filtra por bodega."
// @Success      200  {object}  dto.InventorySnapshotDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/inventory/snapshot [get]
func (h *AnalyticsHandler) GetInventorySnapshot(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var req dto.InventoryRequest
	if ok, err := h.qv.parseQuery(c, &req); !ok {
		return err
	}

	snap, err := h.invUC.GetSnapshot(c.Context(), companyID, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(snap)
}

// GetWarehouses godoc
// @Summary      Disponible por bodega con detalle
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        product    query  string  false  "Filtra por nombre de producto."
// @Param        warehouse  query  string  false  "Filtra por bodega."
// @Success      200  {array}   dto.WarehouseGroupDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/inventory/warehouses [get]
func (h *AnalyticsHandler) GetWarehouses(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var req dto.InventoryRequest
	if ok, err := h.qv.parseQuery(c, &req); !ok {
		return err
	}

	groups, err := h.invUC.GetWarehouses(c.Context(), companyID, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(groups)
}

// GetStockAlerts godoc
// @Summary      Semáforo de riesgo de quiebre por SKU
// @Description  Días de cobertura = disponible / velocidad diaria de venta. Rojo, amarillo,
//               sin ventas (desconocido) y verde, en ese orden.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        product    query  string  false  "Filtra por nombre de producto."
// @Param        warehouse  query  string  false  "Filtra existencias por bodega (las ventas no se filtran)."
// @Param        as_of      query  string  false  "Fecha de corte (YYYY-MM-DD). Default: hoy."
// @Success      200  {object}  dto.StockAlertsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/inventory/alerts [get]
func (h *AnalyticsHandler) GetStockAlerts(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var req dto.AlertsRequest
	if ok, err := h.qv.parseQuery(c, &req); !ok {
		return err
	}

	alerts, err := h.alertUC.GetStockAlerts(c.Context(), companyID, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(alerts)
}

// GetOverview godoc
// @Summary      Resumen del día y la semana
// @Description  Unidades de hoy y de los últimos 7 días, velocidad diaria, existencias totales,
//               conteo del semáforo y top 3 de tallas y colores.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        as_of  query  string  false  "Fecha de corte (YYYY-MM-DD). Default: hoy."
// @Success      200  {object}  dto.OverviewDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/overview [get]
func (h *AnalyticsHandler) GetOverview(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var req dto.AlertsRequest
	if ok, err := h.qv.parseQuery(c, &req); !ok {
		return err
	}

	overview, err := h.overviewUC.GetOverview(c.Context(), companyID, req.AsOf)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(overview)
}
