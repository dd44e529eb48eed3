package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-insights/internal/application/analytics"
	"github.com/jhoicas/stock-insights/internal/application/dto"
	"github.com/jhoicas/stock-insights/pkg/logger"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler descargas de reportes.
type ReportHandler struct {
	uc  *analytics.ReportUseCase
	qv  *queryValidator
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, qv: newQueryValidator(), log: log.Component("http_reports")}
}

// StockPDF godoc
// @Summary      Reporte PDF de existencias
// @Description  Totales, mapa de calor color×talla, bodegas y semáforo de cobertura.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        product    query  string  false  "Filtra por nombre de producto."
// @Param        warehouse  query  string  false  "Filtra existencias por bodega."
// @Param        as_of      query  string  false  "Fecha de corte (YYYY-MM-DD)."
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var req dto.AlertsRequest
	if ok, err := h.qv.parseQuery(c, &req); !ok {
		return err
	}

	out, err := h.uc.StockReportPDF(c.Context(), companyID, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="existencias.pdf"`)
	return c.Send(out)
}

// SalesXLSX godoc
// @Summary      Libro XLSX de la tendencia de ventas
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        window_days  query  int     false  "Días de la serie."
// @Param        end_date     query  string  false  "Último día (YYYY-MM-DD)."
// @Param        span         query  int     false  "Ventana de la media móvil."
// @Param        product      query  string  false  "Filtra por nombre de producto."
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/reports/sales.xlsx [get]
func (h *ReportHandler) SalesXLSX(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var req dto.SalesTrendRequest
	if ok, err := h.qv.parseQuery(c, &req); !ok {
		return err
	}

	out, err := h.uc.SalesTrendXLSX(c.Context(), companyID, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, xlsxMIME)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ventas.xlsx"`)
	return c.Send(out)
}
