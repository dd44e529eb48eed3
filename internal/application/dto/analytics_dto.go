package dto

// ── Query parameters ──────────────────────────────────────────────────────────

// SalesTrendRequest parámetros para GET /api/analytics/sales/trend.
type SalesTrendRequest struct {
	WindowDays int    `query:"window_days" json:"window_days" validate:"omitempty,min=1,max=366"`
	EndDate    string `query:"end_date" json:"end_date" validate:"omitempty,datetime=2006-01-02"` // YYYY-MM-DD; default hoy
	Span       int    `query:"span" json:"span" validate:"omitempty,min=1,max=90"`                 // ventana de la media móvil
	Product    string `query:"product" json:"product" validate:"omitempty,max=200"`
}

// InventoryRequest filtros para los endpoints de inventario.
type InventoryRequest struct {
	Product   string `query:"product" json:"product" validate:"omitempty,max=200"`
	Warehouse string `query:"warehouse" json:"warehouse" validate:"omitempty,max=200"`
}

// AlertsRequest filtros del semáforo de cobertura. Warehouse filtra solo existencias:
// la velocidad de venta siempre se calcula con las ventas de toda la empresa.
type AlertsRequest struct {
	Product   string `query:"product" json:"product" validate:"omitempty,max=200"`
	Warehouse string `query:"warehouse" json:"warehouse" validate:"omitempty,max=200"`
	AsOf      string `query:"as_of" json:"as_of" validate:"omitempty,datetime=2006-01-02"` // default hoy
}

// ── Ventas ────────────────────────────────────────────────────────────────────

// PeriodDTO rango de fechas del reporte (inclusive).
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// DailySalesDTO un punto de la serie diaria.
type DailySalesDTO struct {
	Date      string  `json:"date"`       // YYYY-MM-DD
	Quantity  int     `json:"quantity"`   // 0 si no hubo ventas
	MovingAvg float64 `json:"moving_avg"` // media móvil hacia atrás
}

// CategoryDTO total por talla o color. Key vacío = sin etiqueta.
type CategoryDTO struct {
	Key      string `json:"key"`
	Quantity int    `json:"quantity"`
}

// SalesTrendDTO respuesta de GET /api/analytics/sales/trend.
type SalesTrendDTO struct {
	Period     PeriodDTO       `json:"period"`
	WindowDays int             `json:"window_days"`
	Span       int             `json:"span"`
	Total      int             `json:"total"`
	Series     []DailySalesDTO `json:"series"`
	BySize     []CategoryDTO   `json:"by_size"`  // de mayor a menor
	ByColor    []CategoryDTO   `json:"by_color"` // de mayor a menor
}

// ── Inventario ────────────────────────────────────────────────────────────────

// HeatCellDTO celda de la matriz color×talla con su color de mapa de calor.
type HeatCellDTO struct {
	Color     string `json:"color"`
	Size      string `json:"size"`
	Available int    `json:"available"` // 0 si la combinación no existe
	Fill      string `json:"fill"`      // #rrggbb
}

// InventorySnapshotDTO respuesta de GET /api/analytics/inventory/snapshot.
type InventorySnapshotDTO struct {
	TotalAvailable   int             `json:"total_available"`
	TotalOnHand      int             `json:"total_on_hand"`
	Sizes            []string        `json:"sizes"`
	Colors           []string        `json:"colors"`
	ByWarehouse      map[string]int  `json:"by_warehouse"`
	Grid             [][]HeatCellDTO `json:"grid"` // filas = colores, columnas = tallas
	MaxCell          int             `json:"max_cell"`
	AvailableByColor []CategoryDTO   `json:"available_by_color"`
	AvailableBySize  []CategoryDTO   `json:"available_by_size"`
}

// InventoryItemDTO línea de detalle de una bodega.
type InventoryItemDTO struct {
	ProductName string `json:"product_name"`
	Color       string `json:"color"`
	Size        string `json:"size"`
	Available   int    `json:"available"`
	OnHand      int    `json:"on_hand"`
}

// WarehouseGroupDTO bodega con su disponible total y el detalle.
type WarehouseGroupDTO struct {
	Warehouse string             `json:"warehouse"`
	Available int                `json:"available"`
	Items     []InventoryItemDTO `json:"items"`
}

// ── Alertas ───────────────────────────────────────────────────────────────────

// ThresholdsDTO umbrales aplicados.
type ThresholdsDTO struct {
	RedDays            int `json:"red_days"`
	YellowDays         int `json:"yellow_days"`
	MinSalesWindowDays int `json:"min_sales_window_days"`
}

// StockAlertDTO semáforo de un SKU.
type StockAlertDTO struct {
	ProductName   string  `json:"product_name"`
	Color         string  `json:"color"`
	Size          string  `json:"size"`
	Available     int     `json:"available"`
	DailyVelocity float64 `json:"daily_velocity"`
	DaysOfCover   *int    `json:"days_of_cover"` // null = sin ventas (cobertura infinita)
	Level         string  `json:"level"`         // red|yellow|green|unknown
}

// StockAlertsDTO respuesta de GET /api/analytics/inventory/alerts.
type StockAlertsDTO struct {
	AsOf       string          `json:"as_of"` // YYYY-MM-DD
	Thresholds ThresholdsDTO   `json:"thresholds"`
	Counts     map[string]int  `json:"counts"` // por nivel
	Alerts     []StockAlertDTO `json:"alerts"` // rojo, amarillo, desconocido, verde
}

// ── Resumen ───────────────────────────────────────────────────────────────────

// OverviewDTO respuesta de GET /api/analytics/overview: KPIs del día y de la semana.
type OverviewDTO struct {
	AsOf           string         `json:"as_of"`
	TodayUnits     int            `json:"today_units"`
	WeekUnits      int            `json:"week_units"`      // últimos 7 días incluyendo hoy
	DailyVelocity  float64        `json:"daily_velocity"`  // promedio diario de la semana (mínimo 0.01)
	TotalAvailable int            `json:"total_available"`
	TotalOnHand    int            `json:"total_on_hand"`
	AlertCounts    map[string]int `json:"alert_counts"`
	TopSizes       []CategoryDTO  `json:"top_sizes"`  // top 3 de la semana
	TopColors      []CategoryDTO  `json:"top_colors"` // top 3 de la semana
	DateLabel      string         `json:"date_label"` // ej: "Marzo 2024"
}
