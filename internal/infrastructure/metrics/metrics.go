// Package metrics expone métricas Prometheus del servicio: clasificación del semáforo
// de cobertura y latencia de las peticiones HTTP. Usa un registro propio para no
// mezclarse con el registro global del proceso.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/stock-insights/internal/application/analytics"
)

const namespace = "stock_insights"

// Metrics colectores del servicio.
type Metrics struct {
	registry        *prometheus.Registry
	alertsTotal     *prometheus.CounterVec
	skusByLevel     *prometheus.GaugeVec
	requestDuration *prometheus.HistogramVec
}

var _ analytics.AlertRecorder = (*Metrics)(nil)

// New registra los colectores. withRuntime agrega las métricas de Go y del proceso.
func New(withRuntime bool) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		alertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_total",
			Help:      "SKUs clasificados por nivel del semáforo de cobertura (acumulado).",
		}, []string{"level"}),
		skusByLevel: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "skus_by_level",
			Help:      "SKUs por nivel en la última evaluación del semáforo.",
		}, []string{"level"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP por ruta y código.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	m.registry.MustRegister(m.alertsTotal, m.skusByLevel, m.requestDuration)
	if withRuntime {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return m
}

// ObserveAlerts implementa analytics.AlertRecorder.
func (m *Metrics) ObserveAlerts(counts map[string]int) {
	for level, n := range counts {
		m.alertsTotal.WithLabelValues(level).Add(float64(n))
		m.skusByLevel.WithLabelValues(level).Set(float64(n))
	}
}

// Handler exposición en formato Prometheus del registro propio.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware mide la latencia de cada petición. Usa la ruta registrada
// (ej: /api/analytics/inventory/alerts) para no disparar la cardinalidad.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		m.requestDuration.
			WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
		return err
	}
}
