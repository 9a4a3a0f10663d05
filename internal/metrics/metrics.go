package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pizzatime/storefront/internal/domain"
)

// Rejection reasons reported by OrderRejected
const (
	ReasonEmptyCart     = "empty_cart"
	ReasonMissingFields = "missing_fields"
)

// Recorder receives storefront events worth counting
type Recorder interface {
	ItemAdded(item string)
	OrderSubmitted(mode domain.DeliveryMode)
	OrderRejected(reason string)
	SessionsActive(n int)
}

// Nop discards every event
type Nop struct{}

func (Nop) ItemAdded(string) {}
func (Nop) OrderSubmitted(domain.DeliveryMode) {}
func (Nop) OrderRejected(string) {}
func (Nop) SessionsActive(int) {}

// Prometheus records events on its own registry
type Prometheus struct {
	registry       *prometheus.Registry
	itemsAdded     *prometheus.CounterVec
	ordersPlaced   *prometheus.CounterVec
	rejections     *prometheus.CounterVec
	activeSessions prometheus.Gauge
}

// NewPrometheus registers the storefront collectors plus the Go and process
// collectors on a fresh registry
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		itemsAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "cart_items_added_total",
			Help:      "Items added to carts.",
		}, []string{"item"}),
		ordersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "orders_submitted_total",
			Help:      "Orders placed successfully.",
		}, []string{"delivery_mode"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "order_rejections_total",
			Help:      "Order submissions refused.",
		}, []string{"reason"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "storefront",
			Name:      "active_sessions",
			Help:      "Sessions currently held in memory.",
		}),
	}

	p.registry.MustRegister(
		p.itemsAdded,
		p.ordersPlaced,
		p.rejections,
		p.activeSessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

func (p *Prometheus) ItemAdded(item string) {
	p.itemsAdded.WithLabelValues(item).Inc()
}

func (p *Prometheus) OrderSubmitted(mode domain.DeliveryMode) {
	p.ordersPlaced.WithLabelValues(string(mode)).Inc()
}

func (p *Prometheus) OrderRejected(reason string) {
	p.rejections.WithLabelValues(reason).Inc()
}

func (p *Prometheus) SessionsActive(n int) {
	p.activeSessions.Set(float64(n))
}

// Registry exposes the underlying registry
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus exposition format
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
