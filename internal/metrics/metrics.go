package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vaidya"

// chat outcome labels
const (
	OutcomeReply    = "reply"
	OutcomeFallback = "fallback"
	OutcomeEmpty    = "empty"
)

// Prometheus instruments for the server, registered on their own registry
type Metrics struct {
	registry *prometheus.Registry

	ChatRequests   *prometheus.CounterVec
	ModelLatency   *prometheus.HistogramVec
	ModelTokens    *prometheus.CounterVec
	CartOperations *prometheus.CounterVec
	Orders         prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ChatRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_requests_total",
			Help:      "Chat requests by outcome.",
		}, []string{"outcome"}),
		ModelLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "model_request_duration_seconds",
			Help:      "Latency of generative model calls by model and result.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30},
		}, []string{"model", "result"}),
		ModelTokens: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_tokens_total",
			Help:      "Tokens reported by the generative model by model and direction.",
		}, []string{"model", "direction"}),
		CartOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_operations_total",
			Help:      "Cart operations by type and result.",
		}, []string{"operation", "result"}),
		Orders: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Orders accepted.",
		}),
	}
}

func (m *Metrics) ObserveChat(outcome string) {
	m.ChatRequests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveModelCall(model string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}

	m.ModelLatency.WithLabelValues(model, result).Observe(d.Seconds())
}

func (m *Metrics) ObserveTokens(model string, input, output int) {
	m.ModelTokens.WithLabelValues(model, "input").Add(float64(input))
	m.ModelTokens.WithLabelValues(model, "output").Add(float64(output))
}

func (m *Metrics) ObserveCart(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}

	m.CartOperations.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
