package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus observer.
type MetricsConfig struct {
	Namespace string
	Subsystem string
	Registry  prometheus.Registerer
}

type MetricsOption func(*MetricsConfig)

func WithMetricsNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "supachat",
		Subsystem: "chat_store",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// PrometheusObserver exports store events as metrics.
type PrometheusObserver struct {
	persistenceFailures *prometheus.CounterVec
	loads               *prometheus.CounterVec
	suppressed          *prometheus.CounterVec
	namespaces          prometheus.Gauge
}

func NewPrometheusObserver(opts ...MetricsOption) *PrometheusObserver {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &PrometheusObserver{
		persistenceFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "persistence_failures_total",
			Help:      "Total number of chat state saves that failed",
		}, []string{"namespace"}),

		loads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "loads_total",
			Help:      "Total number of chat stores initialised, by load outcome",
		}, []string{"outcome"}),

		suppressed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "notifications_suppressed_total",
			Help:      "Total number of nested notifications dropped by the depth guard",
		}, []string{"namespace"}),

		namespaces: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "namespaces",
			Help:      "Number of chat stores held by the registry",
		}),
	}
}

func (p *PrometheusObserver) StateLoaded(_ string, outcome LoadOutcome) {
	p.loads.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusObserver) PersistenceFailed(namespace string, _ error) {
	p.persistenceFailures.WithLabelValues(namespace).Inc()
}

func (p *PrometheusObserver) NotificationSuppressed(namespace string, _ int) {
	p.suppressed.WithLabelValues(namespace).Inc()
}

func (p *PrometheusObserver) NamespacesChanged(count int) {
	p.namespaces.Set(float64(count))
}
