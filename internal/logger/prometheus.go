package logger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// counter is registered once per process, Init may run more than once (tests, config reload).
var counter *prometheus.CounterVec //nolint:gochecknoglobals

// PrometheusHook counts log statements per level.
type PrometheusHook struct{}

// Run implements zerolog.Hook.
func (h PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel {
		counter.WithLabelValues(level.String()).Inc()
	}
}

// NewPrometheusHook returns a hook exporting devfolio_log_statements_total.
func NewPrometheusHook(service, app string) PrometheusHook {
	if counter == nil {
		counter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "devfolio_log_statements_total",
				Help:        "Number of log statements, differentiated by log level.",
				ConstLabels: prometheus.Labels{"service": service, "app": app},
			},
			[]string{"level"},
		)
	}

	return PrometheusHook{}
}
