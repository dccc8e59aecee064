package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Shift metrics

	ShiftsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "turnos",
		Name:      "shifts_created_total",
		Help:      "Total shifts persisted.",
	})

	ShiftValidationFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "turnos",
		Name:      "shift_validation_failures_total",
		Help:      "Business-rule violations reported by shift creation, by kind.",
	}, []string{"kind"})

	ShiftListCacheTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "turnos",
		Name:      "shift_list_cache_total",
		Help:      "Shift list cache lookups, by result.",
	}, []string{"result"})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "turnos",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "turnos",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		ShiftsCreatedTotal,
		ShiftValidationFailuresTotal,
		ShiftListCacheTotal,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
