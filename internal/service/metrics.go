package service

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric label values for use-case outcome.
const (
	statusSuccess = "success"
	statusError   = "error"
)

// UseCaseNames lists the use cases the plan service reports on.
var UseCaseNames = []string{"allocate", "optimize", "schedule"}

type metricsUseCaseObserver struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	alerts   *prometheus.CounterVec
}

// NewMetricsUseCaseObserver registers the use-case collectors on reg and
// returns an observer that updates them.
func NewMetricsUseCaseObserver(reg prometheus.Registerer) (UseCaseObserver, error) {
	o := &metricsUseCaseObserver{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smarttwin_use_case_total",
				Help: "Total number of planning use-case invocations.",
			},
			[]string{"use_case", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "smarttwin_use_case_duration_seconds",
				Help:    "Planning use-case execution time, in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"use_case"},
		),
		alerts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smarttwin_plan_alerts_total",
				Help: "Total number of alerts raised by computed plans.",
			},
			[]string{"code"},
		),
	}

	for _, c := range []prometheus.Collector{o.calls, o.duration, o.alerts} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	for _, name := range UseCaseNames {
		o.calls.WithLabelValues(name, statusSuccess)
		o.calls.WithLabelValues(name, statusError)
	}
	return o, nil
}

func (o *metricsUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	status := statusSuccess
	if !event.Success {
		status = statusError
	}
	o.calls.WithLabelValues(event.Name, status).Inc()
	o.duration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())

	codes, _ := event.Fields[AlertCodesField].([]string)
	for _, code := range codes {
		o.alerts.WithLabelValues(code).Inc()
	}
}
