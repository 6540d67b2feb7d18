package service

import (
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

// NewPrometheusMiddleware registers the service collectors with the default
// Prometheus registry and returns the instrumenting middleware. Call it once
// per process.
func NewPrometheusMiddleware() Middleware {
	fieldKeys := []string{"method", "error"}
	requestCount := kitprometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Namespace: "tvldist",
		Subsystem: "generator",
		Name:      "request_count",
		Help:      "Number of generation requests received.",
	}, fieldKeys)
	requestLatency := kitprometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
		Namespace: "tvldist",
		Subsystem: "generator",
		Name:      "request_latency_seconds",
		Help:      "Total duration of generation requests in seconds.",
		Buckets:   stdprometheus.DefBuckets,
	}, fieldKeys)
	sampleCount := kitprometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
		Namespace: "tvldist",
		Subsystem: "generator",
		Name:      "sample_count",
		Help:      "Length of generated sample sets.",
		Buckets:   stdprometheus.ExponentialBuckets(100, 4, 6),
	}, []string{})
	return InstrumentingMiddleware(requestCount, requestLatency, sampleCount)
}
