// Package metrics holds the Prometheus collectors shared by the catalog
// engine, the AWS adapters and the HTTP server.
//
// Catalog metrics:
//   - ec2ctl_catalog_pages_fetched_total{catalog} (Counter)
//   - ec2ctl_catalog_records_evaluated_total{catalog} (Counter)
//   - ec2ctl_catalog_records_matched_total{catalog} (Counter)
//   - ec2ctl_catalog_enrichment_total{catalog, outcome} (Counter)
//   - ec2ctl_catalog_aggregation_duration_seconds{catalog, result} (Histogram)
//
// Provider metrics:
//   - ec2ctl_aws_api_calls_total{service, operation, result} (Counter)
//
// Server metrics:
//   - ec2ctl_http_requests_total{route, status} (Counter)
//   - ec2ctl_http_request_duration_seconds{route} (Histogram)
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the registerer every collector in this package is attached to.
var Registry = prometheus.DefaultRegisterer

const (
	OutcomeAvailable   = "available"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	PagesFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ec2ctl_catalog_pages_fetched_total",
		Help: "Pages requested from a catalog source",
	}, []string{"catalog"})

	RecordsEvaluated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ec2ctl_catalog_records_evaluated_total",
		Help: "Records checked against a match criterion",
	}, []string{"catalog"})

	RecordsMatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ec2ctl_catalog_records_matched_total",
		Help: "Records that satisfied a match criterion",
	}, []string{"catalog"})

	Enrichments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ec2ctl_catalog_enrichment_total",
		Help: "Enrichment lookups by outcome",
	}, []string{"catalog", "outcome"})

	AggregationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ec2ctl_catalog_aggregation_duration_seconds",
		Help:    "Wall time of one catalog aggregation",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"catalog", "result"})

	APICalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ec2ctl_aws_api_calls_total",
		Help: "AWS API calls by service, operation and result",
	}, []string{"service", "operation", "result"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ec2ctl_http_requests_total",
		Help: "HTTP requests served by route and status code",
	}, []string{"route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ec2ctl_http_request_duration_seconds",
		Help:    "HTTP request duration by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

// ObserveAPICall records the result of one provider call.
func ObserveAPICall(service, operation string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	APICalls.WithLabelValues(service, operation, result).Inc()
}
