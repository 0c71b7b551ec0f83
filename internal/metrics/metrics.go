package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sheetapi_requests_total",
		Help: "Total number of sheet requests by endpoint and status code",
	}, []string{"endpoint", "code"})
	UpstreamFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sheetapi_upstream_failures_total",
		Help: "Total number of requests aborted by a spreadsheet fetch or parse failure",
	})
	RecordsReturned = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sheetapi_records_returned",
		Help:    "Number of deduplicated records per successful response",
		Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000},
	})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sheetapi_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{10, 50, 100, 200, 500, 1000, 2000, 5000},
	}, []string{"endpoint"})
)

func init() {
	prometheus.MustRegister(RequestsTotal, UpstreamFailuresTotal, RecordsReturned, RequestDurationMs)
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
