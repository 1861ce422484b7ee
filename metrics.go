package peopleclient

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "people_client",
			Name:      "requests_total",
			Help:      "HTTP requests sent to the people service, by method and status code.",
		},
		[]string{"method", "code"},
	)

	recordsImportedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "people_client",
			Name:      "records_imported_total",
			Help:      "Records created by bulk import.",
		},
	)

	recordsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "people_client",
			Name:      "records_deleted_total",
			Help:      "Records deleted by id or by name.",
		},
	)
)

// metricsTransport counts every round trip. Transport failures are recorded
// with code "error".
type metricsTransport struct{ base http.RoundTripper }

func (t *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	requestsTotal.WithLabelValues(req.Method, code).Inc()
	return resp, err
}
