package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetricsHandler exposes the default prometheus registry over HTTP.
type PrometheusMetricsHandler struct{}

func NewPrometheusMetricsHandler() *PrometheusMetricsHandler {
	return &PrometheusMetricsHandler{}
}

func (p *PrometheusMetricsHandler) Handler() http.Handler {
	return promhttp.Handler()
}
