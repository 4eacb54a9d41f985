package observability

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PagesCaptured = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pages_captured_total",
			Help: "Total number of listing pages captured to disk.",
		},
	)
	ProductsExtracted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "products_extracted_total",
			Help: "Total number of product records extracted from captures.",
		},
	)
	ExtractFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "extract_failures_total",
			Help: "Total number of capture files skipped during extraction.",
		},
	)
	ExportsWritten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "exports_written_total",
			Help: "Total number of export units written.",
		},
	)
)

func init() {
	prometheus.MustRegister(PagesCaptured)
	prometheus.MustRegister(ProductsExtracted)
	prometheus.MustRegister(ExtractFailures)
	prometheus.MustRegister(ExportsWritten)
}

// Serve exposes /metrics on the given port in the background.
func Serve(port string) {
	slog.Info("exposing prometheus metrics", "port", port)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":"+port, nil); err != nil {
			slog.Error("metrics server stopped", "error", err)
		}
	}()
}
