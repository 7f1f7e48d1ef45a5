package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/metrics"
)

type memoStater interface {
	MemoStats() (hits, misses uint64)
}

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics across every business area
// @Tags metrics
// @Produce json
// @Success 200 {object} metrics.Snapshot
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, ok := refreshSnapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// PrometheusMetricsHandler godoc
// @Summary Dashboard metrics in the Prometheus text format
// @Tags metrics
// @Produce plain
// @Success 200 {string} string "Exposition"
// @Failure 500 {string} string "Internal error"
// @Router /metrics/prometheus [get]
func PrometheusMetricsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := refreshSnapshot(w); !ok {
		return
	}
	exporter.Handler().ServeHTTP(w, r)
}

func refreshSnapshot(w http.ResponseWriter) (metrics.Snapshot, bool) {
	start := time.Now()
	m, err := metricsRepo.GetDashboardMetrics()
	if err != nil {
		logger.Error("failed to compute dashboard metrics", slog.String("error", err.Error()))
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return metrics.Snapshot{}, false
	}

	exporter.ObserveAggregation(time.Since(start))
	exporter.Publish(m)
	if s, ok := metricsRepo.(memoStater); ok {
		exporter.SetMemoStats(s.MemoStats())
	}
	return m, true
}
