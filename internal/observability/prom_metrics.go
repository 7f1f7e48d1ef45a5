package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rogerio-castellano/ops-dashboard/internal/metrics"
)

const (
	dashboardGauge     = "opsdash_dashboard_value"
	statusGauge        = "opsdash_dashboard_status_count"
	aggregationLatency = "opsdash_aggregation_duration_seconds"
	memoHitsGauge      = "opsdash_memo_hits"
	memoMissesGauge    = "opsdash_memo_misses"
	snapshotTimestamp  = "opsdash_snapshot_timestamp_seconds"
)

// Exporter mirrors the latest dashboard snapshot as Prometheus gauges.
type Exporter struct {
	registry *prometheus.Registry

	values   *prometheus.GaugeVec
	statuses *prometheus.GaugeVec
	latency  prometheus.Histogram
	hits     prometheus.Gauge
	misses   prometheus.Gauge
	stamp    prometheus.Gauge
}

func NewExporter() *Exporter {
	values := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: dashboardGauge,
		Help: "Dashboard metric value by area and name.",
	}, []string{"area", "name"})
	statuses := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: statusGauge,
		Help: "Records per status for status-bearing collections.",
	}, []string{"collection", "status"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    aggregationLatency,
		Help:    "Time spent loading collections and aggregating a snapshot.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	})
	hits := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: memoHitsGauge,
		Help: "Snapshots served from the memo.",
	})
	misses := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: memoMissesGauge,
		Help: "Snapshots recomputed by the memo.",
	})
	stamp := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: snapshotTimestamp,
		Help: "Evaluation time of the latest published snapshot.",
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(values, statuses, latency, hits, misses, stamp)

	return &Exporter{
		registry: reg,
		values:   values,
		statuses: statuses,
		latency:  latency,
		hits:     hits,
		misses:   misses,
		stamp:    stamp,
	}
}

// Publish replaces every gauge with the values of s.
func (e *Exporter) Publish(s metrics.Snapshot) {
	set := func(area, name string, v float64) {
		e.values.WithLabelValues(area, name).Set(v)
	}

	set("orders", "total", float64(s.Orders.Total))
	set("orders", "active", float64(s.Orders.Active))
	set("orders", "completed_this_month", float64(s.Orders.CompletedThisMonth))

	set("operations", "maintenance_due", float64(s.Operations.MaintenanceDue))
	set("operations", "consumables_due", float64(s.Operations.ConsumablesDue))
	set("operations", "open_alerts", float64(s.Operations.OpenAlerts))
	set("operations", "critical_alerts", float64(s.Operations.CriticalAlerts))

	set("inventory", "total_items", float64(s.Inventory.TotalItems))
	set("inventory", "low_stock", float64(s.Inventory.LowStock))
	set("inventory", "out_of_stock", float64(s.Inventory.OutOfStock))
	set("inventory", "total_value", s.Inventory.TotalValue)

	set("rental", "total_equipment", float64(s.Rental.TotalEquipment))
	set("rental", "active_rentals", float64(s.Rental.ActiveRentals))
	set("rental", "utilization_pct", s.Rental.UtilizationPct)

	set("finance", "income", s.Finance.Income)
	set("finance", "expenses", s.Finance.Expenses)
	set("finance", "net", s.Finance.Net)

	set("hr", "total_employees", float64(s.HR.TotalEmployees))
	set("hr", "active_employees", float64(s.HR.ActiveEmployees))
	set("hr", "present_today", float64(s.HR.PresentToday))
	set("hr", "attendance_rate_pct", s.HR.AttendanceRatePct)

	set("crm", "total_customers", float64(s.CRM.TotalCustomers))
	set("crm", "active_customers", float64(s.CRM.ActiveCustomers))
	set("crm", "new_this_month", float64(s.CRM.NewThisMonth))

	// Statuses that disappeared since the last publish must not linger.
	e.statuses.Reset()
	for status, n := range s.Orders.ByStatus {
		e.statuses.WithLabelValues("orders", status).Set(float64(n))
	}
	for status, n := range s.Inventory.ByStatus {
		e.statuses.WithLabelValues("inventory", status).Set(float64(n))
	}
	for status, n := range s.Rental.EquipmentByStatus {
		e.statuses.WithLabelValues("equipment", status).Set(float64(n))
	}

	if !s.GeneratedAt.IsZero() {
		e.stamp.Set(float64(s.GeneratedAt.Unix()))
	}
}

func (e *Exporter) ObserveAggregation(d time.Duration) {
	e.latency.Observe(d.Seconds())
}

func (e *Exporter) SetMemoStats(hits, misses uint64) {
	e.hits.Set(float64(hits))
	e.misses.Set(float64(misses))
}

// Handler serves the exporter's registry in the Prometheus text format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}
