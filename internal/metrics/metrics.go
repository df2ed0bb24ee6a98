// Package metrics provides Prometheus metrics for docnav
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for docnav
type Metrics struct {
	// HTTP request metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Resolution metrics
	ResolutionsTotal *prometheus.CounterVec // by kind and status

	// Navigation metrics
	SidebarBuildsTotal   prometheus.Counter
	AdjacentLookupsTotal prometheus.Counter
	RouteEnumerations    prometheus.Counter

	// Snapshot metrics
	SnapshotLoadsTotal      *prometheus.CounterVec // by status
	SnapshotLoadDuration    prometheus.Histogram
	SnapshotSectionsTotal   prometheus.Gauge
	SnapshotCategoriesTotal prometheus.Gauge
	SnapshotGroupsTotal     prometheus.Gauge
	SnapshotArticlesTotal   prometheus.Gauge

	// Server metrics
	ServerUptimeSeconds prometheus.Gauge
	ServerStartTime     time.Time
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		ServerStartTime: time.Now(),
	}

	// HTTP request metrics
	m.HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docnav_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "status"},
	)

	m.HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docnav_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	m.HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "docnav_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// Resolution metrics
	m.ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docnav_resolutions_total",
			Help: "Total number of path resolutions",
		},
		[]string{"kind", "status"},
	)

	// Navigation metrics
	m.SidebarBuildsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docnav_sidebar_builds_total",
			Help: "Total number of sidebar tree builds",
		},
	)

	m.AdjacentLookupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docnav_adjacent_lookups_total",
			Help: "Total number of prev/next lookups",
		},
	)

	m.RouteEnumerations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docnav_route_enumerations_total",
			Help: "Total number of full route enumerations",
		},
	)

	// Snapshot metrics
	m.SnapshotLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docnav_snapshot_loads_total",
			Help: "Total number of snapshot load attempts",
		},
		[]string{"status"},
	)

	m.SnapshotLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "docnav_snapshot_load_duration_seconds",
			Help:    "Duration of snapshot loads in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	m.SnapshotSectionsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "docnav_snapshot_sections_total",
			Help: "Sections in the active snapshot",
		},
	)

	m.SnapshotCategoriesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "docnav_snapshot_categories_total",
			Help: "Categories in the active snapshot",
		},
	)

	m.SnapshotGroupsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "docnav_snapshot_groups_total",
			Help: "Groups in the active snapshot",
		},
	)

	m.SnapshotArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "docnav_snapshot_articles_total",
			Help: "Articles in the active snapshot",
		},
	)

	// Server metrics
	m.ServerUptimeSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "docnav_server_uptime_seconds",
			Help: "Server uptime in seconds",
		},
	)

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime periodically updates the server uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.ServerUptimeSeconds.Set(time.Since(m.ServerStartTime).Seconds())
	}
}

// RecordHTTPRequest records an HTTP request with its status
func (m *Metrics) RecordHTTPRequest(route string, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordResolution records a path resolution attempt
func (m *Metrics) RecordResolution(kind string, status string) {
	m.ResolutionsTotal.WithLabelValues(kind, status).Inc()
}

// RecordSnapshotLoad records a snapshot load attempt
func (m *Metrics) RecordSnapshotLoad(status string, duration time.Duration) {
	m.SnapshotLoadsTotal.WithLabelValues(status).Inc()
	m.SnapshotLoadDuration.Observe(duration.Seconds())
}

// UpdateSnapshotStats updates entity counts for the active snapshot
func (m *Metrics) UpdateSnapshotStats(sections, categories, groups, articles int) {
	m.SnapshotSectionsTotal.Set(float64(sections))
	m.SnapshotCategoriesTotal.Set(float64(categories))
	m.SnapshotGroupsTotal.Set(float64(groups))
	m.SnapshotArticlesTotal.Set(float64(articles))
}
