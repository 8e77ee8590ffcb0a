package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Ledger writes
	RecordsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gigpulse_records_created_total",
			Help: "Trips, expenses and mileage events written",
		},
		[]string{"kind"}, // trip|expense|mileage
	)

	// Hotspot job
	HotspotRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gigpulse_hotspot_runs_total",
			Help: "Hotspot refresh runs by outcome",
		},
		[]string{"outcome"}, // ok|error
	)
	HotspotRedAlerts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gigpulse_hotspot_red_alerts_total",
			Help: "Red hotspot notifications emitted",
		},
	)
	ScannerMatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gigpulse_notification_matches_total",
			Help: "Incoming notifications that marked a platform hotspot",
		},
		[]string{"platform"},
	)

	// Mileage tracker
	MileageActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "gigpulse_mileage_tracking_active",
			Help: "1 while a mileage run is open",
		},
	)
	MilesTracked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gigpulse_miles_tracked_total",
			Help: "Miles persisted by finished mileage runs",
		},
	)

	// Worker queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)

	initOnce sync.Once
)

// /metrics handler
var Handler = promhttp.Handler

// Init registers the collectors once; safe to call from tests.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RecordsCreated,
			HotspotRuns,
			HotspotRedAlerts,
			ScannerMatches,
			MileageActive,
			MilesTracked,
			WorkerQueueDepth,
		)
	})
}
