package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Counter for rendered pages and fragments
	PageViews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_page_views_total",
			Help: "Total number of rendered pages and fragments",
		},
		[]string{"page"},
	)

	// Counter for theme changes
	ThemeToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_theme_toggles_total",
			Help: "Total number of theme toggles",
		},
		[]string{"theme"}, // theme: the theme switched to
	)

	// Counter for contact form submissions
	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Total number of contact form submissions",
		},
		[]string{"status"}, // status: sent/invalid/busy/error
	)

	// Gauge for open background streams
	BackgroundSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portfolio_background_sessions_current",
			Help: "Current number of open background websocket sessions",
		},
	)

	// Histogram of scroll intensity reported to clients
	ScrollIntensity = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "portfolio_scroll_intensity",
			Help:    "Scroll intensity factor of background frames",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)
)
