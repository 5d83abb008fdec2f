// Package metrics defines and registers the Prometheus metrics of the
// incident-map core. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sosmap"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts registered.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "ok", "user_not_found", or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// ReportsSubmittedTotal counts submitted reports by crime category.
var ReportsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_submitted_total",
		Help:      "Total number of reports submitted, by crime type.",
	},
	[]string{"crime_type"},
)

// ReportsClosedTotal counts reports transitioned to CLOSED.
var ReportsClosedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_closed_total",
		Help:      "Total number of reports closed by moderators or admins.",
	},
)

// ReportsActive tracks the number of reports currently visible on the map.
var ReportsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "reports_active",
		Help:      "Current number of reports in ACTIVE status.",
	},
)
