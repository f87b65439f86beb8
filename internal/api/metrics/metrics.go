// Package metrics defines and registers all custom Prometheus metrics for
// the ProMontazh landing backend. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route is served by echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "landing"

// QuotesCalculatedTotal counts successful calculator runs.
var QuotesCalculatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_calculated_total",
		Help:      "Total number of price quotes computed.",
	},
)

// LeadsRegisteredTotal counts accepted lead registrations.
var LeadsRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_registered_total",
		Help:      "Total number of leads registered.",
	},
)

// CatalogMutationsTotal counts catalog changes.
// Label:
//   - action: "add", "update_field", "set_price", or "delete"
var CatalogMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_mutations_total",
		Help:      "Total number of catalog mutations, by action.",
	},
	[]string{"action"},
)

// AdminLoginsTotal counts admin login attempts.
// Label:
//   - result: "success" or "failure"
var AdminLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// NotificationsPublishedTotal counts notifications delivered to sinks.
// Label:
//   - severity: "normal" or "error"
var NotificationsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_published_total",
		Help:      "Total number of notifications published, by severity.",
	},
	[]string{"severity"},
)

// NotificationsDroppedTotal counts notifications dropped on hub overflow.
var NotificationsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of notifications dropped because the hub buffer was full.",
	},
)
