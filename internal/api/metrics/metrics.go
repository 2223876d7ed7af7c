// Package metrics defines and registers the custom Prometheus metrics for
// the attendance facade. It is the single source of truth for metric names,
// labels, and help strings; registration happens with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "attendance"

// TransitionsTotal counts applied attendance status transitions.
// Label:
//   - target: the requested status (e.g. "PRESENT")
var TransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transitions_total",
		Help:      "Total number of attendance status transitions applied.",
	},
	[]string{"target"},
)

// TransitionsRejectedTotal counts transitions rejected before any remote call.
// Label:
//   - reason: "self_edit", "on_leave", "manual_on_leave", "scope"
var TransitionsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transitions_rejected_total",
		Help:      "Total number of attendance transitions rejected client-side.",
	},
	[]string{"reason"},
)

// LeaveDecisionsTotal counts confirmed leave decisions.
// Label:
//   - decision: "APPROVED" or "DENIED"
var LeaveDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leave_decisions_total",
		Help:      "Total number of confirmed leave request decisions.",
	},
	[]string{"decision"},
)

// LeaveSubmissionsTotal counts leave request submissions by outcome.
// Label:
//   - result: "ok" or "rejected"
var LeaveSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leave_submissions_total",
		Help:      "Total number of leave request submissions.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts.",
	},
	[]string{"result"},
)
