// Package metrics defines and registers all custom Prometheus metrics for the
// portal system API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at package
// init via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts successful logins.
// Label:
//   - role: the authenticated user's role (e.g. "admin", "sedationist")
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by role.",
	},
	[]string{"role"},
)

// LoginFailuresTotal counts rejected login attempts.
// Label:
//   - reason: "not_found", "inactive", or "invalid_credentials"
var LoginFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of failed login attempts, by reason.",
	},
	[]string{"reason"},
)

// ── Portal metrics ────────────────────────────────────────────────────────────

// PortalSwitchesTotal counts successful portal switches.
// Label:
//   - portal: the portal entered
var PortalSwitchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "switches_total",
		Help:      "Total number of successful portal switches, by target portal.",
	},
	[]string{"portal"},
)

// PortalSwitchDeniedTotal counts portal switch requests rejected by the
// permission check.
// Label:
//   - portal: the portal that was requested
var PortalSwitchDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "switch_denied_total",
		Help:      "Total number of portal switch requests denied, by target portal.",
	},
	[]string{"portal"},
)

// DefaultPortalFallbacksTotal counts logins where the user's default portal
// was not permitted and the deterministic fallback was applied. A non-zero
// rate indicates malformed user records.
var DefaultPortalFallbacksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "default_portal_fallbacks_total",
		Help:      "Total number of landings that fell back from an inconsistent default portal.",
	},
)
