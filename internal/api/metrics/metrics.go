// Package metrics defines and registers all custom Prometheus metrics for the
// directory gateway. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at import time via promauto;
// per-request HTTP metrics come from echoprometheus and live alongside these
// under the same registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "directory_gateway"

// ── Session metrics ───────────────────────────────────────────────────────────

// AuthAttemptsTotal counts login/register outcomes.
// Labels:
//   - operation: "login" or "register"
//   - result: "success", "validation_error", "rejected", "malformed", "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login and register attempts, by outcome.",
	},
	[]string{"operation", "result"},
)

// GuardDecisionsTotal counts route-guard outcomes per request.
// Label:
//   - decision: "allow", "placeholder", "redirect_login", "redirect_forbidden"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard evaluations, by decision.",
	},
	[]string{"decision"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestDuration measures calls against the remote directory API.
// Labels:
//   - operation: logical endpoint name (e.g. "login", "list_businesses")
//   - status: numeric HTTP status, or "error" when no response arrived
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests to the remote directory API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation", "status"},
)
