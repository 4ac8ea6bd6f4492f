// Package metrics defines the custom Prometheus metrics for the fitlog
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register with the default registry at import time via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fitlog"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// TokenValidationsTotal counts token validations performed by the
// transport filter.
// Label:
//   - result: "valid" or "invalid" (the invalid bucket covers bad
//     signature, malformed payload and expiry alike)
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of JWT validations at the transport filter, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "rate_limited", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "email_taken", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// ── Authorization metrics ─────────────────────────────────────────────────────

// AccessDenialsTotal counts requests rejected by the auth core.
// Label:
//   - outcome: "unauthenticated", "forbidden", "gone"
var AccessDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denials_total",
		Help:      "Total number of requests rejected by the access policy, by outcome.",
	},
	[]string{"outcome"},
)
