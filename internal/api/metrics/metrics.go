// Package metrics defines and registers all custom Prometheus metrics for the
// transit API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at package init,
// before the HTTP server starts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "transit"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests turned away by the auth middleware chain.
// Label:
//   - reason: "missing_credentials", "invalid_token", or "wrong_role"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or role checks.",
	},
	[]string{"reason"},
)

// UsersAddedTotal counts credential records created through the admin API.
// Label:
//   - role: the role assigned to the new user
var UsersAddedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_added_total",
		Help:      "Total number of users added via the admin API, by role.",
	},
	[]string{"role"},
)

// SOSTriggeredTotal counts SOS activations.
// Label:
//   - role: the role of the identity that triggered the SOS
var SOSTriggeredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sos_triggered_total",
		Help:      "Total number of SOS activations, by triggering role.",
	},
	[]string{"role"},
)
