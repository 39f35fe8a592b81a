package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts handled HTTP requests by method, path and status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vidora_http_requests_total",
		Help: "Total number of HTTP requests handled.",
	},
	[]string{"method", "path", "status"},
)

// ReactionTogglesTotal counts reaction toggles by resulting state.
var ReactionTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vidora_reaction_toggles_total",
		Help: "Total number of reaction toggles by resulting state.",
	},
	[]string{"target_kind", "state"},
)

// PlaylistMutationsTotal counts playlist membership mutations by operation.
var PlaylistMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vidora_playlist_mutations_total",
		Help: "Total number of playlist membership mutations.",
	},
	[]string{"operation"},
)
