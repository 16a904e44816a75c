// Package metrics defines all custom Prometheus metrics for the studio
// content API. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry at package
// init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studio"

// UploadsTotal counts successful content uploads.
// Label:
//   - kind: "image", "video", "poem", or "music"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of content records uploaded, by kind.",
	},
	[]string{"kind"},
)

// DeletesTotal counts successful owner-scoped deletions, by kind.
var DeletesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deletes_total",
		Help:      "Total number of content records deleted, by kind.",
	},
	[]string{"kind"},
)

// LoginFailuresTotal counts rejected login attempts. No labels: the metric
// must not distinguish unknown-user from wrong-password any more than the
// API response does.
var LoginFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of rejected login attempts.",
	},
)

// DegradedListsTotal counts public list requests that served an empty result
// because the backing store was unreachable.
var DegradedListsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "degraded_lists_total",
		Help:      "Total number of list requests degraded to an empty result, by kind.",
	},
	[]string{"kind"},
)

// ActivityQueueDepth tracks pending entries in each activity worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
