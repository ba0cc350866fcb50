package metrics

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
)

const ApplicationName = "fleet-api"

var BinaryName = ApplicationName

func init() {
	BinaryName = os.Args[0]
}

var TasksEnqueuedCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name:        "fleet_tasks_enqueued_count",
		Help:        "queued device tasks by kind",
		ConstLabels: prometheus.Labels{"service": ApplicationName, "component": BinaryName},
	},
	[]string{"kind"},
)

var TasksClaimedCount = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name:        "fleet_tasks_claimed_count",
		Help:        "tasks claimed by polling agents",
		ConstLabels: prometheus.Labels{"service": ApplicationName, "component": BinaryName},
	},
)

var TasksCompletedCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name:        "fleet_tasks_completed_count",
		Help:        "task results reported by agents, by terminal status",
		ConstLabels: prometheus.Labels{"service": ApplicationName, "component": BinaryName},
	},
	[]string{"status"},
)

var TaskLeasesExpiredCount = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name:        "fleet_task_leases_expired_count",
		Help:        "claimed tasks reverted to pending by the lease sweep",
		ConstLabels: prometheus.Labels{"service": ApplicationName, "component": BinaryName},
	},
)

var TokensIssuedCount = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name:        "fleet_enrollment_tokens_issued_count",
		Help:        "enrollment tokens issued by administrators",
		ConstLabels: prometheus.Labels{"service": ApplicationName, "component": BinaryName},
	},
)

var TokensRedeemedCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name:        "fleet_enrollment_tokens_redeemed_count",
		Help:        "enrollment token redemption attempts by result",
		ConstLabels: prometheus.Labels{"service": ApplicationName, "component": BinaryName},
	},
	[]string{"result"},
)
