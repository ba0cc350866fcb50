package metrics

import "github.com/prometheus/client_golang/prometheus"

func RegisterAPIMetrics() {
	prometheus.MustRegister(
		TasksEnqueuedCount,
		TasksClaimedCount,
		TasksCompletedCount,
		TaskLeasesExpiredCount,
		TokensIssuedCount,
		TokensRedeemedCount,
	)
}
