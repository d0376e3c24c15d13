package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the reconciliation engine. Registered on the default
// registry and served via /metrics.
var (
	SnapshotReloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crewdesk_snapshot_reloads_total",
		Help: "Number of completed snapshot reload pipeline runs.",
	})

	ReloadsCollapsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crewdesk_snapshot_reloads_collapsed_total",
		Help: "Reload triggers dropped because a reload was already pending or in flight.",
	})

	RemoteFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crewdesk_remote_fallback_total",
		Help: "Operations absorbed by the local cache tier after a remote store failure.",
	}, []string{"collection", "op"})

	OverRepaymentAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crewdesk_standback_overrepayment_attempts_total",
		Help: "Stand-back repayments that exceeded the remaining balance and were clamped.",
	})

	LoanRepairRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crewdesk_loan_fk_repair_total",
		Help: "Loan inserts that triggered the missing-person repair path, by outcome.",
	}, []string{"outcome"})
)
