// Package metrics exposes Prometheus counters for structure-search
// observability. They are diagnostics only; nothing in the search reads
// them back.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bayesnet_search_runs_total",
		Help: "Total number of hill-climbing runs started.",
	})

	SearchIterations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bayesnet_search_iterations_total",
		Help: "Total number of hill-climbing iterations across all runs.",
	})

	OperationsExamined = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bayesnet_search_operations_examined_total",
		Help: "Total number of candidate structure operations scored.",
	})

	OperationsCommitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bayesnet_search_operations_committed_total",
		Help: "Total number of structure operations committed, labelled by operation type.",
	}, []string{"op_type"})
)
