// Package metrics defines the Prometheus collectors for list commands and
// persistence.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Command results.
const (
	ResultOK       = "ok"
	ResultNoop     = "noop"
	ResultRejected = "rejected"
	ResultFailed   = "failed"
)

var (
	// CommandsTotal counts list commands by operation and result.
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shoppinglist_commands_total",
		Help: "Total list commands processed, by operation and result",
	}, []string{"op", "result"})

	// PersistDuration tracks how long gateway saves take.
	PersistDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shoppinglist_persist_duration_seconds",
		Help:    "Duration of collection saves through the persistence gateway",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})

	// ListsGauge is the number of lists in the current collection.
	ListsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "shoppinglist_lists",
		Help: "Number of lists currently held by the list store",
	})

	// RPCTotal counts RPCs by procedure and Connect code.
	RPCTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shoppinglist_rpc_total",
		Help: "Total RPCs handled, by procedure and code",
	}, []string{"procedure", "code"})
)

// ObserveCommand records the outcome of one command.
func ObserveCommand(op, result string) {
	CommandsTotal.WithLabelValues(op, result).Inc()
}
