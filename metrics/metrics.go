// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package metrics exposes the engine's operational counters and gauges
// through the process-wide Prometheus registry, the way the teacher
// repo's metrics package wires every native-contract call into a
// CountVecMeter. The engine has no HTTP server of its own; embedding
// applications mount Handler() wherever they already expose /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mocaverse/stakingpool/errorkind"
)

const namespace = "stakingpool"

var (
	// Operations counts every engine operation invocation, labeled by verb
	// and outcome ("ok" or the error-kind string), mirroring the teacher's
	// per-call CountVecMeter on its native contract methods.
	Operations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Count of engine operation invocations by verb and outcome.",
	}, []string{"op", "outcome"})

	// RewardsEmitted tracks the pool's cumulative emitted rewards. The
	// engine samples it after stake_tokens, stake_boosts (when principal is
	// staked) and update_emission; operations that only advance the pool
	// index do not refresh it.
	RewardsEmitted = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "rewards_emitted",
		Help:      "Pool-wide cumulative rewards emitted (base units, P-scaled source truncated to float64).",
	})

	// TotalAllocPoints tracks the pool's alloc-point total, sampled at the
	// same points as RewardsEmitted; a vault's final update at maturity does
	// not refresh it.
	TotalAllocPoints = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "total_alloc_points",
		Help:      "Sum of active vaults' allocation points.",
	})

	// VaultsCreated counts vaults created, labeled by duration class.
	VaultsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vaults_created_total",
		Help:      "Count of vaults created, by duration class.",
	}, []string{"duration_class"})
)

// ObserveOperation records one engine call's outcome. err should be the
// exact error the operation returned (nil on success). The outcome label
// is a fixed error kind, never err.Error() itself: a wrapped error (e.g.
// pool.Service.UpdateIndex's timestamp-regression wrap) carries free-form
// context that would otherwise mint a new time series per distinct message.
func ObserveOperation(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = errorkind.Kind(err)
	}
	Operations.WithLabelValues(op, outcome).Inc()
}

// Handler exposes the registry for embedding into a host HTTP server.
func Handler() http.Handler {
	return promhttp.Handler()
}
