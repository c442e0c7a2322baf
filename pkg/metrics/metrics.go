/*
 * Copyright 2025 EdgeWatch Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package metrics exposes Prometheus instrumentation for the discovery,
// polling, and alerting engines.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "edgewatch"

// Metrics holds the collectors shared by the engines. Construct one per
// process with New and pass it down; tests use a fresh registry.
type Metrics struct {
	// PollCyclesTotal counts completed poll cycles, including cycles in
	// which every device failed.
	PollCyclesTotal prometheus.Counter

	// PollCycleSeconds observes wall-clock duration of each poll cycle.
	PollCycleSeconds prometheus.Histogram

	// DevicePollsTotal counts per-device poll attempts by result
	// (success or failure).
	DevicePollsTotal *prometheus.CounterVec

	// DevicesReachable tracks how many devices responded in the most
	// recent cycle.
	DevicesReachable prometheus.Gauge

	// DiscoveryJobsTotal counts discovery sweeps started.
	DiscoveryJobsTotal prometheus.Counter

	// DevicesDiscovered counts devices found by discovery, by kind
	// (new or updated).
	DevicesDiscovered *prometheus.CounterVec

	// AlertTransitions counts alert state machine transitions, labeled
	// with the condition kind and the transition taken.
	AlertTransitions *prometheus.CounterVec

	// NotificationsTotal counts notification deliveries by result.
	NotificationsTotal *prometheus.CounterVec
}

// New registers the edgewatch collectors with reg and returns them.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PollCyclesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "poll_cycles_total",
			Help:      "Total number of completed poll cycles.",
		}),
		PollCycleSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "poll_cycle_seconds",
			Help:      "Poll cycle duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
		DevicePollsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "device_polls_total",
			Help:      "Total number of per-device poll attempts.",
		}, []string{"result"}),
		DevicesReachable: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "devices_reachable",
			Help:      "Devices that responded in the most recent poll cycle.",
		}),
		DiscoveryJobsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discovery_jobs_total",
			Help:      "Total number of discovery sweeps started.",
		}),
		DevicesDiscovered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "devices_discovered_total",
			Help:      "Devices found by discovery sweeps.",
		}, []string{"kind"}),
		AlertTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_transitions_total",
			Help:      "Alert state machine transitions.",
		}, []string{"condition", "transition"}),
		NotificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification delivery attempts by result.",
		}, []string{"result"}),
	}
}

// Label values used with the collectors above. Engines share these so the
// series stay consistent across packages.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	KindNew     = "new"
	KindUpdated = "updated"

	TransitionTriggered    = "triggered"
	TransitionAcknowledged = "acknowledged"
	TransitionCleared      = "cleared"
)
