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

// Package alerting owns the per-condition alert state machine. The
// polling engine feeds it freshly persisted samples; operators
// acknowledge and resolve conditions through it. Every transition is
// persisted before a notification goes out, and a delivery failure
// never rolls a transition back.
package alerting

import (
	"context"
	"fmt"
	"time"

	"github.com/edgewatch/edgewatch/pkg/db"
	"github.com/edgewatch/edgewatch/pkg/logger"
	"github.com/edgewatch/edgewatch/pkg/metrics"
	"github.com/edgewatch/edgewatch/pkg/models"
	"github.com/edgewatch/edgewatch/pkg/notify"
)

// RecipientsFunc supplies the current notification recipient list.
type RecipientsFunc func() []string

// gaugeKind pairs a device-level utilization condition with its display
// name in subjects and log lines.
type gaugeKind struct {
	kind models.ConditionKind
	name string
}

var (
	cpuGauge    = gaugeKind{kind: models.ConditionCPU, name: "CPU"}
	memoryGauge = gaugeKind{kind: models.ConditionMemory, name: "Memory"}
)

// Evaluator runs threshold and transition checks against the persisted
// alert state of devices and interfaces.
type Evaluator struct {
	store      db.Store
	notifier   notify.Notifier
	recipients RecipientsFunc
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// New creates an evaluator. A nil notifier falls back to the noop sink;
// a nil recipients func means notifications carry no recipient list.
func New(store db.Store, notifier notify.Notifier, recipients RecipientsFunc, log logger.Logger, m *metrics.Metrics) (*Evaluator, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	if notifier == nil {
		notifier = notify.NoopNotifier{}
	}

	if recipients == nil {
		recipients = func() []string { return nil }
	}

	return &Evaluator{
		store:      store,
		notifier:   notifier,
		recipients: recipients,
		logger:     log,
		metrics:    m,
	}, nil
}

// EvaluateDevice runs the CPU and memory conditions against one freshly
// persisted sample. Gauges the vendor does not expose are left
// untouched.
func (e *Evaluator) EvaluateDevice(ctx context.Context, device *models.Device, metric *models.DeviceMetric, now time.Time) error {
	if metric == nil {
		return nil
	}

	gated, err := e.maintenanceGate(ctx, device, now)
	if err != nil {
		return err
	}

	if metric.CPUUtilization != nil {
		if err := e.evaluateGauge(ctx, device, cpuGauge, *metric.CPUUtilization, device.CPUThreshold, gated, now); err != nil {
			return err
		}
	}

	if metric.MemoryUtilization != nil {
		if err := e.evaluateGauge(ctx, device, memoryGauge, *metric.MemoryUtilization, device.MemoryThreshold, gated, now); err != nil {
			return err
		}
	}

	return nil
}

// EvaluateReachability runs the connectivity condition after the
// cycle's reachability bookkeeping has been persisted. The breach test
// is the failure count, not IsReachable, so the condition and the flag
// cannot disagree about the threshold.
func (e *Evaluator) EvaluateReachability(ctx context.Context, device *models.Device, now time.Time) error {
	gated, err := e.maintenanceGate(ctx, device, now)
	if err != nil {
		return err
	}

	cond := &device.ReachabilityAlert
	key := models.ConditionKey{DeviceID: device.ID, Condition: models.ConditionReachability}
	unreachable := device.ConsecutiveFailures >= device.FailureThreshold

	switch {
	case unreachable && cond.State == models.AlertStateClear:
		if err := e.applyTransition(ctx, key, cond, triggeredCondition(now), metrics.TransitionTriggered); err != nil {
			return err
		}

		e.logger.Error().
			Str("device", device.Hostname).
			Str("ip", device.IPAddress).
			Int("consecutive_failures", device.ConsecutiveFailures).
			Msg("Device unreachable")

		if !gated {
			e.dispatch(ctx, unreachableAlert(device, now))
		}
	case !unreachable && cond.IsActive():
		if err := e.applyTransition(ctx, key, cond, clearedCondition(), metrics.TransitionCleared); err != nil {
			return err
		}

		e.logger.Info().
			Str("device", device.Hostname).
			Str("ip", device.IPAddress).
			Msg("Device reachable again")

		if !gated {
			e.dispatch(ctx, recoveredAlert(device, now))
		}
	}

	return nil
}

// evaluateGauge runs one utilization condition. A breach is strictly
// above threshold; a value sitting exactly on the threshold is healthy.
// Repeated breaches while triggered or acknowledged change nothing, so
// an excursion produces exactly one alert notification.
func (e *Evaluator) evaluateGauge(ctx context.Context, device *models.Device, gauge gaugeKind, value, threshold float64, gated bool, now time.Time) error {
	cond := device.Condition(gauge.kind)
	key := models.ConditionKey{DeviceID: device.ID, Condition: gauge.kind}

	switch {
	case value > threshold && cond.State == models.AlertStateClear:
		if err := e.applyTransition(ctx, key, cond, triggeredCondition(now), metrics.TransitionTriggered); err != nil {
			return err
		}

		e.logger.Warn().
			Str("device", device.Hostname).
			Str("metric", string(gauge.kind)).
			Float64("value", value).
			Float64("threshold", threshold).
			Msg("Device gauge above threshold")

		if !gated {
			e.dispatch(ctx, gaugeAlert(device, gauge, value, threshold, now))
		}
	case value <= threshold && cond.IsActive():
		if err := e.applyTransition(ctx, key, cond, clearedCondition(), metrics.TransitionCleared); err != nil {
			return err
		}

		e.logger.Info().
			Str("device", device.Hostname).
			Str("metric", string(gauge.kind)).
			Float64("value", value).
			Msg("Device gauge recovered")

		if !gated {
			e.dispatch(ctx, gaugeRecovery(device, gauge, value, threshold, now))
		}
	}

	return nil
}

// maintenanceGate reports whether notifications for the device are
// currently suppressed. An expired window is switched off and persisted
// before the report, so the first evaluation past the expiry already
// notifies. Transitions themselves are never gated.
func (e *Evaluator) maintenanceGate(ctx context.Context, device *models.Device, now time.Time) (bool, error) {
	if device.MaintenanceExpired(now) {
		if err := e.store.SetMaintenance(ctx, device.ID, false, nil, ""); err != nil {
			return false, fmt.Errorf("disabling expired maintenance window on %s: %w", device.IPAddress, err)
		}

		device.MaintenanceMode = false
		device.MaintenanceUntil = nil
		device.MaintenanceReason = ""

		e.logger.Info().
			Str("device", device.Hostname).
			Msg("Maintenance window expired")

		return false, nil
	}

	return device.InMaintenance(now), nil
}

// applyTransition persists the next state for one condition and mirrors
// it on the in-memory row once the write sticks.
func (e *Evaluator) applyTransition(ctx context.Context, key models.ConditionKey, cond *models.AlertCondition, next models.AlertCondition, transition string) error {
	if err := e.store.UpdateAlertCondition(ctx, key, next); err != nil {
		return fmt.Errorf("persisting %s transition for device %d: %w", key.Condition, key.DeviceID, err)
	}

	*cond = next

	e.metrics.AlertTransitions.WithLabelValues(string(key.Condition), transition).Inc()

	return nil
}

func triggeredCondition(now time.Time) models.AlertCondition {
	return models.AlertCondition{State: models.AlertStateTriggered, TriggeredAt: &now}
}

func clearedCondition() models.AlertCondition {
	return models.AlertCondition{State: models.AlertStateClear}
}
