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

package alerting

import (
	"context"
	"fmt"
	"time"

	"github.com/edgewatch/edgewatch/pkg/metrics"
	"github.com/edgewatch/edgewatch/pkg/models"
)

// Acknowledge marks a triggered condition as acknowledged. The alert
// stays active and a metric recovery still clears it; acknowledging
// only records that an operator has seen it. No notification is sent.
func (e *Evaluator) Acknowledge(ctx context.Context, key models.ConditionKey) error {
	cond, err := e.loadCondition(ctx, key)
	if err != nil {
		return err
	}

	switch cond.State {
	case models.AlertStateClear:
		return ErrNoActiveCondition
	case models.AlertStateAcknowledged:
		return ErrAlreadyAcknowledged
	}

	now := time.Now().UTC()
	cond.State = models.AlertStateAcknowledged
	cond.AcknowledgedAt = &now

	if err := e.store.UpdateAlertCondition(ctx, key, cond); err != nil {
		return fmt.Errorf("persisting acknowledgement: %w", err)
	}

	e.metrics.AlertTransitions.WithLabelValues(string(key.Condition), metrics.TransitionAcknowledged).Inc()

	e.logger.Info().
		Int64("device_id", key.DeviceID).
		Str("condition", string(key.Condition)).
		Msg("Alert acknowledged")

	return nil
}

// Resolve forces a condition back to clear without waiting for the
// metric to recover. Legal from triggered and acknowledged. No
// notification is sent.
func (e *Evaluator) Resolve(ctx context.Context, key models.ConditionKey) error {
	cond, err := e.loadCondition(ctx, key)
	if err != nil {
		return err
	}

	if !cond.IsActive() {
		return ErrNoActiveCondition
	}

	if err := e.store.UpdateAlertCondition(ctx, key, clearedCondition()); err != nil {
		return fmt.Errorf("persisting resolve: %w", err)
	}

	e.metrics.AlertTransitions.WithLabelValues(string(key.Condition), metrics.TransitionCleared).Inc()

	e.logger.Info().
		Int64("device_id", key.DeviceID).
		Str("condition", string(key.Condition)).
		Msg("Alert resolved by operator")

	return nil
}

// loadCondition fetches the current persisted state for one condition
// key, routing to the device or interface row as the kind demands.
func (e *Evaluator) loadCondition(ctx context.Context, key models.ConditionKey) (models.AlertCondition, error) {
	if key.Condition.IsInterfaceCondition() {
		if key.InterfaceID == nil {
			return models.AlertCondition{}, fmt.Errorf("%w: %q needs an interface id", ErrUnknownCondition, key.Condition)
		}

		iface, err := e.store.GetInterfaceByID(ctx, *key.InterfaceID)
		if err != nil {
			return models.AlertCondition{}, fmt.Errorf("loading interface %d: %w", *key.InterfaceID, err)
		}

		if iface.DeviceID != key.DeviceID {
			return models.AlertCondition{}, fmt.Errorf("%w: interface %d belongs to device %d",
				ErrUnknownCondition, iface.ID, iface.DeviceID)
		}

		return *iface.Condition(key.Condition), nil
	}

	device, err := e.store.GetDeviceByID(ctx, key.DeviceID)
	if err != nil {
		return models.AlertCondition{}, fmt.Errorf("loading device %d: %w", key.DeviceID, err)
	}

	cond := device.Condition(key.Condition)
	if cond == nil {
		return models.AlertCondition{}, fmt.Errorf("%w: %q", ErrUnknownCondition, key.Condition)
	}

	return *cond, nil
}
