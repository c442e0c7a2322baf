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
	"errors"
	"fmt"
	"time"

	"github.com/edgewatch/edgewatch/pkg/metrics"
	"github.com/edgewatch/edgewatch/pkg/models"
)

// EvaluateInterfaces runs the link-status and packet-drop conditions
// for every interface observed in the cycle. Events across interfaces
// are batched into at most one alert and one recovery notification per
// device. A persistence failure on one interface does not stop the
// others; the errors are joined.
func (e *Evaluator) EvaluateInterfaces(ctx context.Context, device *models.Device, observations []*models.InterfaceObservation, now time.Time) error {
	if len(observations) == 0 {
		return nil
	}

	gated, err := e.maintenanceGate(ctx, device, now)
	if err != nil {
		return err
	}

	var (
		alerts     []string
		recoveries []string
		errs       []error
	)

	record := func(event string, recovery bool, err error) {
		switch {
		case err != nil:
			errs = append(errs, err)
		case event == "":
		case recovery:
			recoveries = append(recoveries, event)
		default:
			alerts = append(alerts, event)
		}
	}

	for _, obs := range observations {
		if obs.Interface == nil || obs.Current == nil {
			continue
		}

		record(e.evaluateOperStatus(ctx, device, obs, now))
		record(e.evaluatePacketDrop(ctx, device, obs, now))
	}

	if !gated {
		if len(alerts) > 0 {
			e.dispatch(ctx, interfaceAlert(device, alerts, now))
		}

		if len(recoveries) > 0 {
			e.dispatch(ctx, interfaceRecovery(device, recoveries, now))
		}
	}

	return errors.Join(errs...)
}

// evaluateOperStatus checks the link-status condition. The trigger
// fires only on an observed up-to-down flank: an interface that was
// already down when monitoring began stays clear until it has been
// seen up. Recovery needs no flank.
func (e *Evaluator) evaluateOperStatus(ctx context.Context, device *models.Device, obs *models.InterfaceObservation, now time.Time) (string, bool, error) {
	iface := obs.Interface
	cond := &iface.OperStatusAlert
	key := models.ConditionKey{DeviceID: device.ID, InterfaceID: &iface.ID, Condition: models.ConditionIfaceStatus}
	down := obs.Current.OperStatus != models.IfStatusUp

	switch {
	case down && cond.State == models.AlertStateClear:
		if obs.Previous == nil || obs.Previous.OperStatus != models.IfStatusUp {
			return "", false, nil
		}

		if err := e.applyTransition(ctx, key, cond, triggeredCondition(now), metrics.TransitionTriggered); err != nil {
			return "", false, err
		}

		e.logger.Warn().
			Str("device", device.Hostname).
			Str("interface", iface.IfName).
			Msg("Interface went down")

		return fmt.Sprintf("Interface %s (%d) is down", iface.IfName, iface.IfIndex), false, nil
	case !down && cond.IsActive():
		if err := e.applyTransition(ctx, key, cond, clearedCondition(), metrics.TransitionCleared); err != nil {
			return "", false, err
		}

		e.logger.Info().
			Str("device", device.Hostname).
			Str("interface", iface.IfName).
			Msg("Interface back up")

		return fmt.Sprintf("Interface %s (%d) is up", iface.IfName, iface.IfIndex), true, nil
	}

	return "", false, nil
}

// evaluatePacketDrop checks the discard-rate condition against the
// interface's threshold. Like the status condition, the trigger needs
// the previous sample within threshold, so a port that was already
// dropping at its first sample stays clear.
func (e *Evaluator) evaluatePacketDrop(ctx context.Context, device *models.Device, obs *models.InterfaceObservation, now time.Time) (string, bool, error) {
	iface := obs.Interface
	cond := &iface.PacketDropAlert
	key := models.ConditionKey{DeviceID: device.ID, InterfaceID: &iface.ID, Condition: models.ConditionPacketDrop}
	rate := obs.Current.DiscardRate()

	switch {
	case rate > iface.PacketDropThreshold && cond.State == models.AlertStateClear:
		if obs.Previous == nil || obs.Previous.DiscardRate() > iface.PacketDropThreshold {
			return "", false, nil
		}

		if err := e.applyTransition(ctx, key, cond, triggeredCondition(now), metrics.TransitionTriggered); err != nil {
			return "", false, err
		}

		e.logger.Warn().
			Str("device", device.Hostname).
			Str("interface", iface.IfName).
			Float64("discard_rate", rate).
			Float64("threshold", iface.PacketDropThreshold).
			Msg("Interface discard rate above threshold")

		return fmt.Sprintf("Interface %s (%d) discard rate %.3f%% exceeds threshold %.2f%%",
			iface.IfName, iface.IfIndex, rate, iface.PacketDropThreshold), false, nil
	case rate <= iface.PacketDropThreshold && cond.IsActive():
		if err := e.applyTransition(ctx, key, cond, clearedCondition(), metrics.TransitionCleared); err != nil {
			return "", false, err
		}

		e.logger.Info().
			Str("device", device.Hostname).
			Str("interface", iface.IfName).
			Float64("discard_rate", rate).
			Msg("Interface discard rate back in range")

		return fmt.Sprintf("Interface %s (%d) discard rate normal at %.3f%%",
			iface.IfName, iface.IfIndex, rate), true, nil
	}

	return "", false, nil
}
