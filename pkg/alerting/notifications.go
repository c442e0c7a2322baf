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
	"strings"
	"time"

	"github.com/edgewatch/edgewatch/pkg/metrics"
	"github.com/edgewatch/edgewatch/pkg/models"
	"github.com/edgewatch/edgewatch/pkg/notify"
)

// dispatch sends one notification and records the outcome. Delivery
// failures are logged and counted, never returned: alert state is
// already persisted by the time a notification goes out.
func (e *Evaluator) dispatch(ctx context.Context, n *notify.Notification) {
	n.Recipients = e.recipients()

	if err := e.notifier.Notify(ctx, n); err != nil {
		e.metrics.NotificationsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		e.logger.Error().
			Err(err).
			Str("subject", n.Subject).
			Msg("Notification delivery failed")

		return
	}

	e.metrics.NotificationsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
}

func gaugeAlert(device *models.Device, gauge gaugeKind, value, threshold float64, now time.Time) *notify.Notification {
	n := notify.NewNotification(
		notify.LevelError,
		fmt.Sprintf("[CRITICAL] %s Usage Alert - %s", gauge.name, device.Hostname),
		fmt.Sprintf("%s usage on %s (%s) reached %.2f%% at %s, exceeding the %.2f%% threshold by %.2f%%.",
			gauge.name, device.Hostname, device.IPAddress, value,
			now.UTC().Format(time.RFC3339), threshold, value-threshold),
	)
	n.Timestamp = now.UTC()
	n.DeviceID = device.ID
	n.Details = map[string]any{
		"metric":        string(gauge.kind),
		"current_value": value,
		"threshold":     threshold,
		"exceeded_by":   value - threshold,
		"ip_address":    device.IPAddress,
	}

	return n
}

func gaugeRecovery(device *models.Device, gauge gaugeKind, value, threshold float64, now time.Time) *notify.Notification {
	n := notify.NewNotification(
		notify.LevelInfo,
		fmt.Sprintf("[RESOLVED] %s Usage Normal - %s", gauge.name, device.Hostname),
		fmt.Sprintf("%s usage on %s (%s) is back to %.2f%% at %s, within the %.2f%% threshold.",
			gauge.name, device.Hostname, device.IPAddress, value,
			now.UTC().Format(time.RFC3339), threshold),
	)
	n.Timestamp = now.UTC()
	n.DeviceID = device.ID
	n.Details = map[string]any{
		"metric":        string(gauge.kind),
		"current_value": value,
		"threshold":     threshold,
		"ip_address":    device.IPAddress,
	}

	return n
}

func unreachableAlert(device *models.Device, now time.Time) *notify.Notification {
	lastSuccess := "never"
	if device.LastPollSuccess != nil {
		lastSuccess = device.LastPollSuccess.UTC().Format(time.RFC3339)
	}

	lastAttempt := "unknown"
	if device.LastPollAttempt != nil {
		lastAttempt = device.LastPollAttempt.UTC().Format(time.RFC3339)
	}

	n := notify.NewNotification(
		notify.LevelError,
		fmt.Sprintf("[CRITICAL] Device Unreachable - %s", device.Hostname),
		fmt.Sprintf("%s (%s) has failed %d consecutive polls as of %s. Last successful poll: %s. Last attempt: %s.",
			device.Hostname, device.IPAddress, device.ConsecutiveFailures,
			now.UTC().Format(time.RFC3339), lastSuccess, lastAttempt),
	)
	n.Timestamp = now.UTC()
	n.DeviceID = device.ID
	n.Details = map[string]any{
		"consecutive_failures": device.ConsecutiveFailures,
		"failure_threshold":    device.FailureThreshold,
		"last_poll_success":    lastSuccess,
		"last_poll_attempt":    lastAttempt,
		"ip_address":           device.IPAddress,
	}

	return n
}

func recoveredAlert(device *models.Device, now time.Time) *notify.Notification {
	n := notify.NewNotification(
		notify.LevelInfo,
		fmt.Sprintf("[RESOLVED] Device Recovered - %s", device.Hostname),
		fmt.Sprintf("%s (%s) is responding to polls again as of %s.",
			device.Hostname, device.IPAddress, now.UTC().Format(time.RFC3339)),
	)
	n.Timestamp = now.UTC()
	n.DeviceID = device.ID
	n.Details = map[string]any{
		"ip_address": device.IPAddress,
	}

	return n
}

func interfaceAlert(device *models.Device, events []string, now time.Time) *notify.Notification {
	n := notify.NewNotification(
		notify.LevelError,
		fmt.Sprintf("[CRITICAL] Interface Alert(s) - %s", device.Hostname),
		interfaceBody(device, "need attention", events, now),
	)
	n.Timestamp = now.UTC()
	n.DeviceID = device.ID
	n.Details = map[string]any{
		"ip_address":  device.IPAddress,
		"event_count": len(events),
		"events":      events,
	}

	return n
}

func interfaceRecovery(device *models.Device, events []string, now time.Time) *notify.Notification {
	n := notify.NewNotification(
		notify.LevelInfo,
		fmt.Sprintf("[RESOLVED] Interface Recovery - %s", device.Hostname),
		interfaceBody(device, "recovered", events, now),
	)
	n.Timestamp = now.UTC()
	n.DeviceID = device.ID
	n.Details = map[string]any{
		"ip_address":  device.IPAddress,
		"event_count": len(events),
		"events":      events,
	}

	return n
}

func interfaceBody(device *models.Device, verb string, events []string, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d interface condition(s) on %s (%s) %s as of %s:\n",
		len(events), device.Hostname, device.IPAddress, verb, now.UTC().Format(time.RFC3339))

	for _, event := range events {
		fmt.Fprintf(&b, "  - %s\n", event)
	}

	return b.String()
}
