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
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edgewatch/edgewatch/pkg/db"
	"github.com/edgewatch/edgewatch/pkg/logger"
	"github.com/edgewatch/edgewatch/pkg/metrics"
	"github.com/edgewatch/edgewatch/pkg/models"
	"github.com/edgewatch/edgewatch/pkg/notify"
)

var evalTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestEvaluator(t *testing.T, store db.Store, notifier notify.Notifier) *Evaluator {
	t.Helper()

	e, err := New(store, notifier, func() []string { return []string{"noc@example.com"} },
		logger.NewTestLogger(), metrics.New(prometheus.NewRegistry()))
	require.NoError(t, err)

	return e
}

func testDevice() *models.Device {
	return &models.Device{
		ID:                7,
		IPAddress:         "10.0.0.5",
		Hostname:          "core-rtr-01",
		CPUThreshold:      80,
		MemoryThreshold:   80,
		FailureThreshold:  3,
		CPUAlert:          models.NewAlertCondition(),
		MemoryAlert:       models.NewAlertCondition(),
		ReachabilityAlert: models.NewAlertCondition(),
		IsReachable:       true,
	}
}

func float64Ptr(v float64) *float64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestNewRequiresStore(t *testing.T) {
	_, err := New(nil, nil, nil, logger.NewTestLogger(), nil)
	assert.ErrorIs(t, err, ErrNilStore)
}

func TestNewDefaultsNotifierAndRecipients(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)

	e, err := New(store, nil, nil, logger.NewTestLogger(), metrics.New(prometheus.NewRegistry()))
	require.NoError(t, err)

	assert.IsType(t, notify.NoopNotifier{}, e.notifier)
	assert.Empty(t, e.recipients())
}

func TestEvaluateDeviceTriggersOnBreach(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	device := testDevice()
	key := models.ConditionKey{DeviceID: 7, Condition: models.ConditionCPU}

	store.EXPECT().UpdateAlertCondition(gomock.Any(), key, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.ConditionKey, cond models.AlertCondition) error {
			assert.Equal(t, models.AlertStateTriggered, cond.State)
			require.NotNil(t, cond.TriggeredAt)
			assert.True(t, cond.TriggeredAt.Equal(evalTime))
			assert.Nil(t, cond.AcknowledgedAt)

			return nil
		})

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *notify.Notification) error {
			assert.Equal(t, "[CRITICAL] CPU Usage Alert - core-rtr-01", n.Subject)
			assert.Equal(t, notify.LevelError, n.Level)
			assert.Equal(t, int64(7), n.DeviceID)
			assert.Equal(t, []string{"noc@example.com"}, n.Recipients)
			assert.Contains(t, n.Body, "85.50%")
			assert.Contains(t, n.Body, "10.0.0.5")
			assert.InDelta(t, 5.5, n.Details["exceeded_by"], 0.001)

			return nil
		})

	metric := &models.DeviceMetric{CPUUtilization: float64Ptr(85.5), MemoryUtilization: float64Ptr(40)}

	require.NoError(t, e.EvaluateDevice(context.Background(), device, metric, evalTime))

	assert.Equal(t, models.AlertStateTriggered, device.CPUAlert.State)
	assert.Equal(t, models.AlertStateClear, device.MemoryAlert.State)
}

func TestEvaluateDeviceRepeatedBreachIsIdempotent(t *testing.T) {
	for _, state := range []models.AlertState{models.AlertStateTriggered, models.AlertStateAcknowledged} {
		t.Run(string(state), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := db.NewMockStore(ctrl)
			notifier := notify.NewMockNotifier(ctrl)
			e := newTestEvaluator(t, store, notifier)

			device := testDevice()
			device.CPUAlert = models.AlertCondition{State: state, TriggeredAt: timePtr(evalTime.Add(-time.Hour))}

			metric := &models.DeviceMetric{CPUUtilization: float64Ptr(92)}

			require.NoError(t, e.EvaluateDevice(context.Background(), device, metric, evalTime))

			assert.Equal(t, state, device.CPUAlert.State)
		})
	}
}

func TestEvaluateDeviceRecoveryClearsAndNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	device := testDevice()
	device.CPUAlert = models.AlertCondition{
		State:          models.AlertStateAcknowledged,
		TriggeredAt:    timePtr(evalTime.Add(-time.Hour)),
		AcknowledgedAt: timePtr(evalTime.Add(-30 * time.Minute)),
	}

	key := models.ConditionKey{DeviceID: 7, Condition: models.ConditionCPU}

	store.EXPECT().UpdateAlertCondition(gomock.Any(), key, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.ConditionKey, cond models.AlertCondition) error {
			assert.Equal(t, models.AlertStateClear, cond.State)
			assert.Nil(t, cond.TriggeredAt)
			assert.Nil(t, cond.AcknowledgedAt)

			return nil
		})

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *notify.Notification) error {
			assert.Equal(t, "[RESOLVED] CPU Usage Normal - core-rtr-01", n.Subject)
			assert.Equal(t, notify.LevelInfo, n.Level)

			return nil
		})

	metric := &models.DeviceMetric{CPUUtilization: float64Ptr(70)}

	require.NoError(t, e.EvaluateDevice(context.Background(), device, metric, evalTime))

	assert.Equal(t, models.AlertStateClear, device.CPUAlert.State)
}

func TestEvaluateDeviceExactThresholdIsHealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	device := testDevice()
	metric := &models.DeviceMetric{CPUUtilization: float64Ptr(80), MemoryUtilization: float64Ptr(80)}

	require.NoError(t, e.EvaluateDevice(context.Background(), device, metric, evalTime))

	assert.Equal(t, models.AlertStateClear, device.CPUAlert.State)
	assert.Equal(t, models.AlertStateClear, device.MemoryAlert.State)
}

func TestEvaluateDeviceMissingGaugesLeaveConditionsUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	// A vendor without CPU objects must not clear an active condition.
	device := testDevice()
	device.CPUAlert = models.AlertCondition{State: models.AlertStateTriggered, TriggeredAt: timePtr(evalTime)}

	require.NoError(t, e.EvaluateDevice(context.Background(), device, &models.DeviceMetric{}, evalTime))

	assert.Equal(t, models.AlertStateTriggered, device.CPUAlert.State)
}

func TestEvaluateDeviceMaintenanceSuppressesNotificationOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	device := testDevice()
	device.MaintenanceMode = true
	device.MaintenanceUntil = timePtr(evalTime.Add(time.Hour))

	// The transition still persists; only the notification is gated.
	store.EXPECT().UpdateAlertCondition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.ConditionKey, cond models.AlertCondition) error {
			assert.Equal(t, models.AlertStateTriggered, cond.State)
			return nil
		})

	metric := &models.DeviceMetric{CPUUtilization: float64Ptr(95)}

	require.NoError(t, e.EvaluateDevice(context.Background(), device, metric, evalTime))

	assert.Equal(t, models.AlertStateTriggered, device.CPUAlert.State)
}

func TestEvaluateDeviceExpiredMaintenanceAutoDisables(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	device := testDevice()
	device.MaintenanceMode = true
	device.MaintenanceUntil = timePtr(evalTime.Add(-time.Minute))
	device.MaintenanceReason = "switch stack upgrade"

	store.EXPECT().SetMaintenance(gomock.Any(), int64(7), false, nil, "").Return(nil)
	store.EXPECT().UpdateAlertCondition(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	// Past the expiry the window no longer gates notifications.
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	metric := &models.DeviceMetric{CPUUtilization: float64Ptr(95)}

	require.NoError(t, e.EvaluateDevice(context.Background(), device, metric, evalTime))

	assert.False(t, device.MaintenanceMode)
	assert.Nil(t, device.MaintenanceUntil)
	assert.Empty(t, device.MaintenanceReason)
}

func TestEvaluateReachabilityTriggersAtFailureThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	device := testDevice()
	device.ConsecutiveFailures = 3
	device.IsReachable = false
	device.LastPollAttempt = timePtr(evalTime)

	key := models.ConditionKey{DeviceID: 7, Condition: models.ConditionReachability}

	store.EXPECT().UpdateAlertCondition(gomock.Any(), key, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.ConditionKey, cond models.AlertCondition) error {
			assert.Equal(t, models.AlertStateTriggered, cond.State)
			return nil
		})

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *notify.Notification) error {
			assert.Equal(t, "[CRITICAL] Device Unreachable - core-rtr-01", n.Subject)
			assert.Equal(t, 3, n.Details["consecutive_failures"])
			assert.Equal(t, "never", n.Details["last_poll_success"])
			assert.Contains(t, n.Body, "3 consecutive polls")

			return nil
		})

	require.NoError(t, e.EvaluateReachability(context.Background(), device, evalTime))

	assert.Equal(t, models.AlertStateTriggered, device.ReachabilityAlert.State)
}

func TestEvaluateReachabilityBelowThresholdStaysClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	device := testDevice()
	device.ConsecutiveFailures = 2

	require.NoError(t, e.EvaluateReachability(context.Background(), device, evalTime))

	assert.Equal(t, models.AlertStateClear, device.ReachabilityAlert.State)
}

func TestEvaluateReachabilityRecoveryFromAcknowledged(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	device := testDevice()
	device.ConsecutiveFailures = 0
	device.LastPollSuccess = timePtr(evalTime)
	device.ReachabilityAlert = models.AlertCondition{
		State:          models.AlertStateAcknowledged,
		TriggeredAt:    timePtr(evalTime.Add(-time.Hour)),
		AcknowledgedAt: timePtr(evalTime.Add(-30 * time.Minute)),
	}

	store.EXPECT().UpdateAlertCondition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.ConditionKey, cond models.AlertCondition) error {
			assert.Equal(t, models.AlertStateClear, cond.State)
			return nil
		})

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *notify.Notification) error {
			assert.Equal(t, "[RESOLVED] Device Recovered - core-rtr-01", n.Subject)
			return nil
		})

	require.NoError(t, e.EvaluateReachability(context.Background(), device, evalTime))

	assert.Equal(t, models.AlertStateClear, device.ReachabilityAlert.State)
}

func TestNotifierFailureDoesNotAffectState(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	device := testDevice()

	store.EXPECT().UpdateAlertCondition(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(assert.AnError)

	metric := &models.DeviceMetric{CPUUtilization: float64Ptr(95)}

	require.NoError(t, e.EvaluateDevice(context.Background(), device, metric, evalTime))

	assert.Equal(t, models.AlertStateTriggered, device.CPUAlert.State)
	assert.InDelta(t, 1,
		testutil.ToFloat64(e.metrics.NotificationsTotal.WithLabelValues(metrics.ResultFailure)), 0.001)
}

// The canonical excursion: 85% triggers once, stays silent while high,
// survives an acknowledgement, and sends a recovery when it drops to 70%.
func TestGaugeExcursionLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	device := testDevice()
	key := models.ConditionKey{DeviceID: 7, Condition: models.ConditionCPU}
	ctx := context.Background()

	store.EXPECT().UpdateAlertCondition(gomock.Any(), key, gomock.Any()).Return(nil)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *notify.Notification) error {
			assert.True(t, strings.HasPrefix(n.Subject, "[CRITICAL]"), n.Subject)
			return nil
		})

	require.NoError(t, e.EvaluateDevice(ctx, device, &models.DeviceMetric{CPUUtilization: float64Ptr(85)}, evalTime))
	require.Equal(t, models.AlertStateTriggered, device.CPUAlert.State)

	// Still breaching: no second notification, no store write.
	require.NoError(t, e.EvaluateDevice(ctx, device, &models.DeviceMetric{CPUUtilization: float64Ptr(91)}, evalTime.Add(time.Minute)))

	// Operator acknowledges; the trigger timestamp survives.
	var acked models.AlertCondition

	store.EXPECT().GetDeviceByID(gomock.Any(), int64(7)).Return(device, nil)
	store.EXPECT().UpdateAlertCondition(gomock.Any(), key, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.ConditionKey, cond models.AlertCondition) error {
			assert.Equal(t, models.AlertStateAcknowledged, cond.State)
			require.NotNil(t, cond.AcknowledgedAt)
			require.NotNil(t, cond.TriggeredAt)
			acked = cond

			return nil
		})

	require.NoError(t, e.Acknowledge(ctx, key))

	// The next cycle reads the acknowledged state back from the store.
	device.CPUAlert = acked

	require.NoError(t, e.EvaluateDevice(ctx, device, &models.DeviceMetric{CPUUtilization: float64Ptr(88)}, evalTime.Add(2*time.Minute)))
	require.Equal(t, models.AlertStateAcknowledged, device.CPUAlert.State)

	store.EXPECT().UpdateAlertCondition(gomock.Any(), key, gomock.Any()).Return(nil)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *notify.Notification) error {
			assert.Equal(t, "[RESOLVED] CPU Usage Normal - core-rtr-01", n.Subject)
			return nil
		})

	require.NoError(t, e.EvaluateDevice(ctx, device, &models.DeviceMetric{CPUUtilization: float64Ptr(70)}, evalTime.Add(3*time.Minute)))

	assert.Equal(t, models.AlertStateClear, device.CPUAlert.State)
	assert.InDelta(t, 1,
		testutil.ToFloat64(e.metrics.AlertTransitions.WithLabelValues("cpu", metrics.TransitionTriggered)), 0.001)
	assert.InDelta(t, 1,
		testutil.ToFloat64(e.metrics.AlertTransitions.WithLabelValues("cpu", metrics.TransitionAcknowledged)), 0.001)
	assert.InDelta(t, 1,
		testutil.ToFloat64(e.metrics.AlertTransitions.WithLabelValues("cpu", metrics.TransitionCleared)), 0.001)
}
