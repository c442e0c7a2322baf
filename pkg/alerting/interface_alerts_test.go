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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edgewatch/edgewatch/pkg/db"
	"github.com/edgewatch/edgewatch/pkg/models"
	"github.com/edgewatch/edgewatch/pkg/notify"
)

func testInterface(id int64, name string) *models.Interface {
	return &models.Interface{
		ID:                  id,
		DeviceID:            7,
		IfIndex:             int(id),
		IfName:              name,
		PacketDropThreshold: 0.5,
		OperStatusAlert:     models.NewAlertCondition(),
		PacketDropAlert:     models.NewAlertCondition(),
	}
}

func upSample() *models.InterfaceMetric {
	return &models.InterfaceMetric{AdminStatus: models.IfStatusUp, OperStatus: models.IfStatusUp}
}

func downSample() *models.InterfaceMetric {
	return &models.InterfaceMetric{AdminStatus: models.IfStatusUp, OperStatus: models.IfStatusDown}
}

func TestEvaluateInterfacesDownFlankTriggers(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	device := testDevice()
	iface := testInterface(31, "Gi0/1")
	key := models.ConditionKey{DeviceID: 7, InterfaceID: &iface.ID, Condition: models.ConditionIfaceStatus}

	store.EXPECT().UpdateAlertCondition(gomock.Any(), key, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.ConditionKey, cond models.AlertCondition) error {
			assert.Equal(t, models.AlertStateTriggered, cond.State)
			return nil
		})

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *notify.Notification) error {
			assert.Equal(t, "[CRITICAL] Interface Alert(s) - core-rtr-01", n.Subject)
			assert.Equal(t, notify.LevelError, n.Level)
			assert.Contains(t, n.Body, "Interface Gi0/1 (31) is down")
			assert.Equal(t, 1, n.Details["event_count"])

			return nil
		})

	obs := []*models.InterfaceObservation{{Interface: iface, Current: downSample(), Previous: upSample()}}

	require.NoError(t, e.EvaluateInterfaces(context.Background(), device, obs, evalTime))

	assert.Equal(t, models.AlertStateTriggered, iface.OperStatusAlert.State)
}

func TestEvaluateInterfacesAlreadyDownStaysClear(t *testing.T) {
	tests := []struct {
		name     string
		previous *models.InterfaceMetric
	}{
		{name: "first sample", previous: nil},
		{name: "previously down", previous: downSample()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := db.NewMockStore(ctrl)
			notifier := notify.NewMockNotifier(ctrl)
			e := newTestEvaluator(t, store, notifier)

			iface := testInterface(31, "Gi0/1")
			obs := []*models.InterfaceObservation{{Interface: iface, Current: downSample(), Previous: tt.previous}}

			require.NoError(t, e.EvaluateInterfaces(context.Background(), testDevice(), obs, evalTime))

			assert.Equal(t, models.AlertStateClear, iface.OperStatusAlert.State)
		})
	}
}

func TestEvaluateInterfacesRecoveryNeedsNoFlank(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	iface := testInterface(31, "Gi0/1")
	iface.OperStatusAlert = models.AlertCondition{State: models.AlertStateTriggered, TriggeredAt: timePtr(evalTime.Add(-time.Hour))}

	store.EXPECT().UpdateAlertCondition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key models.ConditionKey, cond models.AlertCondition) error {
			assert.Equal(t, models.ConditionIfaceStatus, key.Condition)
			assert.Equal(t, models.AlertStateClear, cond.State)

			return nil
		})

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *notify.Notification) error {
			assert.Equal(t, "[RESOLVED] Interface Recovery - core-rtr-01", n.Subject)
			assert.Equal(t, notify.LevelInfo, n.Level)
			assert.Contains(t, n.Body, "Interface Gi0/1 (31) is up")

			return nil
		})

	// Previous sample missing: recovery still fires.
	obs := []*models.InterfaceObservation{{Interface: iface, Current: upSample()}}

	require.NoError(t, e.EvaluateInterfaces(context.Background(), testDevice(), obs, evalTime))

	assert.Equal(t, models.AlertStateClear, iface.OperStatusAlert.State)
}

func TestEvaluateInterfacesPacketDropFlankTriggers(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	iface := testInterface(31, "Gi0/1")
	key := models.ConditionKey{DeviceID: 7, InterfaceID: &iface.ID, Condition: models.ConditionPacketDrop}

	store.EXPECT().UpdateAlertCondition(gomock.Any(), key, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.ConditionKey, cond models.AlertCondition) error {
			assert.Equal(t, models.AlertStateTriggered, cond.State)
			return nil
		})

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *notify.Notification) error {
			assert.Contains(t, n.Body, "Interface Gi0/1 (31) discard rate 1.500% exceeds threshold 0.50%")
			return nil
		})

	previous := upSample()
	previous.OctetsIn, previous.OctetsOut = 1000, 1000

	// 60 discards over 4000 octets: 1.5%, past the 0.5% threshold.
	current := upSample()
	current.OctetsIn, current.OctetsOut = 2000, 2000
	current.DiscardsIn, current.DiscardsOut = 30, 30

	obs := []*models.InterfaceObservation{{Interface: iface, Current: current, Previous: previous}}

	require.NoError(t, e.EvaluateInterfaces(context.Background(), testDevice(), obs, evalTime))

	assert.Equal(t, models.AlertStateTriggered, iface.PacketDropAlert.State)
}

func TestEvaluateInterfacesPacketDropWithoutFlankStaysClear(t *testing.T) {
	exceeding := upSample()
	exceeding.OctetsIn, exceeding.OctetsOut = 1000, 1000
	exceeding.DiscardsIn = 100

	tests := []struct {
		name     string
		previous *models.InterfaceMetric
	}{
		{name: "first sample", previous: nil},
		{name: "already exceeding", previous: exceeding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := db.NewMockStore(ctrl)
			notifier := notify.NewMockNotifier(ctrl)
			e := newTestEvaluator(t, store, notifier)

			iface := testInterface(31, "Gi0/1")

			current := upSample()
			current.OctetsIn, current.OctetsOut = 2000, 2000
			current.DiscardsIn, current.DiscardsOut = 30, 30

			obs := []*models.InterfaceObservation{{Interface: iface, Current: current, Previous: tt.previous}}

			require.NoError(t, e.EvaluateInterfaces(context.Background(), testDevice(), obs, evalTime))

			assert.Equal(t, models.AlertStateClear, iface.PacketDropAlert.State)
		})
	}
}

func TestEvaluateInterfacesBatchesEventsPerDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	// Port one goes down while dropping packets; port two's discard rate
	// recovers. One alert and one recovery notification must come out.
	one := testInterface(31, "Gi0/1")
	two := testInterface(32, "Gi0/2")
	two.PacketDropAlert = models.AlertCondition{State: models.AlertStateTriggered, TriggeredAt: timePtr(evalTime.Add(-time.Hour))}

	onePrev := upSample()
	onePrev.OctetsIn, onePrev.OctetsOut = 1000, 1000

	oneCur := downSample()
	oneCur.OctetsIn, oneCur.OctetsOut = 2000, 2000
	oneCur.DiscardsIn, oneCur.DiscardsOut = 30, 30

	store.EXPECT().UpdateAlertCondition(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *notify.Notification) error {
			assert.Equal(t, "[CRITICAL] Interface Alert(s) - core-rtr-01", n.Subject)
			assert.Equal(t, 2, n.Details["event_count"])
			assert.Contains(t, n.Body, "Interface Gi0/1 (31) is down")
			assert.Contains(t, n.Body, "discard rate 1.500%")

			return nil
		})
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *notify.Notification) error {
			assert.Equal(t, "[RESOLVED] Interface Recovery - core-rtr-01", n.Subject)
			assert.Equal(t, 1, n.Details["event_count"])
			assert.Contains(t, n.Body, "Interface Gi0/2 (32) discard rate normal")

			return nil
		})

	obs := []*models.InterfaceObservation{
		{Interface: one, Current: oneCur, Previous: onePrev},
		{Interface: two, Current: upSample(), Previous: upSample()},
	}

	require.NoError(t, e.EvaluateInterfaces(context.Background(), testDevice(), obs, evalTime))

	assert.Equal(t, models.AlertStateTriggered, one.OperStatusAlert.State)
	assert.Equal(t, models.AlertStateTriggered, one.PacketDropAlert.State)
	assert.Equal(t, models.AlertStateClear, two.PacketDropAlert.State)
}

func TestEvaluateInterfacesPersistFailureIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	one := testInterface(31, "Gi0/1")
	two := testInterface(32, "Gi0/2")

	keyOne := models.ConditionKey{DeviceID: 7, InterfaceID: &one.ID, Condition: models.ConditionIfaceStatus}
	keyTwo := models.ConditionKey{DeviceID: 7, InterfaceID: &two.ID, Condition: models.ConditionIfaceStatus}

	store.EXPECT().UpdateAlertCondition(gomock.Any(), keyOne, gomock.Any()).Return(assert.AnError)
	store.EXPECT().UpdateAlertCondition(gomock.Any(), keyTwo, gomock.Any()).Return(nil)

	// Only the transition that persisted is announced.
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *notify.Notification) error {
			assert.Equal(t, 1, n.Details["event_count"])
			assert.Contains(t, n.Body, "Interface Gi0/2 (32) is down")
			assert.NotContains(t, n.Body, "Gi0/1")

			return nil
		})

	obs := []*models.InterfaceObservation{
		{Interface: one, Current: downSample(), Previous: upSample()},
		{Interface: two, Current: downSample(), Previous: upSample()},
	}

	err := e.EvaluateInterfaces(context.Background(), testDevice(), obs, evalTime)
	require.ErrorIs(t, err, assert.AnError)

	assert.Equal(t, models.AlertStateClear, one.OperStatusAlert.State)
	assert.Equal(t, models.AlertStateTriggered, two.OperStatusAlert.State)
}

func TestEvaluateInterfacesMaintenanceGatesNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	device := testDevice()
	device.MaintenanceMode = true
	device.MaintenanceUntil = timePtr(evalTime.Add(time.Hour))

	iface := testInterface(31, "Gi0/1")

	store.EXPECT().UpdateAlertCondition(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	obs := []*models.InterfaceObservation{{Interface: iface, Current: downSample(), Previous: upSample()}}

	require.NoError(t, e.EvaluateInterfaces(context.Background(), device, obs, evalTime))

	assert.Equal(t, models.AlertStateTriggered, iface.OperStatusAlert.State)
}

func TestEvaluateInterfacesSkipsIncompleteObservations(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	e := newTestEvaluator(t, store, notifier)

	require.NoError(t, e.EvaluateInterfaces(context.Background(), testDevice(), nil, evalTime))

	obs := []*models.InterfaceObservation{
		{Interface: nil, Current: downSample()},
		{Interface: testInterface(31, "Gi0/1"), Current: nil},
	}

	require.NoError(t, e.EvaluateInterfaces(context.Background(), testDevice(), obs, evalTime))
}
