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

func TestAcknowledgeFromTriggered(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	e := newTestEvaluator(t, store, notify.NewMockNotifier(ctrl))

	triggeredAt := evalTime.Add(-time.Hour)
	device := testDevice()
	device.CPUAlert = models.AlertCondition{State: models.AlertStateTriggered, TriggeredAt: &triggeredAt}

	key := models.ConditionKey{DeviceID: 7, Condition: models.ConditionCPU}

	store.EXPECT().GetDeviceByID(gomock.Any(), int64(7)).Return(device, nil)
	store.EXPECT().UpdateAlertCondition(gomock.Any(), key, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.ConditionKey, cond models.AlertCondition) error {
			assert.Equal(t, models.AlertStateAcknowledged, cond.State)
			require.NotNil(t, cond.TriggeredAt)
			assert.True(t, cond.TriggeredAt.Equal(triggeredAt))
			require.NotNil(t, cond.AcknowledgedAt)
			assert.WithinDuration(t, time.Now().UTC(), *cond.AcknowledgedAt, time.Minute)

			return nil
		})

	require.NoError(t, e.Acknowledge(context.Background(), key))
}

func TestAcknowledgeRequiresActiveCondition(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	e := newTestEvaluator(t, store, notify.NewMockNotifier(ctrl))

	store.EXPECT().GetDeviceByID(gomock.Any(), int64(7)).Return(testDevice(), nil)

	err := e.Acknowledge(context.Background(), models.ConditionKey{DeviceID: 7, Condition: models.ConditionCPU})
	assert.ErrorIs(t, err, ErrNoActiveCondition)
}

func TestAcknowledgeTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	e := newTestEvaluator(t, store, notify.NewMockNotifier(ctrl))

	device := testDevice()
	device.MemoryAlert = models.AlertCondition{
		State:          models.AlertStateAcknowledged,
		TriggeredAt:    timePtr(evalTime.Add(-time.Hour)),
		AcknowledgedAt: timePtr(evalTime.Add(-30 * time.Minute)),
	}

	store.EXPECT().GetDeviceByID(gomock.Any(), int64(7)).Return(device, nil)

	err := e.Acknowledge(context.Background(), models.ConditionKey{DeviceID: 7, Condition: models.ConditionMemory})
	assert.ErrorIs(t, err, ErrAlreadyAcknowledged)
}

func TestAcknowledgeInterfaceCondition(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	e := newTestEvaluator(t, store, notify.NewMockNotifier(ctrl))

	iface := testInterface(31, "Gi0/1")
	iface.PacketDropAlert = models.AlertCondition{State: models.AlertStateTriggered, TriggeredAt: timePtr(evalTime)}

	key := models.ConditionKey{DeviceID: 7, InterfaceID: &iface.ID, Condition: models.ConditionPacketDrop}

	store.EXPECT().GetInterfaceByID(gomock.Any(), int64(31)).Return(iface, nil)
	store.EXPECT().UpdateAlertCondition(gomock.Any(), key, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.ConditionKey, cond models.AlertCondition) error {
			assert.Equal(t, models.AlertStateAcknowledged, cond.State)
			return nil
		})

	require.NoError(t, e.Acknowledge(context.Background(), key))
}

func TestAcknowledgeRejectsMalformedKeys(t *testing.T) {
	ifaceID := int64(31)

	tests := []struct {
		name  string
		key   models.ConditionKey
		setup func(store *db.MockStore)
	}{
		{
			name:  "interface kind without interface id",
			key:   models.ConditionKey{DeviceID: 7, Condition: models.ConditionPacketDrop},
			setup: func(*db.MockStore) {},
		},
		{
			name: "interface on another device",
			key:  models.ConditionKey{DeviceID: 7, InterfaceID: &ifaceID, Condition: models.ConditionIfaceStatus},
			setup: func(store *db.MockStore) {
				iface := testInterface(31, "Gi0/1")
				iface.DeviceID = 9
				store.EXPECT().GetInterfaceByID(gomock.Any(), int64(31)).Return(iface, nil)
			},
		},
		{
			name: "unknown device condition",
			key:  models.ConditionKey{DeviceID: 7, Condition: models.ConditionKind("fan_speed")},
			setup: func(store *db.MockStore) {
				store.EXPECT().GetDeviceByID(gomock.Any(), int64(7)).Return(testDevice(), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := db.NewMockStore(ctrl)
			e := newTestEvaluator(t, store, notify.NewMockNotifier(ctrl))

			tt.setup(store)

			err := e.Acknowledge(context.Background(), tt.key)
			assert.ErrorIs(t, err, ErrUnknownCondition)
		})
	}
}

func TestAcknowledgePropagatesStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	e := newTestEvaluator(t, store, notify.NewMockNotifier(ctrl))

	store.EXPECT().GetDeviceByID(gomock.Any(), int64(7)).Return(nil, db.ErrDeviceNotFound)

	err := e.Acknowledge(context.Background(), models.ConditionKey{DeviceID: 7, Condition: models.ConditionCPU})
	assert.ErrorIs(t, err, db.ErrDeviceNotFound)
}

func TestResolveClearsActiveCondition(t *testing.T) {
	for _, state := range []models.AlertState{models.AlertStateTriggered, models.AlertStateAcknowledged} {
		t.Run(string(state), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := db.NewMockStore(ctrl)
			e := newTestEvaluator(t, store, notify.NewMockNotifier(ctrl))

			device := testDevice()
			device.ReachabilityAlert = models.AlertCondition{State: state, TriggeredAt: timePtr(evalTime)}

			key := models.ConditionKey{DeviceID: 7, Condition: models.ConditionReachability}

			store.EXPECT().GetDeviceByID(gomock.Any(), int64(7)).Return(device, nil)
			store.EXPECT().UpdateAlertCondition(gomock.Any(), key, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ models.ConditionKey, cond models.AlertCondition) error {
					assert.Equal(t, models.AlertStateClear, cond.State)
					assert.Nil(t, cond.TriggeredAt)
					assert.Nil(t, cond.AcknowledgedAt)

					return nil
				})

			require.NoError(t, e.Resolve(context.Background(), key))
		})
	}
}

func TestResolveRequiresActiveCondition(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	e := newTestEvaluator(t, store, notify.NewMockNotifier(ctrl))

	store.EXPECT().GetDeviceByID(gomock.Any(), int64(7)).Return(testDevice(), nil)

	err := e.Resolve(context.Background(), models.ConditionKey{DeviceID: 7, Condition: models.ConditionCPU})
	assert.ErrorIs(t, err, ErrNoActiveCondition)
}

func TestResolvePersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := db.NewMockStore(ctrl)
	e := newTestEvaluator(t, store, notify.NewMockNotifier(ctrl))

	device := testDevice()
	device.CPUAlert = models.AlertCondition{State: models.AlertStateTriggered, TriggeredAt: timePtr(evalTime)}

	store.EXPECT().GetDeviceByID(gomock.Any(), int64(7)).Return(device, nil)
	store.EXPECT().UpdateAlertCondition(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

	err := e.Resolve(context.Background(), models.ConditionKey{DeviceID: 7, Condition: models.ConditionCPU})
	assert.ErrorIs(t, err, assert.AnError)
}
