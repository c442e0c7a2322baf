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

package core

import (
	"context"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edgewatch/edgewatch/pkg/config"
	"github.com/edgewatch/edgewatch/pkg/db"
	"github.com/edgewatch/edgewatch/pkg/logger"
	"github.com/edgewatch/edgewatch/pkg/models"
)

// fakeCache is an in-memory cache.Cache so tests can observe hits and
// invalidations without a Redis backend.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.entries[key]

	return data, ok
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries[key] = value
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, key := range keys {
		delete(f.entries, key)
	}
}

func (f *fakeCache) DeletePattern(_ context.Context, pattern string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for key := range f.entries {
		if ok, _ := path.Match(pattern, key); ok {
			delete(f.entries, key)
		}
	}
}

func (f *fakeCache) Enabled() bool { return true }
func (f *fakeCache) Close() error  { return nil }

func (f *fakeCache) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.entries[key]

	return ok
}

type monitorDeps struct {
	store     *db.MockStore
	cache     *fakeCache
	discovery *MockDiscoverer
	poller    *MockPollRunner
	alerts    *MockAlertManager
	settings  *config.Settings
}

func newTestMonitor(t *testing.T) (*Monitor, *monitorDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	deps := &monitorDeps{
		store:     db.NewMockStore(ctrl),
		cache:     newFakeCache(),
		discovery: NewMockDiscoverer(ctrl),
		poller:    NewMockPollRunner(ctrl),
		alerts:    NewMockAlertManager(ctrl),
		settings: config.NewSettings(&config.Config{
			Polling: config.PollingConfig{
				Interval:    models.Duration(time.Minute),
				Concurrency: 10,
			},
			Discovery: config.DiscoveryConfig{Concurrency: 10},
		}),
	}

	monitor, err := New(deps.store, deps.cache, deps.discovery, deps.poller,
		deps.alerts, deps.settings, logger.NewTestLogger())
	require.NoError(t, err)

	return monitor, deps
}

func TestNewRequiresDependencies(t *testing.T) {
	_, deps := newTestMonitor(t)
	log := logger.NewTestLogger()

	_, err := New(nil, deps.cache, deps.discovery, deps.poller, deps.alerts, deps.settings, log)
	assert.ErrorIs(t, err, ErrNilStore)

	_, err = New(deps.store, nil, deps.discovery, deps.poller, deps.alerts, deps.settings, log)
	assert.ErrorIs(t, err, ErrNilCache)

	_, err = New(deps.store, deps.cache, nil, deps.poller, deps.alerts, deps.settings, log)
	assert.ErrorIs(t, err, ErrNilDiscovery)

	_, err = New(deps.store, deps.cache, deps.discovery, nil, deps.alerts, deps.settings, log)
	assert.ErrorIs(t, err, ErrNilPoller)

	_, err = New(deps.store, deps.cache, deps.discovery, deps.poller, nil, deps.settings, log)
	assert.ErrorIs(t, err, ErrNilAlerts)

	_, err = New(deps.store, deps.cache, deps.discovery, deps.poller, deps.alerts, nil, log)
	assert.ErrorIs(t, err, ErrNilSettings)
}

func TestTriggerDiscoveryRejectsDuplicateNetwork(t *testing.T) {
	monitor, deps := newTestMonitor(t)

	entered := make(chan struct{})
	release := make(chan struct{})

	deps.discovery.EXPECT().
		Discover(gomock.Any(), "192.168.1.0/24").
		DoAndReturn(func(context.Context, string) (*models.DiscoverySummary, error) {
			close(entered)
			<-release

			return &models.DiscoverySummary{Scanned: 254}, nil
		})

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		summary, err := monitor.TriggerDiscovery(context.Background(), "192.168.1.0/24")
		assert.NoError(t, err)
		assert.Equal(t, 254, summary.Scanned)
	}()

	<-entered

	// Same network while the sweep is running is rejected.
	_, err := monitor.TriggerDiscovery(context.Background(), "192.168.1.0/24")
	assert.ErrorIs(t, err, ErrScanInProgress)

	// A different network is allowed to run concurrently.
	deps.discovery.EXPECT().
		Discover(gomock.Any(), "10.0.0.0/29").
		Return(&models.DiscoverySummary{Scanned: 6}, nil)

	_, err = monitor.TriggerDiscovery(context.Background(), "10.0.0.0/29")
	assert.NoError(t, err)

	close(release)
	wg.Wait()

	// The finished sweep releases its slot.
	deps.discovery.EXPECT().
		Discover(gomock.Any(), "192.168.1.0/24").
		Return(&models.DiscoverySummary{}, nil)

	_, err = monitor.TriggerDiscovery(context.Background(), "192.168.1.0/24")
	assert.NoError(t, err)
}

func TestTriggerDiscoveryInvalidatesSummariesOnChange(t *testing.T) {
	monitor, deps := newTestMonitor(t)
	ctx := context.Background()

	deps.cache.Set(ctx, summaryKey, []byte("{}"), time.Minute)
	deps.cache.Set(ctx, "network:top:5", []byte("[]"), time.Minute)

	deps.discovery.EXPECT().
		Discover(gomock.Any(), "10.0.0.0/24").
		Return(&models.DiscoverySummary{Found: 1, New: 1}, nil)

	_, err := monitor.TriggerDiscovery(ctx, "10.0.0.0/24")
	require.NoError(t, err)

	assert.False(t, deps.cache.has(summaryKey))
	assert.False(t, deps.cache.has("network:top:5"))
}

func TestTriggerDiscoveryKeepsCacheWhenNothingChanged(t *testing.T) {
	monitor, deps := newTestMonitor(t)
	ctx := context.Background()

	deps.cache.Set(ctx, summaryKey, []byte("{}"), time.Minute)

	deps.discovery.EXPECT().
		Discover(gomock.Any(), "10.0.0.0/24").
		Return(&models.DiscoverySummary{Scanned: 254}, nil)

	_, err := monitor.TriggerDiscovery(ctx, "10.0.0.0/24")
	require.NoError(t, err)

	assert.True(t, deps.cache.has(summaryKey))
}

func TestPollNowDelegates(t *testing.T) {
	monitor, deps := newTestMonitor(t)

	deps.poller.EXPECT().
		PollNow(gomock.Any()).
		Return(&models.CycleSummary{Attempted: 3, Succeeded: 2, Failed: 1}, nil)

	summary, err := monitor.PollNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Succeeded)
}

func TestUpdateDeviceThresholdsRejectsOutOfRange(t *testing.T) {
	monitor, _ := newTestMonitor(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		cpu      float64
		memory   float64
		failures int
	}{
		{name: "cpu above 100", cpu: 150, memory: 80, failures: 3},
		{name: "negative cpu", cpu: -1, memory: 80, failures: 3},
		{name: "memory above 100", cpu: 80, memory: 100.5, failures: 3},
		{name: "zero failure threshold", cpu: 80, memory: 80, failures: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No store expectation: invalid values never reach persistence.
			err := monitor.UpdateDeviceThresholds(ctx, 1, tt.cpu, tt.memory, tt.failures)
			assert.ErrorIs(t, err, ErrInvalidThreshold)
		})
	}
}

func TestUpdateDeviceThresholdsPersistsAndInvalidates(t *testing.T) {
	monitor, deps := newTestMonitor(t)
	ctx := context.Background()

	deps.cache.Set(ctx, summaryKey, []byte("{}"), time.Minute)
	deps.cache.Set(ctx, "device:7:detail", []byte("{}"), time.Minute)
	deps.cache.Set(ctx, "device:8:detail", []byte("{}"), time.Minute)

	deps.store.EXPECT().
		UpdateDeviceThresholds(gomock.Any(), int64(7), 90.0, 85.0, 5).
		Return(nil)

	err := monitor.UpdateDeviceThresholds(ctx, 7, 90, 85, 5)
	require.NoError(t, err)

	assert.False(t, deps.cache.has(summaryKey))
	assert.False(t, deps.cache.has("device:7:detail"))
	assert.True(t, deps.cache.has("device:8:detail"), "other devices' entries survive")
}

func TestUpdateInterfaceThreshold(t *testing.T) {
	monitor, deps := newTestMonitor(t)
	ctx := context.Background()

	err := monitor.UpdateInterfaceThreshold(ctx, 3, 120)
	assert.ErrorIs(t, err, ErrInvalidThreshold)

	deps.cache.Set(ctx, "device:2:detail", []byte("{}"), time.Minute)

	deps.store.EXPECT().
		GetInterfaceByID(gomock.Any(), int64(3)).
		Return(&models.Interface{ID: 3, DeviceID: 2, IfName: "eth0"}, nil)
	deps.store.EXPECT().
		UpdateInterfaceThreshold(gomock.Any(), int64(3), 0.5).
		Return(nil)

	err = monitor.UpdateInterfaceThreshold(ctx, 3, 0.5)
	require.NoError(t, err)

	assert.False(t, deps.cache.has("device:2:detail"))
}

func TestDeleteDeviceInvalidatesScopedKeys(t *testing.T) {
	monitor, deps := newTestMonitor(t)
	ctx := context.Background()

	deps.cache.Set(ctx, "device:4:detail", []byte("{}"), time.Minute)
	deps.cache.Set(ctx, summaryKey, []byte("{}"), time.Minute)

	deps.store.EXPECT().DeleteDevice(gomock.Any(), int64(4)).Return(nil)

	require.NoError(t, monitor.DeleteDevice(ctx, 4))
	assert.False(t, deps.cache.has("device:4:detail"))
	assert.False(t, deps.cache.has(summaryKey))
}

func TestSetMaintenanceClearsWindowOnDisable(t *testing.T) {
	monitor, deps := newTestMonitor(t)
	until := time.Now().Add(time.Hour)

	deps.store.EXPECT().
		SetMaintenance(gomock.Any(), int64(9), false, nil, "").
		Return(nil)

	// Disabling drops the expiry and reason even when the caller passes them.
	err := monitor.SetMaintenance(context.Background(), 9, false, &until, "window over")
	assert.NoError(t, err)
}

func TestUpdateSettingsAppliesIntervalAtNextBoundary(t *testing.T) {
	monitor, deps := newTestMonitor(t)

	interval := 30 * time.Second
	deps.poller.EXPECT().UpdateInterval(interval)

	snapshot, err := monitor.UpdateSettings(context.Background(), config.SettingsPatch{
		PollInterval: &interval,
	})
	require.NoError(t, err)
	assert.Equal(t, interval, snapshot.PollInterval)
	assert.Equal(t, interval, monitor.Settings().PollInterval)
}

func TestUpdateSettingsRejectsInvalidPatch(t *testing.T) {
	monitor, _ := newTestMonitor(t)

	bad := 500 * time.Millisecond

	// The poller must not hear about a rejected interval.
	_, err := monitor.UpdateSettings(context.Background(), config.SettingsPatch{
		PollInterval: &bad,
	})
	assert.ErrorIs(t, err, config.ErrInvalidInterval)
	assert.Equal(t, time.Minute, monitor.Settings().PollInterval)

	tooMany := 5000

	_, err = monitor.UpdateSettings(context.Background(), config.SettingsPatch{
		PollConcurrency: &tooMany,
	})
	assert.ErrorIs(t, err, config.ErrInvalidConcurrency)
}

func TestAlertOperationsDelegate(t *testing.T) {
	monitor, deps := newTestMonitor(t)
	ctx := context.Background()

	key := models.ConditionKey{DeviceID: 1, Condition: models.ConditionCPU}

	deps.alerts.EXPECT().Acknowledge(gomock.Any(), key).Return(nil)
	assert.NoError(t, monitor.Acknowledge(ctx, key))

	deps.alerts.EXPECT().Resolve(gomock.Any(), key).Return(nil)
	assert.NoError(t, monitor.Resolve(ctx, key))
}

func TestListActiveAlerts(t *testing.T) {
	monitor, deps := newTestMonitor(t)

	deps.store.EXPECT().
		ListActiveAlerts(gomock.Any()).
		Return([]*models.ActiveAlert{
			{DeviceID: 1, Condition: models.ConditionCPU, State: models.AlertStateTriggered},
		}, nil)

	alerts, err := monitor.ListActiveAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.ConditionCPU, alerts[0].Condition)
}
