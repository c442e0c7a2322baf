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

// Package core exposes the operator surface of the monitoring engines:
// job triggers, registry reads and threshold updates, alert actions,
// runtime settings, and the cached aggregate queries dashboards poll.
package core

import (
	"context"
	"sync"

	"github.com/edgewatch/edgewatch/pkg/cache"
	"github.com/edgewatch/edgewatch/pkg/config"
	"github.com/edgewatch/edgewatch/pkg/db"
	"github.com/edgewatch/edgewatch/pkg/logger"
	"github.com/edgewatch/edgewatch/pkg/models"
)

// Monitor owns the engines and fronts them for the API layer. All methods
// are safe for concurrent use; the engines carry their own single-flight
// guards and the monitor only adds the per-network discovery lock.
type Monitor struct {
	store     db.Store
	cache     cache.Cache
	discovery Discoverer
	poller    PollRunner
	alerts    AlertManager
	settings  *config.Settings
	logger    logger.Logger

	mu    sync.Mutex
	scans map[string]struct{}
}

// New wires the operator surface. Every dependency is required; the cache
// may be the disabled implementation but not nil.
func New(
	store db.Store,
	c cache.Cache,
	disc Discoverer,
	runner PollRunner,
	alerts AlertManager,
	settings *config.Settings,
	log logger.Logger,
) (*Monitor, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	if c == nil {
		return nil, ErrNilCache
	}

	if disc == nil {
		return nil, ErrNilDiscovery
	}

	if runner == nil {
		return nil, ErrNilPoller
	}

	if alerts == nil {
		return nil, ErrNilAlerts
	}

	if settings == nil {
		return nil, ErrNilSettings
	}

	return &Monitor{
		store:     store,
		cache:     c,
		discovery: disc,
		poller:    runner,
		alerts:    alerts,
		settings:  settings,
		logger:    log,
		scans:     make(map[string]struct{}),
	}, nil
}

// TriggerDiscovery runs a discovery sweep of the network. A second request
// for the same network while one is in flight is rejected; sweeps of
// different networks may run concurrently.
func (m *Monitor) TriggerDiscovery(ctx context.Context, network string) (*models.DiscoverySummary, error) {
	if err := m.beginScan(network); err != nil {
		return nil, err
	}
	defer m.endScan(network)

	summary, err := m.discovery.Discover(ctx, network)
	if err != nil {
		return nil, err
	}

	if summary.New > 0 || summary.Updated > 0 {
		m.invalidateSummaries(ctx)
	}

	return summary, nil
}

// PollNow runs one poll cycle immediately. The poller's in-flight guard
// applies: a cycle already running surfaces as ErrCycleInProgress.
func (m *Monitor) PollNow(ctx context.Context) (*models.CycleSummary, error) {
	return m.poller.PollNow(ctx)
}

func (m *Monitor) beginScan(network string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, running := m.scans[network]; running {
		return ErrScanInProgress
	}

	m.scans[network] = struct{}{}

	return nil
}

func (m *Monitor) endScan(network string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.scans, network)
}

// invalidateSummaries drops the fleet-wide rollups after a registry
// mutation so dashboards don't serve stale counts for a full TTL.
func (m *Monitor) invalidateSummaries(ctx context.Context) {
	m.cache.Delete(ctx, summaryKey, utilizationKey)
	m.cache.DeletePattern(ctx, "network:top:*")
}
