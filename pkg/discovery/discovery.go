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

// Package discovery probes operator-supplied network ranges for manageable
// devices and registers them with the device registry.
package discovery

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edgewatch/edgewatch/pkg/config"
	"github.com/edgewatch/edgewatch/pkg/db"
	"github.com/edgewatch/edgewatch/pkg/logger"
	"github.com/edgewatch/edgewatch/pkg/metrics"
	"github.com/edgewatch/edgewatch/pkg/models"
	"github.com/edgewatch/edgewatch/pkg/snmp"
)

// Engine expands CIDR ranges and probes each candidate address with bounded
// concurrency. Its only side effects are registry upserts; it never writes
// metric samples or alert state, so it can run alongside an active poll
// cycle.
type Engine struct {
	clients  snmp.ClientFactory
	snmpConf snmp.ClientConfig
	store    db.Store
	settings *config.Settings
	strict   bool
	logger   logger.Logger
	metrics  *metrics.Metrics
}

// New creates a discovery engine. The strict flag keeps network and
// broadcast addresses in the candidate list.
func New(
	clients snmp.ClientFactory,
	snmpConf snmp.ClientConfig,
	store db.Store,
	settings *config.Settings,
	strict bool,
	log logger.Logger,
	m *metrics.Metrics,
) (*Engine, error) {
	if clients == nil {
		return nil, ErrNilClientFactory
	}

	if store == nil {
		return nil, ErrNilStore
	}

	if settings == nil {
		return nil, ErrNilSettings
	}

	return &Engine{
		clients:  clients,
		snmpConf: snmpConf,
		store:    store,
		settings: settings,
		strict:   strict,
		logger:   log,
		metrics:  m,
	}, nil
}

// Discover scans one CIDR network and upserts every responding device.
// Addresses that do not answer are skipped per target; an empty result is
// a successful, empty summary, not an error.
func (e *Engine) Discover(ctx context.Context, network string) (*models.DiscoverySummary, error) {
	targets, err := expandNetwork(network, e.strict)
	if err != nil {
		return nil, err
	}

	summary := &models.DiscoverySummary{
		JobID:   uuid.New().String(),
		Network: network,
		Scanned: len(targets),
		Started: time.Now().UTC(),
	}

	e.metrics.DiscoveryJobsTotal.Inc()
	e.logger.Info().
		Str("job_id", summary.JobID).
		Str("network", network).
		Int("targets", len(targets)).
		Msg("Starting discovery")

	concurrency := e.settings.Snapshot().DiscoveryConcurrency
	if concurrency > len(targets) {
		concurrency = len(targets)
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	targetChan := make(chan string)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for target := range targetChan {
				if ctx.Err() != nil {
					return
				}

				device, ok := e.probeTarget(ctx, target)
				if !ok {
					continue
				}

				created, regErr := e.registerDevice(ctx, device)

				mu.Lock()
				summary.Found++

				if regErr == nil {
					if created {
						summary.New++
					} else {
						summary.Updated++
					}
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, target := range targets {
		select {
		case targetChan <- target:
		case <-ctx.Done():
			break feed
		}
	}

	close(targetChan)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary.Completed = time.Now().UTC()

	e.metrics.DevicesDiscovered.WithLabelValues(metrics.KindNew).Add(float64(summary.New))
	e.metrics.DevicesDiscovered.WithLabelValues(metrics.KindUpdated).Add(float64(summary.Updated))

	e.logger.Info().
		Str("job_id", summary.JobID).
		Int("scanned", summary.Scanned).
		Int("found", summary.Found).
		Int("new", summary.New).
		Int("updated", summary.Updated).
		Msg("Discovery completed")

	return summary, nil
}
