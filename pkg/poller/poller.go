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

// Package poller drives the recurring poll cycle: it walks the device
// registry on a hot-reloadable interval, samples each device over SNMP
// with bounded concurrency, persists the samples, and hands every device
// to the alert evaluator once its rows are durable.
package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/edgewatch/edgewatch/pkg/config"
	"github.com/edgewatch/edgewatch/pkg/db"
	"github.com/edgewatch/edgewatch/pkg/logger"
	"github.com/edgewatch/edgewatch/pkg/metrics"
	"github.com/edgewatch/edgewatch/pkg/models"
	"github.com/edgewatch/edgewatch/pkg/snmp"
)

// Poller owns the poll loop. Cycles never overlap: a tick or manual
// trigger that arrives while a cycle is in flight is skipped. Interval
// changes land at the next loop iteration, never mid-cycle.
type Poller struct {
	clients   snmp.ClientFactory
	snmpConf  snmp.ClientConfig
	store     db.Store
	evaluator AlertEvaluator
	settings  *config.Settings
	clock     Clock
	logger    logger.Logger
	metrics   *metrics.Metrics

	ticker    Ticker
	reloadCh  chan time.Duration
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	mu       sync.Mutex
	inFlight bool
}

// New creates a poller. A nil clock selects the real time package.
func New(
	clients snmp.ClientFactory,
	snmpConf snmp.ClientConfig,
	store db.Store,
	evaluator AlertEvaluator,
	settings *config.Settings,
	clock Clock,
	log logger.Logger,
	m *metrics.Metrics,
) (*Poller, error) {
	if clients == nil {
		return nil, ErrNilClientFactory
	}

	if store == nil {
		return nil, ErrNilStore
	}

	if evaluator == nil {
		return nil, ErrNilEvaluator
	}

	if settings == nil {
		return nil, ErrNilSettings
	}

	if clock == nil {
		clock = realClock{}
	}

	return &Poller{
		clients:   clients,
		snmpConf:  snmpConf,
		store:     store,
		evaluator: evaluator,
		settings:  settings,
		clock:     clock,
		logger:    log,
		metrics:   m,
		reloadCh:  make(chan time.Duration, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start runs the poll loop until ctx is canceled or Stop is called. The
// first cycle runs immediately; later cycles follow the ticker.
func (p *Poller) Start(ctx context.Context) error {
	interval := p.settings.Snapshot().PollInterval
	p.ticker = p.clock.Ticker(interval)

	// Closure so the reloaded ticker is the one stopped on exit.
	defer func() {
		p.ticker.Stop()
	}()

	p.logger.Info().Dur("interval", interval).Msg("Starting poller")

	p.wg.Add(1)
	defer p.wg.Done()

	if _, err := p.runCycle(ctx); err != nil {
		p.logger.Error().Err(err).Msg("Error during initial poll cycle")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.done:
			return nil
		case <-p.ticker.Chan():
			p.wg.Add(1)

			go func() {
				defer p.wg.Done()

				if _, err := p.runCycle(ctx); err != nil {
					if errors.Is(err, ErrCycleInProgress) {
						p.logger.Warn().Msg("Previous poll cycle still running, skipping tick")
						return
					}

					p.logger.Error().Err(err).Msg("Error during poll cycle")
				}
			}()
		case interval := <-p.reloadCh:
			p.ticker.Stop()
			p.ticker = p.clock.Ticker(interval)
			p.logger.Info().Dur("interval", interval).Msg("Poll interval hot-reloaded")
		}
	}
}

// Stop ends the poll loop and waits for any in-flight cycle to drain.
func (p *Poller) Stop(_ context.Context) error {
	p.closeOnce.Do(func() {
		close(p.done)
	})

	p.wg.Wait()

	return nil
}

// PollNow runs one cycle outside the schedule. It returns
// ErrCycleInProgress rather than queueing when a cycle is running.
func (p *Poller) PollNow(ctx context.Context) (*models.CycleSummary, error) {
	return p.runCycle(ctx)
}

// UpdateInterval requests a new tick interval. The change applies at the
// next loop iteration; an in-progress cycle is never cut short. Calls
// after Stop are dropped.
func (p *Poller) UpdateInterval(interval time.Duration) {
	select {
	case <-p.done:
		return
	default:
	}

	// Replace any queued value so the loop only sees the newest.
	select {
	case <-p.reloadCh:
	default:
	}

	select {
	case p.reloadCh <- interval:
	default:
	}
}

// runCycle polls every registered device once, bounded by the configured
// concurrency. Per-device failures are isolated and counted; only a
// registry read failure or cancellation fails the cycle itself.
func (p *Poller) runCycle(ctx context.Context) (*models.CycleSummary, error) {
	if !p.beginCycle() {
		return nil, ErrCycleInProgress
	}
	defer p.endCycle()

	snap := p.settings.Snapshot()

	// One timestamp for every row written this cycle, so interface
	// samples across the fleet align for network-wide aggregation.
	cycleTime := p.clock.Now().UTC()

	devices, err := p.store.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing devices for poll cycle: %w", err)
	}

	summary := &models.CycleSummary{
		Attempted: len(devices),
		Started:   cycleTime,
	}

	p.logger.Info().
		Int("devices", len(devices)).
		Int("concurrency", snap.PollConcurrency).
		Msg("Starting poll cycle")

	var (
		mu        sync.Mutex
		succeeded int
		failed    int
	)

	sem := semaphore.NewWeighted(int64(snap.PollConcurrency))

	var wg sync.WaitGroup

	for _, device := range devices {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}

		wg.Add(1)

		go func(device *models.Device) {
			defer wg.Done()
			defer sem.Release(1)

			if err := p.pollDevice(ctx, device, cycleTime); err != nil {
				p.logger.Error().Err(err).
					Str("ip", device.IPAddress).
					Str("hostname", device.Hostname).
					Msg("Device poll failed")
				p.metrics.DevicePollsTotal.WithLabelValues(metrics.ResultFailure).Inc()

				mu.Lock()
				failed++
				mu.Unlock()

				return
			}

			p.metrics.DevicePollsTotal.WithLabelValues(metrics.ResultSuccess).Inc()

			mu.Lock()
			succeeded++
			mu.Unlock()
		}(device)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary.Succeeded = succeeded
	summary.Failed = failed
	summary.Completed = p.clock.Now().UTC()

	reachable := 0

	for _, device := range devices {
		if device.IsReachable {
			reachable++
		}
	}

	p.metrics.PollCyclesTotal.Inc()
	p.metrics.PollCycleSeconds.Observe(summary.Completed.Sub(summary.Started).Seconds())
	p.metrics.DevicesReachable.Set(float64(reachable))

	p.logger.Info().
		Int("attempted", summary.Attempted).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Dur("took", summary.Completed.Sub(summary.Started)).
		Msg("Poll cycle completed")

	return summary, nil
}

func (p *Poller) beginCycle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.inFlight {
		return false
	}

	p.inFlight = true

	return true
}

func (p *Poller) endCycle() {
	p.mu.Lock()
	p.inFlight = false
	p.mu.Unlock()
}
