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
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/edgewatch/edgewatch/pkg/cache"
	"github.com/edgewatch/edgewatch/pkg/models"
)

// Cache keys and lifetimes for the aggregate reads. The aggregates are
// the only cache consumers; everything else reads the store directly.
const (
	summaryKey     = "network:summary"
	utilizationKey = "network:utilization"

	summaryTTL    = 30 * time.Second
	topDevicesTTL = 60 * time.Second
	throughputTTL = 30 * time.Second

	defaultTopDevices       = 5
	defaultThroughputWindow = time.Hour
)

// NetworkSummary returns the fleet-wide rollup, memoized for 30 seconds.
func (m *Monitor) NetworkSummary(ctx context.Context) (*models.NetworkSummary, error) {
	return cache.Cached(ctx, m.cache, summaryKey, summaryTTL, m.store.NetworkSummary)
}

// TopDevices returns the devices with the highest most-recent CPU
// reading, busiest first. A non-positive limit falls back to the default
// listing size.
func (m *Monitor) TopDevices(ctx context.Context, limit int) ([]*models.TopDevice, error) {
	if limit <= 0 {
		limit = defaultTopDevices
	}

	key := fmt.Sprintf("network:top:%d", limit)

	return cache.Cached(ctx, m.cache, key, topDevicesTTL, func(ctx context.Context) ([]*models.TopDevice, error) {
		return m.store.TopDevicesByCPU(ctx, limit, 0)
	})
}

// InterfaceThroughput aggregates one interface's traffic rate over the
// window. A non-positive window falls back to one hour.
func (m *Monitor) InterfaceThroughput(ctx context.Context, interfaceID int64, window time.Duration) (*models.ThroughputStats, error) {
	if window <= 0 {
		window = defaultThroughputWindow
	}

	key := fmt.Sprintf("iface:%d:throughput:%s", interfaceID, window)

	return cache.Cached(ctx, m.cache, key, throughputTTL, func(ctx context.Context) (*models.ThroughputStats, error) {
		samples, err := m.store.InterfaceThroughput(ctx, interfaceID, window)
		if err != nil {
			return nil, err
		}

		return aggregateThroughput(interfaceID, samples), nil
	})
}

// NetworkThroughput returns the fleet-wide traffic series: one datapoint
// per poll cycle carrying the summed per-interface rates for that cycle.
func (m *Monitor) NetworkThroughput(ctx context.Context, window time.Duration) ([]*models.ThroughputPoint, error) {
	if window <= 0 {
		window = defaultThroughputWindow
	}

	key := fmt.Sprintf("network:throughput:%s", window)

	return cache.Cached(ctx, m.cache, key, throughputTTL, func(ctx context.Context) ([]*models.ThroughputPoint, error) {
		samples, err := m.store.NetworkThroughputSamples(ctx, window)
		if err != nil {
			return nil, err
		}

		return networkSeries(samples), nil
	})
}

// AverageUtilization returns the mean bandwidth utilization across
// interfaces that have a known speed and are administratively and
// operationally up. Interfaces failing any of those checks are excluded
// from both the numerator and the denominator.
func (m *Monitor) AverageUtilization(ctx context.Context) (*models.UtilizationSummary, error) {
	return cache.Cached(ctx, m.cache, utilizationKey, summaryTTL, m.computeUtilization)
}

// aggregateThroughput turns ordered counter samples into a windowed rate:
// 8 * sum(octet deltas) / sum(second deltas). Summing deltas before
// dividing weights each pair by its real duration; averaging per-pair
// rates would let a short gap dominate the window. Pairs where a counter
// went backwards (reboot or wrap) or time stood still are skipped.
func aggregateThroughput(interfaceID int64, samples []*models.ThroughputSample) *models.ThroughputStats {
	stats := &models.ThroughputStats{InterfaceID: interfaceID, Samples: len(samples)}

	if len(samples) == 0 {
		return stats
	}

	stats.WindowStart = samples[0].Timestamp
	stats.WindowEnd = samples[len(samples)-1].Timestamp

	var (
		inBytes, outBytes uint64
		seconds           float64
	)

	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]

		deltaSec := cur.Timestamp.Sub(prev.Timestamp).Seconds()
		if deltaSec <= 0 || cur.OctetsIn < prev.OctetsIn || cur.OctetsOut < prev.OctetsOut {
			stats.Skipped++
			continue
		}

		inBytes += cur.OctetsIn - prev.OctetsIn
		outBytes += cur.OctetsOut - prev.OctetsOut
		seconds += deltaSec
	}

	if seconds > 0 {
		stats.InBPS = float64(inBytes) * 8 / seconds
		stats.OutBPS = float64(outBytes) * 8 / seconds
	}

	return stats
}

// networkSeries folds per-interface counter samples into one datapoint
// per cycle timestamp. Samples arrive grouped by interface and time
// ascending; each consecutive pair contributes its rate to the later
// sample's cycle. Wrapped counters and repeated timestamps are skipped.
func networkSeries(samples []*models.ThroughputSample) []*models.ThroughputPoint {
	points := make(map[time.Time]*models.ThroughputPoint)

	var prev *models.ThroughputSample

	for _, cur := range samples {
		if prev == nil || prev.InterfaceID != cur.InterfaceID {
			prev = cur
			continue
		}

		deltaSec := cur.Timestamp.Sub(prev.Timestamp).Seconds()
		if deltaSec > 0 && cur.OctetsIn >= prev.OctetsIn && cur.OctetsOut >= prev.OctetsOut {
			point := points[cur.Timestamp]
			if point == nil {
				point = &models.ThroughputPoint{Timestamp: cur.Timestamp}
				points[cur.Timestamp] = point
			}

			point.InBPS += float64(cur.OctetsIn-prev.OctetsIn) * 8 / deltaSec
			point.OutBPS += float64(cur.OctetsOut-prev.OctetsOut) * 8 / deltaSec
		}

		prev = cur
	}

	series := make([]*models.ThroughputPoint, 0, len(points))
	for _, point := range points {
		series = append(series, point)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Timestamp.Before(series[j].Timestamp)
	})

	return series
}

func (m *Monitor) computeUtilization(ctx context.Context) (*models.UtilizationSummary, error) {
	devices, err := m.store.ListDevices(ctx)
	if err != nil {
		return nil, err
	}

	speeds := make(map[int64]uint64)

	for _, device := range devices {
		ifaces, err := m.store.ListInterfaces(ctx, device.ID)
		if err != nil {
			return nil, err
		}

		for _, iface := range ifaces {
			if iface.SpeedBPS != nil && *iface.SpeedBPS > 0 {
				speeds[iface.ID] = *iface.SpeedBPS
			}
		}
	}

	samples, err := m.store.RecentInterfaceMetrics(ctx, 2)
	if err != nil {
		return nil, err
	}

	summary := &models.UtilizationSummary{}

	var total float64

	// Samples are ordered by interface then time; adjacent rows of the
	// same interface form the latest pair.
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		if prev.InterfaceID != cur.InterfaceID {
			continue
		}

		speed, known := speeds[cur.InterfaceID]
		if !known || cur.AdminStatus != models.IfStatusUp || cur.OperStatus != models.IfStatusUp {
			continue
		}

		deltaSec := cur.Timestamp.Sub(prev.Timestamp).Seconds()
		if deltaSec <= 0 || cur.OctetsIn < prev.OctetsIn || cur.OctetsOut < prev.OctetsOut {
			continue
		}

		inBPS := float64(cur.OctetsIn-prev.OctetsIn) * 8 / deltaSec
		outBPS := float64(cur.OctetsOut-prev.OctetsOut) * 8 / deltaSec

		// Full duplex: each direction has the link's full capacity, so
		// the busier direction is the port's utilization.
		total += math.Max(inBPS, outBPS) / float64(speed) * 100
		summary.Interfaces++
	}

	if summary.Interfaces > 0 {
		summary.AveragePercent = total / float64(summary.Interfaces)
	}

	return summary, nil
}
