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

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/edgewatch/edgewatch/pkg/models"
)

const networkSummarySQL = `
SELECT
	(SELECT COUNT(*) FROM devices),
	(SELECT COUNT(*) FROM devices WHERE is_reachable),
	(SELECT COUNT(*) FROM devices d WHERE
		d.cpu_alert_state <> 'clear'
		OR d.memory_alert_state <> 'clear'
		OR d.reachability_alert_state <> 'clear'
		OR EXISTS (
			SELECT 1 FROM interfaces i
			WHERE i.device_id = d.id
				AND (i.oper_status_alert_state <> 'clear' OR i.packet_drop_alert_state <> 'clear')
		)),
	latest.avg_cpu,
	latest.avg_memory
FROM (
	SELECT AVG(cpu_utilization) AS avg_cpu, AVG(memory_utilization) AS avg_memory
	FROM (
		SELECT DISTINCT ON (device_id) cpu_utilization, memory_utilization
		FROM device_metrics
		ORDER BY device_id, timestamp DESC
	) newest
) latest`

// NetworkSummary computes the fleet-wide rollup. Averages cover each
// device's most recent sample and are nil when no device has reported.
func (db *DB) NetworkSummary(ctx context.Context) (*models.NetworkSummary, error) {
	summary := models.NetworkSummary{GeneratedAt: time.Now().UTC()}

	err := db.pool.QueryRow(ctx, networkSummarySQL).Scan(
		&summary.TotalDevices,
		&summary.DevicesUp,
		&summary.DevicesInAlert,
		&summary.AvgCPU,
		&summary.AvgMemory,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute network summary: %w", err)
	}

	return &summary, nil
}

const topDevicesByCPUSQL = `
SELECT d.id, d.hostname, d.ip_address, m.cpu_utilization
FROM devices d
JOIN LATERAL (
	SELECT cpu_utilization
	FROM device_metrics
	WHERE device_id = d.id AND timestamp >= $1 AND cpu_utilization IS NOT NULL
	ORDER BY timestamp DESC
	LIMIT 1
) m ON TRUE
ORDER BY m.cpu_utilization DESC
LIMIT $2`

// TopDevicesByCPU returns the devices with the highest most-recent CPU
// reading inside the window, busiest first.
func (db *DB) TopDevicesByCPU(ctx context.Context, limit int, window time.Duration) ([]*models.TopDevice, error) {
	rows, err := db.pool.Query(ctx, topDevicesByCPUSQL, windowStart(window), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top devices: %w", err)
	}
	defer rows.Close()

	var top []*models.TopDevice

	for rows.Next() {
		var device models.TopDevice

		if err := rows.Scan(&device.DeviceID, &device.Hostname, &device.IPAddress, &device.Value); err != nil {
			return nil, fmt.Errorf("failed to scan top device: %w", err)
		}

		top = append(top, &device)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top devices: %w", err)
	}

	return top, nil
}
