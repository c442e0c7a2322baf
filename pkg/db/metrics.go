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

	"github.com/jackc/pgx/v5"

	"github.com/edgewatch/edgewatch/pkg/models"
)

const insertDeviceMetricSQL = `
INSERT INTO device_metrics (
	device_id,
	timestamp,
	cpu_utilization,
	memory_utilization,
	uptime_seconds
) VALUES (
	$1,$2,$3,$4,$5
)`

const insertInterfaceMetricSQL = `
INSERT INTO interface_metrics (
	interface_id,
	timestamp,
	admin_status,
	oper_status,
	octets_in,
	octets_out,
	errors_in,
	errors_out,
	discards_in,
	discards_out
) VALUES (
	$1,$2,$3,$4,$5,$6,$7,$8,$9,$10
)`

const interfaceMetricColumns = `
	interface_id, timestamp, admin_status, oper_status,
	octets_in, octets_out, errors_in, errors_out, discards_in, discards_out`

// InsertDeviceMetric appends one device-level sample.
func (db *DB) InsertDeviceMetric(ctx context.Context, metric *models.DeviceMetric) error {
	if metric == nil {
		return errMetricNil
	}

	_, err := db.pool.Exec(ctx, insertDeviceMetricSQL,
		metric.DeviceID, metric.Timestamp,
		metric.CPUUtilization, metric.MemoryUtilization, metric.UptimeSeconds)
	if err != nil {
		return fmt.Errorf("failed to insert device metric for device %d: %w", metric.DeviceID, err)
	}

	return nil
}

// InsertInterfaceMetrics appends one cycle's interface samples in a
// single batch round trip.
func (db *DB) InsertInterfaceMetrics(ctx context.Context, metrics []*models.InterfaceMetric) error {
	if len(metrics) == 0 {
		return nil
	}

	batch := &pgx.Batch{}

	for _, metric := range metrics {
		if metric == nil {
			continue
		}

		batch.Queue(insertInterfaceMetricSQL,
			metric.InterfaceID, metric.Timestamp,
			metric.AdminStatus, metric.OperStatus,
			metric.OctetsIn, metric.OctetsOut,
			metric.ErrorsIn, metric.ErrorsOut,
			metric.DiscardsIn, metric.DiscardsOut)
	}

	if batch.Len() == 0 {
		return nil
	}

	return db.sendBatch(ctx, batch, "interface metrics")
}

// LatestInterfaceMetrics returns up to limit samples for one interface,
// newest first. Alert evaluation reads the previous sample from here to
// detect threshold-crossing transitions.
func (db *DB) LatestInterfaceMetrics(ctx context.Context, interfaceID int64, limit int) ([]*models.InterfaceMetric, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT `+interfaceMetricColumns+`
		FROM interface_metrics
		WHERE interface_id = $1
		ORDER BY timestamp DESC
		LIMIT $2`,
		interfaceID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest metrics for interface %d: %w", interfaceID, err)
	}
	defer rows.Close()

	return collectInterfaceMetrics(rows)
}

// RecentInterfaceMetrics returns the newest perInterface samples of every
// interface, ordered by interface then time ascending.
func (db *DB) RecentInterfaceMetrics(ctx context.Context, perInterface int) ([]*models.InterfaceMetric, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT interface_id, timestamp, admin_status, oper_status,
			octets_in, octets_out, errors_in, errors_out, discards_in, discards_out
		FROM (
			SELECT m.*, ROW_NUMBER() OVER (PARTITION BY interface_id ORDER BY timestamp DESC) AS rn
			FROM interface_metrics m
		) ranked
		WHERE rn <= $1
		ORDER BY interface_id, timestamp`,
		perInterface)
	if err != nil {
		return nil, fmt.Errorf("failed to read recent interface metrics: %w", err)
	}
	defer rows.Close()

	return collectInterfaceMetrics(rows)
}

// InterfaceThroughput returns the interface's counter samples inside the
// window, oldest first, for rate computation by the caller.
func (db *DB) InterfaceThroughput(ctx context.Context, interfaceID int64, window time.Duration) ([]*models.ThroughputSample, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT interface_id, timestamp, octets_in, octets_out
		FROM interface_metrics
		WHERE interface_id = $1 AND timestamp >= $2
		ORDER BY timestamp`,
		interfaceID, windowStart(window))
	if err != nil {
		return nil, fmt.Errorf("failed to read throughput samples for interface %d: %w", interfaceID, err)
	}
	defer rows.Close()

	return collectThroughputSamples(rows)
}

// NetworkThroughputSamples returns every interface's counter samples
// inside the window, ordered by interface then time ascending.
func (db *DB) NetworkThroughputSamples(ctx context.Context, window time.Duration) ([]*models.ThroughputSample, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT interface_id, timestamp, octets_in, octets_out
		FROM interface_metrics
		WHERE timestamp >= $1
		ORDER BY interface_id, timestamp`,
		windowStart(window))
	if err != nil {
		return nil, fmt.Errorf("failed to read network throughput samples: %w", err)
	}
	defer rows.Close()

	return collectThroughputSamples(rows)
}

func collectInterfaceMetrics(rows pgx.Rows) ([]*models.InterfaceMetric, error) {
	var metrics []*models.InterfaceMetric

	for rows.Next() {
		var m models.InterfaceMetric

		if err := rows.Scan(
			&m.InterfaceID, &m.Timestamp, &m.AdminStatus, &m.OperStatus,
			&m.OctetsIn, &m.OctetsOut, &m.ErrorsIn, &m.ErrorsOut,
			&m.DiscardsIn, &m.DiscardsOut,
		); err != nil {
			return nil, fmt.Errorf("failed to scan interface metric: %w", err)
		}

		metrics = append(metrics, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate interface metrics: %w", err)
	}

	return metrics, nil
}

func collectThroughputSamples(rows pgx.Rows) ([]*models.ThroughputSample, error) {
	var samples []*models.ThroughputSample

	for rows.Next() {
		var s models.ThroughputSample

		if err := rows.Scan(&s.InterfaceID, &s.Timestamp, &s.OctetsIn, &s.OctetsOut); err != nil {
			return nil, fmt.Errorf("failed to scan throughput sample: %w", err)
		}

		samples = append(samples, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate throughput samples: %w", err)
	}

	return samples, nil
}

// windowStart converts a lookback window into the cutoff timestamp. A
// non-positive window means no cutoff.
func windowStart(window time.Duration) time.Time {
	if window <= 0 {
		return time.Time{}
	}

	return time.Now().UTC().Add(-window)
}

func (db *DB) sendBatch(ctx context.Context, batch *pgx.Batch, name string) (err error) {
	br := db.pool.SendBatch(ctx, batch)

	defer func() {
		if closeErr := br.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%s batch close: %w", name, closeErr)
		}
	}()

	for i := 0; i < batch.Len(); i++ {
		if _, err = br.Exec(); err != nil {
			return fmt.Errorf("%s insert (command %d): %w", name, i, err)
		}
	}

	return nil
}
