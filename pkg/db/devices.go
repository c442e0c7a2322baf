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
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/edgewatch/edgewatch/pkg/models"
)

const deviceColumns = `
	id, ip_address, hostname, COALESCE(hardware_address, ''), vendor, sys_object_id, sys_descr,
	cpu_threshold, memory_threshold, failure_threshold,
	cpu_alert_state, cpu_triggered_at, cpu_acknowledged_at,
	memory_alert_state, memory_triggered_at, memory_acknowledged_at,
	reachability_alert_state, reachability_triggered_at, reachability_acknowledged_at,
	maintenance_mode, maintenance_until, maintenance_reason,
	last_poll_attempt, last_poll_success, consecutive_failures, is_reachable,
	created_at, updated_at`

// The (xmax = 0) projection is true only for rows created by this
// statement, which distinguishes insert from conflict-update.
const upsertDeviceByMACSQL = `
INSERT INTO devices (
	ip_address,
	hostname,
	hardware_address,
	vendor,
	sys_object_id,
	sys_descr,
	cpu_threshold,
	memory_threshold,
	failure_threshold
) VALUES (
	$1,$2,$3,$4,$5,$6,$7,$8,$9
)
ON CONFLICT (hardware_address) DO UPDATE SET
	ip_address = EXCLUDED.ip_address,
	hostname = EXCLUDED.hostname,
	vendor = EXCLUDED.vendor,
	sys_object_id = EXCLUDED.sys_object_id,
	sys_descr = EXCLUDED.sys_descr,
	updated_at = now()
RETURNING id, (xmax = 0)`

const upsertDeviceByIPSQL = `
INSERT INTO devices (
	ip_address,
	hostname,
	hardware_address,
	vendor,
	sys_object_id,
	sys_descr,
	cpu_threshold,
	memory_threshold,
	failure_threshold
) VALUES (
	$1,$2,NULL,$3,$4,$5,$6,$7,$8
)
ON CONFLICT (ip_address) DO UPDATE SET
	hostname = EXCLUDED.hostname,
	vendor = EXCLUDED.vendor,
	sys_object_id = EXCLUDED.sys_object_id,
	sys_descr = EXCLUDED.sys_descr,
	updated_at = now()
RETURNING id, (xmax = 0)`

const adoptDeviceByIPSQL = `
UPDATE devices SET
	hostname = $2,
	hardware_address = $3,
	vendor = $4,
	sys_object_id = $5,
	sys_descr = $6,
	updated_at = now()
WHERE ip_address = $1
RETURNING id`

// UpsertDeviceByMAC inserts the device or, when its hardware address is
// already registered, updates that row's identity fields in place. The
// hardware address is the conflict key; IP and hostname may move between
// rows across DHCP churn. Devices without a usable hardware address fall
// back to the IP as the conflict key. Returns the row id and whether the
// row was created.
func (db *DB) UpsertDeviceByMAC(ctx context.Context, device *models.Device) (int64, bool, error) {
	if device == nil {
		return 0, false, errDeviceNil
	}

	var (
		id      int64
		created bool
		err     error
	)

	if device.HardwareAddress == "" {
		err = db.pool.QueryRow(ctx, upsertDeviceByIPSQL,
			device.IPAddress, device.Hostname,
			device.Vendor, device.SysObjectID, device.SysDescr,
			device.CPUThreshold, device.MemoryThreshold, device.FailureThreshold,
		).Scan(&id, &created)
	} else {
		err = db.pool.QueryRow(ctx, upsertDeviceByMACSQL,
			device.IPAddress, device.Hostname, device.HardwareAddress,
			device.Vendor, device.SysObjectID, device.SysDescr,
			device.CPUThreshold, device.MemoryThreshold, device.FailureThreshold,
		).Scan(&id, &created)

		// A row discovered before its hardware address was visible holds
		// the IP without a MAC. Adopt that row instead of failing.
		if isUniqueViolation(err) {
			err = db.pool.QueryRow(ctx, adoptDeviceByIPSQL,
				device.IPAddress, device.Hostname, device.HardwareAddress,
				device.Vendor, device.SysObjectID, device.SysDescr,
			).Scan(&id)
			created = false
		}
	}

	if err != nil {
		return 0, false, fmt.Errorf("failed to upsert device %s: %w", device.IPAddress, err)
	}

	device.ID = id

	return id, created, nil
}

// ListDevices returns every registered device ordered by id.
func (db *DB) ListDevices(ctx context.Context) ([]*models.Device, error) {
	rows, err := db.pool.Query(ctx, `SELECT `+deviceColumns+` FROM devices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	var devices []*models.Device

	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}

		devices = append(devices, device)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate devices: %w", err)
	}

	return devices, nil
}

// GetDeviceByID looks a device up by row id.
func (db *DB) GetDeviceByID(ctx context.Context, id int64) (*models.Device, error) {
	row := db.pool.QueryRow(ctx, `SELECT `+deviceColumns+` FROM devices WHERE id = $1`, id)

	device, err := scanDevice(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDeviceNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get device %d: %w", id, err)
	}

	return device, nil
}

// GetDeviceByIP looks a device up by its current IP address.
func (db *DB) GetDeviceByIP(ctx context.Context, ip string) (*models.Device, error) {
	row := db.pool.QueryRow(ctx, `SELECT `+deviceColumns+` FROM devices WHERE ip_address = $1`, ip)

	device, err := scanDevice(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDeviceNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get device %s: %w", ip, err)
	}

	return device, nil
}

// DeleteDevice removes the device row. Interfaces and metrics cascade.
func (db *DB) DeleteDevice(ctx context.Context, id int64) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete device %d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

// UpdateReachability persists one poll attempt's reachability outcome.
// success is nil on a failed attempt, keeping the previous success time.
func (db *DB) UpdateReachability(ctx context.Context, deviceID int64, reachable bool, attempt time.Time, success *time.Time, failures int) error {
	tag, err := db.pool.Exec(ctx, `
		UPDATE devices SET
			is_reachable = $1,
			last_poll_attempt = $2,
			last_poll_success = COALESCE($3, last_poll_success),
			consecutive_failures = $4,
			updated_at = now()
		WHERE id = $5`,
		reachable, attempt, success, failures, deviceID)
	if err != nil {
		return fmt.Errorf("failed to update reachability for device %d: %w", deviceID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

// UpdateDeviceThresholds persists operator-set thresholds. Range checks
// happen at the call boundary, never here.
func (db *DB) UpdateDeviceThresholds(ctx context.Context, deviceID int64, cpu, memory float64, failures int) error {
	tag, err := db.pool.Exec(ctx, `
		UPDATE devices SET
			cpu_threshold = $1,
			memory_threshold = $2,
			failure_threshold = $3,
			updated_at = now()
		WHERE id = $4`,
		cpu, memory, failures, deviceID)
	if err != nil {
		return fmt.Errorf("failed to update thresholds for device %d: %w", deviceID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

// SetMaintenance toggles the notification-suppression window.
func (db *DB) SetMaintenance(ctx context.Context, deviceID int64, on bool, until *time.Time, reason string) error {
	tag, err := db.pool.Exec(ctx, `
		UPDATE devices SET
			maintenance_mode = $1,
			maintenance_until = $2,
			maintenance_reason = $3,
			updated_at = now()
		WHERE id = $4`,
		on, until, reason, deviceID)
	if err != nil {
		return fmt.Errorf("failed to set maintenance for device %d: %w", deviceID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

func scanDevice(row pgx.Row) (*models.Device, error) {
	var device models.Device

	err := row.Scan(
		&device.ID, &device.IPAddress, &device.Hostname, &device.HardwareAddress,
		&device.Vendor, &device.SysObjectID, &device.SysDescr,
		&device.CPUThreshold, &device.MemoryThreshold, &device.FailureThreshold,
		&device.CPUAlert.State, &device.CPUAlert.TriggeredAt, &device.CPUAlert.AcknowledgedAt,
		&device.MemoryAlert.State, &device.MemoryAlert.TriggeredAt, &device.MemoryAlert.AcknowledgedAt,
		&device.ReachabilityAlert.State, &device.ReachabilityAlert.TriggeredAt, &device.ReachabilityAlert.AcknowledgedAt,
		&device.MaintenanceMode, &device.MaintenanceUntil, &device.MaintenanceReason,
		&device.LastPollAttempt, &device.LastPollSuccess, &device.ConsecutiveFailures, &device.IsReachable,
		&device.CreatedAt, &device.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &device, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
