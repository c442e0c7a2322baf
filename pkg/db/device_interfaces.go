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

	"github.com/jackc/pgx/v5"

	"github.com/edgewatch/edgewatch/pkg/models"
)

const interfaceColumns = `
	id, device_id, if_index, if_name, speed_bps, speed_source, packet_drop_threshold,
	oper_status_alert_state, oper_status_triggered_at, oper_status_acknowledged_at,
	packet_drop_alert_state, packet_drop_triggered_at, packet_drop_acknowledged_at,
	created_at, updated_at`

// Speed is refreshed on every poll; the operator-set drop threshold is
// only written at insert.
const upsertInterfaceSQL = `
INSERT INTO interfaces (
	device_id,
	if_index,
	if_name,
	speed_bps,
	speed_source,
	packet_drop_threshold
) VALUES (
	$1,$2,$3,$4,$5,$6
)
ON CONFLICT (device_id, if_index, if_name) DO UPDATE SET
	speed_bps = EXCLUDED.speed_bps,
	speed_source = EXCLUDED.speed_source,
	updated_at = now()
RETURNING id, (xmax = 0)`

// UpsertInterface registers an observed interface, keyed on
// (device_id, if_index, if_name). Returns the row id and whether the
// row was created.
func (db *DB) UpsertInterface(ctx context.Context, iface *models.Interface) (int64, bool, error) {
	if iface == nil {
		return 0, false, errInterfaceNil
	}

	var (
		id      int64
		created bool
	)

	err := db.pool.QueryRow(ctx, upsertInterfaceSQL,
		iface.DeviceID, iface.IfIndex, iface.IfName,
		iface.SpeedBPS, string(iface.SpeedSource), iface.PacketDropThreshold,
	).Scan(&id, &created)
	if err != nil {
		return 0, false, fmt.Errorf("failed to upsert interface %s on device %d: %w", iface.IfName, iface.DeviceID, err)
	}

	iface.ID = id

	return id, created, nil
}

// ListInterfaces returns the device's interfaces ordered by if_index.
func (db *DB) ListInterfaces(ctx context.Context, deviceID int64) ([]*models.Interface, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+interfaceColumns+` FROM interfaces WHERE device_id = $1 ORDER BY if_index, if_name`,
		deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces for device %d: %w", deviceID, err)
	}
	defer rows.Close()

	var ifaces []*models.Interface

	for rows.Next() {
		iface, err := scanInterface(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interface: %w", err)
		}

		ifaces = append(ifaces, iface)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate interfaces: %w", err)
	}

	return ifaces, nil
}

// GetInterfaceByID looks an interface up by row id.
func (db *DB) GetInterfaceByID(ctx context.Context, id int64) (*models.Interface, error) {
	row := db.pool.QueryRow(ctx, `SELECT `+interfaceColumns+` FROM interfaces WHERE id = $1`, id)

	iface, err := scanInterface(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInterfaceNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get interface %d: %w", id, err)
	}

	return iface, nil
}

// UpdateInterfaceThreshold persists the operator-set packet drop
// threshold. Range checks happen at the call boundary.
func (db *DB) UpdateInterfaceThreshold(ctx context.Context, interfaceID int64, packetDrop float64) error {
	tag, err := db.pool.Exec(ctx, `
		UPDATE interfaces SET
			packet_drop_threshold = $1,
			updated_at = now()
		WHERE id = $2`,
		packetDrop, interfaceID)
	if err != nil {
		return fmt.Errorf("failed to update threshold for interface %d: %w", interfaceID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrInterfaceNotFound
	}

	return nil
}

func scanInterface(row pgx.Row) (*models.Interface, error) {
	var iface models.Interface

	err := row.Scan(
		&iface.ID, &iface.DeviceID, &iface.IfIndex, &iface.IfName,
		&iface.SpeedBPS, &iface.SpeedSource, &iface.PacketDropThreshold,
		&iface.OperStatusAlert.State, &iface.OperStatusAlert.TriggeredAt, &iface.OperStatusAlert.AcknowledgedAt,
		&iface.PacketDropAlert.State, &iface.PacketDropAlert.TriggeredAt, &iface.PacketDropAlert.AcknowledgedAt,
		&iface.CreatedAt, &iface.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &iface, nil
}
