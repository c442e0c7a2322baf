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

	"github.com/edgewatch/edgewatch/pkg/models"
)

// conditionColumnPrefixes maps each condition kind to its column prefix.
// The full column names are <prefix>_alert_state, <prefix>_triggered_at
// and <prefix>_acknowledged_at on the owning table.
var conditionColumnPrefixes = map[models.ConditionKind]string{
	models.ConditionCPU:          "cpu",
	models.ConditionMemory:       "memory",
	models.ConditionReachability: "reachability",
	models.ConditionIfaceStatus:  "oper_status",
	models.ConditionPacketDrop:   "packet_drop",
}

// conditionUpdateSQL renders the UPDATE for one condition's state triple.
// Column names come from the fixed prefix table, never from input.
func conditionUpdateSQL(kind models.ConditionKind) (string, error) {
	prefix, ok := conditionColumnPrefixes[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCondition, kind)
	}

	table := "devices"
	if kind.IsInterfaceCondition() {
		table = "interfaces"
	}

	return fmt.Sprintf(`
		UPDATE %s SET
			%s_alert_state = $1,
			%s_triggered_at = $2,
			%s_acknowledged_at = $3,
			updated_at = now()
		WHERE id = $4`,
		table, prefix, prefix, prefix), nil
}

// UpdateAlertCondition persists one condition's state triple on its
// owning row.
func (db *DB) UpdateAlertCondition(ctx context.Context, key models.ConditionKey, condition models.AlertCondition) error {
	sql, err := conditionUpdateSQL(key.Condition)
	if err != nil {
		return err
	}

	rowID := key.DeviceID
	notFound := ErrDeviceNotFound

	if key.Condition.IsInterfaceCondition() {
		if key.InterfaceID == nil {
			return fmt.Errorf("%w: %q requires an interface id", ErrUnknownCondition, key.Condition)
		}

		rowID = *key.InterfaceID
		notFound = ErrInterfaceNotFound
	}

	tag, err := db.pool.Exec(ctx, sql,
		string(condition.State), condition.TriggeredAt, condition.AcknowledgedAt, rowID)
	if err != nil {
		return fmt.Errorf("failed to update %s condition on row %d: %w", key.Condition, rowID, err)
	}

	if tag.RowsAffected() == 0 {
		return notFound
	}

	return nil
}

const listActiveAlertsSQL = `
SELECT device_id, hostname, ip_address, interface_id, if_name, condition, state, triggered_at, acknowledged_at
FROM (
	SELECT d.id AS device_id, d.hostname, d.ip_address,
		NULL::BIGINT AS interface_id, '' AS if_name,
		'cpu' AS condition, d.cpu_alert_state AS state,
		d.cpu_triggered_at AS triggered_at, d.cpu_acknowledged_at AS acknowledged_at
	FROM devices d WHERE d.cpu_alert_state <> 'clear'
	UNION ALL
	SELECT d.id, d.hostname, d.ip_address,
		NULL::BIGINT, '',
		'memory', d.memory_alert_state,
		d.memory_triggered_at, d.memory_acknowledged_at
	FROM devices d WHERE d.memory_alert_state <> 'clear'
	UNION ALL
	SELECT d.id, d.hostname, d.ip_address,
		NULL::BIGINT, '',
		'reachability', d.reachability_alert_state,
		d.reachability_triggered_at, d.reachability_acknowledged_at
	FROM devices d WHERE d.reachability_alert_state <> 'clear'
	UNION ALL
	SELECT d.id, d.hostname, d.ip_address,
		i.id, i.if_name,
		'interface_status', i.oper_status_alert_state,
		i.oper_status_triggered_at, i.oper_status_acknowledged_at
	FROM interfaces i JOIN devices d ON d.id = i.device_id
	WHERE i.oper_status_alert_state <> 'clear'
	UNION ALL
	SELECT d.id, d.hostname, d.ip_address,
		i.id, i.if_name,
		'packet_drop', i.packet_drop_alert_state,
		i.packet_drop_triggered_at, i.packet_drop_acknowledged_at
	FROM interfaces i JOIN devices d ON d.id = i.device_id
	WHERE i.packet_drop_alert_state <> 'clear'
) active
ORDER BY triggered_at DESC NULLS LAST, device_id`

// ListActiveAlerts returns every device and interface condition that is
// not clear, newest trigger first.
func (db *DB) ListActiveAlerts(ctx context.Context) ([]*models.ActiveAlert, error) {
	rows, err := db.pool.Query(ctx, listActiveAlertsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list active alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*models.ActiveAlert

	for rows.Next() {
		var alert models.ActiveAlert

		if err := rows.Scan(
			&alert.DeviceID, &alert.Hostname, &alert.IPAddress,
			&alert.InterfaceID, &alert.IfName,
			&alert.Condition, &alert.State,
			&alert.TriggeredAt, &alert.AcknowledgedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan active alert: %w", err)
		}

		alerts = append(alerts, &alert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate active alerts: %w", err)
	}

	return alerts, nil
}
