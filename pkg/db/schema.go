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

// schemaDDL is applied in order by Init. Counters are stored as BIGINT;
// running them through DOUBLE PRECISION would lose precision above 2^53.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS devices (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	ip_address TEXT NOT NULL UNIQUE,
	hostname TEXT NOT NULL UNIQUE,
	hardware_address TEXT UNIQUE,
	vendor TEXT NOT NULL DEFAULT '',
	sys_object_id TEXT NOT NULL DEFAULT '',
	sys_descr TEXT NOT NULL DEFAULT '',
	cpu_threshold DOUBLE PRECISION NOT NULL DEFAULT 80,
	memory_threshold DOUBLE PRECISION NOT NULL DEFAULT 80,
	failure_threshold INTEGER NOT NULL DEFAULT 3,
	cpu_alert_state TEXT NOT NULL DEFAULT 'clear',
	cpu_triggered_at TIMESTAMPTZ,
	cpu_acknowledged_at TIMESTAMPTZ,
	memory_alert_state TEXT NOT NULL DEFAULT 'clear',
	memory_triggered_at TIMESTAMPTZ,
	memory_acknowledged_at TIMESTAMPTZ,
	reachability_alert_state TEXT NOT NULL DEFAULT 'clear',
	reachability_triggered_at TIMESTAMPTZ,
	reachability_acknowledged_at TIMESTAMPTZ,
	maintenance_mode BOOLEAN NOT NULL DEFAULT FALSE,
	maintenance_until TIMESTAMPTZ,
	maintenance_reason TEXT NOT NULL DEFAULT '',
	last_poll_attempt TIMESTAMPTZ,
	last_poll_success TIMESTAMPTZ,
	consecutive_failures INTEGER NOT NULL DEFAULT 0,
	is_reachable BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,

	`CREATE TABLE IF NOT EXISTS interfaces (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	device_id BIGINT NOT NULL REFERENCES devices(id) ON DELETE CASCADE,
	if_index INTEGER NOT NULL,
	if_name TEXT NOT NULL,
	speed_bps BIGINT,
	speed_source TEXT NOT NULL DEFAULT 'unknown',
	packet_drop_threshold DOUBLE PRECISION NOT NULL DEFAULT 0.1,
	oper_status_alert_state TEXT NOT NULL DEFAULT 'clear',
	oper_status_triggered_at TIMESTAMPTZ,
	oper_status_acknowledged_at TIMESTAMPTZ,
	packet_drop_alert_state TEXT NOT NULL DEFAULT 'clear',
	packet_drop_triggered_at TIMESTAMPTZ,
	packet_drop_acknowledged_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (device_id, if_index, if_name)
)`,

	`CREATE TABLE IF NOT EXISTS device_metrics (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	device_id BIGINT NOT NULL REFERENCES devices(id) ON DELETE CASCADE,
	timestamp TIMESTAMPTZ NOT NULL,
	cpu_utilization DOUBLE PRECISION,
	memory_utilization DOUBLE PRECISION,
	uptime_seconds BIGINT
)`,

	`CREATE INDEX IF NOT EXISTS idx_device_metrics_device_time
	ON device_metrics (device_id, timestamp DESC)`,

	`CREATE TABLE IF NOT EXISTS interface_metrics (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	interface_id BIGINT NOT NULL REFERENCES interfaces(id) ON DELETE CASCADE,
	timestamp TIMESTAMPTZ NOT NULL,
	admin_status INTEGER NOT NULL DEFAULT 0,
	oper_status INTEGER NOT NULL DEFAULT 0,
	octets_in BIGINT NOT NULL DEFAULT 0,
	octets_out BIGINT NOT NULL DEFAULT 0,
	errors_in BIGINT NOT NULL DEFAULT 0,
	errors_out BIGINT NOT NULL DEFAULT 0,
	discards_in BIGINT NOT NULL DEFAULT 0,
	discards_out BIGINT NOT NULL DEFAULT 0
)`,

	`CREATE INDEX IF NOT EXISTS idx_interface_metrics_iface_time
	ON interface_metrics (interface_id, timestamp DESC)`,
}
