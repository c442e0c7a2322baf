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
	"time"

	"github.com/edgewatch/edgewatch/pkg/models"
)

// GetDevice returns one registry row by id.
func (m *Monitor) GetDevice(ctx context.Context, id int64) (*models.Device, error) {
	return m.store.GetDeviceByID(ctx, id)
}

// ListDevices returns the full device registry.
func (m *Monitor) ListDevices(ctx context.Context) ([]*models.Device, error) {
	return m.store.ListDevices(ctx)
}

// ListInterfaces returns a device's interface rows.
func (m *Monitor) ListInterfaces(ctx context.Context, deviceID int64) ([]*models.Interface, error) {
	return m.store.ListInterfaces(ctx, deviceID)
}

// DeleteDevice removes a device with its interfaces and samples, then
// drops every cache entry scoped to it.
func (m *Monitor) DeleteDevice(ctx context.Context, id int64) error {
	if err := m.store.DeleteDevice(ctx, id); err != nil {
		return err
	}

	m.logger.Info().Int64("device_id", id).Msg("Device deleted")

	m.cache.DeletePattern(ctx, deviceKeyPattern(id))
	m.invalidateSummaries(ctx)

	return nil
}

// UpdateDeviceThresholds validates and persists a device's alert
// thresholds. Percentages must lie within [0,100] and the failure
// threshold must be at least 1; out-of-range values are rejected whole,
// never clamped.
func (m *Monitor) UpdateDeviceThresholds(ctx context.Context, id int64, cpu, memory float64, failures int) error {
	if !validPercent(cpu) || !validPercent(memory) {
		return fmt.Errorf("%w: cpu and memory thresholds must be within [0,100]", ErrInvalidThreshold)
	}

	if failures < 1 {
		return fmt.Errorf("%w: failure threshold must be at least 1", ErrInvalidThreshold)
	}

	if err := m.store.UpdateDeviceThresholds(ctx, id, cpu, memory, failures); err != nil {
		return err
	}

	m.logger.Info().
		Int64("device_id", id).
		Float64("cpu", cpu).
		Float64("memory", memory).
		Int("failures", failures).
		Msg("Device thresholds updated")

	m.cache.Delete(ctx, summaryKey)
	m.cache.DeletePattern(ctx, deviceKeyPattern(id))

	return nil
}

// UpdateInterfaceThreshold validates and persists an interface's
// packet-drop threshold percentage.
func (m *Monitor) UpdateInterfaceThreshold(ctx context.Context, interfaceID int64, packetDrop float64) error {
	if !validPercent(packetDrop) {
		return fmt.Errorf("%w: packet drop threshold must be within [0,100]", ErrInvalidThreshold)
	}

	iface, err := m.store.GetInterfaceByID(ctx, interfaceID)
	if err != nil {
		return err
	}

	if err := m.store.UpdateInterfaceThreshold(ctx, interfaceID, packetDrop); err != nil {
		return err
	}

	m.logger.Info().
		Int64("interface_id", interfaceID).
		Str("if_name", iface.IfName).
		Float64("packet_drop", packetDrop).
		Msg("Interface threshold updated")

	m.cache.Delete(ctx, summaryKey)
	m.cache.DeletePattern(ctx, deviceKeyPattern(iface.DeviceID))

	return nil
}

// SetMaintenance flips a device's notification gate. Disabling clears the
// expiry and reason regardless of what was stored with the window.
func (m *Monitor) SetMaintenance(ctx context.Context, deviceID int64, on bool, until *time.Time, reason string) error {
	if !on {
		until = nil
		reason = ""
	}

	if err := m.store.SetMaintenance(ctx, deviceID, on, until, reason); err != nil {
		return err
	}

	m.logger.Info().
		Int64("device_id", deviceID).
		Bool("maintenance", on).
		Msg("Maintenance mode updated")

	return nil
}

func validPercent(v float64) bool {
	return v >= 0 && v <= 100
}

func deviceKeyPattern(id int64) string {
	return fmt.Sprintf("device:%d:*", id)
}
