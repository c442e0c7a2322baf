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

package discovery

import (
	"context"

	"github.com/edgewatch/edgewatch/pkg/models"
	"github.com/edgewatch/edgewatch/pkg/snmp"
)

// identityOIDs are fetched from every candidate in a single request.
var identityOIDs = []string{
	snmp.OIDSysDescr,
	snmp.OIDSysObjectID,
	snmp.OIDSysUpTime,
	snmp.OIDSysName,
}

// probeTarget queries one address for its identity objects. A false return
// means the address is not a manageable device; non-responders are logged
// at debug only and never fail the batch.
func (e *Engine) probeTarget(ctx context.Context, target string) (*models.Device, bool) {
	client, err := e.clients(target, e.snmpConf)
	if err != nil {
		e.logger.Debug().Err(err).Str("target", target).Msg("Skipping target, no session")
		return nil, false
	}

	defer func() {
		_ = client.Close()
	}()

	identity, err := client.Get(ctx, identityOIDs)
	if err != nil {
		e.logger.Debug().Err(err).Str("target", target).Msg("Skipping target, no identity response")
		return nil, false
	}

	if len(identity) == 0 {
		e.logger.Debug().Str("target", target).Msg("Skipping target, agent returned no identity objects")
		return nil, false
	}

	hostname := target
	if v, ok := identity[snmp.OIDSysName]; ok && v.AsString() != "" {
		hostname = v.AsString()
	}

	device := models.NewDevice(target, hostname, e.lookupMAC(ctx, client, target))

	if v, ok := identity[snmp.OIDSysDescr]; ok {
		device.SysDescr = v.AsString()
	}

	if v, ok := identity[snmp.OIDSysObjectID]; ok {
		device.SysObjectID = v.AsString()
	}

	device.Vendor = models.VendorFromSysObjectID(device.SysObjectID).Name

	return device, true
}

// lookupMAC walks the physical-address column and returns the first
// well-formed MAC. Loopback and virtual rows carry empty or non-MAC
// octets and are passed over. Agents that render the address as a
// "0x001122334455" string are handled by the second form.
func (e *Engine) lookupMAC(ctx context.Context, client snmp.Client, target string) string {
	pdus, err := client.Walk(ctx, snmp.OIDIfPhysAddress)
	if err != nil {
		e.logger.Debug().Err(err).Str("target", target).Msg("Physical address walk failed")
		return ""
	}

	for _, pdu := range pdus {
		if mac := snmp.FormatMAC(pdu.Value.Octets()); mac != "" {
			return mac
		}

		if mac := snmp.NormalizeMAC(pdu.Value.AsString()); mac != "" {
			return mac
		}
	}

	return ""
}

// registerDevice upserts a probe result. Store failures are logged and
// surfaced to the caller; they never abort the surrounding batch.
func (e *Engine) registerDevice(ctx context.Context, device *models.Device) (created bool, err error) {
	if device.HardwareAddress == "" {
		e.logger.Warn().
			Str("ip", device.IPAddress).
			Msg("Device exposed no hardware address, keying identity on IP")
	}

	_, created, err = e.store.UpsertDeviceByMAC(ctx, device)
	if err != nil {
		e.logger.Error().Err(err).
			Str("ip", device.IPAddress).
			Str("mac", device.HardwareAddress).
			Msg("Failed to register device")

		return false, err
	}

	return created, nil
}
