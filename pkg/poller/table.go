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

package poller

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/edgewatch/edgewatch/pkg/models"
	"github.com/edgewatch/edgewatch/pkg/snmp"
)

// ifaceSample is the merged per-ifIndex view of one walk of the classic
// and extended interface tables.
type ifaceSample struct {
	index int

	name  string
	descr string

	adminStatus int
	operStatus  int

	speed     uint64
	highSpeed uint64

	octetsIn    uint64
	octetsOut   uint64
	hcOctetsIn  uint64
	hcOctetsOut uint64
	errorsIn    uint64
	errorsOut   uint64
	discardsIn  uint64
	discardsOut uint64
}

// displayName prefers the extended-table name and falls back to ifDescr
// for agents that serve only the classic table.
func (s *ifaceSample) displayName() string {
	if s.name != "" {
		return s.name
	}

	return s.descr
}

// resolveSpeed applies the speed precedence: ifHighSpeed in Mbps when
// non-zero, else the legacy 32-bit ifSpeed in bps. A legacy reading
// pinned at the saturation value means the link is faster than the
// object can express, not that it runs at 4.29 Gbps; it resolves to
// unknown so it never becomes a capacity denominator.
func (s *ifaceSample) resolveSpeed() (*uint64, models.SpeedSource) {
	if s.highSpeed != 0 {
		bps := s.highSpeed * 1_000_000
		return &bps, models.SpeedSourceHighCapacity
	}

	if s.speed != 0 && s.speed < models.LegacySpeedSaturated {
		bps := s.speed
		return &bps, models.SpeedSourceLegacy
	}

	return nil, models.SpeedSourceUnknown
}

// resolveOctets prefers the 64-bit HC counters per direction and falls
// back to the 32-bit classics where the HC reading is absent or zero.
func (s *ifaceSample) resolveOctets() (in, out uint64) {
	in, out = s.octetsIn, s.octetsOut

	if s.hcOctetsIn != 0 {
		in = s.hcOctetsIn
	}

	if s.hcOctetsOut != 0 {
		out = s.hcOctetsOut
	}

	return in, out
}

// collectInterfaceSamples walks both interface tables and merges the
// rows by ifIndex. The extended table is optional; agents without it
// return no rows there, not an error. Transport errors fail the device.
func collectInterfaceSamples(ctx context.Context, client snmp.Client) ([]*ifaceSample, error) {
	rows := make(map[int]*ifaceSample)

	classic, err := client.Walk(ctx, snmp.OIDIfTable)
	if err != nil {
		return nil, fmt.Errorf("walking interface table: %w", err)
	}

	for _, pdu := range classic {
		mergeCell(rows, pdu)
	}

	extended, err := client.Walk(ctx, snmp.OIDIfXTable)
	if err != nil {
		return nil, fmt.Errorf("walking extended interface table: %w", err)
	}

	for _, pdu := range extended {
		mergeCell(rows, pdu)
	}

	samples := make([]*ifaceSample, 0, len(rows))
	for _, row := range rows {
		samples = append(samples, row)
	}

	sort.Slice(samples, func(i, j int) bool {
		return samples[i].index < samples[j].index
	})

	return samples, nil
}

// mergeCell folds one table cell into its row. Columns the poller does
// not track are ignored.
func mergeCell(rows map[int]*ifaceSample, pdu snmp.PDU) {
	column, index, ok := splitColumn(pdu.OID)
	if !ok {
		return
	}

	row, ok := rows[index]
	if !ok {
		row = &ifaceSample{index: index}
		rows[index] = row
	}

	switch column {
	case snmp.OIDIfDescr:
		row.descr = pdu.Value.AsString()
	case snmp.OIDIfName:
		row.name = pdu.Value.AsString()
	case snmp.OIDIfSpeed:
		row.speed, _ = pdu.Value.AsUint64()
	case snmp.OIDIfHighSpeed:
		row.highSpeed, _ = pdu.Value.AsUint64()
	case snmp.OIDIfAdminStatus:
		if v, ok := pdu.Value.AsInt(); ok {
			row.adminStatus = int(v)
		}
	case snmp.OIDIfOperStatus:
		if v, ok := pdu.Value.AsInt(); ok {
			row.operStatus = int(v)
		}
	case snmp.OIDIfInOctets:
		row.octetsIn, _ = pdu.Value.AsUint64()
	case snmp.OIDIfOutOctets:
		row.octetsOut, _ = pdu.Value.AsUint64()
	case snmp.OIDIfHCInOctets:
		row.hcOctetsIn, _ = pdu.Value.AsUint64()
	case snmp.OIDIfHCOutOctets:
		row.hcOctetsOut, _ = pdu.Value.AsUint64()
	case snmp.OIDIfInErrors:
		row.errorsIn, _ = pdu.Value.AsUint64()
	case snmp.OIDIfOutErrors:
		row.errorsOut, _ = pdu.Value.AsUint64()
	case snmp.OIDIfInDiscards:
		row.discardsIn, _ = pdu.Value.AsUint64()
	case snmp.OIDIfOutDiscards:
		row.discardsOut, _ = pdu.Value.AsUint64()
	}
}

// splitColumn breaks a table cell OID into its column root and row index.
func splitColumn(oid string) (column string, index int, ok bool) {
	dot := strings.LastIndexByte(oid, '.')
	if dot < 0 {
		return "", 0, false
	}

	index, err := strconv.Atoi(oid[dot+1:])
	if err != nil {
		return "", 0, false
	}

	return oid[:dot], index, true
}
