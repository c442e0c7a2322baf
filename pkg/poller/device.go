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
	"time"

	"github.com/edgewatch/edgewatch/pkg/models"
	"github.com/edgewatch/edgewatch/pkg/snmp"
)

// pollDevice runs one device's poll: system gauges, the interface tables,
// reachability bookkeeping, sample persistence, then alert evaluation.
// The device's rows are durable before its conditions are evaluated.
func (p *Poller) pollDevice(ctx context.Context, device *models.Device, cycleTime time.Time) error {
	client, err := p.clients(device.IPAddress, p.snmpConf)
	if err != nil {
		return p.recordFailure(ctx, device, cycleTime, err)
	}

	defer func() {
		_ = client.Close()
	}()

	metric, err := p.collectDeviceMetric(ctx, client, device, cycleTime)
	if err != nil {
		return p.recordFailure(ctx, device, cycleTime, err)
	}

	samples, err := collectInterfaceSamples(ctx, client)
	if err != nil {
		return p.recordFailure(ctx, device, cycleTime, err)
	}

	if err := p.recordSuccess(ctx, device, cycleTime); err != nil {
		return err
	}

	observations, err := p.persistSamples(ctx, device, metric, samples)
	if err != nil {
		return err
	}

	p.evaluate(ctx, device, metric, observations, cycleTime)

	return nil
}

// collectDeviceMetric reads sysUpTime and, when the device's vendor
// exposes them, the CPU and memory objects. A transport error means the
// device did not answer; objects the agent lacks just leave gauges nil.
func (p *Poller) collectDeviceMetric(
	ctx context.Context,
	client snmp.Client,
	device *models.Device,
	cycleTime time.Time,
) (*models.DeviceMetric, error) {
	values, err := client.Get(ctx, []string{snmp.OIDSysUpTime})
	if err != nil {
		return nil, fmt.Errorf("reading system uptime: %w", err)
	}

	metric := &models.DeviceMetric{
		DeviceID:  device.ID,
		Timestamp: cycleTime,
	}

	if v, ok := values[snmp.OIDSysUpTime]; ok {
		if ticks, ok := v.AsUint64(); ok {
			seconds := ticks / 100 // TimeTicks are hundredths of a second.
			metric.UptimeSeconds = &seconds
		}
	}

	vendor := models.VendorFromSysObjectID(device.SysObjectID)
	if !vendor.HasMetrics() {
		return metric, nil
	}

	var oids []string

	if vendor.CPU != nil {
		oids = append(oids, vendor.CPU.OID)
	}

	if vendor.Memory != nil {
		oids = append(oids, vendor.Memory.FirstOID, vendor.Memory.SecondOID)
	}

	gauges, err := client.Get(ctx, oids)
	if err != nil {
		return nil, fmt.Errorf("reading vendor gauges: %w", err)
	}

	metric.CPUUtilization = resolveCPU(vendor.CPU, gauges)
	metric.MemoryUtilization = resolveMemory(vendor.Memory, gauges)

	return metric, nil
}

// resolveCPU converts the vendor CPU object to a utilization percent.
// Idle-style objects report the inverse.
func resolveCPU(cpu *models.CPUObjects, gauges map[string]snmp.Value) *float64 {
	if cpu == nil {
		return nil
	}

	v, ok := gauges[cpu.OID]
	if !ok {
		return nil
	}

	percent, ok := v.AsFloat64()
	if !ok {
		return nil
	}

	if cpu.Idle {
		percent = 100 - percent
	}

	return &percent
}

// resolveMemory combines the vendor's two memory objects into a percent
// according to the descriptor scheme. Both objects must be present; a
// zero denominator yields no gauge rather than a division by zero.
func resolveMemory(mem *models.MemoryObjects, gauges map[string]snmp.Value) *float64 {
	if mem == nil {
		return nil
	}

	firstValue, ok := gauges[mem.FirstOID]
	if !ok {
		return nil
	}

	secondValue, ok := gauges[mem.SecondOID]
	if !ok {
		return nil
	}

	first, ok := firstValue.AsFloat64()
	if !ok {
		return nil
	}

	second, ok := secondValue.AsFloat64()
	if !ok {
		return nil
	}

	var percent float64

	switch mem.Scheme {
	case models.MemorySchemeUsedFree:
		total := first + second
		if total == 0 {
			return nil
		}

		percent = first / total * 100
	case models.MemorySchemeTotalAvail:
		if first == 0 {
			return nil
		}

		percent = (first - second) / first * 100
	default:
		return nil
	}

	return &percent
}

// recordSuccess resets the failure streak. The registry write precedes
// metric persistence so the reachability fields never lag behind a
// stored sample.
func (p *Poller) recordSuccess(ctx context.Context, device *models.Device, cycleTime time.Time) error {
	if err := p.store.UpdateReachability(ctx, device.ID, true, cycleTime, &cycleTime, 0); err != nil {
		return fmt.Errorf("recording poll success for %s: %w", device.IPAddress, err)
	}

	device.LastPollAttempt = &cycleTime
	device.LastPollSuccess = &cycleTime
	device.ConsecutiveFailures = 0
	device.IsReachable = true

	return nil
}

// recordFailure increments the failure streak and flips reachability
// only when the streak reaches the device's threshold, not before. The
// reachability condition is evaluated on every failed attempt so a
// recovery or trigger is never deferred to the next cycle.
func (p *Poller) recordFailure(ctx context.Context, device *models.Device, cycleTime time.Time, cause error) error {
	failures := device.ConsecutiveFailures + 1
	reachable := device.IsReachable && failures < device.FailureThreshold

	if err := p.store.UpdateReachability(ctx, device.ID, reachable, cycleTime, nil, failures); err != nil {
		return fmt.Errorf("recording poll failure for %s: %w", device.IPAddress, err)
	}

	device.LastPollAttempt = &cycleTime
	device.ConsecutiveFailures = failures
	device.IsReachable = reachable

	if err := p.evaluator.EvaluateReachability(ctx, device, cycleTime); err != nil {
		p.logger.Error().Err(err).
			Str("ip", device.IPAddress).
			Msg("Reachability evaluation failed")
	}

	return fmt.Errorf("polling %s: %w", device.IPAddress, cause)
}

// persistSamples upserts the walked interfaces, appends this cycle's
// samples, and pairs each sample with the newest one preceding it. The
// previous sample is read before the new row is inserted.
func (p *Poller) persistSamples(
	ctx context.Context,
	device *models.Device,
	metric *models.DeviceMetric,
	samples []*ifaceSample,
) ([]*models.InterfaceObservation, error) {
	for _, sample := range samples {
		speedBPS, source := sample.resolveSpeed()

		iface := &models.Interface{
			DeviceID:            device.ID,
			IfIndex:             sample.index,
			IfName:              sample.displayName(),
			SpeedBPS:            speedBPS,
			SpeedSource:         source,
			PacketDropThreshold: models.DefaultPacketDropThreshold,
		}

		if _, _, err := p.store.UpsertInterface(ctx, iface); err != nil {
			return nil, fmt.Errorf("registering interface %q on %s: %w", iface.IfName, device.IPAddress, err)
		}
	}

	// Re-read the registry rows: the upsert returns only the row id,
	// while evaluation needs operator-set thresholds and alert state.
	registered, err := p.store.ListInterfaces(ctx, device.ID)
	if err != nil {
		return nil, fmt.Errorf("reading interface registry for %s: %w", device.IPAddress, err)
	}

	type ifaceKey struct {
		index int
		name  string
	}

	byKey := make(map[ifaceKey]*models.Interface, len(registered))
	for _, iface := range registered {
		byKey[ifaceKey{index: iface.IfIndex, name: iface.IfName}] = iface
	}

	observations := make([]*models.InterfaceObservation, 0, len(samples))
	rows := make([]*models.InterfaceMetric, 0, len(samples))

	for _, sample := range samples {
		iface, ok := byKey[ifaceKey{index: sample.index, name: sample.displayName()}]
		if !ok {
			continue
		}

		previous, err := p.latestSample(ctx, iface.ID)
		if err != nil {
			return nil, err
		}

		in, out := sample.resolveOctets()

		current := &models.InterfaceMetric{
			InterfaceID: iface.ID,
			Timestamp:   metric.Timestamp,
			AdminStatus: sample.adminStatus,
			OperStatus:  sample.operStatus,
			OctetsIn:    in,
			OctetsOut:   out,
			ErrorsIn:    sample.errorsIn,
			ErrorsOut:   sample.errorsOut,
			DiscardsIn:  sample.discardsIn,
			DiscardsOut: sample.discardsOut,
		}

		rows = append(rows, current)
		observations = append(observations, &models.InterfaceObservation{
			Interface: iface,
			Current:   current,
			Previous:  previous,
		})
	}

	if err := p.store.InsertDeviceMetric(ctx, metric); err != nil {
		return nil, fmt.Errorf("storing device sample for %s: %w", device.IPAddress, err)
	}

	if err := p.store.InsertInterfaceMetrics(ctx, rows); err != nil {
		return nil, fmt.Errorf("storing interface samples for %s: %w", device.IPAddress, err)
	}

	return observations, nil
}

// latestSample returns the interface's newest stored sample, nil when
// none exists yet.
func (p *Poller) latestSample(ctx context.Context, interfaceID int64) (*models.InterfaceMetric, error) {
	history, err := p.store.LatestInterfaceMetrics(ctx, interfaceID, 1)
	if err != nil {
		return nil, fmt.Errorf("reading previous sample for interface %d: %w", interfaceID, err)
	}

	if len(history) == 0 {
		return nil, nil
	}

	return history[0], nil
}

// evaluate runs the device's conditions against the rows written this
// cycle. Evaluation errors never fail the poll; the sample is already
// durable.
func (p *Poller) evaluate(
	ctx context.Context,
	device *models.Device,
	metric *models.DeviceMetric,
	observations []*models.InterfaceObservation,
	cycleTime time.Time,
) {
	if err := p.evaluator.EvaluateDevice(ctx, device, metric, cycleTime); err != nil {
		p.logger.Error().Err(err).
			Str("ip", device.IPAddress).
			Msg("Device gauge evaluation failed")
	}

	if err := p.evaluator.EvaluateReachability(ctx, device, cycleTime); err != nil {
		p.logger.Error().Err(err).
			Str("ip", device.IPAddress).
			Msg("Reachability evaluation failed")
	}

	if err := p.evaluator.EvaluateInterfaces(ctx, device, observations, cycleTime); err != nil {
		p.logger.Error().Err(err).
			Str("ip", device.IPAddress).
			Msg("Interface evaluation failed")
	}
}
