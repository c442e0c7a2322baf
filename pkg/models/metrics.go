package models

import "time"

// Interface operational status values from the standard interfaces MIB.
const (
	IfStatusUp      = 1
	IfStatusDown    = 2
	IfStatusTesting = 3
)

// DeviceMetric is one append-only sample of device-level gauges.
// Utilization fields are nil when the vendor exposes no matching object.
type DeviceMetric struct {
	ID                int64     `json:"id"`
	DeviceID          int64     `json:"device_id"`
	Timestamp         time.Time `json:"timestamp"`
	CPUUtilization    *float64  `json:"cpu_utilization,omitempty"`
	MemoryUtilization *float64  `json:"memory_utilization,omitempty"`
	UptimeSeconds     *uint64   `json:"uptime_seconds,omitempty"`
}

// InterfaceMetric is one append-only sample of interface counters. Traffic
// counters are cumulative 64-bit integers; storing them through floating
// point silently loses precision above 2^53 and is never done here.
type InterfaceMetric struct {
	ID          int64     `json:"id"`
	InterfaceID int64     `json:"interface_id"`
	Timestamp   time.Time `json:"timestamp"`

	AdminStatus int `json:"admin_status"`
	OperStatus  int `json:"oper_status"`

	OctetsIn    uint64 `json:"octets_in"`
	OctetsOut   uint64 `json:"octets_out"`
	ErrorsIn    uint64 `json:"errors_in"`
	ErrorsOut   uint64 `json:"errors_out"`
	DiscardsIn  uint64 `json:"discards_in"`
	DiscardsOut uint64 `json:"discards_out"`
}

// DiscardRate returns the cumulative discard percentage for the sample:
// discarded packets relative to total octets seen. Zero-traffic samples
// report zero rather than dividing by zero.
func (m *InterfaceMetric) DiscardRate() float64 {
	totalDrops := m.DiscardsIn + m.DiscardsOut
	totalTraffic := m.OctetsIn + m.OctetsOut

	if totalTraffic == 0 {
		return 0
	}

	return float64(totalDrops) / float64(totalTraffic) * 100
}

// InterfaceObservation pairs an interface's registry row with its sample
// from the current poll cycle and the newest sample preceding it, nil on
// the interface's first cycle. Condition evaluation uses the pair to
// detect threshold crossings without re-reading the metric store.
type InterfaceObservation struct {
	Interface *Interface
	Current   *InterfaceMetric
	Previous  *InterfaceMetric
}

// ThroughputSample is one (timestamp, counters) point used for rate math.
type ThroughputSample struct {
	InterfaceID int64     `json:"interface_id"`
	Timestamp   time.Time `json:"timestamp"`
	OctetsIn    uint64    `json:"octets_in"`
	OctetsOut   uint64    `json:"octets_out"`
}

// ThroughputStats is the aggregate rate over a window of samples.
type ThroughputStats struct {
	InterfaceID int64     `json:"interface_id"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	Samples     int       `json:"samples"`
	Skipped     int       `json:"skipped"`
	InBPS       float64   `json:"inbound_bps"`
	OutBPS      float64   `json:"outbound_bps"`
}

// ThroughputPoint is one network-wide datapoint: the summed rate of all
// interfaces whose samples share a poll-cycle timestamp.
type ThroughputPoint struct {
	Timestamp time.Time `json:"timestamp"`
	InBPS     float64   `json:"inbound_bps"`
	OutBPS    float64   `json:"outbound_bps"`
}
