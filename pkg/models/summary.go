package models

import "time"

// DiscoverySummary reports the outcome of one discovery job.
type DiscoverySummary struct {
	JobID     string    `json:"job_id"`
	Network   string    `json:"network"`
	Scanned   int       `json:"scanned"`
	Found     int       `json:"found"`
	New       int       `json:"new"`
	Updated   int       `json:"updated"`
	Started   time.Time `json:"started"`
	Completed time.Time `json:"completed"`
}

// CycleSummary reports the outcome of one polling cycle. A device counts as
// failed when its poll timed out or its sample could not be persisted.
type CycleSummary struct {
	Attempted int       `json:"attempted"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Started   time.Time `json:"started"`
	Completed time.Time `json:"completed"`
}

// NetworkSummary is the fleet-wide rollup served to dashboards. The
// averages cover the most recent poll cycle and are nil when no device
// reported the gauge.
type NetworkSummary struct {
	TotalDevices   int       `json:"total_devices"`
	DevicesUp      int       `json:"devices_up"`
	DevicesInAlert int       `json:"devices_in_alert"`
	AvgCPU         *float64  `json:"avg_cpu,omitempty"`
	AvgMemory      *float64  `json:"avg_memory,omitempty"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// TopDevice is one row of the busiest-devices listing.
type TopDevice struct {
	DeviceID  int64   `json:"device_id"`
	Hostname  string  `json:"hostname"`
	IPAddress string  `json:"ip_address"`
	Value     float64 `json:"value"`
}

// UtilizationSummary is the average bandwidth utilization across interfaces
// that have a known speed and are administratively and operationally up.
type UtilizationSummary struct {
	Interfaces     int     `json:"interfaces"`
	AveragePercent float64 `json:"average_percent"`
}
