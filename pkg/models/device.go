package models

import (
	"time"
)

// Default thresholds applied to newly discovered devices and interfaces.
const (
	DefaultCPUThreshold        = 80.0
	DefaultMemoryThreshold     = 80.0
	DefaultFailureThreshold    = 3
	DefaultPacketDropThreshold = 0.1
)

// Device represents a managed network device. The hardware address is the
// stable identity key; IP and hostname may change across discoveries.
type Device struct {
	ID              int64  `json:"id"`
	IPAddress       string `json:"ip_address"`
	Hostname        string `json:"hostname"`
	HardwareAddress string `json:"hardware_address,omitempty"`
	Vendor          string `json:"vendor,omitempty"`
	SysObjectID     string `json:"sys_object_id,omitempty"`
	SysDescr        string `json:"sys_descr,omitempty"`

	CPUThreshold     float64 `json:"cpu_threshold"`
	MemoryThreshold  float64 `json:"memory_threshold"`
	FailureThreshold int     `json:"failure_threshold"`

	CPUAlert          AlertCondition `json:"cpu_alert"`
	MemoryAlert       AlertCondition `json:"memory_alert"`
	ReachabilityAlert AlertCondition `json:"reachability_alert"`

	MaintenanceMode   bool       `json:"maintenance_mode"`
	MaintenanceUntil  *time.Time `json:"maintenance_until,omitempty"`
	MaintenanceReason string     `json:"maintenance_reason,omitempty"`

	LastPollAttempt     *time.Time `json:"last_poll_attempt,omitempty"`
	LastPollSuccess     *time.Time `json:"last_poll_success,omitempty"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
	IsReachable         bool       `json:"is_reachable"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDevice returns a device with default thresholds and clear conditions.
func NewDevice(ip, hostname, mac string) *Device {
	return &Device{
		IPAddress:         ip,
		Hostname:          hostname,
		HardwareAddress:   mac,
		CPUThreshold:      DefaultCPUThreshold,
		MemoryThreshold:   DefaultMemoryThreshold,
		FailureThreshold:  DefaultFailureThreshold,
		CPUAlert:          NewAlertCondition(),
		MemoryAlert:       NewAlertCondition(),
		ReachabilityAlert: NewAlertCondition(),
		IsReachable:       true,
	}
}

// Condition returns a pointer to the named device-level condition,
// or nil for interface-level kinds.
func (d *Device) Condition(kind ConditionKind) *AlertCondition {
	switch kind {
	case ConditionCPU:
		return &d.CPUAlert
	case ConditionMemory:
		return &d.MemoryAlert
	case ConditionReachability:
		return &d.ReachabilityAlert
	default:
		return nil
	}
}

// InMaintenance reports whether notifications are currently suppressed.
// A window with an expiry in the past no longer counts as active.
func (d *Device) InMaintenance(now time.Time) bool {
	if !d.MaintenanceMode {
		return false
	}

	if d.MaintenanceUntil != nil && !now.Before(*d.MaintenanceUntil) {
		return false
	}

	return true
}

// MaintenanceExpired reports whether an expiry-bounded window has lapsed
// and should be disabled.
func (d *Device) MaintenanceExpired(now time.Time) bool {
	return d.MaintenanceMode && d.MaintenanceUntil != nil && !now.Before(*d.MaintenanceUntil)
}

// SpeedSource records which object supplied an interface's speed.
type SpeedSource string

const (
	SpeedSourceHighCapacity SpeedSource = "high_capacity"
	SpeedSourceLegacy       SpeedSource = "legacy"
	SpeedSourceUnknown      SpeedSource = "unknown"
)

// LegacySpeedSaturated is the ceiling of the 32-bit ifSpeed object. Links
// faster than ~4.29 Gbps report exactly this value there.
const LegacySpeedSaturated uint64 = 4294967295

// Interface is one port on a device, identified by (if_index, if_name)
// within the device.
type Interface struct {
	ID       int64  `json:"id"`
	DeviceID int64  `json:"device_id"`
	IfIndex  int    `json:"if_index"`
	IfName   string `json:"if_name"`

	SpeedBPS    *uint64     `json:"speed_bps,omitempty"`
	SpeedSource SpeedSource `json:"speed_source"`

	PacketDropThreshold float64 `json:"packet_drop_threshold"`

	OperStatusAlert AlertCondition `json:"oper_status_alert"`
	PacketDropAlert AlertCondition `json:"packet_drop_alert"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Condition returns a pointer to the named interface-level condition,
// or nil for device-level kinds.
func (i *Interface) Condition(kind ConditionKind) *AlertCondition {
	switch kind {
	case ConditionIfaceStatus:
		return &i.OperStatusAlert
	case ConditionPacketDrop:
		return &i.PacketDropAlert
	default:
		return nil
	}
}
