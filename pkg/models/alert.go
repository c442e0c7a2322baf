package models

import "time"

// AlertState is the lifecycle state of one monitored condition.
type AlertState string

const (
	AlertStateClear        AlertState = "clear"
	AlertStateTriggered    AlertState = "triggered"
	AlertStateAcknowledged AlertState = "acknowledged"
)

// ConditionKind names a monitored condition on a device or interface.
type ConditionKind string

const (
	ConditionCPU          ConditionKind = "cpu"
	ConditionMemory       ConditionKind = "memory"
	ConditionReachability ConditionKind = "reachability"
	ConditionIfaceStatus  ConditionKind = "interface_status"
	ConditionPacketDrop   ConditionKind = "packet_drop"
)

// AlertCondition tracks the alert lifecycle of a single condition. The same
// structure is used for device-level and interface-level conditions.
type AlertCondition struct {
	State          AlertState `json:"state"`
	TriggeredAt    *time.Time `json:"triggered_at,omitempty"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
}

// NewAlertCondition returns a condition in the clear state.
func NewAlertCondition() AlertCondition {
	return AlertCondition{State: AlertStateClear}
}

// IsActive reports whether the condition is triggered or acknowledged.
func (c AlertCondition) IsActive() bool {
	return c.State == AlertStateTriggered || c.State == AlertStateAcknowledged
}

// ActiveAlert is one non-clear condition joined with enough identity to
// present it to an operator.
type ActiveAlert struct {
	DeviceID       int64         `json:"device_id"`
	Hostname       string        `json:"hostname"`
	IPAddress      string        `json:"ip_address"`
	InterfaceID    *int64        `json:"interface_id,omitempty"`
	IfName         string        `json:"if_name,omitempty"`
	Condition      ConditionKind `json:"condition"`
	State          AlertState    `json:"state"`
	TriggeredAt    *time.Time    `json:"triggered_at,omitempty"`
	AcknowledgedAt *time.Time    `json:"acknowledged_at,omitempty"`
}

// ConditionKey addresses one condition for acknowledge/resolve requests.
// InterfaceID is nil for device-level conditions.
type ConditionKey struct {
	DeviceID    int64         `json:"device_id"`
	InterfaceID *int64        `json:"interface_id,omitempty"`
	Condition   ConditionKind `json:"condition"`
}

// IsInterfaceCondition reports whether the kind lives on an interface.
func (k ConditionKind) IsInterfaceCondition() bool {
	return k == ConditionIfaceStatus || k == ConditionPacketDrop
}
