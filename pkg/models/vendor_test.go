package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorFromSysObjectID(t *testing.T) {
	tests := []struct {
		name        string
		sysObjectID string
		wantName    string
	}{
		{
			name:        "cisco with product suffix",
			sysObjectID: "1.3.6.1.4.1.9.1.1745",
			wantName:    "Cisco",
		},
		{
			name:        "cisco with leading dot",
			sysObjectID: ".1.3.6.1.4.1.9.1.1745",
			wantName:    "Cisco",
		},
		{
			name:        "juniper",
			sysObjectID: "1.3.6.1.4.1.2636.1.1.1.2.129",
			wantName:    "Juniper",
		},
		{
			name:        "net-snmp bare enterprise",
			sysObjectID: "1.3.6.1.4.1.8072",
			wantName:    "Net-SNMP",
		},
		{
			name:        "unmapped enterprise",
			sysObjectID: "1.3.6.1.4.1.99999.1.1",
			wantName:    "Unknown (99999)",
		},
		{
			name:        "empty",
			sysObjectID: "",
			wantName:    "Unknown",
		},
		{
			name:        "not an enterprise oid",
			sysObjectID: "1.3.6.1.2.1.1.2.0",
			wantName:    "Unknown",
		},
		{
			name:        "garbage segment",
			sysObjectID: "1.3.6.1.4.1.abc.1",
			wantName:    "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VendorFromSysObjectID(tt.sysObjectID)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestVendorMetricObjects(t *testing.T) {
	cisco := VendorFromSysObjectID(".1.3.6.1.4.1.9.1.1745")
	require.True(t, cisco.HasMetrics())
	require.NotNil(t, cisco.CPU)
	assert.False(t, cisco.CPU.Idle)
	require.NotNil(t, cisco.Memory)
	assert.Equal(t, MemorySchemeUsedFree, cisco.Memory.Scheme)

	netsnmp := VendorFromSysObjectID(".1.3.6.1.4.1.8072.3.2.10")
	require.True(t, netsnmp.HasMetrics())
	assert.True(t, netsnmp.CPU.Idle)
	assert.Equal(t, MemorySchemeTotalAvail, netsnmp.Memory.Scheme)

	hp := VendorFromSysObjectID(".1.3.6.1.4.1.11.2.3.7")
	assert.Equal(t, "HP", hp.Name)
	assert.False(t, hp.HasMetrics())

	unknown := VendorFromSysObjectID("")
	assert.False(t, unknown.HasMetrics())
}
