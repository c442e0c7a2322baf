package models

import (
	"fmt"
	"strconv"
	"strings"
)

// MemoryScheme tags how a vendor's two memory objects combine into a
// utilization percentage.
type MemoryScheme string

const (
	// MemorySchemeUsedFree: first object is used bytes, second is free
	// bytes; percent = used / (used + free).
	MemorySchemeUsedFree MemoryScheme = "used_free"
	// MemorySchemeTotalAvail: first object is total memory, second is
	// available memory; percent = (total - avail) / total.
	MemorySchemeTotalAvail MemoryScheme = "total_avail"
)

// CPUObjects names the vendor object that reports processor load.
type CPUObjects struct {
	OID string
	// Idle means the object reports idle percent; utilization is 100-v.
	Idle bool
}

// MemoryObjects names the vendor objects that report memory usage.
type MemoryObjects struct {
	FirstOID  string
	SecondOID string
	Scheme    MemoryScheme
}

// VendorDescriptor maps an enterprise number to a display name and the
// vendor-specific objects the poller can query. CPU and Memory are nil when
// no portable object set is known for the vendor.
type VendorDescriptor struct {
	Name   string
	CPU    *CPUObjects
	Memory *MemoryObjects
}

// HasMetrics reports whether the poller can fetch CPU or memory gauges.
func (v VendorDescriptor) HasMetrics() bool {
	return v.CPU != nil || v.Memory != nil
}

const enterprisePrefix = "1.3.6.1.4.1."

// Cisco processor and memory-pool objects (CISCO-PROCESS-MIB,
// CISCO-MEMORY-POOL-MIB, pool 1).
const (
	OIDCiscoCPU5Sec     = ".1.3.6.1.4.1.9.9.109.1.1.1.1.5.1"
	OIDCiscoMemPoolUsed = ".1.3.6.1.4.1.9.9.48.1.1.1.5.1"
	OIDCiscoMemPoolFree = ".1.3.6.1.4.1.9.9.48.1.1.1.6.1"
)

// UCD-SNMP objects served by Net-SNMP and UCD agents (UCD-SNMP-MIB).
const (
	OIDUCDCpuIdle      = ".1.3.6.1.4.1.2021.11.11.0"
	OIDUCDMemTotalReal = ".1.3.6.1.4.1.2021.4.5.0"
	OIDUCDMemAvailReal = ".1.3.6.1.4.1.2021.4.6.0"
)

var ciscoObjects = VendorDescriptor{
	Name: "Cisco",
	CPU:  &CPUObjects{OID: OIDCiscoCPU5Sec},
	Memory: &MemoryObjects{
		FirstOID:  OIDCiscoMemPoolUsed,
		SecondOID: OIDCiscoMemPoolFree,
		Scheme:    MemorySchemeUsedFree,
	},
}

var ucdObjects = MemoryObjects{
	FirstOID:  OIDUCDMemTotalReal,
	SecondOID: OIDUCDMemAvailReal,
	Scheme:    MemorySchemeTotalAvail,
}

// vendorsByEnterprise keys descriptors by the enterprise number that leads
// a device's sysObjectID.
var vendorsByEnterprise = map[int]VendorDescriptor{
	9:   ciscoObjects,
	11:  {Name: "HP"},
	43:  {Name: "3Com"},
	311: {Name: "Microsoft"},
	674: {Name: "Dell"},
	2021: {
		Name:   "UCD-SNMP",
		CPU:    &CPUObjects{OID: OIDUCDCpuIdle, Idle: true},
		Memory: &ucdObjects,
	},
	2636: {Name: "Juniper"},
	8072: {
		Name:   "Net-SNMP",
		CPU:    &CPUObjects{OID: OIDUCDCpuIdle, Idle: true},
		Memory: &ucdObjects,
	},
}

// VendorFromSysObjectID resolves a device's sysObjectID to a vendor
// descriptor. Unrecognized enterprise numbers resolve to an explicit
// unknown descriptor named "Unknown (<id>)"; values that are not
// enterprise OIDs at all resolve to plain "Unknown".
func VendorFromSysObjectID(sysObjectID string) VendorDescriptor {
	oid := strings.TrimPrefix(strings.TrimSpace(sysObjectID), ".")
	if !strings.HasPrefix(oid, enterprisePrefix) {
		return VendorDescriptor{Name: "Unknown"}
	}

	rest := strings.TrimPrefix(oid, enterprisePrefix)

	seg := rest
	if idx := strings.IndexByte(rest, '.'); idx >= 0 {
		seg = rest[:idx]
	}

	enterprise, err := strconv.Atoi(seg)
	if err != nil {
		return VendorDescriptor{Name: "Unknown"}
	}

	if vendor, ok := vendorsByEnterprise[enterprise]; ok {
		return vendor
	}

	return VendorDescriptor{Name: fmt.Sprintf("Unknown (%d)", enterprise)}
}
