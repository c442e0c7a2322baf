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

package snmp

// System group scalars (SNMPv2-MIB).
const (
	OIDSysDescr    = ".1.3.6.1.2.1.1.1.0"
	OIDSysObjectID = ".1.3.6.1.2.1.1.2.0"
	OIDSysUpTime   = ".1.3.6.1.2.1.1.3.0"
	OIDSysName     = ".1.3.6.1.2.1.1.5.0"
)

// Interface tables (IF-MIB). Table roots are walked; column roots are
// combined with an ifIndex to address a single cell.
const (
	OIDIfTable  = ".1.3.6.1.2.1.2.2.1"
	OIDIfXTable = ".1.3.6.1.2.1.31.1.1.1"

	OIDIfDescr       = ".1.3.6.1.2.1.2.2.1.2"
	OIDIfSpeed       = ".1.3.6.1.2.1.2.2.1.5"
	OIDIfPhysAddress = ".1.3.6.1.2.1.2.2.1.6"
	OIDIfAdminStatus = ".1.3.6.1.2.1.2.2.1.7"
	OIDIfOperStatus  = ".1.3.6.1.2.1.2.2.1.8"
	OIDIfInOctets    = ".1.3.6.1.2.1.2.2.1.10"
	OIDIfInDiscards  = ".1.3.6.1.2.1.2.2.1.13"
	OIDIfInErrors    = ".1.3.6.1.2.1.2.2.1.14"
	OIDIfOutOctets   = ".1.3.6.1.2.1.2.2.1.16"
	OIDIfOutDiscards = ".1.3.6.1.2.1.2.2.1.19"
	OIDIfOutErrors   = ".1.3.6.1.2.1.2.2.1.20"

	OIDIfName        = ".1.3.6.1.2.1.31.1.1.1.1"
	OIDIfHCInOctets  = ".1.3.6.1.2.1.31.1.1.1.6"
	OIDIfHCOutOctets = ".1.3.6.1.2.1.31.1.1.1.10"
	OIDIfHighSpeed   = ".1.3.6.1.2.1.31.1.1.1.15"
)
