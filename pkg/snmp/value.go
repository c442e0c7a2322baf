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

import (
	"math"
	"strconv"

	"github.com/gosnmp/gosnmp"
)

// Kind discriminates the wire types a Value can carry. The unsigned
// kind collapses Counter32, Counter64, Gauge32, Unsigned32 and
// TimeTicks; callers that care about counter width read the OID, not
// the kind.
type Kind int

const (
	KindNull Kind = iota
	KindOctets
	KindObjectID
	KindInteger
	KindUnsigned
)

// Value is a decoded variable binding. The zero value is null.
type Value struct {
	kind Kind
	oct  []byte
	oid  string
	num  int64
	uns  uint64
}

// PDU pairs an OID with its decoded value, as yielded by a table walk.
type PDU struct {
	OID   string
	Value Value
}

// OctetsValue wraps a raw OCTET STRING.
func OctetsValue(b []byte) Value { return Value{kind: KindOctets, oct: b} }

// StringValue wraps a textual OCTET STRING.
func StringValue(s string) Value { return Value{kind: KindOctets, oct: []byte(s)} }

// ObjectIDValue wraps an OBJECT IDENTIFIER in dotted form.
func ObjectIDValue(oid string) Value { return Value{kind: KindObjectID, oid: oid} }

// IntValue wraps an INTEGER.
func IntValue(i int) Value { return Value{kind: KindInteger, num: int64(i)} }

// UintValue wraps any of the unsigned wire types.
func UintValue(u uint64) Value { return Value{kind: KindUnsigned, uns: u} }

// IsNull reports whether the agent returned no usable value, for
// example NoSuchObject or NoSuchInstance.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Kind returns the decoded wire kind.
func (v Value) Kind() Kind { return v.kind }

// Octets returns the raw bytes of an OCTET STRING, or nil for other
// kinds. Used for ifPhysAddress, which is binary rather than text.
func (v Value) Octets() []byte {
	if v.kind != KindOctets {
		return nil
	}

	return v.oct
}

// AsString renders the value as text. Octet strings and object
// identifiers return their content; numeric kinds are formatted in
// base 10; null returns the empty string.
func (v Value) AsString() string {
	switch v.kind {
	case KindOctets:
		return string(v.oct)
	case KindObjectID:
		return v.oid
	case KindInteger:
		return strconv.FormatInt(v.num, 10)
	case KindUnsigned:
		return strconv.FormatUint(v.uns, 10)
	default:
		return ""
	}
}

// AsUint64 returns the value as an unsigned counter. Negative integers
// and non-numeric kinds report ok=false.
func (v Value) AsUint64() (uint64, bool) {
	switch v.kind {
	case KindUnsigned:
		return v.uns, true
	case KindInteger:
		if v.num < 0 {
			return 0, false
		}

		return uint64(v.num), true
	default:
		return 0, false
	}
}

// AsInt returns the value as a signed integer, used for enumerations
// such as ifOperStatus. Unsigned values above MaxInt64 report ok=false.
func (v Value) AsInt() (int64, bool) {
	switch v.kind {
	case KindInteger:
		return v.num, true
	case KindUnsigned:
		if v.uns > math.MaxInt64 {
			return 0, false
		}

		return int64(v.uns), true
	default:
		return 0, false
	}
}

// AsFloat64 returns numeric values as a float, used for gauge reads
// such as CPU and memory objects.
func (v Value) AsFloat64() (float64, bool) {
	switch v.kind {
	case KindInteger:
		return float64(v.num), true
	case KindUnsigned:
		return float64(v.uns), true
	default:
		return 0, false
	}
}

// decodePDU converts a gosnmp variable binding into a Value. The second
// return is false when the binding carries no usable value and should
// be treated as absent.
func decodePDU(pdu gosnmp.SnmpPDU) (Value, bool) {
	switch pdu.Type {
	case gosnmp.OctetString:
		b, ok := pdu.Value.([]byte)
		if !ok {
			return Value{}, false
		}

		return OctetsValue(b), true
	case gosnmp.ObjectIdentifier:
		s, ok := pdu.Value.(string)
		if !ok {
			return Value{}, false
		}

		return ObjectIDValue(s), true
	case gosnmp.Integer:
		i, ok := pdu.Value.(int)
		if !ok {
			return Value{}, false
		}

		return IntValue(i), true
	case gosnmp.Counter32, gosnmp.Counter64, gosnmp.Gauge32, gosnmp.Uinteger32, gosnmp.TimeTicks:
		return UintValue(gosnmp.ToBigInt(pdu.Value).Uint64()), true
	default:
		// NoSuchObject, NoSuchInstance, EndOfMibView, Null.
		return Value{}, false
	}
}
