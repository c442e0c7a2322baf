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
	"encoding/hex"
	"fmt"
	"strings"
)

// FormatMAC formats a 6-byte ifPhysAddress as the canonical lowercase
// colon-separated form. Anything other than 6 octets, including the
// empty physAddress of loopback and virtual interfaces, returns "".
func FormatMAC(mac []byte) string {
	if len(mac) != 6 {
		return ""
	}

	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		mac[0], mac[1], mac[2], mac[3], mac[4], mac[5])
}

// NormalizeMAC canonicalizes a MAC address string into the same form
// FormatMAC produces. Some agents expose physical addresses as literal
// "0x001122334455" strings instead of raw octets; both that form and
// the separator forms "00:11:22:33:44:55" and "00-11-22-33-44-55" are
// accepted. Strings that do not decode to 6 octets return "".
func NormalizeMAC(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	s = strings.NewReplacer(":", "", "-", "").Replace(s)

	raw, err := hex.DecodeString(s)
	if err != nil {
		return ""
	}

	return FormatMAC(raw)
}
