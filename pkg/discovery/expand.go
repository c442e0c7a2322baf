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

package discovery

import (
	"fmt"
	"net"
)

// expandNetwork expands a CIDR block into candidate addresses in range
// order. For IPv4 prefixes of /30 and shorter the network and broadcast
// addresses are dropped unless strict is set; /31 and /32 keep every
// address (point-to-point and host routes have no broadcast).
func expandNetwork(network string, strict bool) ([]string, error) {
	ip, ipNet, err := net.ParseCIDR(network)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCIDR, network)
	}

	var targets []string
	for addr := ip.Mask(ipNet.Mask); ipNet.Contains(addr); incrementIP(addr) {
		targets = append(targets, addr.String())
	}

	ones, _ := ipNet.Mask.Size()
	if !strict && ipNet.IP.To4() != nil && ones <= 30 && len(targets) > 2 {
		// Expansion is ordered, so the network address is first and the
		// broadcast address is last.
		targets = targets[1 : len(targets)-1]
	}

	return targets, nil
}

// incrementIP advances an IP address by one, carrying across octets.
func incrementIP(ip net.IP) {
	for i := len(ip) - 1; i >= 0; i-- {
		ip[i]++
		if ip[i] > 0 {
			break
		}
	}
}
