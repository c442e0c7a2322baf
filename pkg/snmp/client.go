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
	"context"
	"fmt"
	"strings"

	"github.com/gosnmp/gosnmp"
)

// client is the gosnmp-backed Client. One client holds one UDP session
// against one agent.
type client struct {
	target string
	agent  *gosnmp.GoSNMP
}

// NewClient opens an SNMPv2c session against the agent at target. It is
// a ClientFactory.
func NewClient(target string, config ClientConfig) (Client, error) {
	if target == "" {
		return nil, errEmptyTarget
	}

	config = config.withDefaults()

	agent := &gosnmp.GoSNMP{
		Target:             target,
		Port:               config.Port,
		Version:            gosnmp.Version2c,
		Community:          config.Community,
		Timeout:            config.Timeout.Duration(),
		Retries:            config.Retries,
		MaxOids:            gosnmp.MaxOids,
		MaxRepetitions:     10,
		ExponentialTimeout: true,
	}

	if err := agent.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", target, err)
	}

	return &client{target: target, agent: agent}, nil
}

func (c *client) Get(ctx context.Context, oids []string) (map[string]Value, error) {
	if len(oids) == 0 {
		return map[string]Value{}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	packet, err := c.agent.Get(oids)
	if err != nil {
		if IsTimeout(err) {
			return nil, fmt.Errorf("get from %s: %w", c.target, ErrTimeout)
		}

		return nil, fmt.Errorf("failed to get %d OIDs from %s: %w", len(oids), c.target, err)
	}

	result := make(map[string]Value, len(packet.Variables))

	for _, variable := range packet.Variables {
		value, ok := decodePDU(variable)
		if !ok {
			continue
		}

		result[canonicalOID(variable.Name)] = value
	}

	return result, nil
}

func (c *client) Walk(ctx context.Context, rootOID string) ([]PDU, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var bindings []PDU

	err := c.agent.BulkWalk(rootOID, func(pdu gosnmp.SnmpPDU) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		value, ok := decodePDU(pdu)
		if !ok {
			return nil
		}

		bindings = append(bindings, PDU{OID: canonicalOID(pdu.Name), Value: value})

		return nil
	})
	if err != nil {
		if IsTimeout(err) {
			return nil, fmt.Errorf("walk %s on %s: %w", rootOID, c.target, ErrTimeout)
		}

		return nil, fmt.Errorf("failed to walk %s on %s: %w", rootOID, c.target, err)
	}

	return bindings, nil
}

func (c *client) Close() error {
	if c.agent.Conn == nil {
		return nil
	}

	return c.agent.Conn.Close()
}

// canonicalOID ensures the dotted form with a leading dot, matching the
// package's OID constants regardless of how the agent echoed the name.
func canonicalOID(oid string) string {
	if oid == "" || strings.HasPrefix(oid, ".") {
		return oid
	}

	return "." + oid
}
