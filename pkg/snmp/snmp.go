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

// Package snmp wraps gosnmp behind a small client interface so the
// discovery and polling engines can be tested against mock agents.
package snmp

//go:generate mockgen -destination=mock_snmp.go -package=snmp github.com/edgewatch/edgewatch/pkg/snmp Client

import (
	"context"
	"time"

	"github.com/edgewatch/edgewatch/pkg/models"
)

const (
	defaultPort      uint16 = 161
	defaultTimeout          = 10 * time.Second
	defaultRetries          = 3
	defaultCommunity        = "public"
)

// Client is a session against a single SNMP agent. Implementations must
// be safe to discard after Close; they are not required to be safe for
// concurrent use.
type Client interface {
	// Get fetches the given scalar OIDs in one request. The returned map
	// is keyed by the requested OID; OIDs the agent does not implement
	// are absent from the map rather than reported as an error.
	Get(ctx context.Context, oids []string) (map[string]Value, error)

	// Walk visits every object under rootOID in lexicographic order
	// using GETBULK and returns the collected variable bindings.
	Walk(ctx context.Context, rootOID string) ([]PDU, error)

	Close() error
}

// ClientConfig carries the transport parameters for one agent session.
type ClientConfig struct {
	Community string          `json:"community"`
	Port      uint16          `json:"port"`
	Timeout   models.Duration `json:"timeout"`
	Retries   int             `json:"retries"`
}

// withDefaults returns a copy with unset fields filled in.
func (c ClientConfig) withDefaults() ClientConfig {
	if c.Community == "" {
		c.Community = defaultCommunity
	}

	if c.Port == 0 {
		c.Port = defaultPort
	}

	if c.Timeout <= 0 {
		c.Timeout = models.Duration(defaultTimeout)
	}

	if c.Retries <= 0 {
		c.Retries = defaultRetries
	}

	return c
}

// ClientFactory opens a session against the agent at target (an IP
// address or hostname). Engines hold a factory rather than a concrete
// client so tests can substitute mock sessions per target.
type ClientFactory func(target string, config ClientConfig) (Client, error)
