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

package config

import (
	"time"

	"github.com/edgewatch/edgewatch/pkg/logger"
	"github.com/edgewatch/edgewatch/pkg/models"
)

// Defaults applied where the config file is silent.
const (
	DefaultPollInterval         = 60 * time.Second
	DefaultPollConcurrency      = 20
	DefaultDiscoveryConcurrency = 20
	DefaultSNMPPort             = 161
	DefaultSNMPTimeout          = 10 * time.Second
	DefaultSNMPRetries          = 3
	DefaultListenAddr           = ":9155"
)

// Config is the daemon configuration tree loaded from JSON.
type Config struct {
	ListenAddr string          `json:"listen_addr"`
	Database   DatabaseConfig  `json:"database"`
	Redis      RedisConfig     `json:"redis"`
	SNMP       SNMPConfig      `json:"snmp"`
	Discovery  DiscoveryConfig `json:"discovery"`
	Polling    PollingConfig   `json:"polling"`
	Alerting   AlertingConfig  `json:"alerting"`
	Logging    *logger.Config  `json:"logging,omitempty"`
}

// DatabaseConfig describes the Postgres connection.
type DatabaseConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	Username string `json:"username"`
	Password string `json:"password"`
	SSLMode  string `json:"ssl_mode"`
	MaxConns int32  `json:"max_conns"`
}

// RedisConfig describes the cache backend. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// SNMPConfig describes protocol-level settings shared by discovery and
// polling.
type SNMPConfig struct {
	Community string          `json:"community"`
	Port      uint16          `json:"port"`
	Timeout   models.Duration `json:"timeout"`
	Retries   int             `json:"retries"`
}

// DiscoveryConfig holds discovery-specific knobs. Strict expansion includes
// network and broadcast addresses in the candidate list.
type DiscoveryConfig struct {
	Concurrency int  `json:"concurrency"`
	Strict      bool `json:"strict"`
}

// PollingConfig holds the cycle interval and fan-out bound.
type PollingConfig struct {
	Interval    models.Duration `json:"interval"`
	Concurrency int             `json:"concurrency"`
}

// AlertingConfig routes notifications.
type AlertingConfig struct {
	Recipients  []string `json:"recipients"`
	WebhookURL  string   `json:"webhook_url"`
	BearerToken string   `json:"bearer_token,omitempty"`
	NATSURL     string   `json:"nats_url"`
	NATSSubject string   `json:"nats_subject"`
}

// Validate checks the tree and fills defaults for unset fields.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}

	if c.Database.Host == "" || c.Database.Database == "" {
		return ErrMissingDatabase
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}

	if err := c.SNMP.validate(); err != nil {
		return err
	}

	if c.Discovery.Concurrency == 0 {
		c.Discovery.Concurrency = DefaultDiscoveryConcurrency
	}

	if c.Discovery.Concurrency < 1 || c.Discovery.Concurrency > 1000 {
		return ErrInvalidConcurrency
	}

	if c.Polling.Interval == 0 {
		c.Polling.Interval = models.Duration(DefaultPollInterval)
	}

	if c.Polling.Interval.Duration() < time.Second {
		return ErrInvalidInterval
	}

	if c.Polling.Concurrency == 0 {
		c.Polling.Concurrency = DefaultPollConcurrency
	}

	if c.Polling.Concurrency < 1 || c.Polling.Concurrency > 1000 {
		return ErrInvalidConcurrency
	}

	return nil
}

func (s *SNMPConfig) validate() error {
	if s.Community == "" {
		s.Community = "public"
	}

	if s.Port == 0 {
		s.Port = DefaultSNMPPort
	}

	if s.Timeout == 0 {
		s.Timeout = models.Duration(DefaultSNMPTimeout)
	}

	if s.Timeout.Duration() <= 0 {
		return ErrInvalidTimeout
	}

	if s.Retries == 0 {
		s.Retries = DefaultSNMPRetries
	}

	return nil
}
