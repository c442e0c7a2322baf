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
	"sync"
	"time"
)

// SettingsSnapshot is an immutable view of the runtime-mutable knobs.
// Engines take a snapshot at the top of each cycle; an in-progress cycle
// never sees a mid-flight change.
type SettingsSnapshot struct {
	PollInterval         time.Duration `json:"poll_interval"`
	PollConcurrency      int           `json:"poll_concurrency"`
	DiscoveryConcurrency int           `json:"discovery_concurrency"`
}

// SettingsPatch carries an operator update; nil fields are left unchanged.
type SettingsPatch struct {
	PollInterval         *time.Duration `json:"poll_interval,omitempty"`
	PollConcurrency      *int           `json:"poll_concurrency,omitempty"`
	DiscoveryConcurrency *int           `json:"discovery_concurrency,omitempty"`
}

// Settings guards the runtime-mutable engine configuration. It replaces the
// process-wide mutable globals the product previously relied on.
type Settings struct {
	mu       sync.RWMutex
	snapshot SettingsSnapshot
}

// NewSettings seeds the runtime settings from the loaded config.
func NewSettings(cfg *Config) *Settings {
	return &Settings{
		snapshot: SettingsSnapshot{
			PollInterval:         cfg.Polling.Interval.Duration(),
			PollConcurrency:      cfg.Polling.Concurrency,
			DiscoveryConcurrency: cfg.Discovery.Concurrency,
		},
	}
}

// Snapshot returns the current settings.
func (s *Settings) Snapshot() SettingsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}

// Update validates and applies a patch, returning the resulting snapshot.
// Invalid values are rejected whole; nothing is clamped.
func (s *Settings) Update(patch SettingsPatch) (SettingsSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot

	if patch.PollInterval != nil {
		if *patch.PollInterval < time.Second {
			return s.snapshot, ErrInvalidInterval
		}

		next.PollInterval = *patch.PollInterval
	}

	if patch.PollConcurrency != nil {
		if *patch.PollConcurrency < 1 || *patch.PollConcurrency > 1000 {
			return s.snapshot, ErrInvalidConcurrency
		}

		next.PollConcurrency = *patch.PollConcurrency
	}

	if patch.DiscoveryConcurrency != nil {
		if *patch.DiscoveryConcurrency < 1 || *patch.DiscoveryConcurrency > 1000 {
			return s.snapshot, ErrInvalidConcurrency
		}

		next.DiscoveryConcurrency = *patch.DiscoveryConcurrency
	}

	s.snapshot = next

	return next, nil
}
