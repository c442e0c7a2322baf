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

package core

import (
	"context"

	"github.com/edgewatch/edgewatch/pkg/config"
)

// Settings returns the current runtime engine settings.
func (m *Monitor) Settings() config.SettingsSnapshot {
	return m.settings.Snapshot()
}

// UpdateSettings validates and applies a runtime settings patch. An
// interval change reaches the poller immediately and takes effect at the
// next cycle boundary; concurrency changes are read by the next cycle's
// settings snapshot.
func (m *Monitor) UpdateSettings(_ context.Context, patch config.SettingsPatch) (config.SettingsSnapshot, error) {
	snapshot, err := m.settings.Update(patch)
	if err != nil {
		return snapshot, err
	}

	if patch.PollInterval != nil {
		m.poller.UpdateInterval(snapshot.PollInterval)
	}

	m.logger.Info().
		Dur("poll_interval", snapshot.PollInterval).
		Int("poll_concurrency", snapshot.PollConcurrency).
		Int("discovery_concurrency", snapshot.DiscoveryConcurrency).
		Msg("Runtime settings updated")

	return snapshot, nil
}
