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

package poller

import "time"

// realClock is the production Clock. Tests substitute a fake through
// the Clock seam so cycle scheduling is deterministic.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Ticker(d time.Duration) Ticker {
	return &realTicker{ticker: time.NewTicker(d)}
}

// realTicker adapts time.Ticker to the Ticker interface; the poll loop
// stops and replaces it behind the seam on an interval reload.
type realTicker struct {
	ticker *time.Ticker
}

func (r *realTicker) Chan() <-chan time.Time { return r.ticker.C }

func (r *realTicker) Stop() { r.ticker.Stop() }
