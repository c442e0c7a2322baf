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

package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Cached memoizes fn under key for ttl. On a hit the cached JSON is
// decoded and returned; on a miss, a decode failure, or a disabled
// cache, fn computes the value and the result is stored best-effort.
// fn's error is returned as-is and nothing is cached for it.
func Cached[T any](ctx context.Context, c Cache, key string, ttl time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	if data, ok := c.Get(ctx, key); ok {
		var value T
		if err := json.Unmarshal(data, &value); err == nil {
			return value, nil
		}

		// A stale or corrupt entry is treated as a miss and overwritten.
	}

	value, err := fn(ctx)
	if err != nil {
		return value, err
	}

	if data, err := json.Marshal(value); err == nil {
		c.Set(ctx, key, data, ttl)
	}

	return value, nil
}
