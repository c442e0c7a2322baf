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

import "errors"

var (
	ErrInvalidInterval    = errors.New("polling interval must be at least 1s")
	ErrInvalidConcurrency = errors.New("concurrency must be between 1 and 1000")
	ErrMissingDatabase    = errors.New("database host and name are required")
	ErrMissingCommunity   = errors.New("snmp community is required")
	ErrInvalidPort        = errors.New("port must be between 1 and 65535")
	ErrInvalidTimeout     = errors.New("timeout must be greater than zero")
)
