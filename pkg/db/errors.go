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

package db

import "errors"

var (
	ErrDeviceNotFound    = errors.New("device not found")
	ErrInterfaceNotFound = errors.New("interface not found")
	ErrUnknownCondition  = errors.New("unknown alert condition")
	ErrNilDatabaseConfig = errors.New("database config is nil")

	errDeviceNil    = errors.New("device is nil")
	errInterfaceNil = errors.New("interface is nil")
	errMetricNil    = errors.New("metric is nil")
)
