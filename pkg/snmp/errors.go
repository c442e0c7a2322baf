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
	"errors"
	"strings"
)

var (
	// ErrTimeout indicates the agent did not answer within the configured
	// timeout and retries. Pollers treat it as an unreachable sample.
	ErrTimeout = errors.New("snmp request timed out")

	errEmptyTarget = errors.New("snmp target must not be empty")
)

// IsTimeout reports whether err represents an agent timeout, either our
// own sentinel or the net/gosnmp error text surfaced by the transport.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	// gosnmp reports retry exhaustion as a plain error with this text.
	return strings.Contains(err.Error(), "request timeout")
}
