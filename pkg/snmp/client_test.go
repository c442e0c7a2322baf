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
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgewatch/edgewatch/pkg/models"
)

func TestClientConfigDefaults(t *testing.T) {
	t.Run("empty config filled", func(t *testing.T) {
		cfg := ClientConfig{}.withDefaults()

		assert.Equal(t, "public", cfg.Community)
		assert.Equal(t, uint16(161), cfg.Port)
		assert.Equal(t, 10*time.Second, cfg.Timeout.Duration())
		assert.Equal(t, 3, cfg.Retries)
	})

	t.Run("explicit values kept", func(t *testing.T) {
		cfg := ClientConfig{
			Community: "s3cret",
			Port:      1161,
			Timeout:   models.Duration(2 * time.Second),
			Retries:   1,
		}.withDefaults()

		assert.Equal(t, "s3cret", cfg.Community)
		assert.Equal(t, uint16(1161), cfg.Port)
		assert.Equal(t, 2*time.Second, cfg.Timeout.Duration())
		assert.Equal(t, 1, cfg.Retries)
	})
}

func TestNewClientRejectsEmptyTarget(t *testing.T) {
	_, err := NewClient("", ClientConfig{})
	require.ErrorIs(t, err, errEmptyTarget)
}

func TestIsTimeout(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "sentinel", err: ErrTimeout, expected: true},
		{name: "wrapped sentinel", err: fmt.Errorf("get from 10.0.0.1: %w", ErrTimeout), expected: true},
		{name: "deadline exceeded", err: context.DeadlineExceeded, expected: true},
		{name: "transport text", err: errors.New("request timeout (after 3 retries)"), expected: true},
		{name: "unrelated", err: errors.New("connection refused"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTimeout(tt.err))
		})
	}
}

func TestCanonicalOID(t *testing.T) {
	assert.Equal(t, ".1.3.6.1.2.1.1.5.0", canonicalOID("1.3.6.1.2.1.1.5.0"))
	assert.Equal(t, ".1.3.6.1.2.1.1.5.0", canonicalOID(".1.3.6.1.2.1.1.5.0"))
	assert.Equal(t, "", canonicalOID(""))
}
