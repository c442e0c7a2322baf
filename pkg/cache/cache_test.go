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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edgewatch/edgewatch/pkg/logger"
)

type summary struct {
	Devices int `json:"devices"`
}

func TestNewWithoutAddressReturnsDisabledCache(t *testing.T) {
	c := New(context.Background(), nil, logger.NewTestLogger())

	assert.False(t, c.Enabled())

	// Every operation must be a safe no-op.
	c.Set(context.Background(), "k", []byte("v"), time.Minute)
	c.Delete(context.Background(), "k")
	c.DeletePattern(context.Background(), "k:*")

	_, ok := c.Get(context.Background(), "k")
	assert.False(t, ok)
	assert.NoError(t, c.Close())
}

func TestCachedComputesDirectlyWhenDisabled(t *testing.T) {
	c := &disabledCache{}
	calls := 0

	compute := func(context.Context) (summary, error) {
		calls++
		return summary{Devices: calls}, nil
	}

	first, err := Cached(context.Background(), c, "network:summary", time.Minute, compute)
	require.NoError(t, err)

	second, err := Cached(context.Background(), c, "network:summary", time.Minute, compute)
	require.NoError(t, err)

	// No backend, so every call recomputes.
	assert.Equal(t, 1, first.Devices)
	assert.Equal(t, 2, second.Devices)
}

func TestCachedHitSkipsCompute(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := NewMockCache(ctrl)

	cached, err := json.Marshal(summary{Devices: 7})
	require.NoError(t, err)

	mockCache.EXPECT().Get(gomock.Any(), "network:summary").Return(cached, true)

	got, err := Cached(context.Background(), mockCache, "network:summary", time.Minute,
		func(context.Context) (summary, error) {
			t.Fatal("compute must not run on a cache hit")
			return summary{}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, 7, got.Devices)
}

func TestCachedStoresComputedValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := NewMockCache(ctrl)

	expected, err := json.Marshal(summary{Devices: 3})
	require.NoError(t, err)

	mockCache.EXPECT().Get(gomock.Any(), "network:summary").Return(nil, false)
	mockCache.EXPECT().Set(gomock.Any(), "network:summary", expected, 30*time.Second)

	got, err := Cached(context.Background(), mockCache, "network:summary", 30*time.Second,
		func(context.Context) (summary, error) {
			return summary{Devices: 3}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Devices)
}

func TestCachedErrorIsNotStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := NewMockCache(ctrl)

	computeErr := errors.New("store unavailable")

	mockCache.EXPECT().Get(gomock.Any(), "network:summary").Return(nil, false)

	_, err := Cached(context.Background(), mockCache, "network:summary", time.Minute,
		func(context.Context) (summary, error) {
			return summary{}, computeErr
		})
	require.ErrorIs(t, err, computeErr)
}

func TestCachedCorruptEntryRecomputed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := NewMockCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), "network:summary").Return([]byte("{corrupt"), true)
	mockCache.EXPECT().Set(gomock.Any(), "network:summary", gomock.Any(), time.Minute)

	got, err := Cached(context.Background(), mockCache, "network:summary", time.Minute,
		func(context.Context) (summary, error) {
			return summary{Devices: 5}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, 5, got.Devices)
}
