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

	"github.com/edgewatch/edgewatch/pkg/models"
)

// ListActiveAlerts returns every non-clear condition joined with device
// and interface identity, for the operator alert list.
func (m *Monitor) ListActiveAlerts(ctx context.Context) ([]*models.ActiveAlert, error) {
	return m.store.ListActiveAlerts(ctx)
}

// Acknowledge marks an active condition as seen by an operator. Invalid
// transitions surface as errors from the alert manager.
func (m *Monitor) Acknowledge(ctx context.Context, key models.ConditionKey) error {
	return m.alerts.Acknowledge(ctx, key)
}

// Resolve forces a condition back to clear without waiting for the
// metric to recover.
func (m *Monitor) Resolve(ctx context.Context, key models.ConditionKey) error {
	return m.alerts.Resolve(ctx, key)
}
