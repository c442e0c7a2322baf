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

// Package notify delivers alert transition notifications to the
// configured sinks. Delivery failures are reported to the caller, which
// logs them; a failed delivery never rolls back the alert transition
// that produced it.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock_notify.go -package=notify github.com/edgewatch/edgewatch/pkg/notify Notifier

// Level is the notification severity.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is one alert transition message.
type Notification struct {
	ID         string         `json:"id"`
	Level      Level          `json:"level"`
	Subject    string         `json:"subject"`
	Body       string         `json:"body"`
	Recipients []string       `json:"recipients,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	DeviceID   int64          `json:"device_id,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// NewNotification stamps a notification with a unique id and the
// current time.
func NewNotification(level Level, subject, body string) *Notification {
	return &Notification{
		ID:        uuid.New().String(),
		Level:     level,
		Subject:   subject,
		Body:      body,
		Timestamp: time.Now().UTC(),
	}
}

// Notifier delivers one notification to a sink.
type Notifier interface {
	Notify(ctx context.Context, notification *Notification) error
}

// MultiNotifier fans one notification out to every sink. All sinks are
// attempted; failures are joined rather than short-circuiting.
type MultiNotifier struct {
	notifiers []Notifier
}

// NewMultiNotifier combines the given sinks.
func NewMultiNotifier(notifiers ...Notifier) *MultiNotifier {
	return &MultiNotifier{notifiers: notifiers}
}

// Notify implements Notifier.
func (m *MultiNotifier) Notify(ctx context.Context, notification *Notification) error {
	var errs []error

	for _, n := range m.notifiers {
		if err := n.Notify(ctx, notification); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// NoopNotifier discards notifications. Used when no sink is configured.
type NoopNotifier struct{}

// Notify implements Notifier.
func (NoopNotifier) Notify(context.Context, *Notification) error { return nil }
