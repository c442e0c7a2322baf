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

import (
	"context"
	"time"

	"github.com/edgewatch/edgewatch/pkg/models"
)

//go:generate mockgen -destination=mock_db.go -package=db github.com/edgewatch/edgewatch/pkg/db Store

// Store represents all registry and metric persistence operations.
type Store interface {
	Init(ctx context.Context) error
	Close()

	// Device registry operations.

	UpsertDeviceByMAC(ctx context.Context, device *models.Device) (int64, bool, error)
	ListDevices(ctx context.Context) ([]*models.Device, error)
	GetDeviceByID(ctx context.Context, id int64) (*models.Device, error)
	GetDeviceByIP(ctx context.Context, ip string) (*models.Device, error)
	DeleteDevice(ctx context.Context, id int64) error
	UpdateReachability(ctx context.Context, deviceID int64, reachable bool, attempt time.Time, success *time.Time, failures int) error
	UpdateDeviceThresholds(ctx context.Context, deviceID int64, cpu, memory float64, failures int) error
	SetMaintenance(ctx context.Context, deviceID int64, on bool, until *time.Time, reason string) error

	// Interface registry operations.

	UpsertInterface(ctx context.Context, iface *models.Interface) (int64, bool, error)
	ListInterfaces(ctx context.Context, deviceID int64) ([]*models.Interface, error)
	GetInterfaceByID(ctx context.Context, id int64) (*models.Interface, error)
	UpdateInterfaceThreshold(ctx context.Context, interfaceID int64, packetDrop float64) error

	// Metric append and read operations.

	InsertDeviceMetric(ctx context.Context, metric *models.DeviceMetric) error
	InsertInterfaceMetrics(ctx context.Context, metrics []*models.InterfaceMetric) error
	LatestInterfaceMetrics(ctx context.Context, interfaceID int64, limit int) ([]*models.InterfaceMetric, error)
	RecentInterfaceMetrics(ctx context.Context, perInterface int) ([]*models.InterfaceMetric, error)
	InterfaceThroughput(ctx context.Context, interfaceID int64, window time.Duration) ([]*models.ThroughputSample, error)
	NetworkThroughputSamples(ctx context.Context, window time.Duration) ([]*models.ThroughputSample, error)

	// Alert condition operations.

	UpdateAlertCondition(ctx context.Context, key models.ConditionKey, condition models.AlertCondition) error
	ListActiveAlerts(ctx context.Context) ([]*models.ActiveAlert, error)

	// Aggregates.

	NetworkSummary(ctx context.Context) (*models.NetworkSummary, error)
	TopDevicesByCPU(ctx context.Context, limit int, window time.Duration) ([]*models.TopDevice, error)
}
