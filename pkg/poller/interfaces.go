package poller

//go:generate mockgen -destination=mock_poller.go -package=poller github.com/edgewatch/edgewatch/pkg/poller AlertEvaluator,Clock,Ticker

import (
	"context"
	"time"

	"github.com/edgewatch/edgewatch/pkg/models"
)

// AlertEvaluator receives each device's freshly persisted samples for
// condition evaluation. Implementations own state transitions and
// notifications; the poller only sequences the calls so that a device's
// rows are durable before its conditions are evaluated.
type AlertEvaluator interface {
	EvaluateDevice(ctx context.Context, device *models.Device, metric *models.DeviceMetric, now time.Time) error
	EvaluateReachability(ctx context.Context, device *models.Device, now time.Time) error
	EvaluateInterfaces(ctx context.Context, device *models.Device, observations []*models.InterfaceObservation, now time.Time) error
}

// Clock abstracts time-related operations.
type Clock interface {
	Now() time.Time
	Ticker(d time.Duration) Ticker
}

// Ticker abstracts the ticker behavior.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}
