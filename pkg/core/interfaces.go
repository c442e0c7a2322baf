package core

import (
	"context"
	"time"

	"github.com/edgewatch/edgewatch/pkg/models"
)

//go:generate mockgen -destination=mock_core.go -package=core github.com/edgewatch/edgewatch/pkg/core Discoverer,PollRunner,AlertManager

// Discoverer runs one discovery sweep of a CIDR network.
type Discoverer interface {
	Discover(ctx context.Context, network string) (*models.DiscoverySummary, error)
}

// PollRunner is the polling engine surface the monitor drives.
type PollRunner interface {
	PollNow(ctx context.Context) (*models.CycleSummary, error)
	UpdateInterval(interval time.Duration)
}

// AlertManager handles the operator verbs on alert conditions.
type AlertManager interface {
	Acknowledge(ctx context.Context, key models.ConditionKey) error
	Resolve(ctx context.Context, key models.ConditionKey) error
}
