package core

import "errors"

var (
	// ErrScanInProgress rejects a duplicate discovery request for a
	// network that is still being swept.
	ErrScanInProgress = errors.New("discovery already running for this network")

	// ErrInvalidThreshold rejects out-of-range threshold updates.
	// Values are never clamped.
	ErrInvalidThreshold = errors.New("threshold out of range")

	ErrNilStore     = errors.New("store cannot be nil")
	ErrNilCache     = errors.New("cache cannot be nil")
	ErrNilDiscovery = errors.New("discovery engine cannot be nil")
	ErrNilPoller    = errors.New("poll runner cannot be nil")
	ErrNilAlerts    = errors.New("alert manager cannot be nil")
	ErrNilSettings  = errors.New("settings cannot be nil")
)
