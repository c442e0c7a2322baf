package poller

import "errors"

var (
	// ErrCycleInProgress reports that a poll cycle is already running.
	// Ticks and manual triggers that land mid-cycle are skipped, never
	// queued, so a device is not polled twice concurrently.
	ErrCycleInProgress = errors.New("poll cycle already in progress")

	ErrNilClientFactory = errors.New("client factory cannot be nil")
	ErrNilStore         = errors.New("store cannot be nil")
	ErrNilEvaluator     = errors.New("alert evaluator cannot be nil")
	ErrNilSettings      = errors.New("settings cannot be nil")
)
