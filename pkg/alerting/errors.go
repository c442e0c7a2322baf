package alerting

import "errors"

var (
	// ErrNilStore rejects construction without a registry store.
	ErrNilStore = errors.New("store cannot be nil")

	// ErrNoActiveCondition means acknowledge or resolve addressed a
	// condition that is already clear.
	ErrNoActiveCondition = errors.New("condition has no active alert")

	// ErrAlreadyAcknowledged means the condition was acknowledged
	// earlier; acknowledging again changes nothing.
	ErrAlreadyAcknowledged = errors.New("condition already acknowledged")

	// ErrUnknownCondition means the key names a condition kind that does
	// not exist on the addressed target.
	ErrUnknownCondition = errors.New("unknown condition for target")
)
