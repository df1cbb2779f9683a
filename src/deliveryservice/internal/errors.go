package internal

import "errors"

// Sentinel errors shared across the storage, cache and core layers. The RPC
// surface maps them to status codes; the event handlers decide between ack
// and redelivery with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// ErrStatusNotFound means the order has no entry in the status cache,
	// i.e. it has not been observed by the delivery service yet.
	ErrStatusNotFound = errors.New("delivery status not found")

	// ErrInvalidStatus means the cache holds a string outside the four
	// canonical status names.
	ErrInvalidStatus = errors.New("invalid status value")

	ErrOutOfRange             = errors.New("distance must be between 0km and 25km")
	ErrMissingMerchantAddress = errors.New("merchant address is empty")
	ErrMissingUserAddress     = errors.New("user address is empty")
)

// TransitionError reports that the delivery state machine refused a status
// change. The RPC surface turns it into FailedPrecondition with Reason as
// the user-facing message.
type TransitionError struct {
	Reason string
}

func (e *TransitionError) Error() string { return e.Reason }
