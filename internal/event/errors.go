package event

import "errors"

var (
	// ErrInvalidEvent is returned when an event name is empty.
	ErrInvalidEvent = errors.New("invalid event")

	// ErrNilHandler is returned when a nil handler or pattern is provided.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrSubscriptionNotFound is returned by Off for an unknown or already removed subscription.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
