package errs

import (
	"errors"
)

var (
	// ErrNotFound covers lookups and cancellations of unknown reservation ids.
	ErrNotFound = errors.New("reservation not found")
	// ErrNoAvailability is a business outcome: the request was valid but no
	// room matched (or every candidate was taken while committing).
	ErrNoAvailability = errors.New("no rooms available for the requested dates")
	// ErrUpstream wraps availability oracle faults, timeouts and transport
	// failures. It is never folded into ErrNoAvailability.
	ErrUpstream = errors.New("availability service error")
	// ErrRoomConflict is returned by the store when a candidate room is
	// already reserved for an overlapping date range.
	ErrRoomConflict = errors.New("room already reserved for overlapping dates")
)
