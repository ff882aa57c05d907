package errs

import (
	"errors"
)

var (
	// ErrNotFound covers lookups and updates of unknown room ids.
	ErrNotFound = errors.New("room not found")
	// ErrRoomExists is returned when a room number is already registered.
	ErrRoomExists = errors.New("room number already exists")
)
