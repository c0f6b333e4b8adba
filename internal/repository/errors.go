package repository

import "errors"

// Sentinel errors for reference-integrity conditions. The reference system
// swallowed missing-guest lookups silently; surfacing them as typed errors
// makes the data loss observable to callers and tests.
var (
	ErrGuestNotFound   = errors.New("guest not found")
	ErrOrderNotFound   = errors.New("food order not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomUnavailable = errors.New("room not available")
)
