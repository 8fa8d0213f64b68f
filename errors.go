package lcus

import "errors"

// Predefined error types for robust error handling
var (
	ErrClosed        = errors.New("relay controller is closed")
	ErrInvalidConfig = errors.New("invalid relay configuration")
	ErrNoRelays      = errors.New("no relays reported in device status")
)
