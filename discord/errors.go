package discord

import (
	"errors"
)

var (
	// ErrUnknownValue is returned when an enumerated field carries a code
	// this package does not know.
	ErrUnknownValue = errors.New("unknown enum value")
)
