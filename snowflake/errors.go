package snowflake

import (
	"errors"
)

var (
	// ErrInvalid is returned when a snowflake is not a base 10 unsigned
	// 64-bit integer.
	ErrInvalid = errors.New("invalid snowflake")
)
