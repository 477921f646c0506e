// Package snowflake decodes Discord's 64-bit snowflake identifiers.
//
// A snowflake packs a millisecond timestamp (relative to 2015-01-01T00:00:00Z)
// into its top 42 bits, followed by a 5 bit shard, a 5 bit process and a 12
// bit sequence number.
package snowflake

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Epoch is the first millisecond of 2015 as a Unix millisecond timestamp.
const Epoch = 1420070400000

type Snowflake uint64

// Parse reads a snowflake from its decimal form.
func Parse(raw string) (Snowflake, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalid, raw, err)
	}
	return Snowflake(n), nil
}

// MustParse is like Parse but panics on error. It is meant for constants and
// tests.
func MustParse(raw string) Snowflake {
	s, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Timestamp returns the creation time encoded in s, in UTC.
func (s Snowflake) Timestamp() time.Time {
	ms := (uint64(s) >> 22) + Epoch
	return time.UnixMilli(int64(ms)).UTC()
}

// ShardID is bits 17 to 21, named the internal worker id upstream.
func (s Snowflake) ShardID() uint8 {
	return uint8((uint64(s) & 0x3E0000) >> 17)
}

// ProcessID is bits 12 to 16.
func (s Snowflake) ProcessID() uint8 {
	return uint8((uint64(s) & 0x1F000) >> 12)
}

// Sequence is bits 0 to 11, incremented for every id generated on a process
// within the same millisecond.
func (s Snowflake) Sequence() uint16 {
	return uint16(uint64(s) & 0xFFF)
}

func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

func (s Snowflake) GoString() string {
	return fmt.Sprintf("Snowflake(%d, ts=%s, shard=%d, process=%d, seq=%d)",
		uint64(s), s.Timestamp().Format(time.RFC3339Nano), s.ShardID(), s.ProcessID(), s.Sequence())
}

// MarshalJSON writes s as a JSON string, which is how the API transports ids
// that do not fit in a float64.
func (s Snowflake) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts the decimal string form. A JSON null leaves s
// unchanged.
func (s *Snowflake) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: expected a JSON string: %w", ErrInvalid, err)
	}
	v, err := Parse(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
