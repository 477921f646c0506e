package discord

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeGuild reads a single guild object.
func DecodeGuild(r io.Reader) (*Guild, error) {
	var g Guild
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decoding guild: %w", err)
	}
	return &g, nil
}

// DecodeScheduledEvents reads the array returned by the scheduled events
// listing, preserving its order.
func DecodeScheduledEvents(r io.Reader) ([]ScheduledEvent, error) {
	var events []ScheduledEvent
	if err := json.NewDecoder(r).Decode(&events); err != nil {
		return nil, fmt.Errorf("decoding scheduled events: %w", err)
	}
	return events, nil
}

// DecodeChannels reads an array of channel objects.
func DecodeChannels(r io.Reader) ([]Channel, error) {
	var channels []Channel
	if err := json.NewDecoder(r).Decode(&channels); err != nil {
		return nil, fmt.Errorf("decoding channels: %w", err)
	}
	return channels, nil
}

func decodeCode(data []byte, kind string, known func(int) bool) (int, error) {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return 0, fmt.Errorf("decoding %s: %w", kind, err)
	}
	if err := checkCode(n, kind, known(n)); err != nil {
		return 0, err
	}
	return n, nil
}

func checkCode(n int, kind string, known bool) error {
	if !known {
		return fmt.Errorf("%w: %s %d", ErrUnknownValue, kind, n)
	}
	return nil
}

func (p *PrivacyLevel) UnmarshalJSON(data []byte) error {
	n, err := decodeCode(data, "privacy level", func(n int) bool {
		return PrivacyLevel(n).known()
	})
	if err != nil {
		return err
	}
	*p = PrivacyLevel(n)
	return nil
}

func (s *EventStatus) UnmarshalJSON(data []byte) error {
	n, err := decodeCode(data, "event status", func(n int) bool {
		return EventStatus(n).known()
	})
	if err != nil {
		return err
	}
	*s = EventStatus(n)
	return nil
}

func (t *EntityType) UnmarshalJSON(data []byte) error {
	n, err := decodeCode(data, "entity type", func(n int) bool {
		return EntityType(n).known()
	})
	if err != nil {
		return err
	}
	*t = EntityType(n)
	return nil
}
