package store

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// timestampLayout matches the naive local timestamps written by earlier
// versions of the tool; fractional seconds appear only when non-zero.
const timestampLayout = "2006-01-02T15:04:05.999999"

var timestampParseLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Timestamp is a wall-clock time stored as a local ISO-8601 string.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Local().Truncate(time.Microsecond)}
}

// TimestampPtr wraps t, or returns nil when t is nil.
func TimestampPtr(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	ts := NewTimestamp(*t)
	return &ts
}

func (t Timestamp) String() string {
	return t.Local().Format(timestampLayout)
}

func (t Timestamp) MarshalYAML() (any, error) {
	return t.String(), nil
}

func (t *Timestamp) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: timestamp must be a scalar", value.Line)
	}
	parsed, err := ParseTimestamp(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}

// ParseTimestamp accepts RFC 3339 values and naive local timestamps.
func ParseTimestamp(s string) (Timestamp, error) {
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NewTimestamp(ts), nil
	}
	for _, layout := range timestampParseLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return NewTimestamp(ts), nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
}
