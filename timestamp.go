package step

import (
	"fmt"
	"time"
)

// TimestampLayout is the form FILE_NAME timestamps are written in.
const TimestampLayout = "2006-01-02T15:04:05.0000000Z07:00"

var timestampLayouts = []string{
	TimestampLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-1-2T15:04:05",
	"2006-1-2T3:04:05 PM-07:00",
	"2006-1-2T3:04:05 PMZ07:00",
	"2006-1-2T3:04:05 PM",
	"2006-01-02T",
	"2006-01-02",
}

// ParseTimestamp accepts the timestamp forms found in FILE_NAME headers. The
// empty string is the zero time.
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("Bad timestamp: %q", s)
}

func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}
