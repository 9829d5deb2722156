// Package chrono provides wall-clock timestamps and signed time spans with the string forms used in logs and data
// files.
//
package chrono

import "time"

// Timestamp counts milliseconds since the Unix epoch, UTC.
//
type Timestamp int64

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

func Now() Timestamp {
	return FromTime(time.Now())
}

func FromTime(t time.Time) Timestamp {
	return Timestamp(t.UnixNano() / int64(time.Millisecond))
}

func (ts Timestamp) Time() time.Time {
	return time.Unix(0, int64(ts)*int64(time.Millisecond)).UTC()
}

// Add shifts ts by span, truncated to milliseconds.
//
func (ts Timestamp) Add(span TimeSpan) Timestamp {
	return ts + Timestamp(span/Millisecond)
}

func (ts Timestamp) Sub(other Timestamp) TimeSpan {
	return TimeSpan(ts-other) * Millisecond
}

func (ts Timestamp) Before(other Timestamp) bool { return ts < other }

func (ts Timestamp) After(other Timestamp) bool { return ts > other }

func (ts Timestamp) String() string {
	return ts.Time().Format(timestampLayout)
}

func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0, err
	}
	return FromTime(t), nil
}
