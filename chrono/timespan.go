package chrono

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// TimeSpan is a signed interval with nanosecond resolution, rendered as [-][d.]hh:mm:ss[.fff].
//
type TimeSpan time.Duration

const (
	Millisecond = TimeSpan(time.Millisecond)
	Second      = TimeSpan(time.Second)
	Minute      = TimeSpan(time.Minute)
	Hour        = TimeSpan(time.Hour)
	Day         = 24 * Hour
)

func NewTimeSpan(days, hours, minutes, seconds, milliseconds int) TimeSpan {
	return TimeSpan(days)*Day +
		TimeSpan(hours)*Hour +
		TimeSpan(minutes)*Minute +
		TimeSpan(seconds)*Second +
		TimeSpan(milliseconds)*Millisecond
}

func (ts TimeSpan) Duration() time.Duration { return time.Duration(ts) }

func (ts TimeSpan) Days() int         { return int(ts / Day) }
func (ts TimeSpan) Hours() int        { return int(ts % Day / Hour) }
func (ts TimeSpan) Minutes() int      { return int(ts % Hour / Minute) }
func (ts TimeSpan) Seconds() int      { return int(ts % Minute / Second) }
func (ts TimeSpan) Milliseconds() int { return int(ts % Second / Millisecond) }

func (ts TimeSpan) TotalDays() float64         { return float64(ts) / float64(Day) }
func (ts TimeSpan) TotalHours() float64        { return float64(ts) / float64(Hour) }
func (ts TimeSpan) TotalMinutes() float64      { return float64(ts) / float64(Minute) }
func (ts TimeSpan) TotalSeconds() float64      { return float64(ts) / float64(Second) }
func (ts TimeSpan) TotalMilliseconds() float64 { return float64(ts) / float64(Millisecond) }

func (ts TimeSpan) String() string {
	out := new(strings.Builder)
	mag := uint64(ts)
	if ts < 0 {
		out.WriteByte('-')
		// written as -(ts+1)+1 so math.MinInt64 does not overflow
		mag = uint64(-(ts + 1)) + 1
	}
	if d := mag / uint64(Day); d > 0 {
		_, _ = fmt.Fprintf(out, "%d.", d)
	}
	_, _ = fmt.Fprintf(out, "%02d:%02d:%02d",
		mag%uint64(Day)/uint64(Hour), mag%uint64(Hour)/uint64(Minute), mag%uint64(Minute)/uint64(Second))
	if ns := mag % uint64(Second); ns > 0 {
		digits := strings.TrimRight(fmt.Sprintf("%09d", ns), "0")
		if len(digits) < 3 {
			digits += strings.Repeat("0", 3-len(digits))
		}
		out.WriteString("." + digits)
	}
	return out.String()
}

// ParseTimeSpan parses the String form. The fraction may carry 1 to 9 digits.
//
func ParseTimeSpan(s string) (TimeSpan, error) {
	in := s
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	days := 0
	if i := strings.Index(s, "."); i >= 0 && i < strings.Index(s, ":") {
		d, err := strconv.Atoi(s[:i])
		if err != nil || !allDigits(s[:i]) {
			return 0, errors.Errorf("invalid days in [%s]", in)
		}
		days = d
		s = s[i+1:]
	}

	var fraction TimeSpan
	if i := strings.LastIndex(s, "."); i >= 0 {
		digits := s[i+1:]
		if len(digits) == 0 || len(digits) > 9 || !allDigits(digits) {
			return 0, errors.Errorf("invalid fraction in [%s]", in)
		}
		f, err := strconv.Atoi(digits + strings.Repeat("0", 9-len(digits)))
		if err != nil {
			return 0, errors.Wrapf(err, "invalid fraction in [%s]", in)
		}
		fraction = TimeSpan(f)
		s = s[:i]
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, errors.Errorf("expected hh:mm:ss in [%s]", in)
	}
	var hms [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil || !allDigits(part) {
			return 0, errors.Errorf("invalid component [%s] in [%s]", part, in)
		}
		hms[i] = v
	}
	if hms[1] > 59 || hms[2] > 59 {
		return 0, errors.Errorf("minutes and seconds must be below 60 in [%s]", in)
	}

	ts := NewTimeSpan(days, hms[0], hms[1], hms[2], 0) + fraction
	if negative {
		ts = -ts
	}
	return ts, nil
}

// allDigits rejects the signs strconv.Atoi would otherwise accept inside a component.
//
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
