package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the calendar date layout used across the planner.
const DateFormat = "2006-01-02"

// ToMinutes parses an HH:MM wall-clock string into minutes since midnight.
// Empty or malformed input reports ok=false so callers can treat the field
// as "no value" instead of failing the whole categorization.
func ToMinutes(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// MinutesOfDay returns the wall-clock minute offset of t.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// WithinRange reports whether now lies in [start, end], inclusive.
// Same-day semantics only; overnight windows are resolved by the
// active-slot resolver which has yesterday's weekday context.
func WithinRange(start, end, now int) bool {
	return now >= start && now <= end
}

// HasPassed reports whether now is strictly past target.
func HasPassed(target, now int) bool {
	return now > target
}

// FormatDisplay converts a 24h HH:MM string to a 12h h:mm AM/PM display form.
// Empty or malformed input yields "".
func FormatDisplay(s string) string {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return ""
	}
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, parts[1], ampm)
}

// Until returns a countdown tag for a target wall-clock time: "Started",
// "Now", "in Xh Ym" or "in Xm". The math is purely minute-offset based, so a
// target whose date lies beyond today reads "Started" once today's clock has
// passed its time component; date-crossing windows belong to the slot
// resolver. Empty time yields "".
func Until(timeStr, dateStr string, now time.Time) string {
	target, ok := ToMinutes(timeStr)
	if !ok {
		return ""
	}
	_ = dateStr

	diff := target - MinutesOfDay(now)
	if diff < 0 {
		return "Started"
	}
	if diff == 0 {
		return "Now"
	}

	hours := diff / 60
	minutes := diff % 60
	if hours > 0 {
		return fmt.Sprintf("in %dh %dm", hours, minutes)
	}
	return fmt.Sprintf("in %dm", minutes)
}

// Date formats t as a local calendar date.
func Date(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate parses a YYYY-MM-DD string in the local zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.Local)
}

// YesterdayWeekday returns the weekday index preceding day (0=Sunday).
func YesterdayWeekday(day int) int {
	return (day - 1 + 7) % 7
}
