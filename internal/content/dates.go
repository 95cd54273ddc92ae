package content

import (
	"strings"
	"time"
)

const displayDateLayout = "Jan 2, 2006"

// FormatDate renders an RFC 3339 timestamp or YYYY-MM-DD date as
// "Mar 1, 2024" in UTC. Empty or unparseable input yields "".
func FormatDate(value string) string {
	t, ok := ParseDate(value)
	if !ok {
		return ""
	}
	return t.Format(displayDateLayout)
}

// ParseDate parses the date formats accepted by FormatDate.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
