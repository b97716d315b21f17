package timer

import (
	"strconv"
	"strings"
	"time"
)

var units = [...]string{"weeks", "days", "hours", "minutes", "seconds"}

// FormatDuration renders d as " <n> weeks <n> days ..." starting at the first
// non-zero unit. Every emitted unit carries a leading space, so a non-empty
// result always begins with one. A zero duration renders as "".
//
// Components are computed from whole seconds truncated toward zero, so a
// negative duration yields negative components.
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	days := secs / 86400

	values := [...]int64{
		days / 7,
		days % 7,
		(secs / 3600) % 24,
		(secs / 60) % 60,
		secs % 60,
	}

	var b strings.Builder
	found := false
	for i, v := range values {
		if !found && v == 0 {
			continue
		}
		found = true
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(v, 10))
		b.WriteByte(' ')
		b.WriteString(units[i])
	}
	return b.String()
}
