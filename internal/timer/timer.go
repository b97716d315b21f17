// Package timer reads and writes the running timer kept in the state file and
// renders completed timers as summary lines.
package timer

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/all-dot-files/timer/internal/storage"
	"github.com/all-dot-files/timer/pkg/errors"
)

// CurrentMarker prefixes the line that records a running timer
const CurrentMarker = "Current:"

// TimestampLayout is the RFC 2822 form written for start times
const TimestampLayout = time.RFC1123Z

// CurrentTimer is a started, not yet stopped timer
type CurrentTimer struct {
	Name  string
	Start time.Time
}

// Summary is a stopped timer
type Summary struct {
	Name    string
	Elapsed time.Duration
}

// Line renders the summary as it is stored, terminator included.
func (s Summary) Line() string {
	return FormatSummaryLine(s.Name, s.Elapsed)
}

// FormatCurrentLine renders the state line for a timer started at start.
func FormatCurrentLine(name string, start time.Time) string {
	return fmt.Sprintf("%s %s %s\n", CurrentMarker, name, start.Format(TimestampLayout))
}

// FormatSummaryLine renders "NAME: <duration>\n". The duration text keeps its
// own leading space, which existing logs already contain.
func FormatSummaryLine(name string, elapsed time.Duration) string {
	return fmt.Sprintf("%s: %s\n", name, FormatDuration(elapsed))
}

// ParseLine interprets a single state file line. It returns nil when the line
// does not record a running timer, and a CORRUPT_STATE error when it claims
// to but cannot be parsed.
func ParseLine(line string) (*CurrentTimer, error) {
	fields := strings.SplitN(line, " ", 3)
	if fields[0] != CurrentMarker {
		return nil, nil
	}

	if len(fields) < 3 {
		return nil, errors.New(errors.ErrCorruptState, "timer.parse",
			fmt.Sprintf("malformed current timer line %q", line)).
			WithSuggestion("remove or fix the last line of the state file")
	}

	start, err := mail.ParseDate(strings.TrimSpace(fields[2]))
	if err != nil {
		return nil, errors.WrapWithSuggestion(err, errors.ErrCorruptState, "timer.parse",
			fmt.Sprintf("invalid start time in %q", line),
			"remove or fix the last line of the state file")
	}

	return &CurrentTimer{Name: fields[1], Start: start}, nil
}

// GetCurrent returns the running timer recorded on the last line of the
// store, or nil when no timer is running.
func GetCurrent(store storage.LineStore) (*CurrentTimer, error) {
	line, err := store.ReadLastLine()
	if err != nil {
		return nil, err
	}
	return ParseLine(line)
}
