// Package worklog accounts for timed work on tasks: totals, duration
// formatting and the blocking session runner behind `todo workon`.
package worklog

import (
	"fmt"

	"github.com/sadopc/todo/internal/store"
)

// TotalMinutes sums the durations of every session.
func TotalMinutes(sessions []store.WorkSession) int {
	total := 0
	for _, s := range sessions {
		total += s.Duration
	}
	return total
}

// InterruptedCount counts sessions that ended by cancellation.
func InterruptedCount(sessions []store.WorkSession) int {
	n := 0
	for _, s := range sessions {
		if s.Interrupted {
			n++
		}
	}
	return n
}

// FormatMinutes renders minutes as "2h 5m", or "45m" below an hour.
func FormatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
