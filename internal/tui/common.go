package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/todo/internal/worklog"
)

// --- Messages ---

// progressMsg carries one runner tick into the program.
type progressMsg worklog.Progress

// sessionDoneMsg is sent once the runner has returned.
type sessionDoneMsg struct {
	outcome worklog.Outcome
}

// --- Helpers ---

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// formatClock renders a countdown as MM:SS, letting minutes exceed 59.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}
