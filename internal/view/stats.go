package view

import (
	"time"

	"github.com/sadopc/todo/internal/due"
	"github.com/sadopc/todo/internal/store"
	"github.com/sadopc/todo/internal/worklog"
)

// Stats aggregates a document for `todo status`. Work times are minutes.
type Stats struct {
	TotalTasks     int
	CompletedTasks int
	PendingTasks   int

	HighPriority   int
	MediumPriority int
	LowPriority    int

	OverdueTasks int
	DueToday     int
	NoDueDate    int

	TotalWorkTime     int
	CompletedWorkTime int
	PendingWorkTime   int

	TotalSessions       int
	InterruptedSessions int
}

// CalculateStats makes a single pass over the tasks. A deadline on the same
// calendar day as now counts as due today even if its time has passed.
func CalculateStats(tasks []*store.Task, now time.Time) Stats {
	st := Stats{TotalTasks: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			st.CompletedTasks++
		} else {
			st.PendingTasks++
		}

		switch t.Priority {
		case store.PriorityHigh:
			st.HighPriority++
		case store.PriorityMedium:
			st.MediumPriority++
		case store.PriorityLow:
			st.LowPriority++
		}

		if d := t.Due(); d == nil {
			st.NoDueDate++
		} else if due.SameDay(*d, now) {
			st.DueToday++
		} else if d.Before(now) {
			st.OverdueTasks++
		}

		worked := worklog.TotalMinutes(t.WorkSessions)
		st.TotalWorkTime += worked
		if t.Completed {
			st.CompletedWorkTime += worked
		} else {
			st.PendingWorkTime += worked
		}
		st.TotalSessions += len(t.WorkSessions)
		st.InterruptedSessions += worklog.InterruptedCount(t.WorkSessions)
	}
	return st
}

// CompletionRate is the percentage of completed tasks, 0 with no tasks.
func (s Stats) CompletionRate() float64 {
	if s.TotalTasks == 0 {
		return 0
	}
	return float64(s.CompletedTasks) / float64(s.TotalTasks) * 100
}

func (s Stats) CompletedSessions() int {
	return s.TotalSessions - s.InterruptedSessions
}

// SessionCompletionRate is the percentage of sessions that ran to the end.
func (s Stats) SessionCompletionRate() float64 {
	if s.TotalSessions == 0 {
		return 0
	}
	return float64(s.CompletedSessions()) / float64(s.TotalSessions) * 100
}
