// Package view derives listings and statistics from a todo document and
// renders them for the terminal.
package view

import (
	"slices"

	"github.com/sadopc/todo/internal/store"
)

// SortForListing orders tasks for `todo list`: incomplete before
// complete, then by due date with undated tasks last. Ties keep their
// insertion order. The input slice is not modified.
func SortForListing(tasks []*store.Task) []*store.Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, compareForListing)
	return sorted
}

// SessionsByStart returns a copy of the sessions ordered by start time.
func SessionsByStart(sessions []store.WorkSession) []store.WorkSession {
	sorted := slices.Clone(sessions)
	slices.SortStableFunc(sorted, func(a, b store.WorkSession) int {
		return a.StartedAt.Compare(b.StartedAt.Time)
	})
	return sorted
}

func compareForListing(a, b *store.Task) int {
	if a.Completed != b.Completed {
		if !a.Completed {
			return -1
		}
		return 1
	}
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return 0
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	}
	return a.DueDate.Compare(b.DueDate.Time)
}
