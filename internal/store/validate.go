package store

import (
	"fmt"
	"strings"
)

// Validate checks a freshly decoded document. Gaps left by older files
// (missing collections, a stale task counter, no priority) are filled in;
// anything that breaks tag identity or the schema is an error.
func (d *Document) Validate() error {
	if d.Project.NextTaskNumber < 1 {
		d.Project.NextTaskNumber = 1
	}
	if d.Tasks == nil {
		d.Tasks = []*Task{}
	}

	seen := make(map[string]bool, len(d.Tasks))
	for i, t := range d.Tasks {
		if t == nil {
			return fmt.Errorf("tasks[%d]: empty entry", i)
		}
		if strings.TrimSpace(t.Tag) == "" {
			return fmt.Errorf("tasks[%d]: missing tag", i)
		}
		key := strings.ToLower(t.Tag)
		if seen[key] {
			return fmt.Errorf("tasks[%d]: duplicate tag %s", i, t.Tag)
		}
		seen[key] = true

		if strings.TrimSpace(t.Title) == "" {
			return fmt.Errorf("task %s: missing title", t.Tag)
		}
		if t.Priority == "" {
			t.Priority = PriorityMedium
		}
		if !t.Priority.Valid() {
			return fmt.Errorf("task %s: unknown priority %q", t.Tag, t.Priority)
		}
		if t.CreatedAt.IsZero() {
			return fmt.Errorf("task %s: missing created_at", t.Tag)
		}
		if t.WorkSessions == nil {
			t.WorkSessions = []WorkSession{}
		}
		for j, s := range t.WorkSessions {
			if s.Duration < 0 {
				return fmt.Errorf("task %s: work_sessions[%d]: negative duration", t.Tag, j)
			}
		}
		if t.Notes == nil {
			t.Notes = []string{}
		}

		if n, ok := tagNumber(t.Tag); ok && n >= d.Project.NextTaskNumber {
			d.Project.NextTaskNumber = n + 1
		}
	}
	return nil
}
