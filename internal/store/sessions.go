package store

import "fmt"

// RecordSession appends a work session to the task's log.
func (d *Document) RecordSession(tag string, s WorkSession) (*Task, error) {
	t, err := d.FindTask(tag)
	if err != nil {
		return nil, err
	}
	if s.Duration < 0 {
		return nil, fmt.Errorf("record session on %s: negative duration %d", t.Tag, s.Duration)
	}
	t.WorkSessions = append(t.WorkSessions, s)
	return t, nil
}
