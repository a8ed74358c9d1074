package store

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// AddTask allocates a tag and appends a new task.
func (d *Document) AddTask(nt NewTask, now time.Time) (*Task, error) {
	if !d.Project.Initialized() {
		return nil, ErrNotInitialized
	}
	title := strings.TrimSpace(nt.Title)
	if title == "" {
		return nil, errors.New("task title is required")
	}
	priority := nt.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("unknown priority %q", priority)
	}

	t := &Task{
		Tag:          d.allocateTag(),
		Title:        title,
		Description:  strings.TrimSpace(nt.Description),
		Priority:     priority,
		CreatedAt:    NewTimestamp(now),
		DueDate:      TimestampPtr(nt.Due),
		WorkSessions: []WorkSession{},
		Notes:        []string{},
	}
	if note := strings.TrimSpace(nt.Note); note != "" {
		t.Notes = append(t.Notes, note)
	}
	d.Tasks = append(d.Tasks, t)
	return t, nil
}

// FindTask looks a task up by tag, ignoring case.
func (d *Document) FindTask(tag string) (*Task, error) {
	for _, t := range d.Tasks {
		if strings.EqualFold(t.Tag, tag) {
			return t, nil
		}
	}
	return nil, &TaskNotFoundError{Tag: tag}
}

// CompleteTask marks a task done. It reports whether the flag changed;
// completing a finished task is a no-op.
func (d *Document) CompleteTask(tag string) (*Task, bool, error) {
	t, err := d.FindTask(tag)
	if err != nil {
		return nil, false, err
	}
	if t.Completed {
		return t, false, nil
	}
	t.Completed = true
	return t, true, nil
}

func (d *Document) AddNote(tag, text string) (*Task, error) {
	t, err := d.FindTask(tag)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("note text is empty")
	}
	t.Notes = append(t.Notes, text)
	return t, nil
}

// ResetNotes clears every note on a task and returns how many were removed.
func (d *Document) ResetNotes(tag string) (int, error) {
	t, err := d.FindTask(tag)
	if err != nil {
		return 0, err
	}
	n := len(t.Notes)
	t.Notes = []string{}
	return n, nil
}
