package store

import (
	"fmt"
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority accepts a priority name in any case. An empty string
// yields the default, medium.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("unknown priority %q (want low, medium or high)", s)
	}
}

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Document is the whole persisted file. Field order is the key order on disk.
type Document struct {
	Project Project `yaml:"project"`
	Tasks   []*Task `yaml:"tasks"`
}

type Project struct {
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	Prefix         string `yaml:"prefix"`
	NextTaskNumber int    `yaml:"next_task_number"`
}

// Initialized reports whether a task prefix has been chosen.
func (p Project) Initialized() bool {
	return p.Prefix != ""
}

type Task struct {
	Tag          string        `yaml:"tag"`
	Title        string        `yaml:"title"`
	Description  string        `yaml:"description"`
	Priority     Priority      `yaml:"priority"`
	CreatedAt    Timestamp     `yaml:"created_at"`
	DueDate      *Timestamp    `yaml:"due_date"`
	Completed    bool          `yaml:"completed"`
	WorkSessions []WorkSession `yaml:"work_sessions"`
	Notes        []string      `yaml:"notes"`
}

// Due returns the due date as a time, or nil when the task has no deadline.
func (t *Task) Due() *time.Time {
	if t.DueDate == nil {
		return nil
	}
	d := t.DueDate.Time
	return &d
}

type WorkSession struct {
	StartedAt   Timestamp `yaml:"started_at"`
	Duration    int       `yaml:"duration"` // minutes
	Interrupted bool      `yaml:"interrupted"`
}

// NewTask carries the user-supplied fields of a task being added.
type NewTask struct {
	Title       string
	Description string
	Priority    Priority
	Due         *time.Time
	Note        string
}
