package store

import (
	"errors"
	"strings"
)

// NewDocument returns the empty, uninitialized document used when no file
// exists yet.
func NewDocument() *Document {
	return &Document{
		Project: Project{NextTaskNumber: 1},
		Tasks:   []*Task{},
	}
}

// Init resets the document to a fresh project. Existing tasks are discarded.
func (d *Document) Init(name, description, prefix string) error {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return errors.New("task prefix is required")
	}
	*d = Document{
		Project: Project{
			Name:           strings.TrimSpace(name),
			Description:    strings.TrimSpace(description),
			Prefix:         prefix,
			NextTaskNumber: 1,
		},
		Tasks: []*Task{},
	}
	return nil
}
