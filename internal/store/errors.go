package store

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned when a task is added before a prefix exists.
var ErrNotInitialized = errors.New("project not initialized, run 'todo init' first")

type TaskNotFoundError struct {
	Tag string
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task with tag %s not found", e.Tag)
}

// CorruptDocumentError reports a todo file that exists but cannot be
// decoded or fails validation.
type CorruptDocumentError struct {
	Path string
	Err  error
}

func (e *CorruptDocumentError) Error() string {
	return fmt.Sprintf("todo file %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptDocumentError) Unwrap() error {
	return e.Err
}
