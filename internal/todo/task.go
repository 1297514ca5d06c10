// Package todo implements task-level operations on a to-do list that is
// persisted as a whole on every change.
//
// A task is identified by its 1-based position in the list. Removing a
// task shifts the ids of all tasks after it down by one.
package todo

import (
	"fmt"
	"strings"
)

// Priority bounds. 1 is the most urgent.
const (
	MinPriority     = 1
	MaxPriority     = 3
	DefaultPriority = 2
)

// Task is a single to-do entry. The JSON field names are the on-disk format.
type Task struct {
	Description string `json:"Description"`
	Priority    int    `json:"Priority"`
	Done        bool   `json:"Done"`
}

// IsValidPriority reports whether p is an allowed priority.
func IsValidPriority(p int) bool {
	return p >= MinPriority && p <= MaxPriority
}

// NewTask builds an open task from description words.
// Words are joined with single spaces.
func NewTask(words []string, priority int) (Task, error) {
	if !IsValidPriority(priority) {
		return Task{}, fmt.Errorf("%w: priority %d (must be %d-%d)", ErrValidation, priority, MinPriority, MaxPriority)
	}

	description := strings.Join(words, " ")
	if strings.TrimSpace(description) == "" {
		return Task{}, fmt.Errorf("%w: description is required", ErrValidation)
	}

	return Task{Description: description, Priority: priority}, nil
}
