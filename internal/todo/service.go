package todo

import (
	"fmt"
	"slices"
)

// Storage reads and writes the whole task list.
//
// Read must return a non-nil slice on success and wrap failures with
// [ErrRead] or [ErrParse]. Write must wrap failures with [ErrWrite].
type Storage interface {
	Read() ([]Task, error)
	Write(tasks []Task) error
}

// Service performs task operations against a [Storage].
//
// It keeps no state between calls: every call re-reads the list, so two
// sequential calls always observe the latest persisted state.
type Service struct {
	storage Storage
}

// NewService returns a Service bound to storage.
func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// Add appends a new open task built from description words.
// Nothing is read or written when the task is invalid.
func (s *Service) Add(words []string, priority int) (Task, error) {
	task, err := NewTask(words, priority)
	if err != nil {
		return Task{}, err
	}

	tasks, err := s.storage.Read()
	if err != nil {
		return Task{}, err
	}

	tasks = append(tasks, task)

	if err := s.storage.Write(tasks); err != nil {
		return Task{}, err
	}

	return task, nil
}

// List returns all tasks in stored order. It never writes.
func (s *Service) List() ([]Task, error) {
	tasks, err := s.storage.Read()
	if err != nil {
		return []Task{}, err
	}

	return tasks, nil
}

// Get returns the task with the given id without modifying anything.
func (s *Service) Get(id int) (Task, error) {
	tasks, err := s.storage.Read()
	if err != nil {
		return Task{}, err
	}

	idx, err := index(tasks, id)
	if err != nil {
		return Task{}, err
	}

	return tasks[idx], nil
}

// SetDone marks the task with the given id as done and returns it.
func (s *Service) SetDone(id int) (Task, error) {
	tasks, err := s.storage.Read()
	if err != nil {
		return Task{}, err
	}

	idx, err := index(tasks, id)
	if err != nil {
		return Task{}, err
	}

	tasks[idx].Done = true

	if err := s.storage.Write(tasks); err != nil {
		return Task{}, err
	}

	return tasks[idx], nil
}

// Remove deletes the task with the given id and returns it.
// Tasks after it move up one position.
func (s *Service) Remove(id int) (Task, error) {
	tasks, err := s.storage.Read()
	if err != nil {
		return Task{}, err
	}

	idx, err := index(tasks, id)
	if err != nil {
		return Task{}, err
	}

	removed := tasks[idx]
	tasks = slices.Delete(tasks, idx, idx+1)

	if err := s.storage.Write(tasks); err != nil {
		return Task{}, err
	}

	return removed, nil
}

// RemoveAll replaces the stored list with an empty one.
// The current content is not read first, so a corrupt database is also cleared.
func (s *Service) RemoveAll() error {
	return s.storage.Write([]Task{})
}

// index converts a 1-based id into a slice index.
func index(tasks []Task, id int) (int, error) {
	if id < 1 || id > len(tasks) {
		if len(tasks) == 0 {
			return 0, fmt.Errorf("%w: %d (the list is empty)", ErrIndex, id)
		}

		return 0, fmt.Errorf("%w: %d (must be 1-%d)", ErrIndex, id, len(tasks))
	}

	return id - 1, nil
}
